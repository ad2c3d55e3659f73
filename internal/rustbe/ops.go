package rustbe

import "github.com/lhaig/unparse/internal/ops"

// Target is the language name reported by Rust operator definitions.
const Target = "rust"

// Prec is a Rust precedence tier, loosest first. It is the ops.Definition
// implementation for this backend; the rank is the ordinal.
type Prec int

const (
	PrecAssign  Prec = iota // = += -= ...
	PrecRange               // .. ..=
	PrecOr                  // ||
	PrecAnd                 // &&
	PrecCompare             // == != < > <= >=
	PrecBitOr               // |
	PrecBitXor              // ^
	PrecBitAnd              // &
	PrecShift               // << >>
	PrecSum                 // + -
	PrecProduct             // * / %
	PrecCast                // as
	PrecPrefix              // unary - ! * & &mut
	PrecMember              // postfix chains: a.b a.m() f(x) a[i] x?
	PrecPath                // a::b
)

var precNames = [...]string{
	PrecAssign:  "assign",
	PrecRange:   "range",
	PrecOr:      "or",
	PrecAnd:     "and",
	PrecCompare: "compare",
	PrecBitOr:   "bitor",
	PrecBitXor:  "bitxor",
	PrecBitAnd:  "bitand",
	PrecShift:   "shift",
	PrecSum:     "sum",
	PrecProduct: "product",
	PrecCast:    "cast",
	PrecPrefix:  "prefix",
	PrecMember:  "member",
	PrecPath:    "path",
}

// Rank implements ops.Definition.
func (p Prec) Rank() int { return int(p) }

// Assoc implements ops.Definition.
func (p Prec) Assoc() ops.Assoc {
	switch p {
	case PrecAssign, PrecPrefix:
		return ops.Right
	case PrecRange, PrecCompare:
		return ops.NonAssoc
	default:
		return ops.Left
	}
}

// Target implements ops.Definition.
func (Prec) Target() string { return Target }

func (p Prec) String() string {
	if p >= 0 && int(p) < len(precNames) {
		return precNames[p]
	}
	return "unknown"
}

// Op is a Rust operator.
type Op int

const (
	Neg Op = iota
	Not
	Deref
	Ref
	RefMut
	Try
	Cast
	Mul
	Div
	Rem
	Add
	Sub
	Shl
	Shr
	BitAnd
	BitXor
	BitOr
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	And
	Or
	Range
	RangeInclusive
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	RemAssign
	BitAndAssign
	BitXorAssign
	BitOrAssign
	ShlAssign
	ShrAssign
	Call
	Index
	Field
	Method
	Path

	numOps
)

type opInfo struct {
	symbol string
	role   ops.Role
	prec   Prec
}

var opTable = [numOps]opInfo{
	Neg:            {"-", ops.Prefix, PrecPrefix},
	Not:            {"!", ops.Prefix, PrecPrefix},
	Deref:          {"*", ops.Prefix, PrecPrefix},
	Ref:            {"&", ops.Prefix, PrecPrefix},
	RefMut:         {"&mut", ops.Prefix, PrecPrefix},
	Try:            {"?", ops.Postfix, PrecMember},
	Cast:           {"as", ops.Special, PrecCast},
	Mul:            {"*", ops.Infix, PrecProduct},
	Div:            {"/", ops.Infix, PrecProduct},
	Rem:            {"%", ops.Infix, PrecProduct},
	Add:            {"+", ops.Infix, PrecSum},
	Sub:            {"-", ops.Infix, PrecSum},
	Shl:            {"<<", ops.Infix, PrecShift},
	Shr:            {">>", ops.Infix, PrecShift},
	BitAnd:         {"&", ops.Infix, PrecBitAnd},
	BitXor:         {"^", ops.Infix, PrecBitXor},
	BitOr:          {"|", ops.Infix, PrecBitOr},
	Eq:             {"==", ops.Infix, PrecCompare},
	Ne:             {"!=", ops.Infix, PrecCompare},
	Lt:             {"<", ops.Infix, PrecCompare},
	Gt:             {">", ops.Infix, PrecCompare},
	Le:             {"<=", ops.Infix, PrecCompare},
	Ge:             {">=", ops.Infix, PrecCompare},
	And:            {"&&", ops.Infix, PrecAnd},
	Or:             {"||", ops.Infix, PrecOr},
	Range:          {"..", ops.Infix, PrecRange},
	RangeInclusive: {"..=", ops.Infix, PrecRange},
	Assign:         {"=", ops.Infix, PrecAssign},
	AddAssign:      {"+=", ops.Infix, PrecAssign},
	SubAssign:      {"-=", ops.Infix, PrecAssign},
	MulAssign:      {"*=", ops.Infix, PrecAssign},
	DivAssign:      {"/=", ops.Infix, PrecAssign},
	RemAssign:      {"%=", ops.Infix, PrecAssign},
	BitAndAssign:   {"&=", ops.Infix, PrecAssign},
	BitXorAssign:   {"^=", ops.Infix, PrecAssign},
	BitOrAssign:    {"|=", ops.Infix, PrecAssign},
	ShlAssign:      {"<<=", ops.Infix, PrecAssign},
	ShrAssign:      {">>=", ops.Infix, PrecAssign},
	Call:           {"call", ops.Special, PrecMember},
	Index:          {"index", ops.Special, PrecMember},
	Field:          {"field", ops.Special, PrecMember},
	Method:         {"method", ops.Special, PrecMember},
	Path:           {"path", ops.Special, PrecPath},
}

type opKey struct {
	symbol string
	role   ops.Role
}

// opIndex is filled once at init and only read afterwards.
var opIndex = func() map[opKey]Op {
	m := make(map[opKey]Op, numOps)
	for op := Op(0); op < numOps; op++ {
		info := opTable[op]
		m[opKey{info.symbol, info.role}] = op
	}
	return m
}()

// Symbol returns the surface spelling of the operator.
func (op Op) Symbol() string { return opTable[op].symbol }

// Role returns where the operator sits relative to its operands.
func (op Op) Role() ops.Role { return opTable[op].role }

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return "unknown"
	}
	return opTable[op].symbol + "/" + opTable[op].role.String()
}

// PrecedenceOf returns the precedence tier of a Rust operator.
func PrecedenceOf(op Op) Prec {
	return opTable[op].prec
}

// LookupOp finds the operator with the given spelling and role.
func LookupOp(symbol string, role ops.Role) (Op, bool) {
	op, ok := opIndex[opKey{symbol, role}]
	return op, ok
}

// OpForArity picks the operator a front end means by symbol when applied to
// arity operands: special forms first, then prefix/postfix for a single
// operand and infix otherwise.
func OpForArity(symbol string, arity int) (Op, bool) {
	if op, ok := LookupOp(symbol, ops.Special); ok {
		return op, true
	}
	if arity == 1 {
		if op, ok := LookupOp(symbol, ops.Prefix); ok {
			return op, true
		}
		return LookupOp(symbol, ops.Postfix)
	}
	return LookupOp(symbol, ops.Infix)
}
