package rustbe

import (
	"github.com/lhaig/unparse/internal/ir"
	"github.com/lhaig/unparse/internal/ops"
	"github.com/lhaig/unparse/internal/token"
)

// Render produces minimally parenthesized Rust source for a single
// expression.
func Render(e ir.Expr) string {
	return token.Print(Tokens(e), Spacer{})
}

// Tokens linearizes an expression into Rust tokens, inserting grouping
// parentheses where the tree's evaluation order would otherwise change.
func Tokens(e ir.Expr) []token.Token {
	r := &renderer{}
	r.expr(e)
	return r.out
}

type renderer struct {
	out []token.Token
}

func (r *renderer) emit(toks ...token.Token) {
	r.out = append(r.out, toks...)
}

func (r *renderer) expr(e ir.Expr) {
	switch expr := e.(type) {
	case *ir.Apply:
		r.apply(expr)

	case *ir.Ident:
		r.emit(token.NewName(EscapeIdent(expr.Name)))

	case *ir.StringLit:
		r.emit(token.NewLit(EncodeString(expr.Value)))

	case *ir.CharLit:
		r.emit(token.NewLit(EncodeChar(expr.Value)))

	case *ir.IntLit:
		neg, digits := encodeInt(expr.Value)
		r.signed(neg, digits)

	case *ir.FloatLit:
		neg, digits := encodeFloat(expr.Value)
		r.signed(neg, digits)

	case *ir.BoolLit:
		if expr.Value {
			r.emit(token.NewKeyword("true"))
		} else {
			r.emit(token.NewKeyword("false"))
		}

	case *ir.Raw:
		r.emit(expr.Tokens...)

	case nil:
		r.emit(token.NewPunct("("), token.NewPunct(")"))
	}
}

func (r *renderer) signed(neg bool, digits string) {
	if neg {
		r.emit(prefixToken("-"))
	}
	r.emit(token.NewLit(digits))
}

func prefixToken(symbol string) token.Token {
	return token.Token{Text: symbol, Kind: token.Operator, Attach: token.Next}
}

func (r *renderer) apply(a *ir.Apply) {
	op, ok := OpForArity(a.Op, len(a.Args))
	if !ok {
		r.unknown(a)
		return
	}

	n := len(a.Args)
	switch op {
	case Call:
		r.operand(op, a, 0)
		r.list("(", a.Args[1:], ")")

	case Index:
		r.operand(op, a, 0)
		r.list("[", a.Args[1:], "]")

	case Field:
		r.operand(op, a, 0)
		r.emit(token.NewPunct("."))
		r.rest(a.Args[1:])

	case Method:
		r.operand(op, a, 0)
		r.emit(token.NewPunct("."))
		if n > 1 {
			r.expr(a.Args[1])
		}
		if n > 2 {
			r.list("(", a.Args[2:], ")")
		} else {
			r.emit(token.NewPunct("("), token.NewPunct(")"))
		}

	case Path:
		for i := range a.Args {
			if i > 0 {
				r.emit(token.NewPunct("::"))
			}
			r.operand(op, a, i)
		}

	case Cast:
		r.operand(op, a, 0)
		r.emit(token.NewKeyword("as"))
		r.rest(a.Args[1:])

	case RefMut:
		r.emit(prefixToken("&"), token.NewKeyword("mut"))
		r.operand(op, a, 0)

	default:
		switch op.Role() {
		case ops.Prefix:
			r.emit(prefixToken(op.Symbol()))
			r.operand(op, a, 0)
		case ops.Postfix:
			r.operand(op, a, 0)
			r.emit(token.Token{Text: op.Symbol(), Kind: token.Operator, Attach: token.Prev})
		default:
			for i := range a.Args {
				if i > 0 {
					r.emit(token.NewOp(op.Symbol()))
				}
				r.operand(op, a, i)
			}
		}
	}
}

// unknown renders an operator missing from the table: the symbol is emitted
// as written and every compound operand is grouped.
func (r *renderer) unknown(a *ir.Apply) {
	if len(a.Args) == 1 {
		r.emit(prefixToken(a.Op))
		r.grouped(a.Args[0], !isAtom(a.Args[0]))
		return
	}
	for i, arg := range a.Args {
		if i > 0 {
			r.emit(token.NewOp(a.Op))
		}
		r.grouped(arg, !isAtom(arg))
	}
}

// operand renders child i of a, parenthesized if the nesting requires it.
func (r *renderer) operand(outer Op, a *ir.Apply, i int) {
	child := a.Args[i]
	r.grouped(child, needsGroup(outer, child, i, len(a.Args)))
}

func (r *renderer) grouped(e ir.Expr, group bool) {
	if group {
		r.emit(token.NewPunct("("))
	}
	r.expr(e)
	if group {
		r.emit(token.NewPunct(")"))
	}
}

// list renders comma separated expressions between brackets. Bracketed
// operands never need their own grouping.
func (r *renderer) list(open string, args []ir.Expr, close string) {
	r.emit(token.NewPunct(open))
	for i, arg := range args {
		if i > 0 {
			r.emit(token.NewPunct(","))
		}
		r.expr(arg)
	}
	r.emit(token.NewPunct(close))
}

// rest renders trailing names of special forms (field names, cast types).
func (r *renderer) rest(args []ir.Expr) {
	for _, arg := range args {
		r.expr(arg)
	}
}

func needsGroup(outer Op, child ir.Expr, i, arity int) bool {
	if isAtom(child) {
		return false
	}
	inner, ok := precOf(child)
	if !ok {
		return ops.NeedsParensAny(PrecedenceOf(outer), nil, i, arity)
	}

	// a.f(x) would call method f; calling a field needs (a.f)(x).
	if outer == Call && i == 0 && isOp(child, Field) {
		return true
	}
	// x as T < y parses T< as the start of generic arguments, also when the
	// cast is buried at the right edge: a + x as T < y.
	if (outer == Lt || outer == Le || outer == Shl) && i == 0 && endsInCast(child) {
		return true
	}
	return ops.NeedsParens(PrecedenceOf(outer), inner, i, arity)
}

// endsInCast reports whether the rendering of e ends with the type of a cast
// that no bracket closes.
func endsInCast(e ir.Expr) bool {
	a, ok := e.(*ir.Apply)
	if !ok {
		return false
	}
	op, ok := OpForArity(a.Op, len(a.Args))
	if !ok {
		return false
	}
	if op == Cast {
		return true
	}
	if role := op.Role(); role != ops.Infix && role != ops.Prefix {
		return false
	}
	last := len(a.Args) - 1
	if needsGroup(op, a.Args[last], last, len(a.Args)) {
		return false
	}
	return endsInCast(a.Args[last])
}

// precOf reports the precedence tier of a compound expression.
func precOf(e ir.Expr) (Prec, bool) {
	switch expr := e.(type) {
	case *ir.Apply:
		op, ok := OpForArity(expr.Op, len(expr.Args))
		if !ok {
			return 0, false
		}
		return PrecedenceOf(op), true
	case *ir.IntLit, *ir.FloatLit:
		// only reached for negative literals, which act as prefix negation
		return PrecPrefix, true
	}
	return 0, false
}

// isAtom reports whether e renders as a single indivisible unit.
func isAtom(e ir.Expr) bool {
	switch expr := e.(type) {
	case *ir.Apply:
		return false
	case *ir.IntLit:
		return expr.Value >= 0
	case *ir.FloatLit:
		neg, _ := encodeFloat(expr.Value)
		return !neg
	}
	return true
}

func isOp(e ir.Expr, want Op) bool {
	a, ok := e.(*ir.Apply)
	if !ok {
		return false
	}
	op, ok := OpForArity(a.Op, len(a.Args))
	return ok && op == want
}
