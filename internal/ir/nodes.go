// Package ir defines the expression tree a front end hands to a backend for
// unparsing. Nodes carry no target-specific information; backends map the
// operator names onto their own operator tables.
package ir

import "github.com/lhaig/unparse/internal/token"

// Expr is any expression node.
type Expr interface {
	exprNode()
}

// Operator names for applications that are not plain symbols.
const (
	OpCall   = "call"   // Args: callee, arguments...
	OpIndex  = "index"  // Args: object, index
	OpField  = "field"  // Args: object, *Ident field name
	OpMethod = "method" // Args: receiver, *Ident method name, arguments...
	OpCast   = "as"     // Args: value, *Ident type name
	OpPath   = "path"   // Args: *Ident segments...
	OpTry    = "?"      // Args: operand
)

// Apply is an operator application. Children are ordered; their position in
// Args is the child index used for grouping decisions.
type Apply struct {
	Op     string
	Args   []Expr
	Line   int // source position of the operator, 0 when built in code
	Column int
}

func (*Apply) exprNode() {}

// Ident is a variable, function, field or type name.
type Ident struct {
	Name   string
	Line   int
	Column int
}

func (*Ident) exprNode() {}

// StringLit holds the decoded string value, not its source spelling.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

// CharLit is a single Unicode scalar value.
type CharLit struct {
	Value rune
}

func (*CharLit) exprNode() {}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode() {}

// FloatLit keeps the literal text as written (e.g. "3.14", "-0.5").
type FloatLit struct {
	Value string
}

func (*FloatLit) exprNode() {}

// BoolLit is true or false.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode() {}

// Raw passes an already built token stream through unchanged. It is always
// treated as an atom when nesting.
type Raw struct {
	Tokens []token.Token
}

func (*Raw) exprNode() {}

// Binary is shorthand for a two-operand application.
func Binary(op string, left, right Expr) *Apply {
	return &Apply{Op: op, Args: []Expr{left, right}}
}

// Unary is shorthand for a one-operand application.
func Unary(op string, operand Expr) *Apply {
	return &Apply{Op: op, Args: []Expr{operand}}
}

// Name is shorthand for an identifier node.
func Name(name string) *Ident {
	return &Ident{Name: name}
}
