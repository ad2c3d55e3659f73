// Package token defines the output token stream produced while unparsing an
// expression, and the generic spacing policy used to linearize it.
package token

import "fmt"

// Kind classifies an output token
type Kind int

const (
	Name Kind = iota
	Punctuation
	Operator
	Literal
	Keyword
)

// String returns the string representation of the token kind
func (k Kind) String() string {
	switch k {
	case Name:
		return "name"
	case Punctuation:
		return "punct"
	case Operator:
		return "operator"
	case Literal:
		return "literal"
	case Keyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Attach marks operators that glue to a neighbouring operand.
type Attach int

const (
	Free Attach = iota
	Next        // prefix operators: -x, !x
	Prev        // postfix operators: x?
)

// Token is a single lexical unit of generated output.
type Token struct {
	Text   string
	Kind   Kind
	Attach Attach
}

// String returns a debug representation like name("foo")
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Is reports whether t is punctuation with the given text.
func (t Token) Is(text string) bool {
	return t.Kind == Punctuation && t.Text == text
}

// NewName creates a Name token
func NewName(text string) Token { return Token{Text: text, Kind: Name} }

// NewPunct creates a Punctuation token
func NewPunct(text string) Token { return Token{Text: text, Kind: Punctuation} }

// NewOp creates a free-standing Operator token
func NewOp(text string) Token { return Token{Text: text, Kind: Operator} }

// NewLit creates a Literal token
func NewLit(text string) Token { return Token{Text: text, Kind: Literal} }

// NewKeyword creates a Keyword token
func NewKeyword(text string) Token { return Token{Text: text, Kind: Keyword} }
