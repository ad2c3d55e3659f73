package rustbe

import "github.com/lhaig/unparse/internal/token"

// IndentUnit is one level of block indentation in generated Rust.
const IndentUnit = "    "

// Spacer applies Rust lexical conventions on top of token.Baseline.
type Spacer struct {
	token.Baseline
}

// SpaceBetween implements token.Spacer.
func (s Spacer) SpaceBetween(prev, next token.Token) bool {
	switch {
	case isQuote(prev) && next.Kind == token.Literal:
		return false
	case prev.Kind == token.Literal && isQuote(next):
		return false
	case prev.Is(".") || next.Is("."):
		return false
	case prev.Is("::") || next.Is("::"):
		return false
	}
	return s.Baseline.SpaceBetween(prev, next)
}

func isQuote(t token.Token) bool {
	return t.Is(`"`) || t.Is("'")
}
