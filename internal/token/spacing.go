package token

import "strings"

// Spacer decides whether a space separates two adjacent tokens.
type Spacer interface {
	SpaceBetween(prev, next Token) bool
}

// SpacerFunc adapts a plain function to the Spacer interface.
type SpacerFunc func(prev, next Token) bool

// SpaceBetween calls f(prev, next).
func (f SpacerFunc) SpaceBetween(prev, next Token) bool { return f(prev, next) }

// Baseline is the target-independent spacing policy: one space between most
// pairs, none inside brackets, before separators, or between an operand and
// the bracket that calls or indexes it.
type Baseline struct{}

var (
	closers = map[string]bool{")": true, "]": true, ",": true, ";": true, ":": true, "?": true}
	openers = map[string]bool{"(": true, "[": true}
)

// SpaceBetween implements Spacer.
func (Baseline) SpaceBetween(prev, next Token) bool {
	if prev.Attach == Next || next.Attach == Prev {
		return false
	}
	if next.Kind == Punctuation && closers[next.Text] {
		return false
	}
	if prev.Kind == Punctuation && openers[prev.Text] {
		return false
	}
	if next.Kind == Punctuation && openers[next.Text] {
		// f(x), a[i], (a)(b); keywords keep their space: if (x)
		switch prev.Kind {
		case Name, Literal:
			return false
		case Punctuation:
			return !(prev.Text == ")" || prev.Text == "]")
		}
	}
	return true
}

// Print linearizes a token stream on a single line.
func Print(tokens []Token, sp Spacer) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && sp.SpaceBetween(tokens[i-1], tok) {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
