package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	LPAREN // (
	RPAREN // )

	SYMBOL    // a, +, field, &mut
	INT_LIT   // 123, -4
	FLOAT_LIT // 1.5, -0.25
	STRING_LIT
	CHAR_LIT
)

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	LPAREN:     "(",
	RPAREN:     ")",
	SYMBOL:     "SYMBOL",
	INT_LIT:    "INT_LIT",
	FLOAT_LIT:  "FLOAT_LIT",
	STRING_LIT: "STRING_LIT",
	CHAR_LIT:   "CHAR_LIT",
}

// String returns the string representation of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token is a lexical token of the expression notation. Literal holds the
// raw source text; quoted literals keep their quotes.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}
