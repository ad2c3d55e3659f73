package parser

import (
	"github.com/lhaig/unparse/internal/diagnostic"
	"github.com/lhaig/unparse/internal/lexer"
)

// Parser holds the parser state
type Parser struct {
	tokens     []lexer.Token
	pos        int
	diags      *diagnostic.Diagnostics
	incomplete bool // input ended inside an open application
}

// current returns the current token
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token and returns the consumed token
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// check returns true if the current token is of the given type
func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// skipList skips to just past the ')' closing an application whose '(' has
// already been consumed.
func (p *Parser) skipList() {
	depth := 1
	for !p.check(lexer.EOF) {
		switch p.advance().Type {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return
			}
		}
	}
	p.incomplete = true
}
