// Package parser reads expression trees written in s-expression notation,
// e.g. (- (- a b) c) or (method (field self items) len), into ir nodes.
package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lhaig/unparse/internal/diagnostic"
	"github.com/lhaig/unparse/internal/ir"
	"github.com/lhaig/unparse/internal/lexer"
)

// New creates a new parser
func New(source string) *Parser {
	l := lexer.New(source)
	return &Parser{
		tokens: l.Tokenize(),
		diags:  diagnostic.New(),
	}
}

// Diagnostics returns the parser's diagnostics
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return p.diags
}

// Incomplete reports whether the input ended inside an unclosed
// application, so more input could still make it valid.
func (p *Parser) Incomplete() bool {
	return p.incomplete
}

// Parse parses every top-level expression in the source
func (p *Parser) Parse() []ir.Expr {
	var exprs []ir.Expr
	for !p.check(lexer.EOF) {
		if p.check(lexer.RPAREN) {
			tok := p.advance()
			p.diags.Errorf(tok.Line, tok.Column, "unexpected ')'")
			continue
		}
		if e := p.parseExpr(); e != nil {
			exprs = append(exprs, e)
		}
	}
	return exprs
}

func (p *Parser) parseExpr() ir.Expr {
	tok := p.current()
	switch tok.Type {
	case lexer.LPAREN:
		return p.parseApply()
	case lexer.SYMBOL:
		p.advance()
		return p.parseSymbol(tok)
	case lexer.INT_LIT:
		p.advance()
		v, err := strconv.ParseInt(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
		if err != nil {
			p.diags.Errorf(tok.Line, tok.Column, "integer literal %s does not fit in 64 bits", tok.Literal)
			return nil
		}
		return &ir.IntLit{Value: v}
	case lexer.FLOAT_LIT:
		p.advance()
		if _, err := strconv.ParseFloat(strings.ReplaceAll(tok.Literal, "_", ""), 64); err != nil {
			p.diags.Errorf(tok.Line, tok.Column, "invalid float literal %s", tok.Literal)
			return nil
		}
		return &ir.FloatLit{Value: tok.Literal}
	case lexer.STRING_LIT:
		p.advance()
		s, err := decodeQuoted(tok.Literal, '"')
		if err != nil {
			p.diags.Errorf(tok.Line, tok.Column, "invalid string literal %s", tok.Literal)
			return nil
		}
		return &ir.StringLit{Value: s}
	case lexer.CHAR_LIT:
		p.advance()
		s, err := decodeQuoted(tok.Literal, '\'')
		if err != nil || utf8.RuneCountInString(s) != 1 {
			p.diags.Errorf(tok.Line, tok.Column, "invalid char literal %s", tok.Literal)
			return nil
		}
		r, _ := utf8.DecodeRuneInString(s)
		return &ir.CharLit{Value: r}
	case lexer.ILLEGAL:
		p.advance()
		if strings.HasPrefix(tok.Literal, `"`) || strings.HasPrefix(tok.Literal, "'") {
			p.diags.Errorf(tok.Line, tok.Column, "unterminated literal %s", tok.Literal)
		} else {
			p.diags.Errorf(tok.Line, tok.Column, "invalid token %q", tok.Literal)
		}
		return nil
	case lexer.RPAREN:
		p.advance()
		p.diags.Errorf(tok.Line, tok.Column, "unexpected ')'")
		return nil
	default:
		p.incomplete = true
		p.diags.Errorf(tok.Line, tok.Column, "unexpected end of input")
		return nil
	}
}

func (p *Parser) parseApply() ir.Expr {
	open := p.advance()

	head := p.current()
	switch head.Type {
	case lexer.SYMBOL:
		p.advance()
	case lexer.EOF:
		p.unclosed(open)
		return nil
	default:
		p.diags.Errorf(head.Line, head.Column, "expected operator after '(', got %s", head.Type)
		p.skipList()
		return nil
	}

	var args []ir.Expr
	for !p.check(lexer.RPAREN) {
		if p.check(lexer.EOF) {
			p.unclosed(open)
			return nil
		}
		if arg := p.parseExpr(); arg != nil {
			args = append(args, arg)
		}
	}
	p.advance()

	if len(args) == 0 {
		p.diags.Errorf(head.Line, head.Column, "operator %q has no operands", head.Literal)
		return nil
	}
	return &ir.Apply{Op: head.Literal, Args: args, Line: head.Line, Column: head.Column}
}

func (p *Parser) unclosed(open lexer.Token) {
	p.incomplete = true
	p.diags.ErrorWithHint(open.Line, open.Column, "unclosed '('", "add ')' to close the application")
}

func (p *Parser) parseSymbol(tok lexer.Token) ir.Expr {
	switch tok.Literal {
	case "true":
		return &ir.BoolLit{Value: true}
	case "false":
		return &ir.BoolLit{Value: false}
	}
	if !isIdent(tok.Literal) {
		p.diags.ErrorWithHint(tok.Line, tok.Column,
			"operator "+strconv.Quote(tok.Literal)+" used as an operand",
			"write ("+tok.Literal+" ...) to apply it")
		return nil
	}
	return &ir.Ident{Name: tok.Literal, Line: tok.Line, Column: tok.Column}
}

// decodeQuoted decodes a quoted literal including its quotes. A \xNN escape
// names the code point U+00NN, not a raw byte.
func decodeQuoted(lit string, quote byte) (string, error) {
	body := lit[1 : len(lit)-1]
	var sb strings.Builder
	for body != "" {
		r, _, tail, err := strconv.UnquoteChar(body, quote)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
		body = tail
	}
	return sb.String(), nil
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
