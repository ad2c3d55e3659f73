// Package lexer scans the s-expression notation used to write expression
// trees by hand: (op arg...) applications, names, numbers, "strings" and
// 'c'haracters, with ; line comments.
package lexer

// Lexer scans expression source and produces tokens
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// skipWhitespace skips whitespace and ; comments
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '\n':
			l.readChar()
			l.line++
			l.column = 1
		case ';':
			for !l.atEnd() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readQuoted reads a quoted literal including both quotes. Escapes are kept
// as written; the parser decodes them.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	position := l.position
	for {
		l.readChar()
		if l.atEnd() || l.ch == '\n' {
			return l.input[position:l.position], false
		}
		if l.ch == '\\' {
			l.readChar()
			if l.atEnd() {
				return l.input[position:l.position], false
			}
			continue
		}
		if l.ch == quote {
			l.readChar()
			return l.input[position:l.position], true
		}
	}
}

// readAtom reads a symbol or number: everything up to whitespace, a paren,
// a quote or a comment.
func (l *Lexer) readAtom() string {
	position := l.position
	for !l.atEnd() && !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}
	if l.atEnd() {
		tok.Type = EOF
		return tok
	}

	switch l.ch {
	case '(':
		tok.Type, tok.Literal = LPAREN, "("
		l.readChar()
	case ')':
		tok.Type, tok.Literal = RPAREN, ")"
		l.readChar()
	case '"':
		lit, ok := l.readQuoted('"')
		tok.Literal = lit
		tok.Type = STRING_LIT
		if !ok {
			tok.Type = ILLEGAL
		}
	case '\'':
		lit, ok := l.readQuoted('\'')
		tok.Literal = lit
		tok.Type = CHAR_LIT
		if !ok {
			tok.Type = ILLEGAL
		}
	default:
		atom := l.readAtom()
		tok.Literal = atom
		tok.Type = classifyAtom(atom)
	}
	return tok
}

// Tokenize returns all tokens from the input
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

// classifyAtom decides whether an atom is a number or a symbol. A leading
// '-' counts as a sign only when a digit follows.
func classifyAtom(atom string) TokenType {
	s := atom
	if len(s) > 1 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" || !isDigit(s[0]) {
		return SYMBOL
	}
	typ := INT_LIT
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]) || s[i] == '_':
		case s[i] == '.' || s[i] == 'e' || s[i] == 'E':
			typ = FLOAT_LIT
		case (s[i] == '-' || s[i] == '+') && i > 0 && (s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return ILLEGAL
		}
	}
	return typ
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '(', ')', '"', '\'', ';':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
