// Package formatter prints expression trees back in canonical s-expression
// notation: comments dropped, single spaces, and applications that do not
// fit on one line broken with one operand per line.
package formatter

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lhaig/unparse/internal/ir"
)

// Width is the column limit a flat application must fit within.
const Width = 80

// Format returns canonical source for the given expressions, one top-level
// expression per line.
func Format(exprs []ir.Expr) string {
	f := &formatter{}
	for _, e := range exprs {
		f.formatExpr(e)
		f.emit("\n")
	}
	return f.sb.String()
}

type formatter struct {
	sb     strings.Builder
	indent int
}

// --- helpers ---

func (f *formatter) emit(s string) {
	f.sb.WriteString(s)
}

func (f *formatter) incIndent() { f.indent++ }
func (f *formatter) decIndent() { f.indent-- }

func (f *formatter) indentStr() string {
	return strings.Repeat("  ", f.indent)
}

// --- expressions ---

func (f *formatter) formatExpr(e ir.Expr) {
	flat := flatten(e)
	a, ok := e.(*ir.Apply)
	if !ok || 2*f.indent+utf8.RuneCountInString(flat) <= Width {
		f.emit(flat)
		return
	}

	f.emit("(" + a.Op)
	f.incIndent()
	for _, arg := range a.Args {
		f.emit("\n" + f.indentStr())
		f.formatExpr(arg)
	}
	f.decIndent()
	f.emit(")")
}

func flatten(e ir.Expr) string {
	var sb strings.Builder
	writeFlat(&sb, e)
	return sb.String()
}

func writeFlat(sb *strings.Builder, e ir.Expr) {
	switch expr := e.(type) {
	case *ir.Apply:
		sb.WriteString("(" + expr.Op)
		for _, arg := range expr.Args {
			sb.WriteByte(' ')
			writeFlat(sb, arg)
		}
		sb.WriteByte(')')
	case *ir.Ident:
		sb.WriteString(expr.Name)
	case *ir.StringLit:
		sb.WriteString(strconv.Quote(expr.Value))
	case *ir.CharLit:
		sb.WriteString(strconv.QuoteRune(expr.Value))
	case *ir.IntLit:
		sb.WriteString(strconv.FormatInt(expr.Value, 10))
	case *ir.FloatLit:
		sb.WriteString(expr.Value)
	case *ir.BoolLit:
		sb.WriteString(strconv.FormatBool(expr.Value))
	case *ir.Raw:
		// token streams have no s-expression spelling; keep their text
		sb.WriteString("(raw")
		for _, tok := range expr.Tokens {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Quote(tok.Text))
		}
		sb.WriteByte(')')
	}
}
