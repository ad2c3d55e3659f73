// Package linter flags expression trees that render, but probably not the
// way their author intended.
package linter

import (
	"github.com/lhaig/unparse/internal/diagnostic"
	"github.com/lhaig/unparse/internal/ir"
	"github.com/lhaig/unparse/internal/ops"
	"github.com/lhaig/unparse/internal/rustbe"
)

// Linter walks expression trees and reports warnings (never errors) using
// the diagnostic system.
type Linter struct {
	diag *diagnostic.Diagnostics
}

// Lint runs all lint rules on the given expressions and returns diagnostics.
func Lint(exprs []ir.Expr) *diagnostic.Diagnostics {
	l := &Linter{diag: diagnostic.New()}
	for _, e := range exprs {
		l.walk(e, nil)
	}
	return l.diag
}

func (l *Linter) walk(e ir.Expr, parent *ir.Apply) {
	switch expr := e.(type) {
	case *ir.Ident:
		l.checkKeywordIdent(expr)
	case *ir.Apply:
		l.checkApply(expr, parent)
		for _, arg := range expr.Args {
			l.walk(arg, expr)
		}
	}
}

// --- Lint rules ---

func (l *Linter) checkApply(a *ir.Apply, parent *ir.Apply) {
	op, ok := rustbe.OpForArity(a.Op, len(a.Args))
	if !ok {
		l.checkUnknownOperator(a)
		return
	}

	switch op {
	case rustbe.Field, rustbe.Cast:
		l.checkNameOperands(a, 1, 2)
	case rustbe.Method:
		if len(a.Args) < 2 {
			l.diag.Warningf(a.Line, a.Column, "method call has no method name")
		} else {
			l.checkNameOperands(a, 1, 2)
		}
	case rustbe.Index:
		if len(a.Args) != 2 {
			l.diag.Warningf(a.Line, a.Column, "index expects 2 operands, got %d", len(a.Args))
		}
	case rustbe.Path:
		l.checkNameOperands(a, 0, len(a.Args))
	default:
		if op.Role() == ops.Infix && len(a.Args) > 2 {
			l.diag.Warningf(a.Line, a.Column,
				"operator '%s' applied to %d operands renders as a chain", a.Op, len(a.Args))
		}
	}

	l.checkChainedComparison(a, op, parent)
}

// checkUnknownOperator distinguishes a known symbol used with the wrong
// number of operands from a symbol Rust does not have at all.
func (l *Linter) checkUnknownOperator(a *ir.Apply) {
	if _, ok := rustbe.LookupOp(a.Op, ops.Infix); ok && len(a.Args) == 1 {
		l.diag.Warningf(a.Line, a.Column, "operator '%s' expects 2 operands, got 1", a.Op)
		return
	}
	if _, ok := rustbe.LookupOp(a.Op, ops.Prefix); ok {
		l.diag.Warningf(a.Line, a.Column, "operator '%s' expects 1 operand, got %d", a.Op, len(a.Args))
		return
	}
	l.diag.Warningf(a.Line, a.Column,
		"'%s' is not a Rust operator; its compound operands will be parenthesized", a.Op)
}

// checkNameOperands warns when operands in [from, to) are not plain names.
func (l *Linter) checkNameOperands(a *ir.Apply, from, to int) {
	if to > len(a.Args) {
		l.diag.Warningf(a.Line, a.Column, "'%s' expects a name operand", a.Op)
		to = len(a.Args)
	}
	for i := from; i < to; i++ {
		if _, ok := a.Args[i].(*ir.Ident); !ok {
			l.diag.Warningf(a.Line, a.Column, "operand %d of '%s' should be a name", i+1, a.Op)
		}
	}
}

// checkChainedComparison warns about a comparison nested directly inside
// another: Rust rejects a == b == c, so the output carries parentheses the
// author may not have expected.
func (l *Linter) checkChainedComparison(a *ir.Apply, op rustbe.Op, parent *ir.Apply) {
	if parent == nil {
		return
	}
	outer, ok := rustbe.OpForArity(parent.Op, len(parent.Args))
	if !ok {
		return
	}
	prec := rustbe.PrecedenceOf(op)
	if prec.Assoc() == ops.NonAssoc && rustbe.PrecedenceOf(outer) == prec {
		l.diag.Warningf(a.Line, a.Column,
			"'%s' nested inside '%s' is always parenthesized; Rust does not chain them", a.Op, parent.Op)
	}
}

func (l *Linter) checkKeywordIdent(id *ir.Ident) {
	if escaped := rustbe.EscapeIdent(id.Name); escaped != id.Name {
		l.diag.Warningf(id.Line, id.Column,
			"name '%s' is a Rust keyword and renders as %s", id.Name, escaped)
	}
}
