// Package rustbe unparses expression trees into Rust source: the Rust
// operator table, spacing rules, literal and identifier encoding, crate
// naming, and a file writer that wraps rendered expressions in functions.
package rustbe

import (
	"fmt"
	"strings"

	"github.com/lhaig/unparse/internal/ir"
)

// Generate produces a Rust source file with one function per expression.
func Generate(exprs []ir.Expr, cfg PackageConfig) string {
	g := &generator{}
	name := ResolvePackageName(cfg)

	g.emitLine("// Generated Rust code from unparse")
	if name.Display != "" {
		g.emitLinef("// crate: %s (%s)", name.Display, name.Ident)
	}
	g.emitLine("#![allow(dead_code, unused_variables)]")
	g.emitLine("")

	for i, e := range exprs {
		g.generateExprFn(i, e)
		if i < len(exprs)-1 {
			g.emitLine("")
		}
	}

	return g.sb.String()
}

type generator struct {
	sb     strings.Builder
	indent int
}

func (g *generator) emitLinef(format string, args ...any) {
	g.emitLine(fmt.Sprintf(format, args...))
}

func (g *generator) emitLine(s string) {
	if s == "" {
		g.sb.WriteString("\n")
	} else {
		g.sb.WriteString(g.indentStr())
		g.sb.WriteString(s)
		g.sb.WriteString("\n")
	}
}

func (g *generator) incIndent() { g.indent++ }
func (g *generator) decIndent() { g.indent-- }

func (g *generator) indentStr() string {
	return strings.Repeat(IndentUnit, g.indent)
}

func (g *generator) generateExprFn(i int, e ir.Expr) {
	g.emitLinef("pub fn expr_%d() {", i)
	g.incIndent()
	g.emitLinef("let _ = %s;", Render(e))
	g.decIndent()
	g.emitLine("}")
}
