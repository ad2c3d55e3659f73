package backend

import "github.com/lhaig/unparse/internal/ir"

// Options carries the per-run naming inputs shared by every backend.
type Options struct {
	Package string // explicit output package name
	Library string // owning library of the compiled sources
}

// Backend is the interface that all unparsing backends implement.
type Backend interface {
	// Name returns the backend name (e.g., "rust")
	Name() string
	// FileExtension returns the extension of generated files, with the dot.
	FileExtension() string
	// Render produces source text for a single expression.
	Render(e ir.Expr) string
	// Generate produces a complete source file for a list of expressions.
	Generate(exprs []ir.Expr, opts Options) string
}
