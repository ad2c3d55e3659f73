package backend

import (
	"github.com/lhaig/unparse/internal/ir"
	"github.com/lhaig/unparse/internal/rustbe"
)

// RustBackend wraps rustbe as a Backend implementation.
type RustBackend struct{}

// Name returns the backend name.
func (b *RustBackend) Name() string {
	return "rust"
}

// FileExtension returns ".rs".
func (b *RustBackend) FileExtension() string {
	return ".rs"
}

// Render produces Rust source for a single expression.
func (b *RustBackend) Render(e ir.Expr) string {
	return rustbe.Render(e)
}

// Generate produces a Rust source file from a list of expressions.
func (b *RustBackend) Generate(exprs []ir.Expr, opts Options) string {
	return rustbe.Generate(exprs, rustbe.PackageConfig{
		Package: opts.Package,
		Library: opts.Library,
	})
}
