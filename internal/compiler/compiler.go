package compiler

import (
	"fmt"
	"os"

	"github.com/lhaig/unparse/internal/backend"
	"github.com/lhaig/unparse/internal/diagnostic"
	"github.com/lhaig/unparse/internal/ir"
	"github.com/lhaig/unparse/internal/parser"
)

// Options selects the output target and crate naming for a compilation.
type Options struct {
	Target  string // defaults to "rust"
	Package string
	Library string
}

// Result holds the output of a compilation
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Exprs       []ir.Expr
	Rendered    []string // one line of target source per expression
	Source      string   // complete generated file
	Extension   string
}

// Compile runs the pipeline: parse -> render -> generate file.
// Source problems are reported through Result.Diagnostics; the error is only
// set for an unknown target.
func Compile(source string, opts Options) (*Result, error) {
	be, err := getBackend(opts.Target)
	if err != nil {
		return nil, err
	}

	p := parser.New(source)
	exprs := p.Parse()
	res := &Result{
		Diagnostics: p.Diagnostics(),
		Exprs:       exprs,
		Extension:   be.FileExtension(),
	}
	if res.Diagnostics.HasErrors() {
		return res, nil
	}

	for _, e := range exprs {
		res.Rendered = append(res.Rendered, be.Render(e))
	}
	res.Source = be.Generate(exprs, backend.Options{
		Package: opts.Package,
		Library: opts.Library,
	})
	return res, nil
}

// Check runs the parser only.
func Check(source string) *diagnostic.Diagnostics {
	p := parser.New(source)
	p.Parse()
	return p.Diagnostics()
}

// Emit compiles source and writes the generated file to baseName plus the
// target's extension, returning the path written.
func Emit(source string, opts Options, baseName string) (string, error) {
	res, err := Compile(source, opts)
	if err != nil {
		return "", err
	}
	if res.Diagnostics.HasErrors() {
		return "", fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format("input"))
	}

	outPath := baseName + res.Extension
	if err := os.WriteFile(outPath, []byte(res.Source), 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outPath, nil
}
