package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lhaig/unparse/internal/compiler"
	"github.com/lhaig/unparse/internal/formatter"
	"github.com/lhaig/unparse/internal/linter"
	"github.com/lhaig/unparse/internal/parser"
	"github.com/lhaig/unparse/internal/rustbe"
)

const usage = `unparse - render expression trees as Rust source

Usage:
  unparse render [options] <file.sx>       Render each expression on its own line
  unparse emit [options] <file.sx>         Write <file>.rs next to the input, one function per expression
  unparse check <file.sx>                  Parse only and report problems
  unparse lint <file.sx>                   Warn about trees that render unexpectedly
  unparse fmt [-w] <file.sx>               Print canonical notation (-w rewrites the file)
  unparse names [--package NAME] <library> Show the crate display and identifier names
  unparse check-rustc [--min X.Y.Z] [output]
                                           Check captured 'rustc --version' output (stdin if omitted)
  unparse run <file.rs>                    Build and run one source file (not implemented)
  unparse repl                             Interactive rendering

Options:
  --target NAME      Output target (default: rust)
  --package NAME     Explicit crate name
  --library NAME     Owning library, used when --package is not given

Expression notation:
  (- (- a b) c)                 a - b - c
  (- a (- b c))                 a - (b - c)
  (method (field self v) len)   self.v.len()
  (call f "hi\n" 'x' 1.5)       f("hi\x0a", 'x', 1.5)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var code int
	switch command {
	case "render":
		code = handleRender(args)
	case "emit":
		code = handleEmit(args)
	case "check":
		code = handleCheck(args)
	case "lint":
		code = handleLint(args)
	case "fmt":
		code = handleFmt(args)
	case "names":
		code = handleNames(args)
	case "check-rustc":
		code = handleCheckRustc(args)
	case "run":
		code = handleRun(args)
	case "repl":
		code = handleRepl(args)
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		code = 1
	}
	os.Exit(code)
}

// parseOptions splits args into compiler options and positional arguments.
func parseOptions(args []string) (compiler.Options, []string, error) {
	var opts compiler.Options
	var rest []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var target *string
		switch arg {
		case "--target":
			target = &opts.Target
		case "--package":
			target = &opts.Package
		case "--library":
			target = &opts.Library
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, nil, fmt.Errorf("unknown option: %s", arg)
			}
			rest = append(rest, arg)
			continue
		}
		if i+1 >= len(args) {
			return opts, nil, fmt.Errorf("option %s needs a value", arg)
		}
		i++
		*target = args[i]
	}
	return opts, rest, nil
}

func readInput(rest []string) (string, string, error) {
	if len(rest) == 0 {
		return "", "", errors.New("no input file specified")
	}
	source, err := os.ReadFile(rest[0])
	if err != nil {
		return "", "", fmt.Errorf("reading file: %w", err)
	}
	return rest[0], string(source), nil
}

func handleRender(args []string) int {
	opts, rest, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	filePath, source, err := readInput(rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	res, err := compiler.Compile(source, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if res.Diagnostics.HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", res.Diagnostics.Format(filePath))
		return 1
	}
	for _, line := range res.Rendered {
		fmt.Println(line)
	}
	return 0
}

func handleEmit(args []string) int {
	opts, rest, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	filePath, source, err := readInput(rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	outPath, err := compiler.Emit(source, opts, emitBase(filePath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	fmt.Printf("Wrote %s\n", outPath)
	return 0
}

// emitBase strips the input extension, keeping the directory so the output
// lands next to the input.
func emitBase(filePath string) string {
	return strings.TrimSuffix(filePath, filepath.Ext(filePath))
}

func handleCheck(args []string) int {
	filePath, source, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	diag := compiler.Check(source)
	if diag.HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", diag.Format(filePath))
		return 1
	}
	fmt.Println("No errors found.")
	return 0
}

func handleLint(args []string) int {
	filePath, source, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	p := parser.New(source)
	exprs := p.Parse()
	if p.Diagnostics().HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", p.Diagnostics().Format(filePath))
		return 1
	}

	diag := linter.Lint(exprs)
	if diag.Count() == 0 {
		fmt.Println("No lint warnings.")
		return 0
	}

	fmt.Println(diag.Format(filePath))
	fmt.Printf("%d warning(s) found.\n", diag.Count())
	return 0
}

func handleFmt(args []string) int {
	write := false
	if len(args) > 0 && args[0] == "-w" {
		write = true
		args = args[1:]
	}
	filePath, source, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	p := parser.New(source)
	exprs := p.Parse()
	if p.Diagnostics().HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", p.Diagnostics().Format(filePath))
		return 1
	}

	out := formatter.Format(exprs)
	if !write {
		fmt.Print(out)
		return 0
	}
	if err := os.WriteFile(filePath, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %s\n", filePath, err)
		return 1
	}
	return 0
}

func handleNames(args []string) int {
	opts, rest, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if len(rest) > 0 {
		opts.Library = rest[0]
	}

	name := rustbe.ResolvePackageName(rustbe.PackageConfig{
		Package: opts.Package,
		Library: opts.Library,
	})
	fmt.Printf("display: %s\nident:   %s\n", name.Display, name.Ident)
	return 0
}

func handleCheckRustc(args []string) int {
	minimum := compiler.MinRustc
	var probe []string

	for i := 0; i < len(args); i++ {
		if args[i] == "--min" {
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --min needs a version")
				return 1
			}
			i++
			v, err := compiler.ParseVersion(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return 1
			}
			minimum = v
			continue
		}
		probe = append(probe, args[i])
	}

	output := strings.Join(probe, " ")
	if len(probe) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %s\n", err)
			return 1
		}
		output = string(data)
	}

	detected, err := compiler.CheckVersion(output, minimum)
	var verr *compiler.VersionError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(os.Stderr, "Error: %s\n", verr)
		return 2
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	fmt.Printf("%s %s OK (minimum %s)\n", detected.Tool, detected.Version, minimum)
	return 0
}

func handleRun(args []string) int {
	_, source, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if err := compiler.RunSingle(context.Background(), source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
