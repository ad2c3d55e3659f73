package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/lhaig/unparse/internal/compiler"
	"github.com/lhaig/unparse/internal/linter"
	"github.com/lhaig/unparse/internal/parser"
)

const (
	historyFile = ".unparse_history"
	promptMain  = "unparse> "
	promptCont  = "...      "
)

func handleRepl(args []string) int {
	opts, _, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	fmt.Println("unparse REPL. Enter s-expressions; :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readExpression(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit" || trimmed == ":q":
			return 0
		case strings.HasPrefix(trimmed, ":"):
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		res, err := compiler.Compile(src, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
		if res.Diagnostics.HasErrors() {
			fmt.Fprintln(os.Stderr, res.Diagnostics.Format("repl"))
			continue
		}
		if warnings := linter.Lint(res.Exprs); warnings.Count() > 0 {
			fmt.Fprintln(os.Stderr, warnings.Format("repl"))
		}
		for _, line := range res.Rendered {
			fmt.Println(line)
		}
	}
}

// prompter is the part of *liner.State the input loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readExpression keeps prompting while the input is an unclosed application.
// It reports false once no more input can be read.
func readExpression(ln prompter) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		p := parser.New(src)
		p.Parse()
		if !p.Incomplete() {
			return src, true
		}
	}
}
