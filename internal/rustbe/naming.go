package rustbe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// StdLibrary is the library name of the source language's standard library.
const StdLibrary = "std"

// stdCrate replaces StdLibrary, which would shadow Rust's own std crate.
const stdCrate = "stdlib"

// PackageConfig carries the naming inputs for a generated crate.
type PackageConfig struct {
	Package string // explicit crate name, wins when set
	Library string // owning library of the compiled sources
}

// PackageName is a crate name in display form (Cargo.toml) and identifier
// form (paths in Rust source).
type PackageName struct {
	Display string
	Ident   string
}

// ResolvePackageName derives the crate names for cfg.
func ResolvePackageName(cfg PackageConfig) PackageName {
	display := cfg.Package
	if display == "" {
		display = cfg.Library
		if display == StdLibrary {
			display = stdCrate
		}
	}
	return PackageName{Display: display, Ident: crateIdent(display)}
}

// crateIdent maps display separators to '_', lowercases, and normalizes to
// NFC the way rustc compares identifiers.
func crateIdent(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', ' ':
			return '_'
		}
		return r
	}, name)
	// Casers keep state; one per call keeps this safe for concurrent use.
	name = cases.Lower(language.Und).String(name)
	return norm.NFC.String(name)
}
