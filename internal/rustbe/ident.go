package rustbe

// keywords are reserved in Rust 2021 and later and can only be used as
// identifiers in raw form.
var keywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "else": true,
	"enum": true, "extern": true, "false": true, "fn": true, "for": true,
	"if": true, "impl": true, "in": true, "let": true, "loop": true,
	"match": true, "mod": true, "move": true, "mut": true, "pub": true,
	"ref": true, "return": true, "static": true, "struct": true, "trait": true,
	"true": true, "type": true, "unsafe": true, "use": true, "where": true,
	"while": true, "async": true, "await": true, "dyn": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "typeof": true,
	"unsized": true, "virtual": true, "yield": true, "try": true, "gen": true,
}

// pathKeywords name path roots and cannot be written as raw identifiers.
var pathKeywords = map[string]bool{
	"crate": true, "self": true, "Self": true, "super": true,
}

// EscapeIdent returns name in a form Rust accepts as an identifier.
func EscapeIdent(name string) string {
	if keywords[name] && !pathKeywords[name] {
		return "r#" + name
	}
	return name
}
