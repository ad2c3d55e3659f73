// Package ops holds the target-independent operator model: precedence
// definitions, associativity and the nesting rules that decide when a child
// expression has to be wrapped in parentheses.
package ops

// Assoc is the tie-break rule for two operators of the same precedence tier.
type Assoc int

const (
	Left Assoc = iota
	Right
	// NonAssoc operators cannot be chained without grouping (a == b == c).
	NonAssoc
)

// String returns the string representation of the associativity
func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case NonAssoc:
		return "none"
	default:
		return "unknown"
	}
}

// Role describes where an operator sits relative to its operands.
type Role int

const (
	Prefix Role = iota
	Infix
	Postfix
	Special // calls, indexing, member access, casts, paths
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Definition is the precedence class shared by one or more operators of a
// target language. Higher ranks bind tighter. Within one target, equal
// ranks always mean the same definition.
type Definition interface {
	Rank() int
	Assoc() Assoc
	// Target names the output language the definition belongs to.
	Target() string
}
