package ops

// NeedsParens reports whether the operand at position child (of arity
// operands) of an outer operator must be parenthesized when it is itself an
// application of an inner operator. Both definitions have the same concrete
// type, so mixing target languages does not compile.
func NeedsParens[D Definition](outer, inner D, child, arity int) bool {
	return resolve(outer, inner, child, arity)
}

// NeedsParensAny is NeedsParens for callers that only hold the interface.
// Definitions from different targets cannot be compared and always get
// parentheses.
func NeedsParensAny(outer, inner Definition, child, arity int) bool {
	if outer == nil || inner == nil || outer.Target() != inner.Target() {
		return true
	}
	return resolve(outer, inner, child, arity)
}

func resolve(outer, inner Definition, child, arity int) bool {
	switch {
	case outer.Rank() < inner.Rank():
		return false
	case outer.Rank() > inner.Rank():
		return true
	}

	switch outer.Assoc() {
	case Left:
		return child != 0
	case Right:
		return child != arity-1
	default:
		return true
	}
}
