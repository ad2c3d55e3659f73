package rustbe

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EncodeString returns s as a Rust string literal.
//
// ASCII is escaped conservatively (\\, \", \xNN for controls). Letters and
// decimal digits above ASCII are written verbatim so generated sources stay
// readable; everything else uses \u{...}. Passing combining sequences
// through is a known risk if a letter is followed by an escaped mark and
// an editor re-normalizes the file; decoding the literal itself is exact.
func EncodeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		writeEscaped(&sb, r, '"')
	}
	sb.WriteByte('"')
	return sb.String()
}

// EncodeChar returns r as a Rust char literal.
func EncodeChar(r rune) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	writeEscaped(&sb, r, '\'')
	sb.WriteByte('\'')
	return sb.String()
}

func writeEscaped(sb *strings.Builder, r rune, quote rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	if r < utf8.RuneSelf {
		switch {
		case r == '\\' || r == quote:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r >= 0x20 && r <= 0x7e:
			sb.WriteRune(r)
		default:
			fmt.Fprintf(sb, `\x%02x`, r)
		}
		return
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		sb.WriteRune(r)
		return
	}
	fmt.Fprintf(sb, `\u{%x}`, r)
}

// encodeInt splits an integer into an optional sign and its digits.
func encodeInt(v int64) (neg bool, digits string) {
	s := strconv.FormatInt(v, 10)
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

// encodeFloat normalizes a float literal's text: a sign is split off and a
// dot without a digit on either side gets a zero so Rust lexes it as a float.
func encodeFloat(text string) (neg bool, digits string) {
	if strings.HasPrefix(text, "-") {
		neg, text = true, text[1:]
	}
	text = strings.TrimPrefix(text, "+")
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	// 1. and 1.e5 would lex as a field access on the integer.
	if i := strings.IndexByte(text, '.'); i >= 0 && (i+1 == len(text) || !isDigit(text[i+1])) {
		text = text[:i+1] + "0" + text[i+1:]
	}
	return neg, text
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
