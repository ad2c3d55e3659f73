package token

import "testing"

func TestBaseline_SpaceBetween(t *testing.T) {
	tests := []struct {
		name     string
		prev     Token
		next     Token
		expected bool
	}{
		{"name then operator", NewName("a"), NewOp("+"), true},
		{"operator then name", NewOp("+"), NewName("b"), true},
		{"before comma", NewName("a"), NewPunct(","), false},
		{"after comma", NewPunct(","), NewName("b"), true},
		{"after open paren", NewPunct("("), NewName("a"), false},
		{"before close paren", NewName("a"), NewPunct(")"), false},
		{"call paren", NewName("f"), NewPunct("("), false},
		{"index bracket", NewName("v"), NewPunct("["), false},
		{"call on group", NewPunct(")"), NewPunct("("), false},
		{"keyword paren", NewKeyword("if"), NewPunct("("), true},
		{"operator paren", NewOp("*"), NewPunct("("), true},
		{"prefix operator", Token{Text: "-", Kind: Operator, Attach: Next}, NewName("x"), false},
		{"postfix operator", NewName("x"), Token{Text: "?", Kind: Operator, Attach: Prev}, false},
		{"keyword keyword", NewKeyword("as"), NewName("u8"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Baseline{}.SpaceBetween(tt.prev, tt.next)
			if got != tt.expected {
				t.Errorf("SpaceBetween(%s, %s) = %v, want %v", tt.prev, tt.next, got, tt.expected)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	tokens := []Token{
		NewName("f"), NewPunct("("), NewName("a"), NewPunct(","),
		NewName("b"), NewOp("+"), NewLit("1"), NewPunct(")"),
	}
	got := Print(tokens, Baseline{})
	if got != "f(a, b + 1)" {
		t.Errorf("Print = %q, want %q", got, "f(a, b + 1)")
	}
}

func TestPrint_Empty(t *testing.T) {
	if got := Print(nil, Baseline{}); got != "" {
		t.Errorf("Print(nil) = %q, want empty", got)
	}
}

func TestSpacerFunc(t *testing.T) {
	never := SpacerFunc(func(prev, next Token) bool { return false })
	got := Print([]Token{NewName("a"), NewOp("+"), NewName("b")}, never)
	if got != "a+b" {
		t.Errorf("Print = %q, want %q", got, "a+b")
	}
}

func TestKindString(t *testing.T) {
	if NewName("x").String() != `name("x")` {
		t.Errorf("unexpected debug form %s", NewName("x"))
	}
	if Keyword.String() != "keyword" {
		t.Errorf("unexpected kind string %s", Keyword)
	}
}
