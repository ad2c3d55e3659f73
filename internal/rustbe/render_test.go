package rustbe

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lhaig/unparse/internal/ir"
	"github.com/lhaig/unparse/internal/token"
)

var (
	a = ir.Name("a")
	b = ir.Name("b")
	c = ir.Name("c")
)

func call(callee ir.Expr, args ...ir.Expr) *ir.Apply {
	return &ir.Apply{Op: ir.OpCall, Args: append([]ir.Expr{callee}, args...)}
}

func method(recv ir.Expr, name string, args ...ir.Expr) *ir.Apply {
	return &ir.Apply{Op: ir.OpMethod, Args: append([]ir.Expr{recv, ir.Name(name)}, args...)}
}

func field(obj ir.Expr, name string) *ir.Apply {
	return ir.Binary(ir.OpField, obj, ir.Name(name))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		expr     ir.Expr
		expected string
	}{
		{"left chain", ir.Binary("-", ir.Binary("-", a, b), c), "a - b - c"},
		{"right nested", ir.Binary("-", a, ir.Binary("-", b, c)), "a - (b - c)"},
		{"looser child grouped", ir.Binary("*", ir.Binary("+", a, b), c), "(a + b) * c"},
		{"tighter child bare", ir.Binary("+", a, ir.Binary("*", b, c)), "a + b * c"},
		{"assignment right assoc", ir.Binary("=", a, ir.Binary("=", b, c)), "a = b = c"},
		{"assignment left grouped", ir.Binary("=", ir.Binary("=", a, b), c), "(a = b) = c"},
		{"comparison chain grouped", ir.Binary("==", ir.Binary("==", a, b), c), "(a == b) == c"},
		{"range of ranges", ir.Binary("..", a, ir.Binary("..", b, c)), "a .. (b .. c)"},
		{"logic", ir.Binary("||", ir.Binary("&&", a, b), ir.Unary("!", c)), "a && b || !c"},
		{"and over or", ir.Binary("&&", a, ir.Binary("||", b, c)), "a && (b || c)"},
		{"negation of sum", ir.Unary("-", ir.Binary("+", a, b)), "-(a + b)"},
		{"double negation", ir.Unary("-", ir.Unary("-", a)), "--a"},
		{"deref member", ir.Unary("*", field(a, "b")), "*a.b"},
		{"ref mut", ir.Unary("&mut", a), "&mut a"},
		{"try on call", ir.Unary("?", call(ir.Name("f"), a)), "f(a)?"},
		{"try on sum", ir.Unary("?", ir.Binary("+", a, b)), "(a + b)?"},
		{"member chain", field(field(a, "b"), "c"), "a.b.c"},
		{"method chain", method(method(a, "iter"), "count"), "a.iter().count()"},
		{"method on sum", method(ir.Binary("+", a, b), "abs"), "(a + b).abs()"},
		{"method with args", method(a, "max", b, ir.Binary("+", b, c)), "a.max(b, b + c)"},
		{"field of call", field(call(ir.Name("f")), "x"), "f().x"},
		{"call of field", call(field(a, "f"), b), "(a.f)(b)"},
		{"call args never grouped", call(ir.Name("f"), ir.Binary("=", a, b)), "f(a = b)"},
		{"index", &ir.Apply{Op: ir.OpIndex, Args: []ir.Expr{field(a, "v"), ir.Binary("+", b, &ir.IntLit{Value: 1})}}, "a.v[b + 1]"},
		{"cast", ir.Binary(ir.OpCast, ir.Binary("+", a, b), ir.Name("u8")), "(a + b) as u8"},
		{"cast chain", ir.Binary(ir.OpCast, ir.Binary(ir.OpCast, a, ir.Name("u8")), ir.Name("i32")), "a as u8 as i32"},
		{"cast of negation", ir.Binary(ir.OpCast, ir.Unary("-", a), ir.Name("u8")), "-a as u8"},
		{"cast before less", ir.Binary("<", ir.Binary(ir.OpCast, a, ir.Name("usize")), b), "(a as usize) < b"},
		{"cast at right edge before less", ir.Binary("<", ir.Binary("+", a, ir.Binary(ir.OpCast, ir.Name("x"), ir.Name("usize"))), ir.Name("y")), "(a + x as usize) < y"},
		{"cast at right edge before shift", ir.Binary("<<", ir.Binary("*", a, ir.Binary(ir.OpCast, ir.Name("x"), ir.Name("usize"))), ir.Name("y")), "(a * x as usize) << y"},
		{"grouped cast under prefix before less-equal", ir.Binary("<=", ir.Binary("-", a, ir.Unary("&", ir.Binary(ir.OpCast, ir.Name("x"), ir.Name("u8")))), b), "a - &(x as u8) <= b"},
		{"cast at left edge before less", ir.Binary("<", ir.Binary("+", ir.Binary(ir.OpCast, ir.Name("x"), ir.Name("usize")), a), ir.Name("y")), "x as usize + a < y"},
		{"cast closed by call before less", ir.Binary("<", call(ir.Name("f"), ir.Binary(ir.OpCast, ir.Name("x"), ir.Name("usize"))), ir.Name("y")), "f(x as usize) < y"},
		{"cast after less", ir.Binary("<", b, ir.Binary(ir.OpCast, a, ir.Name("usize"))), "b < a as usize"},
		{"path", &ir.Apply{Op: ir.OpPath, Args: []ir.Expr{ir.Name("std"), ir.Name("mem"), ir.Name("swap")}}, "std::mem::swap"},
		{"call path", call(&ir.Apply{Op: ir.OpPath, Args: []ir.Expr{ir.Name("i64"), ir.Name("max")}}, a, b), "i64::max(a, b)"},
		{"negative literal method", method(&ir.IntLit{Value: -5}, "abs"), "(-5).abs()"},
		{"negative literal operand", ir.Binary("-", a, &ir.IntLit{Value: -5}), "a - -5"},
		{"negative float", ir.Binary("*", &ir.FloatLit{Value: "-0.5"}, a), "-0.5 * a"},
		{"float exponent after dot", ir.Binary("+", &ir.FloatLit{Value: "1.e5"}, a), "1.0e5 + a"},
		{"float method", method(&ir.FloatLit{Value: "2."}, "sqrt"), "2.0.sqrt()"},
		{"string literal", ir.Binary("+", a, &ir.StringLit{Value: "say \"hi\""}), `a + "say \"hi\""`},
		{"char literal", ir.Binary("==", a, &ir.CharLit{Value: '\''}), `a == '\''`},
		{"bool", ir.Binary("&&", &ir.BoolLit{Value: true}, &ir.BoolLit{Value: false}), "true && false"},
		{"raw identifier", ir.Binary("+", ir.Name("type"), ir.Name("self")), "r#type + self"},
		{"n-ary sum", &ir.Apply{Op: "+", Args: []ir.Expr{a, b, ir.Binary("+", c, a)}}, "a + b + (c + a)"},
		{"unknown operator grouped", ir.Binary("<=>", ir.Binary("+", a, b), c), "(a + b) <=> c"},
		{"unknown inner grouped", ir.Binary("+", ir.Binary("<=>", a, b), c), "(a <=> b) + c"},
		{"raw tokens atom", ir.Binary("*", &ir.Raw{Tokens: []token.Token{
			token.NewName("vec"), token.NewOp("!"), token.NewPunct("["), token.NewLit("1"), token.NewPunct("]"),
		}}, a), "vec ! [1] * a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.expr)
			if got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTokens_Kinds(t *testing.T) {
	toks := Tokens(method(a, "len"))
	want := []token.Token{
		token.NewName("a"), token.NewPunct("."), token.NewName("len"),
		token.NewPunct("("), token.NewPunct(")"),
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(want))
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, toks[i], want[i])
		}
	}
}

func TestRender_Concurrent(t *testing.T) {
	expr := ir.Binary("-", a, ir.Binary("-", b, c))
	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got := Render(ir.Binary("*", expr, &ir.IntLit{Value: int64(i)}))
			want := fmt.Sprintf("(a - (b - c)) * %d", i)
			if got != want {
				errs <- got
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("unexpected concurrent render %q", got)
	}
}
