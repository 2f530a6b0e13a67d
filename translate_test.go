package postfix

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(+ 1 2)", "1 2 +"},
		{"(+ 1 (* 2 3))", "1 2 3 * +"},
		{"(* (+ 1 2) 3)", "1 2 + 3 *"},
		{"x", "x"},
		{"7", "7"},
		{"(- -5 x)", "-5 x -"},
		{"(/ (- a b) (- c d))", "a b - c d - /"},
		{"(- (/ (* (+ a 1) (- b 2)) c) (+ (* d -e) 42))", "a 1 + b 2 - * c / d -e * 42 + -"},
	}
	for _, test := range tests {
		node, err := Parse(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		got := Translate(node)
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}

		ops := 0
		for _, tok := range strings.Fields(got) {
			switch tok {
			case "+", "-", "*", "/":
				ops++
			}
		}
		if ops != Count(node) {
			t.Errorf("%q: want %d operators but got %d", test.input, Count(node), ops)
		}
	}
}

func TestTranslateTokens(t *testing.T) {
	node := &BinaryOp{
		Op:    OpSub,
		Left:  &Identifier{Name: "a"},
		Right: &BinaryOp{Op: OpDiv, Left: &Number{Value: -3}, Right: &Identifier{Name: "b"}},
	}
	want := []string{"a", "-3", "b", "/", "-"}
	if diff := cmp.Diff(want, TranslateTokens(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalkOrder(t *testing.T) {
	node, err := Parse("(* (+ a b) c)")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	Walk(node, func(n Node) {
		got = append(got, n.String())
	})
	want := []string{"a", "b", "(+ a b)", "c", "(* (+ a b) c)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := &BinaryOp{Op: OpAdd, Left: &Number{Value: 1}, Right: &Identifier{Name: "x"}}
	tests := []struct {
		b    Node
		want bool
	}{
		{&BinaryOp{Op: OpAdd, Left: &Number{Value: 1}, Right: &Identifier{Name: "x"}}, true},
		{&BinaryOp{Op: OpSub, Left: &Number{Value: 1}, Right: &Identifier{Name: "x"}}, false},
		{&BinaryOp{Op: OpAdd, Left: &Identifier{Name: "1"}, Right: &Identifier{Name: "x"}}, false},
		{&BinaryOp{Op: OpAdd, Left: &Number{Value: 1}, Right: &Identifier{Name: "y"}}, false},
		{&Number{Value: 1}, false},
	}
	for i, test := range tests {
		if got := Equal(a, test.b); got != test.want {
			t.Errorf("%d: want %v but got %v", i, test.want, got)
		}
	}
}
