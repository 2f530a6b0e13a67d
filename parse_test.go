package postfix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Node
	}{
		{
			input: "(+ 1 2)",
			want:  &BinaryOp{Op: OpAdd, Left: &Number{Value: 1}, Right: &Number{Value: 2}},
		},
		{
			input: "x",
			want:  &Identifier{Name: "x"},
		},
		{
			input: "-42",
			want:  &Number{Value: -42},
		},
		{
			input: "(- -5 x)",
			want:  &BinaryOp{Op: OpSub, Left: &Number{Value: -5}, Right: &Identifier{Name: "x"}},
		},
		{
			input: "(+ 1 (* 2 3))",
			want: &BinaryOp{
				Op:   OpAdd,
				Left: &Number{Value: 1},
				Right: &BinaryOp{
					Op:    OpMul,
					Left:  &Number{Value: 2},
					Right: &Number{Value: 3},
				},
			},
		},
		{
			input: "(/(* a b)c)",
			want: &BinaryOp{
				Op:    OpDiv,
				Left:  &BinaryOp{Op: OpMul, Left: &Identifier{Name: "a"}, Right: &Identifier{Name: "b"}},
				Right: &Identifier{Name: "c"},
			},
		},
		{
			input: "(- - 5)",
			want:  nil,
		},
	}
	for _, test := range tests {
		got, err := Parse(test.input)
		if test.want == nil {
			if err == nil {
				t.Errorf("want error for %q but got %v", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		text  string
		line  int
	}{
		{"(+ 1 2", KindEOF, "", 1},
		{"", KindEOF, "", 1},
		{"(+ 1)", KindRParen, ")", 1},
		{"(+ 1 2 3)", KindNumber, "3", 1},
		{"(1 + 2)", KindNumber, "1", 1},
		{"+", KindPlus, "+", 1},
		{"(% 1 2)", KindNumber, "1", 1},
		{"(+ 1 2))", KindRParen, ")", 1},
		{"(+ a\n\nb\n(", KindLParen, "(", 4},
		{"(+ a\n\nb\n", KindEOF, "", 4},
		{"(* 1 99999999999999999999)", KindNumber, "99999999999999999999", 1},
	}
	for _, test := range tests {
		node, err := Parse(test.input)
		if node != nil {
			t.Errorf("%q: want no tree but got %v", test.input, node)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: want *SyntaxError but got %v", test.input, err)
			continue
		}
		if !IsFatal(err) {
			t.Errorf("%q: want fatal error", test.input)
		}
		if se.Token.Kind != test.kind || se.Token.Text != test.text || se.Token.Line != test.line {
			t.Errorf("%q: want %v %q at line %d but got %v %q at line %d",
				test.input, test.kind, test.text, test.line, se.Token.Kind, se.Token.Text, se.Token.Line)
		}
	}
}

func TestParseIllegalCharacter(t *testing.T) {
	node, err := Parse("(+ 1 @2)")
	if err == nil {
		t.Fatal("want diagnostics")
	}
	if IsFatal(err) {
		t.Fatalf("want non fatal error but got %v", err)
	}
	if got := Translate(node); got != "1 2 +" {
		t.Errorf("want %q but got %q", "1 2 +", got)
	}
	var errs *Errors
	if !errors.As(err, &errs) {
		t.Fatalf("want *Errors but got %T", err)
	}
	want := []*IllegalCharacterError{{Char: '@', Line: 1}}
	if diff := cmp.Diff(want, errs.Illegal()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if errs.Syntax() != nil {
		t.Errorf("want no syntax error but got %v", errs.Syntax())
	}

	node, err = Parse("(+ 1 @)")
	if node != nil {
		t.Errorf("want no tree but got %v", node)
	}
	if !errors.As(err, &errs) {
		t.Fatalf("want *Errors but got %T", err)
	}
	if errs.Len() != 2 || len(errs.Illegal()) != 1 || errs.Syntax() == nil {
		t.Errorf("want one illegal character and one syntax error but got %v", err)
	}
	var ic *IllegalCharacterError
	if !errors.As(err, &ic) || ic.Char != '@' {
		t.Errorf("want illegal '@' but got %v", ic)
	}
}

func TestParseIdempotent(t *testing.T) {
	const input = "(- (/ (* (+ a 1) (- b 2)) c) (+ (* d -e) 42))"
	a, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Errorf("want equal trees: %v and %v", a, b)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Error(diff)
	}
	if a == b {
		t.Error("want distinct trees")
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(+ 1 2)", "(+ 1 2)"},
		{"  (+   1\n(*  2 3))", "(+ 1 (* 2 3))"},
		{"(- 2.5 -x)", "(- 2 -x)"},
		{"y", "y"},
	}
	for _, test := range tests {
		node, err := Parse(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := node.String(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseOnce(t *testing.T) {
	p := NewParser(NewLexer("(+ 1 @2)"))
	first, err1 := p.Parse()
	second, err2 := p.Parse()
	if first != second {
		t.Errorf("want the same tree but got %v and %v", first, second)
	}
	if err1 != err2 {
		t.Errorf("want the same error but got %v and %v", err1, err2)
	}
	var errs *Errors
	if !errors.As(err2, &errs) || errs.Len() != 1 {
		t.Errorf("want one diagnostic but got %v", err2)
	}
}
