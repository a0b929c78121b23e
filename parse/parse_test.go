package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/token"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreOffset = cmpopts.IgnoreFields(ir.Node{}, "Offset")

func TestParseOK(t *testing.T) {
	cases := []struct {
		in   string
		want *ir.Node
	}{
		{
			in:   "A",
			want: ir.Atom("A"),
		},
		{
			in:   "~A",
			want: ir.Negation("~A", ir.Atom("A")),
		},
		{
			in:   "(A.B)",
			want: ir.Binary("(A.B)", 2, token.And, ir.Atom("A"), ir.Atom("B")),
		},
		{
			in:   "(A->B)",
			want: ir.Binary("(A->B)", 2, token.Cond, ir.Atom("A"), ir.Atom("B")),
		},
		{
			in: "(A<->(B.C))",
			want: ir.Binary("(A<->(B.C))", 2, token.Bicond,
				ir.Atom("A"),
				ir.Binary("(B.C)", 2, token.And, ir.Atom("B"), ir.Atom("C"))),
		},
		{
			in:   "[AvB]",
			want: ir.Binary("[AvB]", 2, token.Or, ir.Atom("A"), ir.Atom("B")),
		},
		{
			in: "~(A.B)",
			want: ir.Negation("~(A.B)",
				ir.Binary("(A.B)", 2, token.And, ir.Atom("A"), ir.Atom("B"))),
		},
		{
			in: "((A.B)v~C)",
			want: ir.Binary("((A.B)v~C)", 6, token.Or,
				ir.Binary("(A.B)", 2, token.And, ir.Atom("A"), ir.Atom("B")),
				ir.Negation("~C", ir.Atom("C"))),
		},
		{
			in:   "( A . B )",
			want: ir.Binary("( A . B )", 4, token.And, ir.Atom("A"), ir.Atom("B")),
		},
		{
			// no connective directly inside the outer grouping
			in:   "((A.B))",
			want: ir.Atom("((A.B))"),
		},
		{
			in:   "A.B",
			want: ir.Atom("A.B"),
		},
		{
			in:   "(A.B.C)",
			want: ir.Binary("(A.B.C)", 2, token.And, ir.Atom("A"), ir.Atom("B.C")),
		},
		{
			in:   "ab",
			want: ir.Atom("ab"),
		},
	}
	for _, c := range cases {
		got, err := ParseString(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if diff := cmp.Diff(c.want, got, ignoreOffset); diff != "" {
			t.Errorf("%q: tree differs (-want +got):\n%s", c.in, diff)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("%q: %v", c.in, err)
		}
	}
}

func TestParseOffsets(t *testing.T) {
	n, err := ParseString("(A<->(B.C))")
	if err != nil {
		t.Fatal(err)
	}
	if n.Offset != 0 || n.Left.Offset != 1 || n.Right.Offset != 5 ||
		n.Right.Left.Offset != 6 || n.Right.Right.Offset != 8 {
		t.Errorf("unexpected offsets %d %d %d %d %d", n.Offset, n.Left.Offset,
			n.Right.Offset, n.Right.Left.Offset, n.Right.Right.Offset)
	}
}

func TestParseMalformed(t *testing.T) {
	bad := map[string]error{
		"":        token.ErrEmpty,
		"   ":     token.ErrEmpty,
		"()":      ErrEmptyGrouping,
		"[]":      ErrEmptyGrouping,
		"(())":    ErrEmptyGrouping,
		"(A.())":  ErrEmptyGrouping,
		"(Av)":    ErrEmptySubformula,
		"(.B)":    ErrEmptySubformula,
		"~":       ErrEmptySubformula,
		"(A.~)":   ErrEmptySubformula,
		"(A.B)C":  ErrUngrouped,
		"A(B.C)":  ErrUngrouped,
		"(A.B]":   ErrMalformedInput,
		"((A.B)":  ErrMalformedInput,
		"(A.B))":  ErrMalformedInput,
		"(A-B)":   token.ErrConnWidth,
		"(A<-B)":  token.ErrConnWidth,
		"A\nB":    ErrMalformedInput,
		")(":      ErrMalformedInput,
		"[(A.B])": ErrMalformedInput,
	}
	for in, want := range bad {
		n, err := ParseString(in)
		if err == nil {
			t.Errorf("%q: parsed as %q", in, n.Text)
			continue
		}
		if !errors.Is(err, want) {
			t.Errorf("%q: expected %v, got %v", in, want, err)
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%q: %v is not malformed input", in, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("(Av)")
	var pe *token.PosErr
	if !errors.As(err, &pe) {
		t.Fatalf("expected a positioned error, got %v", err)
	}
	if pe.Pos.I != 2 {
		t.Errorf("expected error at offset 2, got %d", pe.Pos.I)
	}
	if !strings.Contains(err.Error(), "near character 3") {
		t.Errorf("error %q does not say where", err)
	}
}

func TestParseTooDeepPosition(t *testing.T) {
	_, err := ParseString("(A.[B.(CvD)])", WithMaxDepth(2))
	if !errors.Is(err, ErrTooDeeplyNested) {
		t.Fatalf("expected too deeply nested, got %v", err)
	}
	var pe *token.PosErr
	if !errors.As(err, &pe) {
		t.Fatalf("expected a positioned error, got %v", err)
	}
	if pe.Pos.I != 6 {
		t.Errorf("expected error at the third opener, offset 6, got %d", pe.Pos.I)
	}
	if !strings.Contains(err.Error(), "grouping nested 3 deep, limit 2 near character 7") {
		t.Errorf("unexpected message %q", err)
	}
}

func TestParseTooDeep(t *testing.T) {
	deepNeg := strings.Repeat("~", DefaultMaxDepth+1) + "A"
	if _, err := ParseString(deepNeg); !errors.Is(err, ErrTooDeeplyNested) {
		t.Errorf("expected too deeply nested, got %v", err)
	}
	okNeg := strings.Repeat("~", DefaultMaxDepth) + "A"
	if _, err := ParseString(okNeg); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	deepGroup := strings.Repeat("(", DefaultMaxDepth+1) + "A" + strings.Repeat(")", DefaultMaxDepth+1)
	if _, err := ParseString(deepGroup); !errors.Is(err, ErrTooDeeplyNested) {
		t.Errorf("expected too deeply nested, got %v", err)
	}
	if _, err := ParseString("~~A", WithMaxDepth(2)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := ParseString("~~~A", WithMaxDepth(2)); !errors.Is(err, ErrTooDeeplyNested) {
		t.Errorf("expected too deeply nested, got %v", err)
	}
	if _, err := ParseString("((A.B).C)", WithMaxDepth(1)); !errors.Is(err, ErrTooDeeplyNested) {
		t.Errorf("expected too deeply nested, got %v", err)
	}
	if _, err := ParseString(okNeg, WithMaxDepth(0)); err != nil {
		t.Errorf("zero depth should select the default, got %v", err)
	}
}

var wffs = []string{
	"A",
	"Z",
	"~B",
	"~~C",
	"(A.B)",
	"[AvB]",
	"~(A->B)",
	"(A<->(B.C))",
	"((AvB)->~[C.D])",
}

func TestParseNegationProperty(t *testing.T) {
	for _, p := range wffs {
		want, err := ParseString(p)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ParseString("~" + p)
		if err != nil {
			t.Errorf("~%s: %v", p, err)
			continue
		}
		if got.Kind() != ir.NegationKind || got.Left != nil {
			t.Errorf("~%s: expected a negation, got %s", p, got.Kind())
			continue
		}
		if diff := cmp.Diff(want, got.Right, ignoreOffset); diff != "" {
			t.Errorf("~%s: operand differs (-want +got):\n%s", p, diff)
		}
	}
}

func TestParseBinaryProperty(t *testing.T) {
	conns := []token.Connective{token.And, token.Or, token.Cond, token.Bicond}
	for _, p := range wffs {
		for _, q := range wffs {
			for _, c := range conns {
				in := "(" + p + c.Surface() + q + ")"
				got, err := ParseString(in)
				if err != nil {
					t.Errorf("%s: %v", in, err)
					continue
				}
				if got.Kind() != ir.BinaryKind || got.Conn != c || got.ConnPos != 1+len(p) {
					t.Errorf("%s: expected %s at %d, got %s %s at %d", in, c, 1+len(p),
						got.Kind(), got.Conn, got.ConnPos)
					continue
				}
				wantL, _ := ParseString(p)
				wantR, _ := ParseString(q)
				if diff := cmp.Diff(wantL, got.Left, ignoreOffset); diff != "" {
					t.Errorf("%s: left differs (-want +got):\n%s", in, diff)
				}
				if diff := cmp.Diff(wantR, got.Right, ignoreOffset); diff != "" {
					t.Errorf("%s: right differs (-want +got):\n%s", in, diff)
				}
			}
		}
	}
}
