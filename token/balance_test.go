package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var notOKDocs = []string{
	`(`,
	`[`,
	`)`,
	`]`,
	`(]`,
	`[)`,
	`(A.B]`,
	`((A.B)`,
	`(A.B))`,
	`)A(`,
	`([A.B)]`,
}

func TestUnbalanced(t *testing.T) {
	for i, doc := range notOKDocs {
		toks, err := Tokenize(nil, []byte(doc))
		if err != nil {
			t.Error(err)
			return
		}
		_, err = Balance(toks)
		if err == nil {
			t.Errorf("%d got balanced for %q", i, doc)
			continue
		}
		var ise *ErrImbalancedStructure
		if !errors.As(err, &ise) {
			t.Errorf("%d %q: expected imbalanced structure, got %v", i, doc, err)
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%d %q: %v does not wrap malformed input", i, doc, err)
		}
		t.Logf("imbalanced %q error %s", doc, err)
	}
}

func TestBalanceEmpty(t *testing.T) {
	_, err := Balance(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected empty error, got %v", err)
	}
}

func TestBalanceMatch(t *testing.T) {
	toks, err := Tokenize(nil, []byte("(A.[BvC])"))
	if err != nil {
		t.Fatal(err)
	}
	match, err := Balance(toks)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{8, -1, -1, 7, -1, -1, -1, 3, 0}
	if diff := cmp.Diff(want, match); diff != "" {
		t.Errorf("match differs (-want +got):\n%s", diff)
	}
	if n := MaxNesting(toks); n != 2 {
		t.Errorf("expected nesting 2, got %d", n)
	}
	if s := Span(toks[3:8]); s != "[BvC]" {
		t.Errorf("expected span [BvC], got %q", s)
	}
}

func TestNestedBeyond(t *testing.T) {
	toks, err := Tokenize(nil, []byte("(A.[BvC])"))
	if err != nil {
		t.Fatal(err)
	}
	for limit, want := range map[int]int{0: 0, 1: 3, 2: -1, 5: -1} {
		if got := NestedBeyond(toks, limit); got != want {
			t.Errorf("limit %d: expected %d, got %d", limit, want, got)
		}
	}
}

func TestMismatchMessage(t *testing.T) {
	toks, err := Tokenize(nil, []byte("(A.B]"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Balance(toks)
	want := "malformed input: mismatched grouping: ( near character 1 (`...(A.B]...`) closed by ] near character 5 (`...(A.B]...`)"
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}
}
