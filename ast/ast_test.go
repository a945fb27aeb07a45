package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var a, b, c = Text("a"), Text("b"), Text("c")

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.ast")
	defer teardown()
	//
	aa := Text("aa")
	for i, test := range []struct {
		input, result Expr
	}{
		{Seq{aa}, aa},
		{Seq{}, nil},
		{Opt{Seq{}}, nil},
		{Opt{Opt{Seq{}}}, nil},
		{Opt{Opt{Opt{Seq{}}}}, nil},
		{Repeat{Repeat{aa}}, Repeat{aa}},
		{Select{aa}, aa},
		{Seq{Seq{a, b}, c}, Seq{a, b, c}},
		{Repeat{Seq{Repeat{a}}}, Repeat{a}},
		{Opt{Opt{a}}, Opt{a}},
		{Select{Opt{b}, Text("ccc")}, Opt{Select{b, Text("ccc")}}},
		{Select{Opt{a}, Opt{b}}, Opt{Select{a, b}}},
		{Select{a, Select{b, c}}, Select{a, b, c}},
		{Select{a, Opt{Select{b, c}}, Text("ccc")}, Opt{Select{a, b, c, Text("ccc")}}},
		{Select{Seq{}, Seq{}}, nil},
		{Select{a, Seq{}, c}, Select{a, c}},
		{Seq{a, Select{b, c}}, Seq{a, Select{b, c}}},
		{Opt{Select{Opt{a}, b}}, Opt{Select{a, b}}},
	} {
		n := Normalize(test.input)
		if !Equal(n, test.result) {
			t.Errorf("#%d: normalize(%v) = %v, expected %v", i, test.input, n, test.result)
		}
		if !Equal(Normalize(n), n) {
			t.Errorf("#%d: normalization of %v not idempotent: %s", i, test.input, Diff(n, Normalize(n)))
		}
	}
	if Normalize(nil) != nil {
		t.Errorf("expected normalize(nil) to be nil")
	}
}

func TestPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.ast")
	defer teardown()
	//
	for _, test := range []struct {
		input  Expr
		pretty string
	}{
		{a, "a"},
		{Short("b"), "-b"},
		{Long("long"), "--long"},
		{Seq{a, b, c}, "a b c"},
		{Seq{a, Opt{b}, c}, "a [b] c"},
		{Seq{a, Repeat{b}}, "a b..."},
		{Select{a, Repeat{b}}, "a | b..."},
		{Repeat{Select{a, b}}, "{a | b}..."},
		{Seq{Opt{a}, Repeat{Select{a, b}}}, "[a] {a | b}..."},
		{Seq{Seq{a, b}, c}, "{a b} c"},
		{Select{a, Seq{b, c}}, "a | {b c}"},
		{Select{a, Seq{}, c}, "a | {} | c"},
		{Opt{Seq{}}, "[]"},
		{Repeat{Repeat{a}}, "a......"},
		{Repeat{Opt{Select{a, b}}}, "[a | b]..."},
	} {
		if p := test.input.Pretty(); p != test.pretty {
			t.Errorf("expected pretty form of %v to be %q, is %q", test.input, test.pretty, p)
		}
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.ast")
	defer teardown()
	//
	orig := Seq{a, Opt{Select{b, c}}, Repeat{Seq{}}}
	clone := Clone(orig)
	if !Equal(orig, clone) {
		t.Fatalf("clone differs from original: %s", Diff(orig, clone))
	}
	clone.(Seq)[0] = Text("x")
	if !cmp.Equal(orig[0], a) {
		t.Errorf("modifying a clone changed the original: %v", orig)
	}
	if Clone(nil) != nil {
		t.Errorf("expected clone of nil to be nil")
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.ast")
	defer teardown()
	//
	if !Equal(Seq(nil), Seq{}) {
		t.Errorf("expected nil and empty sequences to be equal")
	}
	if Equal(Seq{a, b}, Select{a, b}) {
		t.Errorf("expected Seq and Select to differ")
	}
	if Equal(nil, Seq{}) {
		t.Errorf("expected no tree and the empty sequence to differ")
	}
	if Diff(Opt{a}, Opt{b}) == "" {
		t.Errorf("expected a diff for different leafs")
	}
}

func TestDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.ast")
	defer teardown()
	//
	for _, test := range []struct {
		input Expr
		depth int
	}{
		{nil, 0},
		{a, 1},
		{Seq{}, 1},
		{Seq{a, Opt{b}}, 3},
		{Select{a, Repeat{Opt{Seq{b, c}}}}, 5},
	} {
		if d := Depth(test.input); d != test.depth {
			t.Errorf("expected depth of %v to be %d, is %d", test.input, test.depth, d)
		}
	}
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.ast")
	defer teardown()
	//
	e := Seq{a, Opt{Short("v")}}
	t.Logf("e = %v", e)
	if e.String() == "" {
		t.Errorf("expected debug representation of %s", e.Pretty())
	}
}
