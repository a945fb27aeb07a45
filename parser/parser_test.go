package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/synop"
	"github.com/npillmayer/synop/ast"
	"github.com/npillmayer/synop/scanner"
)

var a, b, c = ast.Text("a"), ast.Text("b"), ast.Text("c")

// parse parses s and checks that the pretty form of the result parses to the
// same tree.
func parse(t *testing.T, s string) ast.Expr {
	p, err := ParseString(s)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", s, err)
	}
	pp, err := ParseString(p.Pretty())
	if err != nil {
		t.Fatalf("cannot parse pretty form %q of %q: %v", p.Pretty(), s, err)
	}
	if !ast.Equal(p, pp) {
		t.Errorf("%q => %v", s, p)
		t.Errorf("%q => %v", p.Pretty(), pp)
	}
	return p
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	aaa, bbb := ast.Text("aaa"), ast.Text("bbb")
	for _, test := range []struct {
		input string
		tree  ast.Expr
	}{
		{"-a", ast.Short("a")},
		{"-a -b c --foo", ast.Seq{ast.Short("a"), ast.Short("b"), c, ast.Long("foo")}},
		{"", ast.Seq{}},
		{"{a b} c", ast.Seq{ast.Seq{a, b}, c}},
		{"[aaa]", ast.Opt{X: aaa}},
		{"[a[b]c]", ast.Opt{X: ast.Seq{a, ast.Opt{X: b}, c}}},
		{"[[a]]", ast.Opt{X: ast.Opt{X: a}}},
		{"[]", ast.Opt{X: ast.Seq{}}},
		{"[[]]", ast.Opt{X: ast.Opt{X: ast.Seq{}}}},
		{"aaa bbb ...", ast.Seq{aaa, ast.Repeat{X: bbb}}},
		{"aaa ... ...", ast.Repeat{X: ast.Repeat{X: aaa}}},
		{"aaa {bbb}...", ast.Seq{aaa, ast.Repeat{X: bbb}}},
		{"{aaa bbb}...", ast.Repeat{X: ast.Seq{aaa, bbb}}},
		{"a b...", ast.Seq{a, ast.Repeat{X: b}}},
		{"a|b|c", ast.Select{a, b, c}},
		{"a b|c", ast.Select{ast.Seq{a, b}, c}},
		{"a||c", ast.Select{a, ast.Seq{}, c}},
		{"|", ast.Select{ast.Seq{}, ast.Seq{}}},
		{"a{|}c", ast.Seq{a, ast.Select{ast.Seq{}, ast.Seq{}}, c}},
		{"a|[b|c]|ccc", ast.Select{a, ast.Opt{X: ast.Select{b, c}}, ast.Text("ccc")}},
		{"a {b | c}", ast.Seq{a, ast.Select{b, c}}},
		{"{a | b}...", ast.Repeat{X: ast.Select{a, b}}},
	} {
		tree := parse(t, test.input)
		if !ast.Equal(tree, test.tree) {
			t.Errorf("%q: %s", test.input, ast.Diff(test.tree, tree))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	for _, s := range []string{
		"a", "-b", "--long", "a b c", "a [b] c", "a b...",
		"a | b...", "{a | b}...", "[a] {a | b}...",
	} {
		tree := parse(t, s)
		if tree.Pretty() != s {
			t.Errorf("expected pretty form of %q to be identical, is %q", s, tree.Pretty())
		}
	}
}

func TestNormalizeCommutesWithPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	for _, s := range []string{
		"a{|}c", "[b]|ccc", "a|[b|c]|ccc", "{a b} c", "[[a]] {b...}...",
		"[a|[b]] | c...", "x {y {z | w}} [{} | v]", "[]", "{[a] | {}}...",
	} {
		tree := parse(t, s)
		n := ast.Normalize(tree)
		if n == nil {
			continue
		}
		reparsed, err := ParseString(n.Pretty())
		if err != nil {
			t.Fatalf("cannot parse normalized form %q of %q: %v", n.Pretty(), s, err)
		}
		if d := ast.Diff(n, ast.Normalize(reparsed)); d != "" {
			t.Errorf("%q: normalized forms differ: %s", s, d)
		}
		if !ast.Equal(n, ast.Normalize(n)) {
			t.Errorf("%q: normalization not idempotent", s)
		}
	}
}

func TestOptionalHoist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	for _, test := range []struct {
		input string
		tree  ast.Expr
	}{
		{"[b]|ccc", ast.Opt{X: ast.Select{b, ast.Text("ccc")}}},
		{"a|[b|c]|ccc", ast.Opt{X: ast.Select{a, b, c, ast.Text("ccc")}}},
		{"aaa ... ...", ast.Repeat{X: ast.Text("aaa")}},
		{"a{|}c", ast.Seq{a, c}},
		{"[[]]", nil},
	} {
		tree := parse(t, test.input)
		if n := ast.Normalize(tree); !ast.Equal(n, test.tree) {
			t.Errorf("%q: %s", test.input, ast.Diff(test.tree, n))
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	for _, test := range []struct {
		input, msg string
	}{
		{"{a b", "expected '}', found EOF"},
		{"[a b}", "expected ']', found '}'"},
		{"a }", "unexpected token '}' found"},
		{"a ]", "unexpected token ']' found"},
		{"...", "unexpected token '...' found"},
		{"a | ... b", "unexpected token '...' found"},
		{"[a", "expected ']', found EOF"},
		{"{a]", "expected '}', found ']'"},
		{"[{a}", "expected ']', found EOF"},
	} {
		tree, err := ParseString(test.input)
		if err == nil {
			t.Errorf("expected %q to fail, parsed to %v", test.input, tree)
			continue
		}
		if tree != nil {
			t.Errorf("expected no partial result for %q, have %v", test.input, tree)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("expected a ParseError for %q, have %T", test.input, err)
		} else if perr.Msg != test.msg {
			t.Errorf("expected error %q for %q, have %q", test.msg, test.input, perr.Msg)
		}
	}
}

func TestErrorSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	_, err := ParseString("[a b}")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a ParseError, have %v", err)
	}
	if perr.Span != (synop.Span{4, 5}) {
		t.Errorf("expected error at (4…5), is %v", perr.Span)
	}
}

func TestLexicalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	for _, input := range []string{"a..", "a . b", "[a]....", "."} {
		tree, err := ParseString(input)
		if err == nil {
			t.Errorf("expected lexical error for %q, parsed to %v", input, tree)
			continue
		}
		var lexerr *scanner.LexError
		if !errors.As(err, &lexerr) {
			t.Errorf("expected a LexError for %q, have %v", input, err)
		}
	}
}

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "synop.parser")
	defer teardown()
	//
	for _, dfa := range []bool{false, true} {
		tree, err := Read(strings.NewReader("git\n  [--version]\n  {add | commit}\n"), WithDFA(dfa))
		if err != nil {
			t.Fatal(err)
		}
		expected := ast.Seq{ast.Text("git"), ast.Opt{X: ast.Long("version")},
			ast.Select{ast.Text("add"), ast.Text("commit")}}
		if !ast.Equal(tree, expected) {
			t.Errorf("dfa=%v: %s", dfa, ast.Diff(expected, tree))
		}
		_, err = Read(strings.NewReader("a }"), WithDFA(dfa))
		if err == nil || err.Error() != "parse error: unexpected token '}' found" {
			t.Errorf("dfa=%v: unexpected error %v", dfa, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("dfa=%v: expected wrapped ParseError, have %T", dfa, err)
		}
		if _, err = Read(strings.NewReader("a.."), WithDFA(dfa)); err == nil {
			t.Errorf("dfa=%v: expected lexical error", dfa)
		}
	}
}
