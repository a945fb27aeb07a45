package ast

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/synop"
	"golang.org/x/exp/slices"
)

// Expr is the type of tree nodes. A nil Expr denotes the absence of a tree,
// i.e. the result of normalizing an expression which matches only the empty
// command line.
type Expr interface {
	Pretty() string               // surface syntax of the expression
	String() string               // debugging representation
	Normalize() Expr              // canonical form, or nil
	Clone() Expr                  // deep copy
	Accept(v Visitor) interface{} // call v for the node's variant
	expr()
}

// Visitor is implemented by operations on trees. Accept calls the method
// matching the variant of a node.
type Visitor interface {
	VisitTok(Tok) interface{}
	VisitSeq(Seq) interface{}
	VisitOpt(Opt) interface{}
	VisitRepeat(Repeat) interface{}
	VisitSelect(Select) interface{}
}

// Tok is a leaf, matching exactly one token.
type Tok struct {
	Token synop.Token
}

// Seq is a concatenation of expressions. The empty Seq matches the empty
// command line.
type Seq []Expr

// Opt matches zero or one occurrences of X.
type Opt struct {
	X Expr
}

// Repeat matches one or more occurrences of X.
type Repeat struct {
	X Expr
}

// Select is an alternation of expressions.
type Select []Expr

var _ Expr = Tok{}
var _ Expr = Seq{}
var _ Expr = Opt{}
var _ Expr = Repeat{}
var _ Expr = Select{}

func (Tok) expr()    {}
func (Seq) expr()    {}
func (Opt) expr()    {}
func (Repeat) expr() {}
func (Select) expr() {}

// Text creates a leaf for a word.
func Text(s string) Expr {
	return Tok{synop.MakeToken(synop.Text, s)}
}

// Short creates a leaf for a short option "-s".
func Short(s string) Expr {
	return Tok{synop.MakeToken(synop.ShortOpt, s)}
}

// Long creates a leaf for a long option "--s".
func Long(s string) Expr {
	return Tok{synop.MakeToken(synop.LongOpt, s)}
}

// --- Pretty printing -------------------------------------------------------

// Pretty is part of interface Expr.
func (t Tok) Pretty() string {
	return t.Token.Pretty()
}

// Pretty is part of interface Expr.
func (s Seq) Pretty() string {
	return join(s, " ")
}

// Pretty is part of interface Expr.
func (o Opt) Pretty() string {
	return "[" + pretty(o.X) + "]"
}

// Pretty is part of interface Expr.
func (r Repeat) Pretty() string {
	return grouped(r.X) + "..."
}

// Pretty is part of interface Expr.
func (s Select) Pretty() string {
	return join(s, " | ")
}

func pretty(e Expr) string {
	if e == nil {
		return ""
	}
	return e.Pretty()
}

// grouped wraps sequences and alternations in braces. Other nodes bind tighter
// than concatenation and alternation.
func grouped(e Expr) string {
	switch e.(type) {
	case Seq, Select:
		return "{" + e.Pretty() + "}"
	}
	return pretty(e)
}

func join(xs []Expr, sep string) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(grouped(x))
	}
	return b.String()
}

// --- Debug output ----------------------------------------------------------

func (t Tok) String() string {
	return t.Token.String()
}

func (s Seq) String() string {
	return "Seq" + list(s)
}

func (o Opt) String() string {
	return fmt.Sprintf("Opt(%v)", o.X)
}

func (r Repeat) String() string {
	return fmt.Sprintf("Repeat(%v)", r.X)
}

func (s Select) String() string {
	return "Select" + list(s)
}

func list(xs []Expr) string {
	s := make([]string, len(xs))
	for i, x := range xs {
		s[i] = fmt.Sprintf("%v", x)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// --- Normalization ---------------------------------------------------------

// Normalize returns the canonical form of e, or nil. e may be nil.
func Normalize(e Expr) Expr {
	if e == nil {
		return nil
	}
	return e.Normalize()
}

// Normalize is part of interface Expr.
func (t Tok) Normalize() Expr {
	return t
}

// Normalize drops empty children and flattens nested sequences.
// A sequence with a single child collapses to that child.
func (s Seq) Normalize() Expr {
	xs := make([]Expr, 0, len(s))
	for _, x := range s {
		switch n := Normalize(x).(type) {
		case nil:
		case Seq:
			xs = append(xs, n...)
		default:
			xs = append(xs, n)
		}
	}
	return collapse(xs, func(xs []Expr) Expr { return Seq(xs) })
}

// Normalize is part of interface Expr. Opt(Opt(x)) collapses to Opt(x).
func (o Opt) Normalize() Expr {
	switch n := Normalize(o.X).(type) {
	case nil:
		return nil
	case Opt:
		return n
	default:
		return Opt{X: n}
	}
}

// Normalize is part of interface Expr. Repeat(Repeat(x)) collapses to Repeat(x).
func (r Repeat) Normalize() Expr {
	switch n := Normalize(r.X).(type) {
	case nil:
		return nil
	case Repeat:
		return n
	default:
		return Repeat{X: n}
	}
}

// Normalize drops empty children and flattens nested alternations.
// If any of the alternatives is optional, the optionality is moved to the
// alternation as a whole: {[a] | b} normalizes to [a | b].
func (s Select) Normalize() Expr {
	hasOpt := false
	xs := make([]Expr, 0, len(s))
	for _, x := range s {
		n := Normalize(x)
		if o, ok := n.(Opt); ok {
			hasOpt = true
			n = o.X
		}
		switch n := n.(type) {
		case nil:
		case Select:
			xs = append(xs, n...)
		default:
			xs = append(xs, n)
		}
	}
	sel := collapse(xs, func(xs []Expr) Expr { return Select(xs) })
	if hasOpt && sel != nil {
		return Opt{X: sel}
	}
	return sel
}

func collapse(xs []Expr, wrap func([]Expr) Expr) Expr {
	switch len(xs) {
	case 0:
		return nil
	case 1:
		return xs[0]
	}
	return wrap(xs)
}

// --- Copying ---------------------------------------------------------------

// Clone returns a deep copy of e. e may be nil.
func Clone(e Expr) Expr {
	if e == nil {
		return nil
	}
	return e.Clone()
}

// Clone is part of interface Expr.
func (t Tok) Clone() Expr {
	return t
}

// Clone is part of interface Expr.
func (s Seq) Clone() Expr {
	return Seq(cloneAll(s))
}

// Clone is part of interface Expr.
func (o Opt) Clone() Expr {
	return Opt{X: Clone(o.X)}
}

// Clone is part of interface Expr.
func (r Repeat) Clone() Expr {
	return Repeat{X: Clone(r.X)}
}

// Clone is part of interface Expr.
func (s Select) Clone() Expr {
	return Select(cloneAll(s))
}

func cloneAll(xs []Expr) []Expr {
	c := slices.Clone(xs)
	for i, x := range c {
		c[i] = Clone(x)
	}
	return c
}

// --- Visitors --------------------------------------------------------------

// Accept is part of interface Expr.
func (t Tok) Accept(v Visitor) interface{} { return v.VisitTok(t) }

// Accept is part of interface Expr.
func (s Seq) Accept(v Visitor) interface{} { return v.VisitSeq(s) }

// Accept is part of interface Expr.
func (o Opt) Accept(v Visitor) interface{} { return v.VisitOpt(o) }

// Accept is part of interface Expr.
func (r Repeat) Accept(v Visitor) interface{} { return v.VisitRepeat(r) }

// Accept is part of interface Expr.
func (s Select) Accept(v Visitor) interface{} { return v.VisitSelect(s) }

// depth is a visitor calculating the nesting depth of a tree.
type depth struct{}

func (d depth) VisitTok(Tok) interface{}         { return 1 }
func (d depth) VisitSeq(s Seq) interface{}       { return 1 + d.max(s) }
func (d depth) VisitOpt(o Opt) interface{}       { return 1 + d.of(o.X) }
func (d depth) VisitRepeat(r Repeat) interface{} { return 1 + d.of(r.X) }
func (d depth) VisitSelect(s Select) interface{} { return 1 + d.max(s) }

func (d depth) of(e Expr) int {
	if e == nil {
		return 0
	}
	return e.Accept(d).(int)
}

func (d depth) max(xs []Expr) int {
	m := 0
	for _, x := range xs {
		if n := d.of(x); n > m {
			m = n
		}
	}
	return m
}

// Depth returns the nesting depth of a tree. Leafs have depth 1, a nil tree
// has depth 0.
func Depth(e Expr) int {
	return depth{}.of(e)
}

// --- Comparison ------------------------------------------------------------

// nil and empty lists of children are treated as equal.
var cmpOptions = []cmp.Option{cmpopts.EquateEmpty()}

// Equal compares two trees structurally.
func Equal(a, b Expr) bool {
	return cmp.Equal(a, b, cmpOptions...)
}

// Diff returns a human-readable report of the differences between two trees,
// or the empty string if they are equal.
func Diff(a, b Expr) string {
	d := cmp.Diff(a, b, cmpOptions...)
	if d != "" {
		tracer().Debugf("trees differ: %s", d)
	}
	return d
}
