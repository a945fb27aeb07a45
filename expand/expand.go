package expand

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/synop"
	"github.com/npillmayer/synop/ast"
	"golang.org/x/exp/slices"
)

// DefaultUnroll is the default number of copies a repetition is unrolled to.
const DefaultUnroll = 3

// Expander expands trees into token sequences. Create one with New.
type Expander struct {
	unroll int
}

var _ ast.Visitor = (*Expander)(nil)

// Option configures an expander.
type Option func(x *Expander)

// Unroll sets the number of instantiations of a repetition. Repeat(x) is
// unrolled to 1…n copies of x, Repeat(Opt(y)) to 0…n-1 copies of y.
// n is at least 1.
func Unroll(n int) Option {
	return func(x *Expander) {
		if n < 1 {
			n = 1
		}
		x.unroll = n
	}
}

// New creates an expander.
func New(opts ...Option) *Expander {
	x := &Expander{unroll: DefaultUnroll}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Expand returns the token sequences denoted by a normalized tree. A nil tree
// expands to no sequences at all.
func (x *Expander) Expand(e ast.Expr) [][]synop.Token {
	if e == nil {
		return nil
	}
	seqs := x.expand(e)
	tracer().Debugf("expanded %s to %d sequences", e.Pretty(), len(seqs))
	return seqs
}

// Expand expands a normalized tree with the default expander.
func Expand(e ast.Expr) [][]synop.Token {
	return New().Expand(e)
}

func (x *Expander) expand(e ast.Expr) [][]synop.Token {
	if e == nil {
		return [][]synop.Token{{}}
	}
	return e.Accept(x).([][]synop.Token)
}

// VisitTok is part of interface ast.Visitor.
func (x *Expander) VisitTok(t ast.Tok) interface{} {
	return [][]synop.Token{{t.Token}}
}

// VisitSeq is part of interface ast.Visitor.
func (x *Expander) VisitSeq(s ast.Seq) interface{} {
	seqs := [][]synop.Token{{}}
	for _, child := range s {
		suffixes := x.expand(child)
		next := make([][]synop.Token, 0, len(seqs)*len(suffixes))
		for _, prefix := range seqs {
			for _, suffix := range suffixes {
				next = append(next, append(slices.Clone(prefix), suffix...))
			}
		}
		seqs = next
	}
	return seqs
}

// VisitOpt is part of interface ast.Visitor.
func (x *Expander) VisitOpt(o ast.Opt) interface{} {
	return append([][]synop.Token{{}}, x.expand(o.X)...)
}

// VisitRepeat is part of interface ast.Visitor.
func (x *Expander) VisitRepeat(r ast.Repeat) interface{} {
	inner, from, to := r.X, 1, x.unroll
	if opt, ok := r.X.(ast.Opt); ok {
		inner, from, to = opt.X, 0, x.unroll-1
	}
	var seqs [][]synop.Token
	for n := from; n <= to; n++ {
		copies := make(ast.Seq, n)
		for i := range copies {
			copies[i] = ast.Clone(inner)
		}
		seqs = append(seqs, x.VisitSeq(copies).([][]synop.Token)...)
	}
	return seqs
}

// VisitSelect is part of interface ast.Visitor.
func (x *Expander) VisitSelect(s ast.Select) interface{} {
	var seqs [][]synop.Token
	for _, alt := range s {
		seqs = append(seqs, x.expand(alt)...)
	}
	return seqs
}

// Render joins the pretty forms of the tokens of a sequence with a single
// space.
func Render(seq []synop.Token) string {
	p := make([]string, len(seq))
	for i, t := range seq {
		p[i] = t.Pretty()
	}
	return strings.Join(p, " ")
}

// Unique removes duplicate sequences, keeping the first occurrence of each.
// Sequences are keyed by a hash of their tokens.
func Unique(seqs [][]synop.Token) [][]synop.Token {
	seen := linkedhashmap.New() // insertion ordered
	for i, seq := range seqs {
		key, err := structhash.Hash(seq, 1)
		if err != nil {
			tracer().Errorf("cannot hash sequence %v: %v", seq, err)
			key = fmt.Sprintf("#%d", i)
		}
		if _, found := seen.Get(key); !found {
			seen.Put(key, seq)
		}
	}
	unique := make([][]synop.Token, 0, seen.Size())
	for _, seq := range seen.Values() {
		unique = append(unique, seq.([]synop.Token))
	}
	tracer().Debugf("%d of %d sequences are unique", len(unique), len(seqs))
	return unique
}
