/*
Package scanner defines an interface for tokenizers to be used with the synopsis
parser, and a default implementation working on runes.

Two tokenizer implementations are provided: (1) a hand-written rune tokenizer
in this package, reading from an io.Reader, and (2) an adapter for lexmachine,
living in sub-package `lexmach`. Both produce identical token streams.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/synop"
)

// tracer traces with key 'synop.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("synop.scanner")
}

// Tokenizer is a scanner interface.
//
// NextToken returns the next token of the input, or a token of type synop.EOF
// at the end of input (and for every call thereafter). Lexical errors are
// passed to the error handler, and a token of type synop.Illegal is returned
// in their place.
type Tokenizer interface {
	NextToken() synop.Token
	Span() synop.Span // span of the token last returned
	SetErrorHandler(func(error))
}

// LexError is reported for malformed input. The only malformed input possible
// in synopses are dots which do not form an ellipsis '...'.
type LexError struct {
	Lexeme string
	Span   synop.Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("malformed token '%s': expected '...'", e.Lexeme)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// ConfigPanicOnMalformedDots is the configuration key for the default of
// option PanicOnMalformedDots.
const ConfigPanicOnMalformedDots = "panic-on-malformed-dots"

// RuneTokenizer is the default implementation of Tokenizer. It reads runes
// from an input reader, one token at a time. A RuneTokenizer cannot be
// restarted. Create one with New.
type RuneTokenizer struct {
	reader      io.RuneReader
	next        rune         // lookahead rune
	nextSize    int          // byte length of lookahead
	hasNext     bool         // is next valid?
	isEOF       bool         // reader is exhausted
	offset      uint64       // byte offset of lookahead
	span        synop.Span   // span of last token
	lexeme      bytes.Buffer // lexeme of current token
	Error       func(error)  // error handler
	panicOnDots bool         // abort on malformed '...'
}

var _ Tokenizer = (*RuneTokenizer)(nil)

// New creates a tokenizer for synopses, reading from input.
func New(input io.Reader, opts ...Option) *RuneTokenizer {
	t := &RuneTokenizer{
		Error:       logError,
		panicOnDots: gconf.GetBool(ConfigPanicOnMalformedDots),
	}
	if rr, ok := input.(io.RuneReader); ok {
		t.reader = rr
	} else {
		t.reader = bufio.NewReader(input)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromString creates a tokenizer for a synopsis given as a string.
func FromString(input string, opts ...Option) *RuneTokenizer {
	return New(strings.NewReader(input), opts...)
}

// SetErrorHandler sets an error handler for the scanner.
func (t *RuneTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// Span is part of the Tokenizer interface.
func (t *RuneTokenizer) Span() synop.Span {
	return t.span
}

// NextToken is part of the Tokenizer interface.
func (t *RuneTokenizer) NextToken() synop.Token {
	r, ok := t.lookahead()
	for ok && unicode.IsSpace(r) {
		t.skip()
		r, ok = t.lookahead()
	}
	if !ok {
		t.span = synop.Span{t.offset, t.offset}
		tracer().Debugf("RuneTokenizer reached end of input")
		return synop.MakeToken(synop.EOF, "")
	}
	start := t.offset
	t.lexeme.Reset()
	var tok synop.Token
	switch t.match() {
	case '-':
		kind := synop.ShortOpt
		if r, ok := t.lookahead(); ok && r == '-' {
			t.match()
			kind = synop.LongOpt
		}
		prefix := t.lexeme.Len()
		t.matchOptionRunes()
		tok = synop.MakeToken(kind, t.lexeme.String()[prefix:])
	case '[':
		tok = synop.MakeToken(synop.LBracket, "")
	case ']':
		tok = synop.MakeToken(synop.RBracket, "")
	case '{':
		tok = synop.MakeToken(synop.LBrace, "")
	case '}':
		tok = synop.MakeToken(synop.RBrace, "")
	case '|':
		tok = synop.MakeToken(synop.Bar, "")
	case '.':
		tok = t.ellipsis(start)
	default:
		t.matchOptionRunes()
		tok = synop.MakeToken(synop.Text, t.lexeme.String())
	}
	t.span = synop.Span{start, t.offset}
	tracer().Debugf("token %v @%v", tok, t.span)
	return tok
}

// ellipsis matches the remaining dots of '...', the first one already matched.
func (t *RuneTokenizer) ellipsis(start uint64) synop.Token {
	for i := 0; i < 2; i++ {
		if r, ok := t.lookahead(); !ok || r != '.' {
			err := &LexError{
				Lexeme: t.lexeme.String(),
				Span:   synop.Span{start, t.offset},
			}
			if t.panicOnDots {
				panic(err)
			}
			t.Error(err)
			return synop.MakeToken(synop.Illegal, err.Lexeme)
		}
		t.match()
	}
	return synop.MakeToken(synop.Dots, "")
}

func (t *RuneTokenizer) matchOptionRunes() {
	for r, ok := t.lookahead(); ok && IsOptionRune(r); r, ok = t.lookahead() {
		t.match()
	}
}

func (t *RuneTokenizer) lookahead() (rune, bool) {
	if t.hasNext {
		return t.next, true
	}
	if t.isEOF {
		return utf8.RuneError, false
	}
	r, sz, err := t.reader.ReadRune()
	if err != nil {
		t.isEOF = true
		if err != io.EOF {
			t.Error(fmt.Errorf("scanner cannot read input (%w)", err))
		}
		return utf8.RuneError, false
	}
	t.next, t.nextSize, t.hasNext = r, sz, true
	return r, true
}

// match appends the lookahead rune to the current lexeme.
func (t *RuneTokenizer) match() rune {
	r := t.next
	t.lexeme.WriteRune(r)
	t.skip()
	return r
}

func (t *RuneTokenizer) skip() {
	t.offset += uint64(t.nextSize)
	t.hasNext = false
}

// --- Scanner options -------------------------------------------------------

// Option configures a rune tokenizer.
type Option func(t *RuneTokenizer)

// PanicOnMalformedDots sets or clears option PanicOnMalformedDots: instead of
// reporting a LexError to the error handler, the tokenizer will panic with it.
// The default is taken from configuration key ConfigPanicOnMalformedDots.
func PanicOnMalformedDots(b bool) Option {
	return func(t *RuneTokenizer) {
		t.panicOnDots = b
	}
}

// ErrorHandler sets an error handler, see SetErrorHandler.
func ErrorHandler(h func(error)) Option {
	return func(t *RuneTokenizer) {
		t.SetErrorHandler(h)
	}
}
