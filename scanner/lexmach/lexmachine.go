package lexmach

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/synop"
	"github.com/npillmayer/synop/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'synop.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("synop.scanner")
}

// syntaxTracer is the global syntax tracer, if one is installed.
func syntaxTracer() tracing.Trace {
	if gtrace.SyntaxTracer != nil {
		return gtrace.SyntaxTracer
	}
	return tracer()
}

// The tokens representing literal lexemes
var literals = []string{"[", "]", "{", "}", "|", "..."}

// tokenIds maps token names to token types
var tokenIds = map[string]int{
	"TEXT":     int(synop.Text),
	"SHORTOPT": int(synop.ShortOpt),
	"LONGOPT":  int(synop.LongOpt),
	"[":        int(synop.LBracket),
	"]":        int(synop.RBracket),
	"{":        int(synop.LBrace),
	"}":        int(synop.RBrace),
	"|":        int(synop.Bar),
	"...":      int(synop.Dots),
}

// Byte patterns. Bytes >= 0x80 stand in for any non-ASCII rune; wordToken
// decides on the exact extent of a match.
const (
	whitespace = "[ \t\n\r\v\f]+"
	optionChar = "([a-zA-Z0-9_]|\\-|[\x80-\xff])"
	// every byte except white space, '-', '.', '[', ']', '{', '|', '}'
	textStart = "([\x00-\x08]|[\x0e-\x1f]|[!-,]|[/-Z]|\\\\|\\^|[_-z]|[~-\xff])"
)

func initSynopsis(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(whitespace), Skip)
	lexer.Add([]byte(`\-\-`+optionChar+`*`), wordToken(synop.LongOpt))
	lexer.Add([]byte(`\-`+optionChar+`*`), wordToken(synop.ShortOpt))
	lexer.Add([]byte(textStart+optionChar+`*`), wordToken(synop.Text))
}

var adapter *LMAdapter
var adapterErr error
var startOnce sync.Once // monitors one-time creation of the DFA

// Lexer returns the lexmachine adapter for synopses. The DFA is compiled on
// first call.
func Lexer() (*LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		adapter, adapterErr = NewLMAdapter(initSynopsis, literals, tokenIds)
	})
	return adapter, adapterErr
}

// Tokenizer creates a lexmachine scanner for a synopsis.
func Tokenizer(input string) (*LMScanner, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(input)
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer for
// patterns, a list of literals ('[', '|', …) and a map for translating token
// strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		syntaxTracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{
		scanner:     s,
		Error:       logError,
		panicOnDots: gconf.GetBool(scanner.ConfigPanicOnMalformedDots),
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner     *lexmachine.Scanner
	span        synop.Span
	done        bool
	Error       func(error)
	panicOnDots bool
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Span is part of the Tokenizer interface.
func (lms *LMScanner) Span() synop.Span {
	return lms.span
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() synop.Token {
	if lms.done || lms.scanner == nil {
		return lms.eof()
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return lms.malformed(ui)
		}
		lms.Error(err)
		lms.done = true
		return lms.eof()
	}
	if eof {
		lms.done = true
		tracer().Debugf("LMScanner reached end of input")
		return lms.eof()
	}
	token := tok.(*lexmachine.Token)
	kind := synop.TokType(token.Type)
	lms.span = synop.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))}
	t := synop.MakeToken(kind, "")
	if t.IsWord() {
		t.Value = token.Value.(string)
	}
	tracer().Debugf("token %v @%v", t, lms.span)
	return t
}

func (lms *LMScanner) eof() synop.Token {
	n := uint64(len(lms.text()))
	lms.span = synop.Span{n, n}
	return synop.MakeToken(synop.EOF, "")
}

func (lms *LMScanner) text() []byte {
	if lms.scanner == nil {
		return nil
	}
	return lms.scanner.Text
}

// Unconsumed input is possible only for dots not forming '...'. The lexeme is
// the run of dots; the byte following it starts the next token.
func (lms *LMScanner) malformed(ui *machines.UnconsumedInput) synop.Token {
	text := lms.text()
	start, end := ui.StartTC, ui.StartTC
	for end < len(text) && end-start < 2 && text[end] == '.' {
		end++
	}
	if end == start { // no dot, not produced by the patterns above
		_, n := utf8.DecodeRune(text[start:])
		end = start + n
	}
	err := &scanner.LexError{
		Lexeme: string(text[start:end]),
		Span:   synop.Span{uint64(start), uint64(end)},
	}
	if lms.panicOnDots {
		panic(err)
	}
	lms.Error(err)
	lms.scanner.TC = end
	lms.span = err.Span
	return synop.MakeToken(synop.Illegal, err.Lexeme)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// wordToken is the action for words and options. It trims the match to the
// exact Unicode extent of the token and rewinds the scanner behind it.
func wordToken(kind synop.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		var prefix int
		switch kind {
		case synop.ShortOpt:
			prefix = 1
		case synop.LongOpt:
			prefix = 2
		default:
			if n := scanner.LeadingSpace(m.Bytes); n > 0 { // non-ASCII white space
				s.TC = m.TC + n
				return nil, nil
			}
			_, prefix = utf8.DecodeRune(m.Bytes)
		}
		n := prefix + scanner.OptionRun(m.Bytes[prefix:])
		if n < len(m.Bytes) {
			s.TC = m.TC + n
		}
		value := string(m.Bytes[prefix:n])
		if kind == synop.Text {
			value = string(m.Bytes[:n])
		}
		tok := s.Token(int(kind), value, m)
		tok.Lexeme = m.Bytes[:n]
		return tok, nil
	}
}
