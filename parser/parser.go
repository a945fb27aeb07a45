package parser

import (
	"fmt"

	"github.com/npillmayer/synop"
	"github.com/npillmayer/synop/ast"
	"github.com/npillmayer/synop/scanner"
)

// ParseError is returned for input which does not conform to the grammar of
// synopses.
type ParseError struct {
	Msg  string
	Span synop.Span // span of the offending token
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Parser is a recursive descent parser for synopses. A parser consumes the
// tokens of a single input. Create one with NewParser.
type Parser struct {
	scan   scanner.Tokenizer
	lexErr error // first error reported by the tokenizer
}

// NewParser creates a parser reading tokens from t. The parser installs its
// own error handler at t.
func NewParser(t scanner.Tokenizer) *Parser {
	p := &Parser{scan: t}
	t.SetErrorHandler(func(e error) {
		tracer().Errorf("tokenizer reported error: %v", e)
		if p.lexErr == nil {
			p.lexErr = e
		}
	})
	return p
}

// Parse parses all the input of the tokenizer and returns the (un-normalized)
// tree.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, next, err := p.expr()
	if err != nil {
		tracer().Errorf("parse error: %v", err)
		return nil, err
	}
	if next.Kind != synop.EOF {
		err = p.unexpected(next)
		tracer().Errorf("parse error: %v", err)
		return nil, err
	}
	tracer().Debugf("parsed %v", expr)
	return expr, nil
}

// Parse parses the input of a tokenizer.
func Parse(t scanner.Tokenizer) (ast.Expr, error) {
	return NewParser(t).Parse()
}

// ParseString parses a synopsis given as a string.
func ParseString(s string) (ast.Expr, error) {
	return Parse(scanner.FromString(s))
}

// expr := term ('|' term)*
//
// Returns the expression together with the token terminating it.
func (p *Parser) expr() (ast.Expr, synop.Token, error) {
	var alts ast.Select
	for {
		term, next, err := p.term()
		if err != nil {
			return nil, next, err
		}
		alts = append(alts, term)
		if next.Kind != synop.Bar {
			if len(alts) == 1 {
				return alts[0], next, nil
			}
			return alts, next, nil
		}
	}
}

// term := factor*
func (p *Parser) term() (ast.Expr, synop.Token, error) {
	factors := ast.Seq{}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, tok, err
		}
		switch tok.Kind {
		case synop.Text, synop.ShortOpt, synop.LongOpt:
			factors = append(factors, ast.Tok{Token: tok})
		case synop.LBracket:
			x, err := p.group(synop.RBracket)
			if err != nil {
				return nil, tok, err
			}
			factors = append(factors, ast.Opt{X: x})
		case synop.LBrace:
			x, err := p.group(synop.RBrace)
			if err != nil {
				return nil, tok, err
			}
			factors = append(factors, x)
		case synop.Dots: // repeats the last factor only
			if len(factors) == 0 {
				return nil, tok, p.unexpected(tok)
			}
			last := len(factors) - 1
			factors[last] = ast.Repeat{X: factors[last]}
		default:
			if len(factors) == 1 {
				return factors[0], tok, nil
			}
			return factors, tok, nil
		}
	}
}

// group parses the expression inside of brackets or braces, including the
// closing token.
func (p *Parser) group(closer synop.TokType) (ast.Expr, error) {
	x, next, err := p.expr()
	if err != nil {
		return nil, err
	}
	if next.Kind != closer {
		return nil, p.expected(closer, next)
	}
	return x, nil
}

func (p *Parser) next() (synop.Token, error) {
	tok := p.scan.NextToken()
	if p.lexErr != nil {
		return tok, p.lexErr
	}
	if tok.Kind == synop.Illegal {
		return tok, p.unexpected(tok)
	}
	return tok, nil
}

func (p *Parser) unexpected(tok synop.Token) error {
	return &ParseError{
		Msg:  fmt.Sprintf("unexpected token '%s' found", tok.Pretty()),
		Span: p.scan.Span(),
	}
}

func (p *Parser) expected(closer synop.TokType, found synop.Token) error {
	expect := synop.MakeToken(closer, "").Pretty()
	if found.Kind == synop.EOF {
		return &ParseError{
			Msg:  fmt.Sprintf("expected '%s', found EOF", expect),
			Span: p.scan.Span(),
		}
	}
	return &ParseError{
		Msg:  fmt.Sprintf("expected '%s', found '%s'", expect, found.Pretty()),
		Span: p.scan.Span(),
	}
}
