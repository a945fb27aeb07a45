package parser

import (
	"fmt"
	"io"

	"github.com/npillmayer/synop/ast"
	"github.com/npillmayer/synop/scanner"
	"github.com/npillmayer/synop/scanner/lexmach"
)

// ReadOption configures Read.
type ReadOption func(*readConfig)

type readConfig struct {
	dfa bool
}

// WithDFA selects the lexmachine-based tokenizer instead of the default rune
// tokenizer.
func WithDFA(b bool) ReadOption {
	return func(c *readConfig) {
		c.dfa = b
	}
}

// Read reads a synopsis from r, consuming all of its input, and parses it.
// Errors are wrapped with a prefix "parse error: ".
func Read(r io.Reader, opts ...ReadOption) (ast.Expr, error) {
	cfg := &readConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	t, err := tokenizer(r, cfg)
	if err != nil {
		return nil, err
	}
	expr, err := Parse(t)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return expr, nil
}

func tokenizer(r io.Reader, cfg *readConfig) (scanner.Tokenizer, error) {
	if !cfg.dfa {
		return scanner.New(r), nil
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}
	lms, err := lexmach.Tokenizer(string(input))
	if err != nil {
		return nil, fmt.Errorf("cannot create tokenizer: %w", err)
	}
	return lms, nil
}
