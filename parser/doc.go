/*
Package parser implements a recursive descent parser for synopses.

The grammar of synopses is

	expr   := term ('|' term)*
	term   := factor*
	factor := TEXT | SHORTOPT | LONGOPT
	        | '[' expr ']'
	        | '{' expr '}'
	        | factor '...'

Brackets create optional nodes, braces are for grouping only. The ellipsis
repeats the factor immediately preceding it, not the term built so far:
"a b..." repeats b only, "{a b}..." repeats the sequence. Terms and
expressions may be empty, which makes "[]", "a||c" and "a{|}c" valid.

The parser produces the raw tree, without normalizing it:

	expr, err := parser.ParseString("cp [-r] source... target")

Errors are reported as *ParseError, carrying the span of the offending token.
Lexical errors reported by the tokenizer abort parsing and are returned as is.
There is no error recovery.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'synop.parser'.
func tracer() tracing.Trace {
	return tracing.Select("synop.parser")
}
