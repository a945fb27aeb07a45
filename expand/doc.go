/*
Package expand enumerates the command lines a synopsis denotes.

Expansion works on normalized trees. Every node expands to an ordered list of
token sequences:

	Tok(t)       [t]
	Seq(xs)      Cartesian concatenation, last child varying fastest
	Opt(x)       the empty sequence, followed by the expansions of x
	Repeat(x)    1, 2, 3 copies of x
	Repeat(Opt(y))  0, 1, 2 copies of y
	Select(xs)   the expansions of all the alternatives, in order

Repetitions are infinite in principle; the expander unrolls them to a bounded
number of copies (3 by default, see option Unroll). Expansions are not
de-duplicated; clients may call Unique on the result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expand

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'synop.expand'.
func tracer() tracing.Trace {
	return tracing.Select("synop.expand")
}
