/*
Package ast implements the abstract syntax tree for synopses.

A synopsis is parsed into a tree of expressions. There are five kinds of
tree nodes:

	Tok       a leaf, matching exactly one token
	Seq       concatenation of expressions
	Opt       zero or one occurrences of an expression
	Repeat    one or more occurrences of an expression
	Select    alternation of expressions

Trees are strict trees: no node is shared between parents, and trees are never
mutated after construction. Normalize produces a new tree in canonical form.
Normalizing may result in no tree at all (nil), if the synopsis denotes
nothing but the empty command line. This is not an error.

Pretty renders a tree back to the surface syntax of synopses, grouping with
braces where necessary. Parsing the pretty form of a tree and normalizing it
results in a tree equal to the normalized original.

Clients implementing operations on trees outside of this package should do so
by implementing Visitor, making sure every kind of node is handled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'synop.ast'.
func tracer() tracing.Trace {
	return tracing.Select("synop.ast")
}
