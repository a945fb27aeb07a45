/*
Command synop reads usage synopses and formats, checks or expands them.

	synop fmt       read a synopsis from stdin, print its normalized form
	synop opt       print the pretty form of every input line, as parsed
	synop expand    print every command line a synopsis denotes
	synop check     verify round trips for every input line
	synop repl      interactive mode

Synopses look like the usage lines of manual pages:

	$ echo 'git [--version] {add | commit} [-v]... file...' | synop expand --unroll 2

Global flags are --trace <level>, --dfa (use the DFA tokenizer) and
--panic-on-malformed-dots. Flags double as the application configuration
(see package gconf), so the latter sets the scanner's configuration key of
the same name.

Errors are printed to stderr, and synop exits with a non-zero status.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'synop.cli'
func tracer() tracing.Trace {
	return tracing.Select("synop.cli")
}
