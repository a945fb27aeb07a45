/*
Package lexmach provides a tokenizer for synopses based on the lexmachine
scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine compiles regular expressions over bytes into a DFA. Synopses allow
Unicode letters and numbers in words and option names, and Unicode white space
between tokens. The byte patterns therefore over-approximate every non-ASCII
rune, and the token actions trim a match to its exact extent, giving back the
remaining bytes to the scanner. The resulting token stream is identical to the
one of scanner.RuneTokenizer for valid UTF-8 input.

The DFA is compiled once, on first use. A scanner is instantiated for each
concrete input sequence:

	scan, err := lexmach.Tokenizer("git [--version] {add | commit} file...")
	if err != nil {
		// DFA could not be compiled
	}
	for token := scan.NextToken(); token.Kind != synop.EOF; token = scan.NextToken() {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
