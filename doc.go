/*
Package synop is a toolbox for usage synopses, the compact notation found in
manual pages and help texts:

    git [--version] [-C path] {add | commit [-m msg]} file...

Synop parses a synopsis into an abstract syntax tree, normalizes the tree to a
canonical form, prints it back in synopsis notation and enumerates
(a bounded sample of) the concrete command lines it denotes.
Package structure is as follows:

■ scanner: Package scanner splits a synopsis into tokens. Sub-package lexmach
provides an alternative tokenizer based on lexmachine.

■ ast: Package ast defines the syntax tree, pretty printing and normalization.

■ parser: Package parser implements a recursive descent parser for synopses.

■ expand: Package expand enumerates the command lines of a synopsis.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synop
