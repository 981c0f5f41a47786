/*
Package display renders ordered maps for terminals.

Listing prints the entries of a map as a wrapped key/value listing, Tree
prints the shape of the map's search tree, one node per line. Both use a
configurable color palette and adapt to the width of an interactive
terminal.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
