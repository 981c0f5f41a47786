/*
Package textindex builds ordered word indexes from text.

Words are recognized by Unicode word breaking (UAX#29) and collected into an
ordmap.Map, keyed by the case-folded word. Clients get the ordered map
surface for free: alphabetic listing, range scans over key prefixes, and
stable snapshots of an index while a newer one is being built.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
