/*
Package shared coordinates concurrent use of ordered maps.

Maps of package ordmap are immutable values and therefore safe to read from
any number of goroutines. What immutability does not answer is which version
of a map is the current one. Package shared provides that answer as a small
holder type: a shared.Map guards the current version, installs successor
versions atomically, and broadcasts every newly installed version to
subscribed watchers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package shared

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
