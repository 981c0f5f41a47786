/*
Package ordmap offers ordered, immutable key-value maps.

Ordered Maps

Maps of this package keep their entries sorted by key and never change in
place. Every update returns a new map version which shares almost all of its
structure with its predecessor, so keeping many versions around is cheap.
Internally entries live in a persistent weight-balanced search tree, provided
by the wbtree subpackage.

From Wikipedia:
In computing, a persistent data structure is a data structure that always
preserves the previous version of itself when it is modified. Such data
structures are effectively immutable, as their operations do not (visibly)
update the structure in-place, but instead always yield a new updated
structure. […] These types of data structures are particularly common in
logical and functional programming.

_________________________________________________________________________

Go's built-in map is unordered and mutable: iteration order is randomized
and sharing an instance between goroutines requires locking. An ordmap.Map
complements it where key order matters (range scans, smallest/largest,
ordered listing) or where readers must be able to keep using the version
they started with while writers move on.

Persistence shifts the concurrency question from "how do we lock the map"
to "which version is current". That coordination is deliberately left to
the caller; the shared subpackage packages the common answer, a holder
with atomically swapped versions and change broadcast.

For pure point lookups without ordering needs, the built-in map is the
better tool.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// MapError is an error type for the ordmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrMapCompleted signals that a builder has already completed a map and
// it's illegal to stage further edits.
const ErrMapCompleted = MapError("forbidden to stage edits; map has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")
