// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"encoding/hex"
	"log"
)

// A Tracer writes diagnostic output of the encoding stages.
// Verbosity 1 traces stage summaries, bit strings and codeword dumps;
// verbosity 2 adds per-character classification and intermediate
// matrices.  A nil *Tracer or one with a nil Logger traces nothing.
type Tracer struct {
	Verbosity int
	Logger    *log.Logger
}

// Enabled reports whether t traces at verbosity v.
func (t *Tracer) Enabled(v int) bool {
	return t != nil && t.Logger != nil && t.Verbosity >= v
}

// Printf logs a message if t traces at verbosity v.
func (t *Tracer) Printf(v int, format string, args ...any) {
	if t.Enabled(v) {
		t.Logger.Printf(format, args...)
	}
}

// Dump logs a hex dump of b under a heading if t traces at verbosity v.
func (t *Tracer) Dump(v int, heading string, b []byte) {
	if t.Enabled(v) {
		t.Logger.Printf("%s (%d bytes):\n%s", heading, len(b), hex.Dump(b))
	}
}
