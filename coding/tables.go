// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// ECInfo describes the error correction layout of a version and level.
type ECInfo struct {
	DataCodewords       int // total data codewords
	ECCodewordsPerBlock int // error correction codewords per block
	Blocks              int // number of blocks
}

// Tables supplies the per-version constants of the QR symbology.
// The boolean results report whether the table has an entry.
type Tables interface {
	// Versions returns the range of versions known to the table.
	Versions() (min, max Version)

	// Capacity returns the maximum number of characters of mode
	// that fit a code of version v and level l.
	Capacity(v Version, l Level, m Mode) (int, bool)

	// CountBits returns the width of the character count field.
	CountBits(v Version, m Mode) (int, bool)

	// ECInfo returns the error correction layout of version v at level l.
	ECInfo(v Version, l Level) (ECInfo, bool)

	// AlignmentCenters returns the alignment pattern center
	// coordinates, which are the same for rows and columns.
	AlignmentCenters(v Version) ([]int, bool)
}
