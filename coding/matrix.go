// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strings"
)

// A Module is the state of a single cell of a Matrix.
type Module byte

const (
	Blank  Module = iota // not yet assigned
	White                // light module
	Black                // dark module
	Zigzag               // claimed for data, not yet written
)

var moduleGlyph = [...]string{
	Blank:  "░░",
	White:  "  ",
	Black:  "██",
	Zigzag: "▓▓",
}

func (m Module) String() string {
	if int(m) < len(moduleGlyph) {
		return moduleGlyph[m]
	}
	return "??"
}

// A Point is a module position: X is the column, Y the row.
type Point struct {
	X, Y int
}

// A Matrix is a QR symbol under construction.  NewMatrix draws the
// function patterns; the remaining Blank cells are claimed by Zigzag,
// written by Place and masked by ApplyMask.  WriteFormat fills in the
// format information.
type Matrix struct {
	Version Version
	Size    int
	m       []Module
}

// At returns the module at column x, row y.
func (mx *Matrix) At(x, y int) Module { return mx.m[y*mx.Size+x] }

func (mx *Matrix) set(x, y int, m Module) { mx.m[y*mx.Size+x] = m }

func (mx *Matrix) setBit(x, y int, black bool) {
	if black {
		mx.set(x, y, Black)
	} else {
		mx.set(x, y, White)
	}
}

func (mx *Matrix) in(x, y int) bool {
	return 0 <= x && x < mx.Size && 0 <= y && y < mx.Size
}

// NewMatrix returns a matrix for version v with the timing, finder
// and alignment patterns, the dark module and the version information
// drawn, and the format information cells reserved.  centers lists
// the alignment pattern center coordinates.
func NewMatrix(v Version, centers []int, tr *Tracer) (*Matrix, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w %d", ErrVersion, v)
	}
	siz := v.Size()
	for _, c := range centers {
		if c < 2 || c > siz-3 {
			return nil, fmt.Errorf("%w: alignment center %d in version %s",
				ErrVersion, c, v)
		}
	}
	mx := &Matrix{Version: v, Size: siz, m: make([]Module, siz*siz)}

	// timing patterns
	for i := 0; i < siz; i++ {
		mx.setBit(i, 6, i&1 == 0)
		mx.setBit(6, i, i&1 == 0)
	}

	// finder patterns with separators
	mx.finderBox(3, 3)
	mx.finderBox(siz-4, 3)
	mx.finderBox(3, siz-4)

	// alignment patterns
	for _, y := range centers {
		for _, x := range centers {
			if x == 6 && (y == 6 || y == siz-7) || y == 6 && x == siz-7 {
				continue
			}
			mx.alignBox(x, y)
		}
	}

	// format information, filled in by WriteFormat
	for _, p := range formatPoints(siz) {
		mx.set(p[0].X, p[0].Y, White)
		mx.set(p[1].X, p[1].Y, White)
	}
	mx.set(8, siz-8, Black)

	if v >= 7 {
		mx.writeVersion()
	}
	tr.Printf(2, "function patterns:\n%s", mx)
	return mx, nil
}

// finderBox draws a finder pattern centered at x, y with its
// separator, clipped to the matrix.
func (mx *Matrix) finderBox(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			if !mx.in(x+dx, y+dy) {
				continue
			}
			d := max(abs(dx), abs(dy))
			mx.setBit(x+dx, y+dy, d != 2 && d != 4)
		}
	}
}

// alignBox draws an alignment pattern centered at x, y.
func (mx *Matrix) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			mx.setBit(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// writeVersion draws the two copies of the version information.
func (mx *Matrix) writeVersion() {
	bits := VersionBits(mx.Version)
	for i := 0; i < 18; i++ {
		black := bits>>i&1 != 0
		a, b := i/3, mx.Size-11+i%3
		mx.setBit(b, a, black) // top right
		mx.setBit(a, b, black) // bottom left
	}
}

// Writable returns the number of Blank cells.
func (mx *Matrix) Writable() int {
	n := 0
	for _, m := range mx.m {
		if m == Blank {
			n++
		}
	}
	return n
}

// Finish returns the two-colour code of mx.  It panics if any cell
// is Blank or Zigzag.
func (mx *Matrix) Finish() *Code {
	siz := mx.Size
	stride := (siz + 7) >> 3
	c := &Code{Size: siz, Stride: stride, Bitmap: make([]byte, siz*stride)}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			switch mx.At(x, y) {
			case Black:
				c.Bitmap[y*stride+x>>3] |= 1 << uint(7&^x)
			case White:
			default:
				panic(fmt.Sprintf("qr: unwritten module at %d,%d", x, y))
			}
		}
	}
	return c
}

// String renders mx two characters per module, one row per line.
func (mx *Matrix) String() string {
	var sb strings.Builder
	for y := 0; y < mx.Size; y++ {
		for x := 0; x < mx.Size; x++ {
			sb.WriteString(mx.At(x, y).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
