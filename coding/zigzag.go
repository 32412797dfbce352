// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// Zigzag claims the Blank cells of mx for data in placement order and
// returns their positions.  Columns are taken in pairs from the right,
// skipping the vertical timing pattern; the first pair runs upward and
// the direction alternates.  Within a pair the right column comes
// first.  Claimed cells are marked Zigzag.
func (mx *Matrix) Zigzag() []Point {
	siz := mx.Size
	seq := make([]Point, 0, mx.Writable())
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if mx.At(xx, y) == Blank {
					mx.set(xx, y, Zigzag)
					seq = append(seq, Point{xx, y})
				}
			}
		}
		up = !up
	}
	return seq
}

// Place writes bit i of bits to seq[i], black for 1.  Cells of seq
// past the end of bits are white.
func (mx *Matrix) Place(seq []Point, bits *Bits, tr *Tracer) error {
	if n := bits.Bits(); n > len(seq) {
		return fmt.Errorf("%w: %d bits into %d modules",
			ErrOverflow, n, len(seq))
	}
	n := bits.Bits()
	for i, p := range seq {
		mx.setBit(p.X, p.Y, i < n && bits.Bit(i))
	}
	tr.Printf(1, "placed %d bits, %d remainder modules", n, len(seq)-n)
	tr.Printf(2, "data:\n%s", mx)
	return nil
}

// ApplyMask inverts the modules of seq under mask pattern 0, those
// with an even sum of row and column.
func (mx *Matrix) ApplyMask(seq []Point, tr *Tracer) {
	for _, p := range seq {
		if (p.X+p.Y)%2 != 0 {
			continue
		}
		switch mx.At(p.X, p.Y) {
		case Black:
			mx.set(p.X, p.Y, White)
		case White:
			mx.set(p.X, p.Y, Black)
		}
	}
	tr.Printf(2, "masked:\n%s", mx)
}
