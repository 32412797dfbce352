// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

const (
	formatPoly  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1
	formatMask  = 0x5412 // 101010000010010
	versionPoly = 0x1f25 // x^12+x^11+x^10+x^9+x^8+x^5+x^2+1
)

// bch returns data followed by the remainder of data*x^n divided by
// the degree n generator poly.
func bch(data, poly uint32, n int) uint32 {
	v := data << n
	for top := 31; top >= n; top-- {
		if v>>top&1 != 0 {
			v ^= poly << (top - n)
		}
	}
	return data<<n | v
}

// FormatBits returns the 15 bit format information for level l and
// mask pattern mask.
func FormatBits(l Level, mask int) (uint16, error) {
	if !l.Valid() {
		return 0, ErrLevel
	}
	if mask < 0 || mask > 7 {
		return 0, fmt.Errorf("qr: invalid mask %d", mask)
	}
	data := uint32(l.formatBits())<<3 | uint32(mask)
	return uint16(bch(data, formatPoly, 10) ^ formatMask), nil
}

// VersionBits returns the 18 bit version information for v,
// used in versions 7 and up.
func VersionBits(v Version) uint32 {
	return bch(uint32(v), versionPoly, 12)
}

// formatPoints returns the positions of the two copies of each format
// information bit, most significant bit first.
func formatPoints(siz int) (p [15][2]Point) {
	for k := 0; k < 15; k++ {
		switch {
		case k < 6:
			p[k][0] = Point{k, 8}
		case k < 8:
			p[k][0] = Point{k + 1, 8}
		case k == 8:
			p[k][0] = Point{8, 7}
		default:
			p[k][0] = Point{8, 14 - k}
		}
		if k < 7 {
			p[k][1] = Point{8, siz - 1 - k}
		} else {
			p[k][1] = Point{siz - 15 + k, 8}
		}
	}
	return p
}

// WriteFormat writes the format information for level l and mask
// pattern mask.
func (mx *Matrix) WriteFormat(l Level, mask int, tr *Tracer) error {
	fb, err := FormatBits(l, mask)
	if err != nil {
		return err
	}
	tr.Printf(1, "format: %015b", fb)
	for k, p := range formatPoints(mx.Size) {
		black := fb>>(14-k)&1 != 0
		mx.setBit(p[0].X, p[0].Y, black)
		mx.setBit(p[1].X, p[1].Y, black)
	}
	return nil
}
