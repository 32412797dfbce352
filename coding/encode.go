// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version Version
	Level   Level
	Mode    Mode
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Mask is the mask pattern applied by Encoder.
const Mask = 0

// An Encoder runs the encoding pipeline against a set of tables.
type Encoder struct {
	Tables Tables
	Trace  *Tracer
}

// Encode returns the QR code for text at error correction level l,
// in the smallest version holding it.
func (e *Encoder) Encode(text string, l Level) (*Code, error) {
	if e.Tables == nil {
		return nil, errors.New("qr: no tables")
	}
	if !l.Valid() {
		return nil, ErrLevel
	}
	tr := e.Trace

	mode, err := Classify(text, tr)
	if err != nil {
		return nil, err
	}
	seg := Segment{text, mode}
	data, err := seg.EncodeData()
	if err != nil {
		return nil, err
	}
	v, width, err := Resolve(e.Tables, l, mode, seg.Len())
	if err != nil {
		return nil, err
	}
	tr.Printf(1, "version %s-%s, %d %s characters, count width %d",
		v, l, seg.Len(), mode, width)

	info, ok := e.Tables.ECInfo(v, l)
	if !ok {
		return nil, fmt.Errorf("%w: no error correction for %s-%s",
			ErrVersion, v, l)
	}
	dat, err := BuildCodewords(mode, seg.Len(), width, data, info.DataCodewords, tr)
	if err != nil {
		return nil, err
	}
	all, err := AddCheckBytes(dat, info, tr)
	if err != nil {
		return nil, err
	}
	var bits Bits
	bits.AppendBytes(all)

	centers, ok := e.Tables.AlignmentCenters(v)
	if !ok {
		return nil, fmt.Errorf("%w: no alignment centers for version %s",
			ErrVersion, v)
	}
	mx, err := NewMatrix(v, centers, tr)
	if err != nil {
		return nil, err
	}
	seq := mx.Zigzag()
	if err := mx.Place(seq, &bits, tr); err != nil {
		return nil, err
	}
	mx.ApplyMask(seq, tr)
	if err := mx.WriteFormat(l, Mask, tr); err != nil {
		return nil, err
	}
	tr.Printf(2, "symbol:\n%s", mx)

	c := mx.Finish()
	c.Version, c.Level, c.Mode = v, l, mode
	return c, nil
}
