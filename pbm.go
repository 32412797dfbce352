// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	scale := c.Scale
	pix := c.Size + c.Border*2
	length := scale * pix
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := 0; y < pix; y++ {
		pbmRow(row, c, y)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of QR pixels, quiet zone included, in PBM
// format.  PBM uses 1 for black.
func pbmRow(row []byte, c *Code, y int) {
	for i := range row {
		row[i] = 0
	}
	scale := c.Scale
	pix := c.Size + c.Border*2
	j := 0
	for x := 0; x < pix; x++ {
		if !c.ink(x, y) {
			j += scale
			continue
		}
		for end := j + scale; j < end; j++ {
			row[j>>3] |= 0x80 >> (j & 7)
		}
	}
}
