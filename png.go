// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"image/png"
	"io"
)

var ErrLargeImage = errors.New("qr: image too large")

// maxPixels limits the side of a rendered image.
const maxPixels = 32767 * 8

// PNG returns a PNG image displaying the code, or nil if the code
// cannot be rendered.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	if c.Scale*(c.Size+c.Border*2) > maxPixels {
		return ErrLargeImage
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.Image())
}
