// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// halfBlocks maps the upper and lower pixel of a text cell to a
// character.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String renders the code and its quiet zone as UTF-8 text, two rows
// of pixels per line using half blocks.  Black pixels are drawn as
// ink, so the code displays correctly as dark on a light terminal;
// set c.Reverse for light on dark.  c.Scale is ignored.
func (c *Code) String() string {
	var b strings.Builder
	c.writeText(&b)
	return b.String()
}

func (c *Code) writeText(b *strings.Builder) {
	bord := c.Border
	if bord < 0 {
		bord = 0
	}
	pix := c.Size + 2*bord
	for y := 0; y < pix; y += 2 {
		for x := 0; x < pix; x++ {
			n := 0
			if c.Black(x-bord, y-bord) != c.Reverse {
				n |= 2
			}
			if y+1 < pix && c.Black(x-bord, y+1-bord) != c.Reverse {
				n |= 1
			}
			b.WriteString(halfBlocks[n])
		}
		b.WriteByte('\n')
	}
}

// EncodeText writes c.String() to w.
func (c *Code) EncodeText(w io.Writer) error {
	if c == nil || w == nil {
		return ErrArgs
	}
	_, err := io.WriteString(w, c.String())
	return err
}

// EncodeASCII writes the code to w as ASCII text, two characters per
// pixel, "#" for black.
func (c *Code) EncodeASCII(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	pix := c.Size + 2*c.Border
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := 0; y < pix; y++ {
		for x := 0; x < pix; x++ {
			var p byte = ' '
			if c.ink(x, y) {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

func rgb(c color.Color) (r, g, b float64) {
	r16, g16, b16, _ := c.RGBA()
	return float64(r16) / 0xffff, float64(g16) / 0xffff, float64(b16) / 0xffff
}

// EncodeEPS writes an Encapsulated PostScript image of the code to w,
// centered on a letter page, c.Scale points per pixel.
func (c *Code) EncodeEPS(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qrmatrix https://github.com/unixdj/qrmatrix
%%%%Title: QR Code %s-%s
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		c.Version, c.Level, xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	// paint the background over the quiet zone when it is not white
	rev := c.Reverse
	if rev || c.Palette != nil {
		pal := c.palette()
		bg, fg := pal[0], pal[1]
		if rev {
			bg, fg = fg, bg
		}
		br, bgr, bb := rgb(bg)
		fr, fgr, fb := rgb(fg)
		fmt.Fprintf(b, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord, br, bgr, bb, fr, fgr, fb)
	}
	fmt.Fprintln(b, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			start := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d p ", x-start, start-s)
		}
		fmt.Fprintln(b, "r")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	return b.Flush()
}
