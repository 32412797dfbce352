// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as a single QR code.

The whole text is encoded as one segment in the most compact mode
accepting all of it (numeric, alphanumeric, kanji or byte), in the
smallest version that holds it at the requested error correction
level, with mask pattern 0.  The resulting Code renders as an image,
PNG, PBM, EPS or text.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/unixdj/qrmatrix/coding"
	"github.com/unixdj/qrmatrix/tables"
)

var ErrArgs = errors.New("qr: invalid arguments")

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// ParseLevel returns the Level named by s, one of "L", "M", "Q" and
// "H" in either case.
func ParseLevel(s string) (Level, error) {
	l, err := coding.ParseLevel(s)
	return Level(l), err
}

type options struct {
	tables coding.Tables
	trace  *coding.Tracer
}

// An Option configures Encode.
type Option func(*options)

// WithTables makes Encode use t instead of tables.Standard.
func WithTables(t coding.Tables) Option {
	return func(o *options) { o.tables = t }
}

// WithTrace makes Encode write a trace of the encoding stages to w.
// Verbosity 0 disables tracing; see coding.Tracer.
func WithTrace(verbosity int, w io.Writer) Option {
	return func(o *options) {
		if verbosity <= 0 || w == nil {
			o.trace = nil
			return
		}
		o.trace = &coding.Tracer{
			Verbosity: verbosity,
			Logger:    log.New(w, "", 0),
		}
	}
}

// Encode returns an encoding of text at the given error correction level.
func Encode(text string, level Level, opts ...Option) (*Code, error) {
	o := options{tables: tables.Standard}
	for _, f := range opts {
		f(&o)
	}
	if o.tables == nil {
		return nil, ErrArgs
	}
	e := coding.Encoder{Tables: o.tables, Trace: o.trace}
	cc, err := e.Encode(text, coding.Level(level))
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Scale:   8,
		Border:  4,
		Version: cc.Version,
		Level:   level,
		Mode:    cc.Mode,
	}, nil
}

// A Code is a square pixel grid.
// It implements image.Image and direct PBM encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Reverse bool            // swap black and white
	Palette *[2]color.Color // background and foreground; nil for white and black

	Version coding.Version // QR version
	Level   Level          // error correction level
	Mode    coding.Mode    // encoding mode
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		c.Stride >= (c.Size+7)/8 && len(c.Bitmap) >= c.Size*c.Stride
}

// ink reports whether the image pixel (x,y), in QR pixels relative
// to the top left corner of the quiet zone, is drawn in the
// foreground colour.
func (c *Code) ink(x, y int) bool {
	return c.Black(x-c.Border, y-c.Border) != c.Reverse
}

// Image returns an Image displaying the code, including the quiet zone.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Scale <= 0 || x < 0 || y < 0 {
		return c.palette()[0]
	}
	return c.palette()[b2i(c.ink(x/c.Scale, y/c.Scale))]
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		p := c.palette()
		return color.Palette(p[:])
	}
	return color.GrayModel
}

func (c *Code) palette() [2]color.Color {
	if c.Palette != nil {
		return *c.Palette
	}
	return [2]color.Color{whiteColor, blackColor}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
