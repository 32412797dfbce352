// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/coding"
	"github.com/unixdj/qrmatrix/tables"
)

func decode(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := qrcode.NewQRCodeReader().Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_PURE_BARCODE: true,
	})
	require.NoError(t, err)
	return res.GetText()
}

// The symbols below have a single error correction block, so they
// are readable by standard decoders.
func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		text  string
		level qr.Level
		mode  coding.Mode
		v     coding.Version
	}{
		{"0", qr.L, coding.Numeric, 1},
		{"01234567", qr.M, coding.Numeric, 1},
		{"3141592653589793238462643383279502884197", qr.Q, coding.Numeric, 2},
		{"HELLO WORLD", qr.M, coding.Alphanumeric, 1},
		{"HELLO WORLD", qr.H, coding.Alphanumeric, 2},
		{"HTTPS://EXAMPLE.COM/QR-CODE", qr.L, coding.Alphanumeric, 2},
		{"hello, world", qr.L, coding.Byte, 1},
		{"https://github.com/unixdj/qrmatrix", qr.M, coding.Byte, 3},
		{"The quick brown fox jumps over the lazy dog", qr.L, coding.Byte, 3},
		{"点茗", qr.M, coding.Kanji, 1},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, err := qr.Encode(tt.text, tt.level)
			require.NoError(t, err)
			require.Equal(t, tt.v, c.Version)
			require.Equal(t, tt.mode, c.Mode)
			info, _ := tables.Standard.ECInfo(c.Version, coding.Level(tt.level))
			require.Equal(t, 1, info.Blocks)
			c.Scale = 4
			assert.Equal(t, tt.text, decode(t, c.Image()))
		})
	}
}

func TestEncodeOptions(t *testing.T) {
	want, err := qr.Encode("HELLO WORLD", qr.Q)
	require.NoError(t, err)

	tab, err := tables.LoadJSON(os.DirFS("tables/testdata"))
	require.NoError(t, err)
	got, err := qr.Encode("HELLO WORLD", qr.Q, qr.WithTables(tab))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = qr.Encode("x", qr.L, qr.WithTables(nil))
	assert.ErrorIs(t, err, qr.ErrArgs)

	var buf bytes.Buffer
	_, err = qr.Encode("HELLO WORLD", qr.Q, qr.WithTrace(1, &buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "mode: alphanumeric")
	assert.Contains(t, buf.String(), "format: 011010101011111")

	buf.Reset()
	_, err = qr.Encode("HELLO WORLD", qr.Q, qr.WithTrace(0, &buf))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = qr.Encode(strings.Repeat("A", 4297), qr.L)
	assert.ErrorIs(t, err, coding.ErrCapacity)
	_, err = qr.Encode("x", qr.Level(4))
	assert.ErrorIs(t, err, coding.ErrLevel)
}

func TestParseLevel(t *testing.T) {
	l, err := qr.ParseLevel("h")
	require.NoError(t, err)
	assert.Equal(t, qr.H, l)
	assert.Equal(t, "H", l.String())
	_, err = qr.ParseLevel("x")
	assert.ErrorIs(t, err, coding.ErrLevel)
}

func helloWorld(t *testing.T) *qr.Code {
	c, err := qr.Encode("HELLO WORLD", qr.M)
	require.NoError(t, err)
	require.Equal(t, 21, c.Size)
	return c
}

func TestImage(t *testing.T) {
	c := helloWorld(t)
	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 232, 232), img.Bounds())
	assert.Equal(t, color.GrayModel, img.ColorModel())
	assert.Equal(t, color.Gray{0xff}, img.At(0, 0))
	assert.Equal(t, color.Gray{0}, img.At(32, 32))
	assert.Equal(t, color.Gray{0}, img.At(32+6*8+7, 32+6*8+7))
	assert.Equal(t, color.Gray{0xff}, img.At(32+7*8, 32))

	c.Reverse = true
	assert.Equal(t, color.Gray{0}, img.At(0, 0))
	assert.Equal(t, color.Gray{0xff}, img.At(32, 32))

	c.Reverse = false
	red := color.RGBA{0xff, 0, 0, 0xff}
	c.Palette = &[2]color.Color{color.White, red}
	assert.Equal(t, red, img.At(32, 32))
	assert.Equal(t, color.White, img.At(0, 0))
}

func TestEncodePNG(t *testing.T) {
	c := helloWorld(t)
	c.Scale = 2
	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	want := c.Image()
	require.Equal(t, want.Bounds(), img.Bounds())
	for y := 0; y < 58; y++ {
		for x := 0; x < 58; x++ {
			wr, _, _, _ := want.At(x, y).RGBA()
			gr, _, _, _ := img.At(x, y).RGBA()
			require.Equal(t, wr, gr, "pixel %d,%d", x, y)
		}
	}
	assert.NotEmpty(t, c.PNG())

	c.Scale = 0
	assert.ErrorIs(t, c.EncodePNG(&buf), qr.ErrArgs)
	assert.Nil(t, c.PNG())
	c.Scale = 1 << 20
	assert.ErrorIs(t, c.EncodePNG(&buf), qr.ErrLargeImage)
}

func TestEncodePBM(t *testing.T) {
	c := helloWorld(t)
	c.Scale = 1
	var buf bytes.Buffer
	require.NoError(t, c.EncodePBM(&buf))
	b := buf.Bytes()
	header := "P4\n29 29\n"
	require.True(t, bytes.HasPrefix(b, []byte(header)))
	b = b[len(header):]
	require.Len(t, b, 29*4)
	assert.Equal(t, []byte{0, 0, 0, 0}, b[:4])
	// row 4: four quiet zone pixels, seven black, one white, ...
	assert.Equal(t, byte(0x0f), b[4*4])
	assert.Equal(t, byte(0xe0), b[4*4+1]&0xf0)

	c.Scale = 8
	buf.Reset()
	require.NoError(t, c.EncodePBM(&buf))
	assert.Equal(t, len("P4\n232 232\n")+232*29, buf.Len())
	assert.ErrorIs(t, c.EncodePBM(nil), qr.ErrArgs)
}

func TestString(t *testing.T) {
	c := helloWorld(t)
	s := c.String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.Len(t, lines, 15)
	for _, line := range lines {
		assert.Equal(t, 29, utf8.RuneCountInString(line))
	}
	assert.Equal(t, strings.Repeat(" ", 29), lines[0])
	// rows 0 and 1 of the code: finder tops
	assert.True(t, strings.HasPrefix(lines[2], "    █▀▀▀▀▀█ "), lines[2])

	var buf bytes.Buffer
	require.NoError(t, c.EncodeText(&buf))
	assert.Equal(t, s, buf.String())

	c.Border = 0
	lines = strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀▀▀▀█"), lines[0])
}

func TestEncodeASCII(t *testing.T) {
	c := helloWorld(t)
	c.Border = 1
	var buf bytes.Buffer
	require.NoError(t, c.EncodeASCII(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 23)
	assert.Equal(t, strings.Repeat(" ", 46), lines[0])
	assert.Equal(t, "  "+strings.Repeat("#", 14)+"  ", lines[1][:18])
}

func TestEncodeEPS(t *testing.T) {
	c := helloWorld(t)
	c.Scale = 4
	var buf bytes.Buffer
	require.NoError(t, c.EncodeEPS(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-2.0 EPSF-2.0\n"))
	assert.Contains(t, out, "%%Title: QR Code 1-M\n")
	assert.Contains(t, out, "%%BoundingBox: 247 337 364 454\n")
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if line == "r" || strings.HasSuffix(line, " p r") {
			rows++
		}
	}
	assert.Equal(t, 21, rows)
	assert.True(t, strings.HasSuffix(out, "%%Trailer\n"))
	assert.NotContains(t, out, "setrgbcolor")

	c.Reverse = true
	buf.Reset()
	require.NoError(t, c.EncodeEPS(&buf))
	assert.Contains(t, buf.String(), "0 0 0 setrgbcolor")
}

func ExampleEncode() {
	c, err := qr.Encode("HELLO WORLD", qr.M)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Version, c.Level, c.Mode, c.Size)
	// Output: 1 M alphanumeric 21
}
