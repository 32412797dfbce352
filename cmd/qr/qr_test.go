package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/coding"
)

func TestColourSet(t *testing.T) {
	tests := []struct {
		in   string
		want rgba
	}{
		{"Dark Green", rgba{0x00, 0x64, 0x00, 0xff}},
		{"f00", rgba{0xff, 0x00, 0x00, 0xff}},
		{"f008", rgba{0xff, 0x00, 0x00, 0x88}},
		{"123456", rgba{0x12, 0x34, 0x56, 0xff}},
		{"12345678", rgba{0x12, 0x34, 0x56, 0x78}},
	}
	for _, tt := range tests {
		var c rgba
		require.NoError(t, c.Set(tt.in, nil), tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
	var c rgba
	assert.Error(t, c.Set("12345", nil))
	assert.Error(t, c.Set("chartreuse-ish", nil))

	assert.Equal(t, "black", (&rgba{0, 0, 0, 0xff}).String())
	assert.Equal(t, "123456", (&rgba{0x12, 0x34, 0x56, 0xff}).String())
	assert.Equal(t, "12345678", (&rgba{0x12, 0x34, 0x56, 0x78}).String())
}

func TestRandr(t *testing.T) {
	defer func(cx int, inc [2]int) { g.cx, g.inc = cx, inc }(g.cx, g.inc)

	orig, err := qr.Encode("HELLO WORLD", qr.M)
	require.NoError(t, err)
	siz := orig.Size
	check := func(name string, want func(x, y int) bool) {
		c, err := qr.Encode("HELLO WORLD", qr.M)
		require.NoError(t, err)
		c = randr(c)
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				require.Equal(t, want(x, y), c.Black(x, y),
					"%s %d,%d", name, x, y)
			}
		}
	}

	g.cx, g.inc = 0, [2]int{1, 1}
	flip()
	check("flip", func(x, y int) bool { return orig.Black(siz-1-x, y) })

	g.cx, g.inc = 0, [2]int{1, 1}
	rotate()
	rotate()
	check("rotate 180", func(x, y int) bool {
		return orig.Black(siz-1-x, siz-1-y)
	})

	g.cx, g.inc = 0, [2]int{1, 1}
	rotate()
	rotate()
	rotate()
	rotate()
	check("rotate 360", orig.Black)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("QR_LEVEL", "q")
	t.Setenv("QR_FORMAT", "pbm")
	t.Setenv("QR_SCALE", "2")
	t.Setenv("QR_BORDER", "0")
	t.Setenv("QR_VERBOSE", "1")
	t.Setenv("QR_TABLES", "testdata")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, &config{
		Level:   "q",
		Format:  "pbm",
		Scale:   2,
		Border:  0,
		Verbose: 1,
		Tables:  "testdata",
	}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"QR_LEVEL", "x"},
		{"QR_FORMAT", "gif"},
		{"QR_SCALE", "0"},
		{"QR_SCALE", "big"},
		{"QR_BORDER", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := loadConfig()
			assert.Error(t, err)
		})
	}
	t.Setenv("QR_LEVEL", "x")
	_, err := loadConfig()
	assert.ErrorIs(t, err, coding.ErrLevel)
}
