// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Mode
	}{
		{"", Numeric},
		{"0", Numeric},
		{"01234567", Numeric},
		{"A", Alphanumeric},
		{"AC-42", Alphanumeric},
		{"HELLO WORLD", Alphanumeric},
		{" $%*+-./:", Alphanumeric},
		{"Hello, world", Byte},
		{"hello", Byte},
		{"café", Byte},
		{"点茗", Kanji},
		{"あいう", Kanji},
		{"点A", Byte},
		{"\U0001f600", Byte},
	}
	for _, tt := range tests {
		got, err := Classify(tt.text, nil)
		require.NoError(t, err, "%q", tt.text)
		assert.Equal(t, tt.want, got, "%q", tt.text)
	}

	_, err := Classify("ab\xffc", nil)
	assert.ErrorIs(t, err, ErrCharset)
}

func TestClassifyTrace(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tracer{Verbosity: 2, Logger: log.New(&buf, "", 0)}
	_, err := Classify("1A", tr)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `classify '1': numeric=true alphanumeric=true kanji=false`)
	assert.Contains(t, out, `classify 'A': numeric=false alphanumeric=true kanji=false`)
	assert.Contains(t, out, "mode: alphanumeric")

	buf.Reset()
	tr.Verbosity = 1
	_, err = Classify("1A", tr)
	require.NoError(t, err)
	assert.Equal(t, "mode: alphanumeric\n", buf.String())
}

func TestIsKanji(t *testing.T) {
	for _, r := range "点茗亜あア漢" {
		assert.True(t, IsKanji(r), "%q", r)
	}
	for _, r := range "Aｱé\U0001f600" {
		assert.False(t, IsKanji(r), "%q", r)
	}
	assert.True(t, Is('5', Numeric))
	assert.False(t, Is('a', Alphanumeric))
	assert.False(t, Is('a', Mode(7)))
}

func TestEncodeData(t *testing.T) {
	tests := []struct {
		seg  Segment
		want string
	}{
		{Segment{"", Numeric}, ""},
		{Segment{"12345", Numeric}, "0001111011" + "0101101"},
		{Segment{"01234567", Numeric}, "0000001100" + "0101011001" + "1000011"},
		{Segment{"8", Numeric}, "1000"},
		{Segment{"999", Numeric}, "1111100111"},
		{Segment{"AC-42", Alphanumeric}, "00111001110" + "11100111001" + "000010"},
		{Segment{"::", Alphanumeric}, "11111101000"},
		{Segment{"a", Byte}, "01100001"},
		{Segment{"é", Byte}, "11101001"},
		{Segment{"点", Kanji}, "0110110011111"},
		{Segment{"茗", Kanji}, "1101010101010"},
	}
	for _, tt := range tests {
		b, err := tt.seg.EncodeData()
		require.NoError(t, err, "%+v", tt.seg)
		assert.Equal(t, tt.want, b.String(), "%+v", tt.seg)
	}
}

func TestEncodeDataErrors(t *testing.T) {
	for _, seg := range []Segment{
		{"12a", Numeric},
		{"abc", Alphanumeric},
		{"点A", Kanji},
		{"€", Byte},
		{"点", Byte},
	} {
		_, err := seg.EncodeData()
		assert.ErrorIs(t, err, ErrCharset, "%+v", seg)
	}
	_, err := Segment{"1", Mode(9)}.EncodeData()
	assert.ErrorIs(t, err, ErrMode)
}

func TestSegmentLen(t *testing.T) {
	assert.Equal(t, 0, Segment{}.Len())
	assert.Equal(t, 4, Segment{"café", Byte}.Len())
	assert.Equal(t, 2, Segment{"点茗", Kanji}.Len())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "numeric", Numeric.String())
	assert.Equal(t, "kanji", Kanji.String())
	assert.Equal(t, "5", Mode(5).String())
	assert.Equal(t, uint32(4), Byte.Indicator())
	assert.Equal(t, uint32(8), Kanji.Indicator())
}

func TestParseLevel(t *testing.T) {
	for i, s := range []string{"L", "M", "Q", "H"} {
		l, err := ParseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, Level(i), l)
		assert.Equal(t, s, l.String())
	}
	l, err := ParseLevel("q")
	require.NoError(t, err)
	assert.Equal(t, Q, l)
	_, err = ParseLevel("X")
	assert.ErrorIs(t, err, ErrLevel)
	assert.False(t, Level(4).Valid())
}
