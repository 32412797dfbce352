// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tables provides the per-version constants of the QR
// symbology, either built in or loaded from JSON files.
package tables // import "github.com/unixdj/qrmatrix/tables"

import "github.com/unixdj/qrmatrix/coding"

// A Table holds capacities, character count widths, error correction
// layouts and alignment pattern centers for a contiguous range of
// versions starting at 1.  A Table is immutable once created and
// implements coding.Tables.
type Table struct {
	v      []entry // v[i] describes version i+1
	widths []widthRange
}

type entry struct {
	capacity [4][4]int // [level][mode]
	ec       [4]coding.ECInfo
	align    []int
}

// widthRange lists character count field widths by mode for a range
// of versions.
type widthRange struct {
	min, max coding.Version
	bits     [4]int
}

var _ coding.Tables = (*Table)(nil)

func (t *Table) entry(v coding.Version) *entry {
	if v < 1 || int(v) > len(t.v) {
		return nil
	}
	return &t.v[v-1]
}

func (t *Table) Versions() (min, max coding.Version) {
	return 1, coding.Version(len(t.v))
}

func (t *Table) Capacity(v coding.Version, l coding.Level, m coding.Mode) (int, bool) {
	e := t.entry(v)
	if e == nil || !l.Valid() || m < coding.Numeric || m > coding.Kanji {
		return 0, false
	}
	return e.capacity[l][m], true
}

func (t *Table) CountBits(v coding.Version, m coding.Mode) (int, bool) {
	if m < coding.Numeric || m > coding.Kanji {
		return 0, false
	}
	for _, w := range t.widths {
		if w.min <= v && v <= w.max {
			return w.bits[m], true
		}
	}
	return 0, false
}

func (t *Table) ECInfo(v coding.Version, l coding.Level) (coding.ECInfo, bool) {
	e := t.entry(v)
	if e == nil || !l.Valid() {
		return coding.ECInfo{}, false
	}
	return e.ec[l], true
}

// AlignmentCenters returns a copy of the alignment pattern centers
// of version v, nil for version 1.
func (t *Table) AlignmentCenters(v coding.Version) ([]int, bool) {
	e := t.entry(v)
	if e == nil {
		return nil, false
	}
	return append([]int(nil), e.align...), true
}

// Standard holds the tables of ISO/IEC 18004 for versions 1 to 40.
var Standard = newStandard()

var stdWidths = []widthRange{
	{1, 9, [4]int{10, 9, 8, 8}},
	{10, 26, [4]int{12, 11, 16, 10}},
	{27, 40, [4]int{14, 13, 16, 12}},
}

// capacity returns the number of characters of mode m fitting n data
// codewords after a 4 bit mode indicator and a count field of w bits.
func capacity(m coding.Mode, n, w int) int {
	bits := n*8 - 4 - w
	switch m {
	case coding.Numeric:
		c := bits / 10 * 3
		switch r := bits % 10; {
		case r >= 7:
			c += 2
		case r >= 4:
			c++
		}
		return c
	case coding.Alphanumeric:
		c := bits / 11 * 2
		if bits%11 >= 6 {
			c++
		}
		return c
	case coding.Byte:
		return bits / 8
	}
	return bits / 13
}

func newStandard() *Table {
	t := &Table{v: make([]entry, len(vtab)), widths: stdWidths}
	for i, vt := range vtab {
		e := &t.v[i]
		e.align = vt.align
		for l, lev := range vt.level {
			e.ec[l] = coding.ECInfo{
				DataCodewords:       vt.bytes - lev.nblock*lev.check,
				ECCodewordsPerBlock: lev.check,
				Blocks:              lev.nblock,
			}
			for m := coding.Numeric; m <= coding.Kanji; m++ {
				w, _ := t.CountBits(coding.Version(i+1), m)
				e.capacity[l][m] = capacity(m, e.ec[l].DataCodewords, w)
			}
		}
	}
	return t
}

// A version describes the codeword layout of a version.
type version struct {
	bytes int      // total codewords
	level [4]level // by error correction level
	align []int    // alignment pattern centers
}

type level struct {
	nblock int // number of blocks
	check  int // error correction codewords per block
}

var vtab = []version{
	{26, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}, nil},                                        // 1
	{44, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}, []int{6, 18}},                              // 2
	{70, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}, []int{6, 22}},                              // 3
	{100, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}, []int{6, 26}},                             // 4
	{134, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}, []int{6, 30}},                             // 5
	{172, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}, []int{6, 34}},                             // 6
	{196, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}, []int{6, 22, 38}},                         // 7
	{242, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}, []int{6, 24, 42}},                         // 8
	{292, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}, []int{6, 26, 46}},                         // 9
	{346, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}, []int{6, 28, 50}},                         // 10
	{404, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}, []int{6, 30, 54}},                        // 11
	{466, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}, []int{6, 32, 58}},                       // 12
	{532, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}, []int{6, 34, 62}},                       // 13
	{581, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}, []int{6, 26, 46, 66}},                   // 14
	{655, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}, []int{6, 26, 48, 70}},                  // 15
	{733, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}, []int{6, 26, 50, 74}},                  // 16
	{815, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}, []int{6, 30, 54, 78}},                  // 17
	{901, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}, []int{6, 30, 56, 82}},                  // 18
	{991, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}, []int{6, 30, 58, 86}},                  // 19
	{1085, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}, []int{6, 34, 62, 90}},                 // 20
	{1156, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}, []int{6, 28, 50, 72, 94}},             // 21
	{1258, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}, []int{6, 26, 50, 74, 98}},             // 22
	{1364, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}, []int{6, 30, 54, 78, 102}},            // 23
	{1474, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}, []int{6, 28, 54, 80, 106}},           // 24
	{1588, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}, []int{6, 32, 58, 84, 110}},           // 25
	{1706, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}, []int{6, 30, 58, 86, 114}},           // 26
	{1828, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}, []int{6, 34, 62, 90, 118}},           // 27
	{1921, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}, []int{6, 26, 50, 74, 98, 122}},       // 28
	{2051, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}, []int{6, 30, 54, 78, 102, 126}},      // 29
	{2185, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}, []int{6, 26, 52, 78, 104, 130}},      // 30
	{2323, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}, []int{6, 30, 56, 82, 108, 134}},      // 31
	{2465, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}, []int{6, 34, 60, 86, 112, 138}},      // 32
	{2611, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}, []int{6, 30, 58, 86, 114, 142}},      // 33
	{2761, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}, []int{6, 34, 62, 90, 118, 146}},      // 34
	{2876, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}, []int{6, 30, 54, 78, 102, 126, 150}}, // 35
	{3034, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}, []int{6, 24, 50, 76, 102, 128, 154}}, // 36
	{3196, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}, []int{6, 28, 54, 80, 106, 132, 158}}, // 37
	{3362, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}, []int{6, 32, 58, 84, 110, 136, 162}}, // 38
	{3532, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}, []int{6, 26, 54, 82, 110, 138, 166}}, // 39
	{3706, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}, []int{6, 30, 58, 86, 114, 142, 170}}, // 40
}
