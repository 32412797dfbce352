// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Encoding modes, in order of increasing bits per character.
const (
	Numeric      Mode = iota // decimal digits
	Alphanumeric             // digits, upper case letters and " $%*+-./:"
	Byte                     // ISO 8859-1 text
	Kanji                    // Shift JIS double byte characters
)

// A Mode is a QR segment encoding mode.
type Mode int

type modeEncoder struct {
	name      string
	indicator uint32 // 4 bit mode indicator

	// accepts reports whether the mode can encode the rune.
	accepts func(rune) bool

	// transform converts the text to the bytes fed to the encoders.
	transform func(string) (string, error)

	// encode3, encode2 and encode1 return the encoding of the bytes
	// and its length in bits.  They are called as long as N source
	// bytes are available, in descending order of N.  encode2 is
	// called on byte pairs only if encode1 is nil.
	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// sjis returns the Shift JIS encoding of r.
func sjis(r rune) (string, bool) {
	s, err := japanese.ShiftJIS.NewEncoder().String(string(r))
	return s, err == nil
}

// IsKanji reports whether r is encoded in Shift JIS as a double byte
// character in the ranges 0x8140-0x9ffc or 0xe040-0xebbf.
func IsKanji(r rune) bool {
	s, ok := sjis(r)
	if !ok || len(s) != 2 {
		return false
	}
	c := uint16(s[0])<<8 | uint16(s[1])
	return 0x8140 <= c && c <= 0x9ffc || 0xe040 <= c && c <= 0xebbf
}

var modes = [...]modeEncoder{
	Numeric: {
		name:      "numeric",
		indicator: 1,
		accepts:   func(r rune) bool { return uint32(r-'0') < 10 },
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0])*10 + uint32(b[1]) - '0'*11&0x7f, 7
		},
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0])*100 + uint32(b[1])*10 +
				uint32(b[2]) + -'0'*111&0x3ff, 10
		},
	},
	Alphanumeric: {
		name:      "alphanumeric",
		indicator: 2,
		accepts: func(r rune) bool {
			return uint32(r-' ') < 64 && alphamask>>(uint32(r)-' ')&1 != 0
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
	},
	Byte: {
		name:      "byte",
		indicator: 4,
		accepts:   func(rune) bool { return true },
		transform: func(s string) (string, error) {
			return charmap.ISO8859_1.NewEncoder().String(s)
		},
		encode1: func(b byte) (uint32, int) { return uint32(b), 8 },
	},
	Kanji: {
		name:      "kanji",
		indicator: 8,
		accepts:   IsKanji,
		transform: func(s string) (string, error) {
			return japanese.ShiftJIS.NewEncoder().String(s)
		},
		encode2: func(b [2]byte) (uint32, int) {
			c := uint32(b[0])<<8 | uint32(b[1])
			if c <= 0x9ffc {
				c -= 0x8140
			} else {
				c -= 0xc140
			}
			return c>>8*0xc0 + c&0xff, 13
		},
	},
}

func getMode(mode Mode) *modeEncoder {
	if Numeric <= mode && mode <= Kanji {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// Indicator returns the 4 bit mode indicator of mode.
func (mode Mode) Indicator() uint32 {
	if m := getMode(mode); m != nil {
		return m.indicator
	}
	return 0
}

// Is reports whether r is encodable in mode.
func Is(r rune, mode Mode) bool {
	m := getMode(mode)
	return m != nil && m.accepts(r)
}

// Classify returns the most compact mode able to encode every
// character of text.  Numeric is preferred over Alphanumeric, which
// is preferred over Kanji and then Byte.  The empty string is Numeric.
func Classify(text string, tr *Tracer) (Mode, error) {
	ok := [4]bool{true, true, true, true}
	for i, r := range text {
		if r == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(text[i:]); n == 1 {
				return 0, fmt.Errorf("%w: invalid UTF-8 at byte %d",
					ErrCharset, i)
			}
		}
		for mode := range ok {
			ok[mode] = ok[mode] && modes[mode].accepts(r)
		}
		tr.Printf(2, "classify %q: numeric=%t alphanumeric=%t kanji=%t",
			r, ok[Numeric], ok[Alphanumeric], ok[Kanji])
	}
	for _, mode := range [...]Mode{Numeric, Alphanumeric, Kanji, Byte} {
		if ok[mode] {
			tr.Printf(1, "mode: %s", mode)
			return mode, nil
		}
	}
	return 0, ErrMode
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// Len returns the character count of seg, the number of runes in Text.
func (seg Segment) Len() int { return utf8.RuneCountInString(seg.Text) }

// SegmentError represents a Segment with text not encodable in its mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// Unwrap returns ErrMode for an invalid mode and ErrCharset otherwise.
func (e SegmentError) Unwrap() error {
	if getMode(e.Mode) == nil {
		return ErrMode
	}
	return ErrCharset
}

// EncodeData returns the data bits of seg, without the mode indicator
// and character count.
func (seg Segment) EncodeData() (*Bits, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return nil, SegmentError(seg)
	}
	for _, r := range seg.Text {
		if !m.accepts(r) {
			return nil, SegmentError(seg)
		}
	}
	s := seg.Text
	if m.transform != nil {
		t, err := m.transform(s)
		if err != nil {
			return nil, SegmentError(seg)
		}
		s = t
	}
	b := new(Bits)
	if m.encode3 != nil {
		for ; len(s) >= 3; s = s[3:] {
			b.Write(m.encode3([3]byte{s[0], s[1], s[2]}))
		}
	}
	if m.encode2 != nil {
		for ; len(s) >= 2; s = s[2:] {
			b.Write(m.encode2([2]byte{s[0], s[1]}))
		}
	}
	if m.encode1 != nil {
		for ; len(s) >= 1; s = s[1:] {
			b.Write(m.encode1(s[0]))
		}
	}
	if s != "" {
		panic("qr: " + m.name + " mode internal error")
	}
	return b, nil
}
