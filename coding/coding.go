// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the low-level QR symbol pipeline: mode
// selection, data encoding, codeword assembly, error correction,
// function pattern drawing, data placement, masking and format
// information.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrmatrix/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrMode     = errors.New("qr: no encoding mode accepts input")
	ErrCapacity = errors.New("qr: data too long")
	ErrBitWidth = errors.New("qr: no character count width")
	ErrOverflow = errors.New("qr: codeword overflow")
	ErrVersion  = errors.New("qr: invalid version")
	ErrCharset  = errors.New("qr: character not representable")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int { return 4*int(v) + 17 }

// Valid reports whether v is in the range MinVersion to MaxVersion.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of L, M, Q and H.
func (l Level) Valid() bool { return L <= l && l <= H }

// formatBits returns the two level bits of the format information.
func (l Level) formatBits() uint16 {
	return [4]uint16{L: 1, M: 0, Q: 3, H: 2}[l]
}

// ParseLevel returns the Level named by s, which is one of
// "L", "M", "Q", "H" in either case.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, fmt.Errorf("%w %q", ErrLevel, s)
}
