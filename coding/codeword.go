// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/unixdj/qrmatrix/gf256"
)

// BuildCodewords returns the n data codewords holding a segment of
// count characters of mode m with the given data bits: the mode
// indicator, a character count field of width bits, the data, up to
// four terminator bits, zero bits up to a byte boundary and filler
// bytes 0xec and 0x11 alternately.
func BuildCodewords(m Mode, count, width int, data *Bits, n int, tr *Tracer) ([]byte, error) {
	if getMode(m) == nil {
		return nil, ErrMode
	}
	if width <= 0 || width > 16 || count < 0 || count >= 1<<width {
		return nil, fmt.Errorf("%w: count %d in %d bits",
			ErrOverflow, count, width)
	}
	nb := n * 8
	b := &Bits{b: make([]byte, 0, n)}
	b.Write(m.Indicator(), 4)
	b.Write(uint32(count), width)
	tr.Printf(1, "header: %s", b)
	tr.Printf(1, "data: %s", data)
	b.Append(data)
	if b.nbit > nb {
		return nil, fmt.Errorf("%w: %d bits into %d data codewords",
			ErrOverflow, b.nbit, n)
	}
	b.padTo(4, nb)
	tr.Printf(1, "padded: %s", b)
	return b.Bytes(), nil
}

// padTo adds up to t zero terminator bits to b, pads it with zero
// bits to a byte boundary and with filler bytes to n bits.
func (b *Bits) padTo(t, n int) {
	b.Write(0, min(t, n-b.nbit))
	b.Write(0, -b.nbit&7)
	for pad := byte(0xec); b.nbit < n; pad ^= 0xfd {
		b.Write(uint32(pad), 8)
	}
}

// AddCheckBytes returns data followed by its Reed-Solomon error
// correction codewords for the given layout.  Only single block
// codes are supported: for layouts with more than one block the
// check bytes are computed over all data as one block.
func AddCheckBytes(data []byte, info ECInfo, tr *Tracer) ([]byte, error) {
	if len(data) != info.DataCodewords {
		return nil, fmt.Errorf("%w: %d data codewords, want %d",
			ErrOverflow, len(data), info.DataCodewords)
	}
	if info.ECCodewordsPerBlock < 1 || info.ECCodewordsPerBlock > 254 {
		return nil, fmt.Errorf("%w: %d error correction codewords",
			ErrVersion, info.ECCodewordsPerBlock)
	}
	if info.Blocks > 1 {
		tr.Printf(1, "note: %d blocks not interleaved, encoding as one block",
			info.Blocks)
	}
	out := make([]byte, len(data)+info.ECCodewordsPerBlock)
	copy(out, data)
	gf256.NewRSEncoder(Field, info.ECCodewordsPerBlock).ECC(data, out[len(data):])
	tr.Dump(1, "data codewords", data)
	tr.Dump(1, "error correction codewords", out[len(data):])
	return out, nil
}
