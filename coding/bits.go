// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// Bits is an append-only bit buffer, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits in b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b.  It panics unless b ends at a
// byte boundary.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Bit returns the i-th bit of b.
func (b *Bits) Bit(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// Write appends the low nbit bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Append appends the contents of c to b.
func (b *Bits) Append(c *Bits) {
	n := c.nbit
	for _, x := range c.b {
		if n < 8 {
			b.Write(uint32(x>>(8-n)), n)
			break
		}
		b.Write(uint32(x), 8)
		n -= 8
	}
}

// AppendBytes appends p to b.
func (b *Bits) AppendBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, x := range p {
		b.Write(uint32(x), 8)
	}
}

// String returns b as a string of '0' and '1' characters.
func (b *Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.nbit)
	for i := 0; i < b.nbit; i++ {
		if b.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
