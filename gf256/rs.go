// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// generator returns the generator polynomial
// (x - α^0)(x - α^1)...(x - α^(e-1)) of degree e.
func (f *Field) generator(e int) Poly {
	g := Poly{1}
	for i := 0; i < e; i++ {
		g = f.PolyMul(g, Poly{1, f.Exp(i)})
	}
	return g
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid number of error correction bytes")
	}
	return &RSEncoder{f: f, c: c, gen: f.generator(c)}
}

// Generator returns a copy of the generator polynomial of rs.
func (rs *RSEncoder) Generator() Poly {
	return append(Poly(nil), rs.gen...)
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
// len(check) must equal the number of error correction bytes.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	// data * x^c, divided by the generator.
	p := make(Poly, len(data)+rs.c)
	for i, b := range data {
		p[i] = Elem(b)
	}
	_, rem := rs.f.PolyDivide(p, rs.gen)
	for i, v := range rem {
		check[i] = byte(v)
	}
}
