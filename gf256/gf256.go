// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon error correction coding over it.
package gf256 // import "github.com/unixdj/qrmatrix/gf256"

import "strconv"

// An Elem is an element of GF(256).
type Elem byte

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  A Field is immutable once created and can be shared.
type Field struct {
	exp [512]Elem // exp[i+255] == exp[i]
	log [256]int  // log[0] is unused
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The QR code field is NewField(0x11d, 2).
//
// NewField panics if poly is not a degree 8 polynomial or α does not
// generate the multiplicative group of the field.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = Elem(x)
		f.log[x] = i
		x = mul(x, α, poly)
	}
	if x != 1 {
		panic("gf256: invalid generator " + strconv.Itoa(α) +
			" for polynomial " + strconv.Itoa(poly))
	}
	for i := 255; i < len(f.exp); i++ {
		f.exp[i] = f.exp[i-255]
	}
	return &f
}

// mul returns the product x*y mod poly, a GF(256) multiplication
// done bit by bit.  For y == 2 this is a doubling, reduced by poly
// when the 9th bit is set.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.  Subtraction is the
// same operation.
func Add(x, y Elem) Elem {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) Elem {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x Elem) int {
	if x == 0 {
		return -1
	}
	return f.log[x]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y Elem) Elem {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[f.log[x]+f.log[y]]
}

// Pow returns x raised to the power n in the field.
// Pow(0, 0) is 1.
func (f *Field) Pow(x Elem, n int) Elem {
	if n == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}
	e := f.log[x] * n % 255
	if e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x Elem) Elem {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Div returns x/y in the field.  Div panics if y == 0.
func (f *Field) Div(x, y Elem) Elem {
	if y == 0 {
		panic("gf256: division by zero")
	}
	if x == 0 {
		return 0
	}
	return f.exp[f.log[x]+255-f.log[y]]
}

// A Poly is a polynomial over GF(256), stored with the highest
// degree coefficient first: Poly{1, 3} is x + 3.
type Poly []Elem

// Degree returns the degree of p, ignoring leading zero
// coefficients.  The zero polynomial has degree -1.
func (p Poly) Degree() int {
	for i, c := range p {
		if c != 0 {
			return len(p) - 1 - i
		}
	}
	return -1
}

// PolyMul returns the product of p and q.
func (f *Field) PolyMul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make(Poly, len(p)+len(q)-1)
	for j, b := range q {
		for i, a := range p {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return r
}

// PolyDivide divides dividend by divisor using synthetic division
// and returns the quotient and the remainder.  The remainder has
// exactly len(divisor)-1 coefficients, leading zeros included.
// PolyDivide panics if the leading coefficient of divisor is zero.
func (f *Field) PolyDivide(dividend, divisor Poly) (quo, rem Poly) {
	if len(divisor) == 0 || divisor[0] == 0 {
		panic("gf256: invalid divisor")
	}
	n := len(divisor) - 1
	if len(dividend) <= n {
		rem = make(Poly, n)
		copy(rem[n-len(dividend):], dividend)
		return nil, rem
	}
	r := make(Poly, len(dividend))
	copy(r, dividend)
	lead := divisor[0]
	for i := 0; i < len(r)-n; i++ {
		c := r[i]
		if c == 0 {
			continue
		}
		if lead != 1 {
			c = f.Div(c, lead)
			r[i] = c
		}
		for j, d := range divisor[1:] {
			if d != 0 {
				r[i+1+j] ^= f.Mul(d, c)
			}
		}
	}
	return r[:len(r)-n], r[len(r)-n:]
}
