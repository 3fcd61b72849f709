// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "math/big"

var bigOne = big.NewInt(1)

// parseInteger interprets b as a big-endian two's complement integer. b must
// not be empty. Non-minimal encodings are accepted.
func parseInteger(b []byte) *big.Int {
	i := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		// negative: subtract 2^(8*len(b))
		i.Sub(i, new(big.Int).Lsh(bigOne, uint(len(b))*8))
	}
	return i
}

// appendInteger appends the minimal two's complement encoding of v to dst.
func appendInteger(dst []byte, v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		// Zero is written as a single 0 zero rather than no bytes.
		return append(dst, 0x00)
	case 1:
		bs := v.Bytes()
		if bs[0]&0x80 != 0 {
			// We'll have to pad this with 0x00 in order to stop it
			// looking like a negative number.
			dst = append(dst, 0x00)
		}
		return append(dst, bs...)
	}
	// A negative number has to be converted to two's-complement
	// form. So we'll invert and subtract 1. If the
	// most-significant-bit isn't set then we'll need to pad the
	// beginning with 0xff in order to keep the number negative.
	nMinus1 := new(big.Int).Neg(v)
	nMinus1.Sub(nMinus1, bigOne)
	bs := nMinus1.Bytes()
	for i := range bs {
		bs[i] ^= 0xff
	}
	if len(bs) == 0 || bs[0]&0x80 == 0 {
		dst = append(dst, 0xff)
	}
	return append(dst, bs...)
}
