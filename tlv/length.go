// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import "math"

// maxLength is the largest length accepted by ParseLength. Lengths are limited
// to 32 bits and must fit into an int.
const maxLength = min(math.MaxUint32, math.MaxInt)

// ParseLength parses the length octets beginning at b[pos]. The length octets
// must end at or before end. It returns the decoded length and the position
// following the length octets.
//
// If the high bit of the first octet is clear, that octet is the length (short
// form). Otherwise, its lower seven bits give the number of subsequent octets
// holding the big-endian length (long form). ParseLength rejects the
// indefinite form and lengths that do not fit into 32 bits. It does not require
// the long form to be minimal.
func ParseLength(b []byte, pos, end int) (length, next int, err error) {
	end = min(end, len(b))
	if pos >= end {
		return 0, pos, ErrTruncated
	}
	c := b[pos]
	pos++
	if c&0x80 == 0 {
		return int(c), pos, nil
	}
	numBytes := int(c & 0x7f)
	if numBytes == 0 {
		return 0, pos, ErrIndefiniteLength
	}
	if numBytes > end-pos {
		return 0, pos, ErrTruncated
	}
	var l uint64
	for _, c = range b[pos : pos+numBytes] {
		l = l<<8 | uint64(c)
		if l > maxLength {
			return 0, pos, ErrLengthOverflow
		}
	}
	return int(l), pos + numBytes, nil
}

// LengthSize returns the number of bytes needed to encode n as DER length
// octets.
func LengthSize(n int) int {
	if n < 0x80 {
		return 1
	}
	l := 1
	for ; n > 0; n >>= 8 {
		l++
	}
	return l
}

// AppendLength appends the DER encoding of the length n to dst and returns the
// extended slice. Lengths up to 127 use the short form, larger lengths use
// the minimal long form. n must not be negative.
func AppendLength(dst []byte, n int) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}
	numBytes := LengthSize(n) - 1
	dst = append(dst, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(uint(i)*8)))
	}
	return dst
}
