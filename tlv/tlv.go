// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tlv implements the identifier and length octets of the
// tag-length-value (TLV) format used by the Distinguished Encoding Rules (DER)
// as specified in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// This package deals with the syntactic layer of a TLV encoding: it finds out
// where the contents of an element start and end. The der package interprets
// the contents.
//
// Only the definite-length form is supported and identifiers must fit into a
// single octet (tag numbers 0 to 30). Functions in this package work on byte
// slices and explicit positions so that callers can parse nested elements
// without copying.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"strconv"

	"codello.dev/asn1tree"
)

// Header represents the identifier and length octets of a TLV.
type Header struct {
	Tag    asn1tree.Tag
	Length int
}

// String returns a string representation of h.
func (h Header) String() string {
	s := h.Tag.String()
	if h.Tag.Constructed() {
		s += "/c"
	} else {
		s += "/p"
	}
	return s + ":" + strconv.Itoa(h.Length)
}

// Size returns the number of bytes needed to encode h.
func (h Header) Size() int {
	return 1 + LengthSize(h.Length)
}

// ParseHeader parses the identifier and length octets beginning at b[pos]. The
// element must end at or before end. On success ParseHeader returns the header
// and the position of the first content octet. The contents of the element
// are b[next:next+h.Length].
//
// If the input is invalid, the returned error is one of [ErrTruncated],
// [ErrHighTagNumber], [ErrIndefiniteLength] or [ErrLengthOverflow].
func ParseHeader(b []byte, pos, end int) (h Header, next int, err error) {
	end = min(end, len(b))
	// tag + length takes at least 2 bytes
	if end-pos < 2 {
		return h, pos, ErrTruncated
	}
	h.Tag = asn1tree.Tag(b[pos])
	if h.Tag.HighNumber() {
		return h, pos, ErrHighTagNumber
	}
	h.Length, next, err = ParseLength(b, pos+1, end)
	if err != nil {
		return h, pos, err
	}
	if h.Length > end-next {
		return h, pos, ErrTruncated
	}
	return h, next, nil
}

// AppendHeader appends the DER encoding of h to dst and returns the extended
// slice.
func AppendHeader(dst []byte, h Header) []byte {
	return AppendLength(append(dst, byte(h.Tag)), h.Length)
}
