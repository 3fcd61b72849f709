// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der encodes and decodes [asn1tree] trees using the ASN.1
// Distinguished Encoding Rules (DER) as defined in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// The decoder does not require a schema. It reads the identifier octet of each
// element and decodes the contents according to the universal type it
// indicates. The following rules apply:
//
//   - SEQUENCE, SET and constructed context-specific elements decode as
//     [*asn1tree.Array].
//   - INTEGER, OBJECT IDENTIFIER, NULL, BOOLEAN and UTCTime decode as their
//     respective node types. UTCTime must use the format YYMMDDhhmmssZ. Years
//     are interpreted as 2000 to 2099.
//   - UTF8String and PrintableString decode as [*asn1tree.String].
//   - The contents of an OCTET STRING or a primitive context-specific element
//     are first decoded as a list of nested elements. If that succeeds and
//     consumes the contents exactly, the result is an [*asn1tree.Array] with the
//     original tag. Otherwise, if all bytes are printable ASCII characters, the
//     result is an [*asn1tree.String]. In all other cases the result is an
//     [*asn1tree.Bytes].
//   - A BIT STRING without unused bits is treated like an OCTET STRING except
//     that it is never converted to a string. A BIT STRING with unused bits
//     always decodes as [*asn1tree.Bytes].
//   - Application and private classes, other universal types, multi-octet
//     identifiers and the indefinite-length form are not supported.
//
// The encoder produces the minimal, deterministic encoding of a tree. Decoding
// a DER encoding and encoding the result reproduces the input, unless the
// input used non-minimal length or integer encodings.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package der

import "codello.dev/asn1tree"

// DefaultMaxDepth is the nesting depth used by a [Decoder] if its MaxDepth is
// zero.
const DefaultMaxDepth = 128

// A Decoder decodes DER data into trees. The zero value is ready to use. A
// Decoder can be used concurrently by multiple goroutines.
type Decoder struct {
	// MaxDepth is the maximum nesting depth of elements. The top-level element
	// has depth 0. Data exceeding this limit is rejected. A value of zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Decode parses the DER encoded element at the beginning of b. Bytes following
// the first element are ignored. Use [Decoder.DecodePrefix] to find out how
// many bytes were consumed.
//
// If b does not start with a valid encoding, the returned error is a
// [*SyntaxError] and no tree is returned.
func (d *Decoder) Decode(b []byte) (asn1tree.Node, error) {
	n, _, err := d.DecodePrefix(b)
	return n, err
}

// DecodePrefix works like [Decoder.Decode] but additionally returns the number
// of bytes belonging to the decoded element.
func (d *Decoder) DecodePrefix(b []byte) (asn1tree.Node, int, error) {
	s := decodeState{data: b, maxDepth: d.MaxDepth}
	if s.maxDepth <= 0 {
		s.maxDepth = DefaultMaxDepth
	}
	n, next, ok := s.element(0, len(b), 0)
	if !ok {
		return nil, 0, s.syntaxError()
	}
	return n, next, nil
}

// Decode parses the DER encoded element at the beginning of b using the
// default [Decoder].
func Decode(b []byte) (asn1tree.Node, error) {
	var d Decoder
	return d.Decode(b)
}

// Encode returns the DER encoding of the tree rooted at n. If the tree
// contains invalid nodes an [*EncodeError] is returned.
func Encode(n asn1tree.Node) ([]byte, error) {
	e, err := sizeOf(n)
	if err != nil {
		return nil, err
	}
	b := e.appendTo(make([]byte, 0, e.size))
	if len(b) != e.size {
		panic("der: encoded size does not match computed size")
	}
	return b, nil
}
