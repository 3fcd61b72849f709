// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"fmt"
	"math"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/tlv"
)

// sizedNode is the result of the first encoding pass. It holds everything
// needed to write a node without further validation.
type sizedNode struct {
	header    tlv.Header
	hasPrefix bool
	prefix    byte
	content   []byte      // contents of a primitive value
	elems     []sizedNode // children of an array
	raw       asn1tree.Raw
	size      int // total number of bytes written by appendTo
}

// sizeOf validates n and computes the encodings of all primitive values in the
// tree rooted at n.
func sizeOf(n asn1tree.Node) (sizedNode, error) {
	var e sizedNode
	switch n := n.(type) {
	case *asn1tree.Array:
		if n == nil {
			return e, &EncodeError{Err: errNilNode}
		}
		if err := checkArrayTag(n.Tag); err != nil {
			return e, &EncodeError{Err: err}
		}
		l := 0
		if n.Tag == asn1tree.TagBitString {
			e.hasPrefix = true
			l++
		}
		e.elems = make([]sizedNode, len(n.Elements))
		for i, elem := range n.Elements {
			var err error
			if e.elems[i], err = sizeOf(elem); err != nil {
				ee := err.(*EncodeError)
				ee.Path = append([]int{i}, ee.Path...)
				return e, ee
			}
			l += e.elems[i].size
		}
		e.header = tlv.Header{Tag: n.Tag, Length: l}
	case *asn1tree.Integer:
		if n == nil || n.Value == nil {
			return e, &EncodeError{Err: errNilInteger}
		}
		e.header.Tag = asn1tree.TagInteger
		e.content = appendInteger(nil, n.Value)
	case asn1tree.ObjectIdentifier:
		if !n.IsValid() {
			return e, &EncodeError{Err: fmt.Errorf("%w %q", errInvalidOID, n.String())}
		}
		e.header.Tag = asn1tree.TagOID
		e.content = appendOID(make([]byte, 0, oidSize(n)), n)
	case *asn1tree.String:
		if n == nil {
			return e, &EncodeError{Err: errNilNode}
		}
		if err := checkPrimitiveTag(n.Tag, false); err != nil {
			return e, &EncodeError{Err: err}
		}
		e.header.Tag = n.Tag
		e.content = []byte(n.Value)
	case *asn1tree.Bytes:
		if n == nil {
			return e, &EncodeError{Err: errNilNode}
		}
		if err := checkPrimitiveTag(n.Tag, true); err != nil {
			return e, &EncodeError{Err: err}
		}
		if n.UnusedBits < 0 || n.UnusedBits > 7 {
			return e, &EncodeError{Err: errUnusedBits}
		}
		if n.UnusedBits != 0 && (n.Tag != asn1tree.TagBitString || len(n.Value) == 0) {
			return e, &EncodeError{Err: errUnusedBitsTag}
		}
		e.header.Tag = n.Tag
		e.content = n.Value
		if n.Tag == asn1tree.TagBitString {
			e.hasPrefix = true
			e.prefix = byte(n.UnusedBits)
		}
	case asn1tree.Null:
		e.header.Tag = asn1tree.TagNull
	case asn1tree.Boolean:
		e.header.Tag = asn1tree.TagBoolean
		if n {
			e.content = []byte{0xff}
		} else {
			e.content = []byte{0x00}
		}
	case asn1tree.UTCTime:
		if !n.IsValid() {
			return e, &EncodeError{Err: errUTCTimeRange}
		}
		e.header.Tag = asn1tree.TagUTCTime
		e.content = []byte(n.String())
	case asn1tree.Raw:
		if len(n) == 0 {
			return e, &EncodeError{Err: errEmptyRaw}
		}
		e.raw = n
		e.size = len(n)
		return e, nil
	case nil:
		return e, &EncodeError{Err: errNilNode}
	default:
		return e, &EncodeError{Err: fmt.Errorf("unsupported node type %T", n)}
	}

	if e.elems == nil {
		e.header.Length = len(e.content)
		if e.hasPrefix {
			e.header.Length++
		}
	}
	if uint64(e.header.Length) > math.MaxUint32 {
		return e, &EncodeError{Err: errTooLarge}
	}
	e.size = e.header.Size() + e.header.Length
	return e, nil
}

// checkArrayTag reports whether tag can be used for an Array. Besides SEQUENCE,
// SET and context-specific elements an Array may encapsulate its elements in an
// OCTET STRING or BIT STRING.
func checkArrayTag(tag asn1tree.Tag) error {
	if tag.HighNumber() {
		return tlv.ErrHighTagNumber
	}
	switch {
	case tag.Class() == asn1tree.ClassContextSpecific:
		return nil
	case tag == asn1tree.TagSequence, tag == asn1tree.TagSet,
		tag == asn1tree.TagOctetString, tag == asn1tree.TagBitString:
		return nil
	}
	return fmt.Errorf("%w %s for Array", errInvalidTag, tag)
}

// checkPrimitiveTag reports whether tag can be used for a String or Bytes
// value. Only Bytes may use the BIT STRING tag.
func checkPrimitiveTag(tag asn1tree.Tag, bitString bool) error {
	if tag.HighNumber() {
		return tlv.ErrHighTagNumber
	}
	if tag.Constructed() {
		return errConstructedTag
	}
	switch {
	case tag.Class() == asn1tree.ClassContextSpecific:
		return nil
	case tag == asn1tree.TagBitString:
		if !bitString {
			return errBitStringTag
		}
		return nil
	case tag == asn1tree.TagUTF8String, tag == asn1tree.TagPrintableString, tag == asn1tree.TagOctetString:
		return nil
	}
	return fmt.Errorf("%w %s", errInvalidTag, tag)
}

// appendTo writes the encoding of e to dst.
func (e *sizedNode) appendTo(dst []byte) []byte {
	if e.raw != nil {
		return append(dst, e.raw...)
	}
	dst = tlv.AppendHeader(dst, e.header)
	if e.hasPrefix {
		dst = append(dst, e.prefix)
	}
	dst = append(dst, e.content...)
	for i := range e.elems {
		dst = e.elems[i].appendTo(dst)
	}
	return dst
}
