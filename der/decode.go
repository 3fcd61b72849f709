// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/tlv"
)

// decodeState holds the state of a single decoding operation. All methods
// report success as a boolean. The reason for the first failure that was not
// recovered by a fallback is kept in err.
type decodeState struct {
	data     []byte
	maxDepth int
	err      *SyntaxError
}

// value describes the contents of an element currently being decoded.
type value struct {
	tag    asn1tree.Tag
	offset int // position of the identifier octet
	start  int // first content octet
	end    int // position after the last content octet
	depth  int
}

// fail records err as the reason for the current failure unless a reason has
// already been recorded. It always returns false.
func (s *decodeState) fail(offset int, tag asn1tree.Tag, err error) bool {
	if s.err == nil {
		s.err = &SyntaxError{Offset: offset, Tag: tag, Err: err}
	}
	return false
}

func (s *decodeState) syntaxError() *SyntaxError {
	if s.err == nil {
		// every failing path records a reason, this is a safety net
		return &SyntaxError{Err: errUnsupportedTag}
	}
	return s.err
}

// element decodes the element starting at pos. The element must end at or
// before end. On success the decoded node and the position after the element
// are returned.
func (s *decodeState) element(pos, end, depth int) (asn1tree.Node, int, bool) {
	if depth > s.maxDepth {
		return nil, pos, s.fail(pos, 0, errTooDeep)
	}
	h, start, err := tlv.ParseHeader(s.data, pos, end)
	if err != nil {
		return nil, pos, s.fail(pos, h.Tag, err)
	}
	v := value{tag: h.Tag, offset: pos, start: start, end: start + h.Length, depth: depth}

	var (
		n  asn1tree.Node
		ok bool
	)
	switch h.Tag.Class() {
	case asn1tree.ClassUniversal:
		switch h.Tag {
		case asn1tree.TagSequence, asn1tree.TagSet:
			n, ok = s.array(v)
		case asn1tree.TagInteger:
			n, ok = s.integer(v)
		case asn1tree.TagOID:
			n, ok = s.objectIdentifier(v)
		case asn1tree.TagUTF8String, asn1tree.TagPrintableString:
			n, ok = s.string(v)
		case asn1tree.TagBitString:
			n, ok = s.bitString(v)
		case asn1tree.TagOctetString:
			n, ok = s.octetString(v)
		case asn1tree.TagNull:
			n, ok = s.null(v)
		case asn1tree.TagBoolean:
			n, ok = s.boolean(v)
		case asn1tree.TagUTCTime:
			n, ok = s.utcTime(v)
		default:
			ok = s.fail(pos, h.Tag, errUnsupportedTag)
		}
	case asn1tree.ClassContextSpecific:
		if h.Tag.Constructed() {
			n, ok = s.array(v)
		} else {
			n, ok = s.octetString(v)
		}
	default:
		ok = s.fail(pos, h.Tag, errUnsupportedClass)
	}
	if !ok {
		return nil, pos, false
	}
	return n, v.end, true
}

// elements decodes consecutive elements from pos until end is reached exactly.
func (s *decodeState) elements(pos, end, depth int) ([]asn1tree.Node, bool) {
	var elems []asn1tree.Node
	for pos < end {
		n, next, ok := s.element(pos, end, depth)
		if !ok {
			return nil, false
		}
		elems = append(elems, n)
		pos = next
	}
	return elems, true
}

func (s *decodeState) array(v value) (asn1tree.Node, bool) {
	elems, ok := s.elements(v.start, v.end, v.depth+1)
	if !ok {
		return nil, false
	}
	return &asn1tree.Array{Tag: v.tag, Elements: elems}, true
}

// encapsulated tries to decode the bytes between start and v.end as a list of
// elements. A failure is not recorded as an error because the caller falls
// back to a different interpretation.
func (s *decodeState) encapsulated(v value, start int) (asn1tree.Node, bool) {
	if start == v.end {
		return nil, false
	}
	saved := s.err
	elems, ok := s.elements(start, v.end, v.depth+1)
	if !ok {
		s.err = saved
		return nil, false
	}
	return &asn1tree.Array{Tag: v.tag, Elements: elems}, true
}

// octetString decodes an OCTET STRING or context-specific primitive. The
// contents are interpreted as nested elements, printable text or opaque bytes,
// in that order.
func (s *decodeState) octetString(v value) (asn1tree.Node, bool) {
	if n, ok := s.encapsulated(v, v.start); ok {
		return n, true
	}
	content := s.data[v.start:v.end]
	if len(content) > 0 && asn1tree.IsPrintable(content) {
		return &asn1tree.String{Tag: v.tag, Value: string(content)}, true
	}
	return &asn1tree.Bytes{Tag: v.tag, Value: bytes.Clone(content)}, true
}

// bitString decodes a BIT STRING. If there are no unused bits the contents are
// interpreted as nested elements if possible.
func (s *decodeState) bitString(v value) (asn1tree.Node, bool) {
	if v.start == v.end {
		return nil, s.fail(v.offset, v.tag, errEmptyBitString)
	}
	unused := int(s.data[v.start])
	if unused > 7 || (unused > 0 && v.end-v.start == 1) {
		return nil, s.fail(v.offset, v.tag, errUnusedBits)
	}
	if unused == 0 {
		if n, ok := s.encapsulated(v, v.start+1); ok {
			return n, true
		}
	}
	return &asn1tree.Bytes{
		Tag:        v.tag,
		Value:      bytes.Clone(s.data[v.start+1 : v.end]),
		UnusedBits: unused,
	}, true
}

func (s *decodeState) integer(v value) (asn1tree.Node, bool) {
	if v.start == v.end {
		return nil, s.fail(v.offset, v.tag, errEmptyInteger)
	}
	return &asn1tree.Integer{Value: parseInteger(s.data[v.start:v.end])}, true
}

func (s *decodeState) objectIdentifier(v value) (asn1tree.Node, bool) {
	oid, err := parseOID(s.data[v.start:v.end])
	if err != nil {
		return nil, s.fail(v.offset, v.tag, err)
	}
	return oid, true
}

func (s *decodeState) string(v value) (asn1tree.Node, bool) {
	return &asn1tree.String{Tag: v.tag, Value: string(s.data[v.start:v.end])}, true
}

func (s *decodeState) null(v value) (asn1tree.Node, bool) {
	if v.start != v.end {
		return nil, s.fail(v.offset, v.tag, errInvalidNull)
	}
	return asn1tree.Null{}, true
}

func (s *decodeState) boolean(v value) (asn1tree.Node, bool) {
	if v.end-v.start != 1 {
		return nil, s.fail(v.offset, v.tag, errInvalidBoolean)
	}
	return asn1tree.Boolean(s.data[v.start] != 0), true
}

func (s *decodeState) utcTime(v value) (asn1tree.Node, bool) {
	t, err := parseUTCTime(s.data[v.start:v.end])
	if err != nil {
		return nil, s.fail(v.offset, v.tag, err)
	}
	return asn1tree.UTCTime(t), true
}
