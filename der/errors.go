// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"strconv"
	"strings"

	"codello.dev/asn1tree"
)

// ErrMalformed is matched by every [*SyntaxError] using [errors.Is].
var ErrMalformed = errors.New("der: malformed encoding")

var (
	errUnsupportedClass = errors.New("unsupported tag class")
	errUnsupportedTag   = errors.New("unsupported tag")
	errTooDeep          = errors.New("maximum nesting depth exceeded")
	errEmptyInteger     = errors.New("empty integer")
	errEmptyOID         = errors.New("zero length OBJECT IDENTIFIER")
	errInvalidNull      = errors.New("invalid NULL value")
	errInvalidBoolean   = errors.New("invalid boolean")
	errInvalidUTCTime   = errors.New("invalid UTCTime")
	errEmptyBitString   = errors.New("zero length BIT STRING")
)

// A SyntaxError indicates that the input is not a valid DER encoding or uses
// features that are not supported by the decoder. Offset is the position of
// the identifier octet of the element that could not be decoded.
type SyntaxError struct {
	Offset int
	Tag    asn1tree.Tag // zero if the identifier octet could not be read
	Err    error
}

func (e *SyntaxError) Error() string {
	var s strings.Builder
	s.WriteString(ErrMalformed.Error())
	if e.Tag != 0 {
		s.WriteString(" for ")
		s.WriteString(e.Tag.String())
	}
	s.WriteString(" at offset ")
	s.WriteString(strconv.Itoa(e.Offset))
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrMalformed].
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformed
}

var (
	errNilNode        = errors.New("nil node")
	errNilInteger     = errors.New("nil integer value")
	errInvalidOID     = errors.New("invalid object identifier")
	errConstructedTag = errors.New("primitive value with constructed tag")
	errInvalidTag     = errors.New("invalid tag")
	errBitStringTag   = errors.New("BIT STRING tag requires a Bytes or Array node")
	errUnusedBits     = errors.New("unused bits out of range")
	errUnusedBitsTag  = errors.New("unused bits on a value that is not a BIT STRING")
	errUTCTimeRange   = errors.New("UTCTime year must be between 2000 and 2099")
	errEmptyRaw       = errors.New("empty Raw value")
	errTooLarge       = errors.New("element too large")
)

// An EncodeError indicates that a tree contains a node that cannot be encoded.
// Path holds the indices of the elements leading from the root to the invalid
// node. Path is empty if the root node is invalid.
type EncodeError struct {
	Path []int
	Err  error
}

func (e *EncodeError) Error() string {
	var s strings.Builder
	s.WriteString("der: cannot encode ")
	if len(e.Path) == 0 {
		s.WriteString("root node")
	} else {
		s.WriteString("element ")
		for i, p := range e.Path {
			if i > 0 {
				s.WriteByte('/')
			}
			s.WriteString(strconv.Itoa(p))
		}
	}
	s.WriteString(": ")
	s.WriteString(e.Err.Error())
	return s.String()
}

func (e *EncodeError) Unwrap() error { return e.Err }
