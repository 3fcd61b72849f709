// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1tree defines a schema-less tree representation of ASN.1 data as
// it appears in DER encoded documents such as X.509 certificates and PKCS#10
// certificate requests. See [Rec. ITU-T X.680] for the ASN.1 type system.
//
// Encoding and decoding of trees is implemented in the der subpackage. This
// package only defines the node types and some helpers to build, compare and
// print trees.
//
// # Nodes
//
// Every value in a tree is a [Node]. The concrete type of a node determines how
// it is encoded:
//
//   - [*Array] holds an ordered list of child nodes together with the identifier
//     octet it was decoded from (or should be encoded with). SEQUENCE, SET and
//     constructed context-specific elements are arrays. An OCTET STRING or BIT
//     STRING whose contents are themselves DER may be an array as well.
//   - [*Integer] holds an arbitrary precision signed integer.
//   - [ObjectIdentifier] holds the arcs of an OBJECT IDENTIFIER.
//   - [*String] holds text, usually a UTF8String or PrintableString.
//   - [*Bytes] holds opaque content octets, e.g. an OCTET STRING, a BIT STRING
//     or an IMPLICIT context-specific primitive.
//   - [Null], [Boolean] and [UTCTime] correspond to their ASN.1 counterparts.
//   - [Raw] holds bytes that are already DER encoded. They are copied into the
//     output verbatim. This is used to embed structures whose exact encoding
//     must be preserved, for example a signed TBSCertificate.
//
// # Tags
//
// Only single-octet identifiers are supported, that is tag numbers up to 30.
// The [Tag] type represents the whole identifier octet including the class and
// the constructed bit.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1tree

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=Class -trimprefix=Class
//go:generate stringer -type=Kind -trimprefix=Kind

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer.
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Tag is a single ASN.1 identifier octet. Bits 8 and 7 hold the [Class], bit 6
// indicates the constructed encoding and the remaining five bits hold the tag
// number. For details, see Section 8.1.2 of Rec. ITU-T X.690.
type Tag uint8

// These are the identifier octets of the universal types supported by this
// module, as they appear in DER encoded data.
const (
	TagBoolean         Tag = 0x01
	TagInteger         Tag = 0x02
	TagBitString       Tag = 0x03
	TagOctetString     Tag = 0x04
	TagNull            Tag = 0x05
	TagOID             Tag = 0x06
	TagUTF8String      Tag = 0x0C
	TagPrintableString Tag = 0x13
	TagUTCTime         Tag = 0x17
	TagSequence        Tag = 0x30
	TagSet             Tag = 0x31
)

const (
	constructedBit = 0x20
	numberMask     = 0x1f
)

// ContextSpecific returns the identifier octet for the context-specific tag
// [n]. If constructed is true the constructed bit is set. n must be less than
// 31.
func ContextSpecific(n uint8, constructed bool) Tag {
	t := Tag(ClassContextSpecific)<<6 | Tag(n&numberMask)
	if constructed {
		t |= constructedBit
	}
	return t
}

// Class returns the class bits of t.
func (t Tag) Class() Class {
	return Class(t >> 6)
}

// Constructed reports whether t indicates the constructed encoding.
func (t Tag) Constructed() bool {
	return t&constructedBit != 0
}

// Number returns the tag number of t.
func (t Tag) Number() uint8 {
	return uint8(t & numberMask)
}

// HighNumber reports whether t is the leading octet of a multi-octet
// identifier. Such identifiers are not supported by this module.
func (t Tag) HighNumber() bool {
	return t&numberMask == numberMask
}

// String returns a string representation t in a format similar to the one used
// in ASN.1 notation. The tag number is enclosed by square brackets and prefixed
// with the class used. To avoid ambiguity the UNIVERSAL word is used for
// universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	if t.Class() == ClassContextSpecific {
		return "[" + strconv.Itoa(int(t.Number())) + "]"
	}
	return "[" + strings.ToUpper(t.Class().String()) + " " + strconv.Itoa(int(t.Number())) + "]"
}

// typeName returns the ASN.1 type name of a universal tag, or "" if the tag is
// not one of the supported universal types.
func (t Tag) typeName() string {
	switch t {
	case TagBoolean:
		return "BOOLEAN"
	case TagInteger:
		return "INTEGER"
	case TagBitString:
		return "BIT STRING"
	case TagOctetString:
		return "OCTET STRING"
	case TagNull:
		return "NULL"
	case TagOID:
		return "OBJECT IDENTIFIER"
	case TagUTF8String:
		return "UTF8String"
	case TagPrintableString:
		return "PrintableString"
	case TagUTCTime:
		return "UTCTime"
	case TagSequence:
		return "SEQUENCE"
	case TagSet:
		return "SET"
	}
	return ""
}
