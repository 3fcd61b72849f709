// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"errors"
	"math/big"
	"math/bits"
	"slices"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

// Kind identifies the concrete type of a [Node].
type Kind uint8

// Node kinds. The zero Kind is not a valid kind.
const (
	KindArray Kind = iota + 1
	KindInteger
	KindObjectIdentifier
	KindString
	KindBytes
	KindNull
	KindBoolean
	KindUTCTime
	KindRaw
)

// Node is an element of an ASN.1 tree. The types defined in this package are
// the only implementations understood by the der package. Encoding any other
// implementation results in an error.
type Node interface {
	Kind() Kind
}

//region Array (SEQUENCE, SET, constructed)

// Array is a node that contains other nodes. Tag is the identifier octet of the
// element. It distinguishes a SEQUENCE from a SET or from a context-specific
// element. When an OCTET STRING, BIT STRING or context-specific primitive was
// found to contain DER encoded data, the decoded Array retains the primitive
// tag so that it encodes back to the same bytes.
//
// If Tag is [TagBitString] the encoding is prefixed by a single zero octet
// indicating that there are no unused bits.
type Array struct {
	Tag      Tag
	Elements []Node
}

// Kind returns [KindArray].
func (*Array) Kind() Kind { return KindArray }

// NewSequence returns an ASN.1 SEQUENCE containing elems.
func NewSequence(elems ...Node) *Array {
	return &Array{Tag: TagSequence, Elements: elems}
}

// NewSet returns an ASN.1 SET containing elems. Elements are kept in the order
// given. DER requires SET OF elements to be sorted, which is left to the
// caller.
func NewSet(elems ...Node) *Array {
	return &Array{Tag: TagSet, Elements: elems}
}

// NewExplicit returns a constructed context-specific element [n] containing
// elems. This is how EXPLICIT tagging is expressed.
func NewExplicit(n uint8, elems ...Node) *Array {
	return &Array{Tag: ContextSpecific(n, true), Elements: elems}
}

// NewEncapsulated returns an element with the given primitive tag (usually
// [TagOctetString] or [TagBitString]) whose contents are the DER encoding of
// elems. X.509 extension values are built this way.
func NewEncapsulated(tag Tag, elems ...Node) *Array {
	return &Array{Tag: tag, Elements: elems}
}

//endregion

//region [UNIVERSAL 1] BOOLEAN

// Boolean represents the ASN.1 BOOLEAN type. True is encoded as 0xFF.
type Boolean bool

// Kind returns [KindBoolean].
func (Boolean) Kind() Kind { return KindBoolean }

//endregion

//region [UNIVERSAL 2] INTEGER

// Integer represents the ASN.1 INTEGER type. The size of the value is not
// limited. A nil Value cannot be encoded.
type Integer struct {
	Value *big.Int
}

// Kind returns [KindInteger].
func (*Integer) Kind() Kind { return KindInteger }

// NewInteger returns an Integer node holding v.
func NewInteger(v int64) *Integer {
	return &Integer{Value: big.NewInt(v)}
}

// NewBigInteger returns an Integer node holding a copy of v.
func NewBigInteger(v *big.Int) *Integer {
	return &Integer{Value: new(big.Int).Set(v)}
}

//endregion

//region [UNIVERSAL 3] BIT STRING and [UNIVERSAL 4] OCTET STRING

// Bytes holds the content octets of a primitive element that is not otherwise
// interpreted. If Tag is [TagBitString], UnusedBits indicates the number of
// padding bits in the last byte of Value and is encoded as the leading content
// octet. For all other tags UnusedBits must be zero.
type Bytes struct {
	Tag        Tag
	Value      []byte
	UnusedBits int
}

// Kind returns [KindBytes].
func (*Bytes) Kind() Kind { return KindBytes }

// NewOctetString returns an OCTET STRING holding b.
func NewOctetString(b []byte) *Bytes {
	return &Bytes{Tag: TagOctetString, Value: b}
}

// NewBitString returns a BIT STRING holding b, where the last unusedBits bits
// of b are padding.
func NewBitString(b []byte, unusedBits int) *Bytes {
	return &Bytes{Tag: TagBitString, Value: b, UnusedBits: unusedBits}
}

// NewImplicit returns a primitive context-specific element [n] with the
// content octets b.
func NewImplicit(n uint8, b []byte) *Bytes {
	return &Bytes{Tag: ContextSpecific(n, false), Value: b}
}

//endregion

//region [UNIVERSAL 5] NULL

// Null represents the ASN.1 NULL type.
type Null struct{}

// Kind returns [KindNull].
func (Null) Kind() Kind { return KindNull }

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// An ObjectIdentifier represents an ASN.1 OBJECT IDENTIFIER. The semantics of
// an object identifier are specified in [Rec. ITU-T X.660].
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
type ObjectIdentifier []uint

// Kind returns [KindObjectIdentifier].
func (ObjectIdentifier) Kind() Kind { return KindObjectIdentifier }

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return slices.Equal(oid, other)
}

// IsValid reports whether oid can be encoded. An OID needs at least two arcs,
// the first arc must be 0, 1 or 2 and the second arc must be less than 40 if
// the first arc is 0 or 1.
func (oid ObjectIdentifier) IsValid() bool {
	if len(oid) < 2 || oid[0] > 2 {
		return false
	}
	if oid[0] < 2 {
		return oid[1] < 40
	}
	// the first two arcs share a single component
	return oid[1] <= ^uint(0)-80
}

// String returns the dot-separated notation of oid.
func (oid ObjectIdentifier) String() string {
	var s strings.Builder
	s.Grow(32)

	buf := make([]byte, 0, 20)
	for i, v := range oid {
		if i > 0 {
			s.WriteByte('.')
		}
		s.Write(strconv.AppendUint(buf, uint64(v), 10))
	}

	return s.String()
}

// ParseObjectIdentifier parses the dot-separated notation of an object
// identifier. The result is guaranteed to be valid as reported by
// [ObjectIdentifier.IsValid].
func ParseObjectIdentifier(s string) (ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	oid := make(ObjectIdentifier, len(parts))
	for i, p := range parts {
		if p == "" || p[0] == '+' || p[0] == '-' {
			return nil, errors.New("invalid object identifier " + strconv.Quote(s))
		}
		v, err := strconv.ParseUint(p, 10, bits.UintSize)
		if err != nil {
			return nil, errors.New("invalid object identifier " + strconv.Quote(s) + ": " + err.Error())
		}
		oid[i] = uint(v)
	}
	if !oid.IsValid() {
		return nil, errors.New("invalid object identifier " + strconv.Quote(s) + ": arcs out of range")
	}
	return oid, nil
}

// MustParseObjectIdentifier is like [ParseObjectIdentifier] but panics if s
// cannot be parsed.
func MustParseObjectIdentifier(s string) ObjectIdentifier {
	oid, err := ParseObjectIdentifier(s)
	if err != nil {
		panic("asn1tree: " + err.Error())
	}
	return oid
}

//endregion

//region [UNIVERSAL 12] UTF8String and [UNIVERSAL 19] PrintableString

// String holds character data. Tag is usually [TagUTF8String] or
// [TagPrintableString], but an OCTET STRING or context-specific primitive
// containing only printable ASCII characters decodes as a String as well and
// keeps its tag. Value holds the content octets unmodified.
type String struct {
	Tag   Tag
	Value string
}

// Kind returns [KindString].
func (*String) Kind() Kind { return KindString }

// NewUTF8String returns a UTF8String holding s.
func NewUTF8String(s string) *String {
	return &String{Tag: TagUTF8String, Value: s}
}

// NewPrintableString returns a PrintableString holding s. The caller is
// responsible for s only containing characters allowed in a PrintableString.
func NewPrintableString(s string) *String {
	return &String{Tag: TagPrintableString, Value: s}
}

// IsPrintable reports whether every byte of b is a printable ASCII character
// in the range 0x20 to 0x7E.
func IsPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

//endregion

//region [UNIVERSAL 23] UTCTime

// UTCTime represents the corresponding ASN.1 type with second precision. When
// decoding, two-digit years are interpreted as 2000 to 2099, so only those
// years can be represented.
type UTCTime time.Time

// Kind returns [KindUTCTime].
func (UTCTime) Kind() Kind { return KindUTCTime }

// IsValid reports whether the year of t (in UTC) is between 2000 and 2099.
func (t UTCTime) IsValid() bool {
	year := time.Time(t).UTC().Year()
	return year >= 2000 && year <= 2099
}

// String returns the time of t in the format YYMMDDhhmmssZ. The time is
// converted to UTC first and fractional seconds are dropped.
func (t UTCTime) String() string {
	tt := time.Time(t).UTC()
	b := strings.Builder{}
	b.Grow(13)
	b.WriteString(itoaN(tt.Year()%100, 2))
	b.WriteString(itoaN(tt.Month(), 2))
	b.WriteString(itoaN(tt.Day(), 2))
	b.WriteString(itoaN(tt.Hour(), 2))
	b.WriteString(itoaN(tt.Minute(), 2))
	b.WriteString(itoaN(tt.Second(), 2))
	b.WriteByte('Z')
	return b.String()
}

// itoaN returns the base 10 string representation of the absolute value of i,
// truncated or zero padded to exactly n digits.
func itoaN[T ~int](i T, n int) string {
	if i < 0 {
		i = -i
	}
	bs := make([]byte, n)
	for ; n > 0; n-- {
		bs[n-1] = '0' + byte(i%10)
		i /= 10
	}
	return unsafe.String(unsafe.SliceData(bs), len(bs))
}

//endregion

//region Raw

// Raw holds one or more complete DER encodings. Raw bytes are written to the
// output as-is without any validation. The bytes must not be modified while an
// encoding operation is in progress.
type Raw []byte

// Kind returns [KindRaw].
func (Raw) Kind() Kind { return KindRaw }

//endregion
