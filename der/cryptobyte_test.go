// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	stdasn1 "encoding/asn1"
	"math/big"
	"testing"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"codello.dev/asn1tree"
)

// The tests in this file compare the codec against the DER implementation in
// golang.org/x/crypto/cryptobyte.

var crossCheckTime = time.Date(2030, 7, 14, 10, 20, 30, 0, time.UTC)

// crossCheckTree returns a tree and a function that builds the same structure
// using a cryptobyte.Builder.
func crossCheckTree() (asn1tree.Node, func(b *cryptobyte.Builder)) {
	big1 := bigInt("-0x123456789ABCDEF0123456789")
	tree := asn1tree.NewSequence(
		asn1tree.NewInteger(0),
		asn1tree.NewInteger(-129),
		asn1tree.NewBigInteger(big1),
		asn1tree.MustParseObjectIdentifier("1.2.840.113549.1.1.11"),
		asn1tree.MustParseObjectIdentifier("2.999.1234567"),
		asn1tree.Boolean(true),
		asn1tree.Boolean(false),
		asn1tree.Null{},
		asn1tree.NewOctetString([]byte{0x00, 0x01, 0xFE}),
		asn1tree.NewBitString([]byte{0xFF, 0x80}, 0),
		asn1tree.NewUTF8String("héllo"),
		asn1tree.UTCTime(crossCheckTime),
		asn1tree.NewSet(asn1tree.NewInteger(7)),
		asn1tree.NewExplicit(3, asn1tree.NewInteger(1)),
		asn1tree.NewImplicit(7, []byte{10, 0, 0, 1}),
		asn1tree.NewEncapsulated(asn1tree.TagOctetString, asn1tree.NewSequence(asn1tree.Boolean(true))),
	)
	build := func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1Int64(0)
			b.AddASN1Int64(-129)
			b.AddASN1BigInt(big1)
			b.AddASN1ObjectIdentifier(stdasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11})
			b.AddASN1ObjectIdentifier(stdasn1.ObjectIdentifier{2, 999, 1234567})
			b.AddASN1Boolean(true)
			b.AddASN1Boolean(false)
			b.AddASN1NULL()
			b.AddASN1OctetString([]byte{0x00, 0x01, 0xFE})
			b.AddASN1BitString([]byte{0xFF, 0x80})
			b.AddASN1(cbasn1.UTF8String, func(b *cryptobyte.Builder) {
				b.AddBytes([]byte("héllo"))
			})
			b.AddASN1UTCTime(crossCheckTime)
			b.AddASN1(cbasn1.SET, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(7)
			})
			b.AddASN1(cbasn1.Tag(3).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
				b.AddASN1Int64(1)
			})
			b.AddASN1(cbasn1.Tag(7).ContextSpecific(), func(b *cryptobyte.Builder) {
				b.AddBytes([]byte{10, 0, 0, 1})
			})
			b.AddASN1(cbasn1.OCTET_STRING, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1Boolean(true)
				})
			})
		})
	}
	return tree, build
}

func TestCryptobyte_Encode(t *testing.T) {
	tree, build := crossCheckTree()
	var b cryptobyte.Builder
	build(&b)
	want, err := b.Bytes()
	if err != nil {
		t.Fatalf("cryptobyte.Builder.Bytes() error = %v", err)
	}
	got := mustEncode(t, tree)
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % X\nwant % X", got, want)
	}
}

func TestCryptobyte_Decode(t *testing.T) {
	tree, build := crossCheckTree()
	var b cryptobyte.Builder
	build(&b)
	data := b.BytesOrPanic()
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !asn1tree.Equal(got, tree) {
		t.Errorf("Decode() =\n%s\nwant\n%s", asn1tree.Sprint(got), asn1tree.Sprint(tree))
	}
}

func TestCryptobyte_Read(t *testing.T) {
	tree, _ := crossCheckTree()
	input := cryptobyte.String(mustEncode(t, tree))

	var (
		seq       cryptobyte.String
		i1, i2    int64
		i3        big.Int
		oid1      stdasn1.ObjectIdentifier
		oid2      stdasn1.ObjectIdentifier
		b1, b2    bool
		octets    []byte
		bits      stdasn1.BitString
		utf8      cryptobyte.String
		utc       time.Time
		set       cryptobyte.String
		explicit  cryptobyte.String
		implicit  []byte
		extension cryptobyte.String
	)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
		t.Fatalf("cannot read SEQUENCE")
	}
	steps := []struct {
		name string
		read func() bool
	}{
		{"INTEGER 0", func() bool { return seq.ReadASN1Integer(&i1) && i1 == 0 }},
		{"INTEGER -129", func() bool { return seq.ReadASN1Integer(&i2) && i2 == -129 }},
		{"INTEGER big", func() bool {
			return seq.ReadASN1Integer(&i3) && i3.Cmp(bigInt("-0x123456789ABCDEF0123456789")) == 0
		}},
		{"OBJECT IDENTIFIER 1", func() bool {
			return seq.ReadASN1ObjectIdentifier(&oid1) && oid1.Equal(stdasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11})
		}},
		{"OBJECT IDENTIFIER 2", func() bool {
			return seq.ReadASN1ObjectIdentifier(&oid2) && oid2.Equal(stdasn1.ObjectIdentifier{2, 999, 1234567})
		}},
		{"BOOLEAN TRUE", func() bool { return seq.ReadASN1Boolean(&b1) && b1 }},
		{"BOOLEAN FALSE", func() bool { return seq.ReadASN1Boolean(&b2) && !b2 }},
		{"NULL", func() bool { return seq.SkipASN1(cbasn1.NULL) }},
		{"OCTET STRING", func() bool {
			return seq.ReadASN1Bytes(&octets, cbasn1.OCTET_STRING) && bytes.Equal(octets, []byte{0x00, 0x01, 0xFE})
		}},
		{"BIT STRING", func() bool {
			return seq.ReadASN1BitString(&bits) && bits.BitLength == 16 && bytes.Equal(bits.Bytes, []byte{0xFF, 0x80})
		}},
		{"UTF8String", func() bool { return seq.ReadASN1(&utf8, cbasn1.UTF8String) && string(utf8) == "héllo" }},
		{"UTCTime", func() bool { return seq.ReadASN1UTCTime(&utc) && utc.Equal(crossCheckTime) }},
		{"SET", func() bool {
			return seq.ReadASN1(&set, cbasn1.SET) && set.ReadASN1Integer(&i1) && i1 == 7 && set.Empty()
		}},
		{"[3]", func() bool {
			return seq.ReadASN1(&explicit, cbasn1.Tag(3).Constructed().ContextSpecific()) && explicit.ReadASN1Integer(&i1) && i1 == 1
		}},
		{"[7] IMPLICIT", func() bool {
			return seq.ReadASN1Bytes(&implicit, cbasn1.Tag(7).ContextSpecific()) && bytes.Equal(implicit, []byte{10, 0, 0, 1})
		}},
		{"OCTET STRING encapsulating SEQUENCE", func() bool {
			return seq.ReadASN1(&extension, cbasn1.OCTET_STRING) && extension.SkipASN1(cbasn1.SEQUENCE) && extension.Empty()
		}},
	}
	for _, step := range steps {
		if !step.read() {
			t.Fatalf("cannot read %s", step.name)
		}
	}
	if !seq.Empty() {
		t.Errorf("unread data after last element: % X", []byte(seq))
	}
}
