// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der_test

import (
	"fmt"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/der"
)

func ExampleEncode() {
	n := asn1tree.NewSequence(
		asn1tree.NewInteger(3),
		asn1tree.MustParseObjectIdentifier("1.2.840.113549.1.7.1"),
		asn1tree.Boolean(true),
	)
	b, err := der.Encode(n)
	if err != nil {
		panic(err)
	}
	fmt.Printf("% X\n", b)
	// Output: 30 11 02 01 03 06 09 2A 86 48 86 F7 0D 01 07 01 01 01 FF
}

func ExampleDecode() {
	b := []byte{0x30, 0x0C, 0x04, 0x05, 0x30, 0x03, 0x01, 0x01, 0xFF, 0x04, 0x03, 0x61, 0x62, 0x63}
	n, err := der.Decode(b)
	if err != nil {
		panic(err)
	}
	fmt.Print(asn1tree.Sprint(n))
	// Output:
	// SEQUENCE (2 elements)
	//   OCTET STRING (1 element)
	//     SEQUENCE (1 element)
	//       BOOLEAN true
	//   OCTET STRING "abc"
}
