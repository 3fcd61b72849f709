// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"testing"

	"codello.dev/asn1tree"
)

// FuzzDecode checks that every decodable input can be encoded and that
// decoding the encoding yields the same tree.
func FuzzDecode(f *testing.F) {
	f.Add(exampleSequence)
	f.Add([]byte{0x04, 0x03, 0x02, 0x01, 0x05})
	f.Add([]byte{0x03, 0x03, 0x00, 0x05, 0x00})
	f.Add([]byte{0x82, 0x0B, 0x65, 0x78, 0x61, 0x6D, 0x70, 0x6C, 0x65, 0x2E, 0x63, 0x6F, 0x6D})
	f.Add([]byte{0x17, 0x0D, 0x32, 0x35, 0x30, 0x31, 0x30, 0x32, 0x30, 0x33, 0x30, 0x34, 0x30, 0x35, 0x5A})
	f.Add([]byte{0x30, 0x81, 0x03, 0x02, 0x81, 0x01, 0x05})
	f.Fuzz(func(t *testing.T, data []byte) {
		n, err := Decode(data)
		if err != nil {
			return
		}
		enc, err := Encode(n)
		if err != nil {
			t.Fatalf("Encode(Decode(% X)) error = %v", data, err)
		}
		n2, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(% X) error = %v", enc, err)
		}
		if !asn1tree.Equal(n, n2) {
			t.Fatalf("Decode(Encode(n)) != n\nn  = %s\nn2 = %s", asn1tree.Sprint(n), asn1tree.Sprint(n2))
		}
		enc2, err := Encode(n2)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if !bytes.Equal(enc, enc2) {
			t.Fatalf("encoding is not stable: % X != % X", enc, enc2)
		}
	})
}
