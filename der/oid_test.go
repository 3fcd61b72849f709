// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/internal/vlq"
)

func TestParseOID(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    asn1tree.ObjectIdentifier
		wantErr error
	}{
		"Empty":       {[]byte{}, nil, errEmptyOID},
		"FirstArc0":   {[]byte{0x27}, asn1tree.ObjectIdentifier{0, 39}, nil},
		"FirstArc1":   {[]byte{0x28}, asn1tree.ObjectIdentifier{1, 0}, nil},
		"FirstArc2":   {[]byte{0x50}, asn1tree.ObjectIdentifier{2, 0}, nil},
		"MultiByte":   {[]byte{0x2A, 0x86, 0x48}, asn1tree.ObjectIdentifier{1, 2, 840}, nil},
		"FirstTrunc":  {[]byte{0x88}, nil, vlq.ErrTruncated},
		"LastTrunc":   {[]byte{0x2A, 0x86}, nil, vlq.ErrTruncated},
		"Overflow":    {[]byte{0x2A, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, nil, vlq.ErrOverflow},
		"MaxArcFirst": {[]byte{0x81, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, asn1tree.ObjectIdentifier{2, ^uint(0) - 80}, nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseOID(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("parseOID() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOID() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseOID() = %s, want %s", got, tt.want)
			}
			if enc := appendOID(nil, got); !bytes.Equal(enc, tt.data) {
				t.Errorf("appendOID() = % X, want % X", enc, tt.data)
			}
			if l := oidSize(got); l != len(tt.data) {
				t.Errorf("oidSize() = %d, want %d", l, len(tt.data))
			}
		})
	}
}
