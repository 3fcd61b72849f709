// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

func TestAppendLength(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x80}},
		{255, []byte{0x81, 0xFF}},
		{256, []byte{0x82, 0x01, 0x00}},
		{746, []byte{0x82, 0x02, 0xEA}},
		{65536, []byte{0x83, 0x01, 0x00, 0x00}},
		{1<<32 - 1, []byte{0x84, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			if got := LengthSize(tt.n); got != len(tt.want) {
				t.Errorf("LengthSize(%d) = %d, want %d", tt.n, got, len(tt.want))
			}
			if got := AppendLength(nil, tt.n); !slices.Equal(got, tt.want) {
				t.Errorf("AppendLength(%d) = % X, want % X", tt.n, got, tt.want)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    int
		next    int
		wantErr error
	}{
		"Short":          {[]byte{0x05}, 5, 1, nil},
		"ShortMax":       {[]byte{0x7F}, 127, 1, nil},
		"Long1":          {[]byte{0x81, 0x80}, 128, 2, nil},
		"Long2":          {[]byte{0x82, 0x01, 0x00, 0xAA}, 256, 3, nil},
		"NonMinimal":     {[]byte{0x82, 0x00, 0x05}, 5, 3, nil},
		"Max":            {[]byte{0x84, 0xFF, 0xFF, 0xFF, 0xFF}, 1<<32 - 1, 5, nil}, // assumes 64 bit int
		"LeadingZeros":   {[]byte{0x85, 0x00, 0x00, 0x00, 0x01, 0x00}, 256, 6, nil},
		"Empty":          {nil, 0, 0, ErrTruncated},
		"Indefinite":     {[]byte{0x80}, 0, 0, ErrIndefiniteLength},
		"TruncatedLong":  {[]byte{0x82, 0x01}, 0, 0, ErrTruncated},
		"Overflow":       {[]byte{0x85, 0x01, 0x00, 0x00, 0x00, 0x00}, 0, 0, ErrLengthOverflow},
		"OverflowLarger": {[]byte{0x88, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 0, 0, ErrLengthOverflow},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, next, err := ParseLength(tt.data, 0, len(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseLength(% X) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ParseLength(% X) = %d, want %d", tt.data, got, tt.want)
			}
			if next != tt.next {
				t.Errorf("ParseLength(% X) next = %d, want %d", tt.data, next, tt.next)
			}
		})
	}
}

func TestParseLength_End(t *testing.T) {
	// the length octets must not extend past end, even if b is longer
	b := []byte{0x82, 0x01, 0x00}
	if _, _, err := ParseLength(b, 0, 2); !errors.Is(err, ErrTruncated) {
		t.Errorf("ParseLength() error = %v, want %v", err, ErrTruncated)
	}
}

func TestLength_RoundTrip(t *testing.T) {
	for n := 0; n < 1<<17; n += 61 {
		b := AppendLength(nil, n)
		got, next, err := ParseLength(b, 0, len(b))
		if err != nil || got != n || next != len(b) {
			t.Fatalf("ParseLength(AppendLength(%d)) = %d, %d, %v", n, got, next, err)
		}
	}
}

func BenchmarkParseLength(b *testing.B) {
	data := []byte{0x82, 0x02, 0xEA}
	for b.Loop() {
		_, _, _ = ParseLength(data, 0, len(data))
	}
}
