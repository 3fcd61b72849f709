// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlq

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

//region Testing Helpers

// parseTestCase represents a single parsing test case for type T.
type parseTestCase[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	data    []byte // input
	n       int    // number of bytes belonging to the VLQ
	want    T      // expected output
	wantErr error  // expected error
}

// testParse asserts that decoding a VLQ using f from tc.data produces the
// expected results.
func testParse[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](t *testing.T, f func([]byte) (T, int, error), tc parseTestCase[T]) {
	t.Helper()

	got, n, err := f(tc.data)
	if !errors.Is(err, tc.wantErr) {
		t.Fatalf("parse(% X) error = %v, wantErr %v", tc.data, err, tc.wantErr)
	}
	if err != nil {
		return
	}
	if got != tc.want {
		t.Errorf("parse(% X) got = %v, want %v", tc.data, got, tc.want)
	}
	if n != tc.n {
		t.Errorf("parse(% X) n = %d, want %d", tc.data, n, tc.n)
	}
}

// appendTestCase represents a single encoding test case for type T.
type appendTestCase[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	value T
	want  []byte
}

// testAppend asserts that appending tc.value produces the bytes in tc.want.
func testAppend[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](t *testing.T, tc appendTestCase[T]) {
	t.Helper()

	if l := Size(tc.value); l != len(tc.want) {
		t.Errorf("Size(%d) = %d, want %d", tc.value, l, len(tc.want))
	}
	prefix := []byte{0xAA}
	got := Append(prefix, tc.value)
	if !slices.Equal(got[1:], tc.want) {
		t.Errorf("Append(%d) = % X, want % X", tc.value, got[1:], tc.want)
	}
	if got[0] != 0xAA {
		t.Errorf("Append(%d) modified prefix", tc.value)
	}
}

//endregion

//region Parse Tests

func TestParse(t *testing.T) {
	tests := map[string]parseTestCase[uint]{
		"SingleByte": {[]byte{0x05}, 1, 5, nil},
		"MultiByte":  {[]byte{0x85, 0x01, 0x00}, 2, 641, nil},
		"LeadingPad": {[]byte{0x80, 0x85, 0x01}, 3, 641, nil},
		"Empty":      {nil, 0, 0, ErrTruncated},
		"Truncated":  {[]byte{0x81, 0x80}, 0, 0, ErrTruncated},
		"Overflow":   {[]byte{0x81, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0, 0, ErrOverflow}, // assumes uint size of 8 bytes (64 bit architecture)
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testParse(t, Parse[uint], tc)
		})
	}
}

func TestParse8(t *testing.T) {
	tests := map[string]parseTestCase[uint8]{
		"SingleByte": {[]byte{0x05}, 1, 5, nil},
		"Max":        {[]byte{0x81, 0x7F}, 2, 255, nil},
		"Overflow":   {[]byte{0x85, 0x01, 0x00}, 0, 0, ErrOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testParse(t, Parse[uint8], tc)
		})
	}
}

//endregion

//region Append Tests

func TestAppend(t *testing.T) {
	tests := []appendTestCase[uint]{
		{0, []byte{0x00}},
		{25, []byte{25}},
		{641, []byte{0x85, 0x01}},
		{113549, []byte{0x86, 0xF7, 0x0D}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) {
			testAppend(t, tc)
		})
	}
}

func TestAppend8(t *testing.T) {
	tests := []appendTestCase[uint8]{
		{0, []byte{0x00}},
		{200, []byte{0x81, 0x48}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) {
			testAppend(t, tc)
		})
	}
}

//endregion

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16383, 16384, 1<<32 - 1, 1<<64 - 1} {
		b := Append(nil, v)
		got, n, err := Parse[uint64](b)
		if err != nil || n != len(b) || got != v {
			t.Errorf("Parse(Append(%d)) = %d, %d, %v", v, got, n, err)
		}
	}
}

func BenchmarkSize(b *testing.B) {
	for b.Loop() {
		Size(uint8(200))
	}
}
