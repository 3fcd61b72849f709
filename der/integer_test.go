// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestAppendInteger(t *testing.T) {
	tests := map[string]struct {
		val  *big.Int
		want []byte
	}{
		"Zero":       {big.NewInt(0), []byte{0x00}},
		"Small":      {big.NewInt(0x42), []byte{0x42}},
		"Pad":        {big.NewInt(0xFF), []byte{0x00, 0xFF}},
		"Negative":   {big.NewInt(-0x42), []byte{0xBE}},
		"NegPad":     {big.NewInt(-0x81), []byte{0xFF, 0x7F}},
		"NegNoPad":   {big.NewInt(-0x8000), []byte{0x80, 0x00}},
		"TwoBytes":   {big.NewInt(0x7FFF), []byte{0x7F, 0xFF}},
		"ThreeBytes": {big.NewInt(0x8000), []byte{0x00, 0x80, 0x00}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := appendInteger([]byte{0xAA}, tt.val)
			if got[0] != 0xAA {
				t.Fatalf("appendInteger() modified the destination prefix")
			}
			if !bytes.Equal(got[1:], tt.want) {
				t.Errorf("appendInteger() = % X, want % X", got[1:], tt.want)
			}
			if v := parseInteger(got[1:]); v.Cmp(tt.val) != 0 {
				t.Errorf("parseInteger(% X) = %s, want %s", got[1:], v, tt.val)
			}
		})
	}
}

// TestInteger_Minimal checks that encoded integers never start with nine
// identical sign bits.
func TestInteger_Minimal(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		v := new(big.Int).Lsh(big.NewInt(r.Int64()), uint(r.IntN(80)))
		if r.IntN(2) == 0 {
			v.Neg(v)
		}
		b := appendInteger(nil, v)
		if len(b) > 1 && (b[0] == 0x00 && b[1]&0x80 == 0 || b[0] == 0xFF && b[1]&0x80 != 0) {
			t.Errorf("appendInteger(%s) = % X is not minimal", v, b)
		}
		if got := parseInteger(b); got.Cmp(v) != 0 {
			t.Errorf("parseInteger(appendInteger(%s)) = %s", v, got)
		}
	}
}
