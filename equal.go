// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"bytes"
	"time"
)

// Equal reports whether a and b are structurally identical trees. Nodes of
// different kinds are never equal, even if they would produce the same
// encoding. In particular a [*Bytes] node is not equal to the [*Array] it may
// be decoded as.
//
// [UTCTime] values are compared as instants with second precision.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Array:
		b, ok := b.(*Array)
		if !ok || a.Tag != b.Tag || len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !Equal(a.Elements[i], b.Elements[i]) {
				return false
			}
		}
		return true
	case *Integer:
		b, ok := b.(*Integer)
		if !ok || a.Value == nil || b.Value == nil {
			return ok && a.Value == b.Value
		}
		return a.Value.Cmp(b.Value) == 0
	case ObjectIdentifier:
		b, ok := b.(ObjectIdentifier)
		return ok && a.Equal(b)
	case *String:
		b, ok := b.(*String)
		return ok && a.Tag == b.Tag && a.Value == b.Value
	case *Bytes:
		b, ok := b.(*Bytes)
		return ok && a.Tag == b.Tag && a.UnusedBits == b.UnusedBits && bytes.Equal(a.Value, b.Value)
	case Null:
		_, ok := b.(Null)
		return ok
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case UTCTime:
		b, ok := b.(UTCTime)
		return ok && time.Time(a).Truncate(time.Second).Equal(time.Time(b).Truncate(time.Second))
	case Raw:
		b, ok := b.(Raw)
		return ok && bytes.Equal(a, b)
	}
	return false
}
