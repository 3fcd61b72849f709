// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"fmt"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/internal/vlq"
)

// parseOID decodes the contents of an OBJECT IDENTIFIER. Each component is a
// base-128 VLQ. The first component is 40*value1 + value2, where value1 can
// only be 0, 1 or 2. When value1 is 0 or 1, value2 is at most 39. When value1
// is 2, there are no restrictions on value2.
func parseOID(b []byte) (asn1tree.ObjectIdentifier, error) {
	if len(b) == 0 {
		return nil, errEmptyOID
	}
	v, n, err := vlq.Parse[uint](b)
	if err != nil {
		return nil, fmt.Errorf("invalid OBJECT IDENTIFIER: %w", err)
	}

	// In the worst case every remaining component is a single byte long.
	oid := make(asn1tree.ObjectIdentifier, 2, len(b)-n+2)
	switch {
	case v < 40:
		oid[0], oid[1] = 0, v
	case v < 80:
		oid[0], oid[1] = 1, v-40
	default:
		oid[0], oid[1] = 2, v-80
	}
	for b = b[n:]; len(b) > 0; b = b[n:] {
		if v, n, err = vlq.Parse[uint](b); err != nil {
			return nil, fmt.Errorf("invalid OBJECT IDENTIFIER: %w", err)
		}
		oid = append(oid, v)
	}
	return oid, nil
}

// appendOID appends the contents of the OBJECT IDENTIFIER oid to dst. oid must
// be valid as reported by [asn1tree.ObjectIdentifier.IsValid].
func appendOID(dst []byte, oid asn1tree.ObjectIdentifier) []byte {
	dst = vlq.Append(dst, oid[0]*40+oid[1])
	for _, v := range oid[2:] {
		dst = vlq.Append(dst, v)
	}
	return dst
}

// oidSize returns the number of content bytes of the encoding of oid.
func oidSize(oid asn1tree.ObjectIdentifier) int {
	l := vlq.Size(oid[0]*40 + oid[1])
	for _, v := range oid[2:] {
		l += vlq.Size(v)
	}
	return l
}
