// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import "errors"

var (
	// ErrTruncated indicates that a header or the contents it announces do not
	// fit into the available input.
	ErrTruncated = errors.New("truncated data value")

	// ErrHighTagNumber indicates an identifier using the multi-octet form.
	ErrHighTagNumber = errors.New("tag numbers above 30 are not supported")

	// ErrIndefiniteLength indicates a length octet of 0x80.
	ErrIndefiniteLength = errors.New("indefinite length encoding is not supported")

	// ErrLengthOverflow indicates a length that does not fit into 32 bits.
	ErrLengthOverflow = errors.New("length too large")
)
