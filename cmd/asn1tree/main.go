// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command asn1tree inspects and builds DER encoded ASN.1 data.
package main

import "codello.dev/asn1tree/cmd/asn1tree/cmd"

func main() {
	cmd.Execute()
}
