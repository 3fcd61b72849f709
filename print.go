// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// maxPrintBytes is the number of content bytes printed for Bytes and Raw nodes.
const maxPrintBytes = 32

// Fprint writes a human-readable representation of the tree rooted at n to w.
// Each node is printed on its own line, children are indented by two spaces.
// The format is intended for humans and may change.
func Fprint(w io.Writer, n Node) error {
	p := &printer{w: w}
	p.print(n, 0)
	return p.err
}

// Sprint returns the output of [Fprint] as a string.
func Sprint(n Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, n)
	return sb.String()
}

// printer implements Fprint. The first write error is kept and all further
// output is discarded.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s"+format+"\n", append([]any{strings.Repeat("  ", depth)}, args...)...)
}

func (p *printer) print(n Node, depth int) {
	switch n := n.(type) {
	case nil:
		p.line(depth, "<nil>")
	case *Array:
		noun := "elements"
		if len(n.Elements) == 1 {
			noun = "element"
		}
		p.line(depth, "%s (%d %s)", tagLabel(n.Tag), len(n.Elements), noun)
		for _, e := range n.Elements {
			p.print(e, depth+1)
		}
	case *Integer:
		if n.Value == nil {
			p.line(depth, "INTEGER <nil>")
		} else if n.Value.BitLen() <= 64 {
			p.line(depth, "INTEGER %s", n.Value.String())
		} else {
			p.line(depth, "INTEGER (%d bit) 0x%s", n.Value.BitLen(), n.Value.Text(16))
		}
	case ObjectIdentifier:
		if name := n.Name(); name != "" {
			p.line(depth, "OBJECT IDENTIFIER %s (%s)", n.String(), name)
		} else {
			p.line(depth, "OBJECT IDENTIFIER %s", n.String())
		}
	case *String:
		p.line(depth, "%s %s", tagLabel(n.Tag), strconv.Quote(n.Value))
	case *Bytes:
		if n.UnusedBits != 0 {
			p.line(depth, "%s (%d byte, %d unused bits) %s", tagLabel(n.Tag), len(n.Value), n.UnusedBits, hexPreview(n.Value))
		} else {
			p.line(depth, "%s (%d byte) %s", tagLabel(n.Tag), len(n.Value), hexPreview(n.Value))
		}
	case Null:
		p.line(depth, "NULL")
	case Boolean:
		p.line(depth, "BOOLEAN %t", bool(n))
	case UTCTime:
		p.line(depth, "UTCTime %s", time.Time(n).UTC().Format(time.RFC3339))
	case Raw:
		p.line(depth, "RAW (%d byte) %s", len(n), hexPreview(n))
	default:
		p.line(depth, "<unknown %T>", n)
	}
}

// tagLabel returns the ASN.1 type name for supported universal tags and the
// tag notation for everything else.
func tagLabel(t Tag) string {
	if name := t.typeName(); name != "" {
		return name
	}
	return t.String()
}

// hexPreview returns the hex representation of at most maxPrintBytes bytes of
// b.
func hexPreview(b []byte) string {
	if len(b) > maxPrintBytes {
		return strings.ToUpper(hex.EncodeToString(b[:maxPrintBytes])) + "..."
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
