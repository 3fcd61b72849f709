// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"codello.dev/asn1tree"
)

// nodeView is the serializable form of a node used by the yaml, json and table
// output formats.
type nodeView struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Tag        string      `json:"tag,omitempty" yaml:"tag,omitempty"`
	Value      string      `json:"value,omitempty" yaml:"value,omitempty"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	UnusedBits int         `json:"unusedBits,omitempty" yaml:"unusedBits,omitempty"`
	Elements   []*nodeView `json:"elements,omitempty" yaml:"elements,omitempty"`
}

func newNodeView(n asn1tree.Node) *nodeView {
	v := &nodeView{Kind: n.Kind().String()}
	switch n := n.(type) {
	case *asn1tree.Array:
		v.Tag = n.Tag.String()
		for _, e := range n.Elements {
			v.Elements = append(v.Elements, newNodeView(e))
		}
	case *asn1tree.Integer:
		v.Value = n.Value.String()
	case asn1tree.ObjectIdentifier:
		v.Value = n.String()
		v.Name = n.Name()
	case *asn1tree.String:
		v.Tag = n.Tag.String()
		v.Value = n.Value
	case *asn1tree.Bytes:
		v.Tag = n.Tag.String()
		v.Value = strings.ToUpper(hex.EncodeToString(n.Value))
		v.UnusedBits = n.UnusedBits
	case asn1tree.Boolean:
		v.Value = strconv.FormatBool(bool(n))
	case asn1tree.UTCTime:
		v.Value = time.Time(n).UTC().Format(time.RFC3339)
	case asn1tree.Raw:
		v.Value = strings.ToUpper(hex.EncodeToString(n))
	}
	return v
}

// maxTableValue is the number of characters of a value shown in a table.
const maxTableValue = 48

// rows flattens v into table rows. Each row holds the path, kind, tag and
// value of a node.
func (v *nodeView) rows(path string, dst [][]string) [][]string {
	value := v.Value
	if v.Name != "" {
		value += " (" + v.Name + ")"
	}
	if len(value) > maxTableValue {
		value = value[:maxTableValue] + "..."
	}
	dst = append(dst, []string{path, v.Kind, v.Tag, value})
	for i, e := range v.Elements {
		dst = e.rows(path+"."+strconv.Itoa(i), dst)
	}
	return dst
}
