// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"codello.dev/asn1tree"
)

const (
	outputText  = "text"
	outputYAML  = "yaml"
	outputJSON  = "json"
	outputTable = "table"
)

var supportedOutputs = []string{outputText, outputYAML, outputJSON, outputTable}

func newDumpCmd(opts *rootOpts) *cobra.Command {
	var output string
	dumpCmd := &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print the tree of DER or PEM encoded files",
		Long: `Decode each file and print the resulting tree. PEM input is detected
automatically. A file name of "-" reads from standard input.`,
		Example: `asn1tree dump cert.pem
asn1tree dump -o yaml request.der`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(supportedOutputs, output) {
				return errors.Errorf("invalid output %q, the possible values are %v", output, supportedOutputs)
			}
			dopts := opts.decodeOpts()
			var result *multierror.Error
			for _, name := range args {
				if len(args) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", name)
				}
				if err := dump(cmd, dopts, name, output); err != nil {
					result = multierror.Append(result, err)
				}
			}
			return result.ErrorOrNil()
		},
	}
	dumpCmd.Flags().StringVarP(&output, "output", "o", outputText, fmt.Sprintf("output format, the possible values are %v", supportedOutputs))
	return dumpCmd
}

func dump(cmd *cobra.Command, opts decodeOptions, name, output string) error {
	in, err := readInput(cmd, name)
	if err != nil {
		return err
	}
	n, err := opts.decode(in)
	if err != nil {
		return err
	}
	return printTree(cmd.OutOrStdout(), n, output)
}

func printTree(w io.Writer, n asn1tree.Node, output string) error {
	switch output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newNodeView(n)); err != nil {
			return errors.Wrap(err, "failed to marshal yaml")
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newNodeView(n)), "failed to marshal json")
	case outputTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Path", "Kind", "Tag", "Value"})
		table.SetAutoWrapText(false)
		table.AppendBulk(newNodeView(n).rows("0", nil))
		table.Render()
		return nil
	default:
		return asn1tree.Fprint(w, n)
	}
}
