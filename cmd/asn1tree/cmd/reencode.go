// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"codello.dev/asn1tree/der"
)

// defaultBlockType is the PEM block type used for input that was not PEM
// encoded.
const defaultBlockType = "DATA"

type reencodeResult struct {
	in  *input
	out []byte
}

func newReencodeCmd(opts *rootOpts) *cobra.Command {
	var (
		out   string
		check bool
	)
	reencodeCmd := &cobra.Command{
		Use:   "reencode FILE...",
		Short: "Decode and encode files and report whether the encoding changed",
		Long: `Decode each file and encode the resulting tree again. For canonical DER
input the output is identical to the input. With --out the new encoding of a
single file is written in the configured format.`,
		Example: `asn1tree reencode cert.pem
asn1tree reencode --format der --out cert.der cert.pem`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" && len(args) > 1 {
				return errors.New("--out can only be used with a single input file")
			}

			dopts := opts.decodeOpts()
			results := make([]reencodeResult, len(args))
			g := new(errgroup.Group)
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, name := range args {
				g.Go(func() (err error) {
					results[i], err = reencode(cmd, dopts, name)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			changed := 0
			for _, r := range results {
				if bytes.Equal(r.in.data, r.out) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: identical (%d bytes)\n", r.in.name, len(r.out))
				} else {
					changed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: changed (%d bytes in, %d bytes out)\n", r.in.name, len(r.in.data), len(r.out))
				}
			}

			if out != "" {
				blockType := results[0].in.blockType
				if blockType == "" {
					blockType = defaultBlockType
				}
				if err := opts.writeOutput(cmd, out, blockType, results[0].out); err != nil {
					return err
				}
			}
			if check && changed > 0 {
				return errors.Errorf("the encoding of %d of %d files changed", changed, len(results))
			}
			return nil
		},
	}
	reencodeCmd.Flags().StringVar(&out, "out", "", `write the new encoding to this file ("-" for standard output)`)
	reencodeCmd.Flags().BoolVar(&check, "check", false, "fail if the encoding of any file changed")
	return reencodeCmd
}

func reencode(cmd *cobra.Command, opts decodeOptions, name string) (reencodeResult, error) {
	in, err := readInput(cmd, name)
	if err != nil {
		return reencodeResult{}, err
	}
	n, err := opts.decode(in)
	if err != nil {
		return reencodeResult{}, err
	}
	b, err := der.Encode(n)
	if err != nil {
		return reencodeResult{}, errors.Wrap(err, name)
	}
	logrus.Debugf("%s: encoded %d bytes", name, len(b))
	return reencodeResult{in: in, out: b}, nil
}
