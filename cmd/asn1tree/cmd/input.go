// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"crypto"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/certs"
)

var pemPrefix = []byte("-----BEGIN ")

// input is a DER document read from a file or from standard input.
type input struct {
	name      string
	data      []byte
	blockType string // PEM block type, empty for DER input
}

// readInput reads the file name. A name of "-" denotes standard input. PEM
// input is detected automatically and decoded.
func readInput(cmd *cobra.Command, name string) (*input, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}

	in := &input{name: name, data: data}
	if bytes.HasPrefix(bytes.TrimSpace(data), pemPrefix) {
		if in.blockType, in.data, err = certs.DecodePEM(data); err != nil {
			return nil, errors.Wrap(err, name)
		}
		logrus.Debugf("%s: decoded PEM block %q", name, in.blockType)
	}
	return in, nil
}

// decode decodes the data of in. Trailing data is an error in strict mode.
func (o decodeOptions) decode(in *input) (asn1tree.Node, error) {
	n, l, err := o.decoder.DecodePrefix(in.data)
	if err != nil {
		return nil, errors.Wrap(err, in.name)
	}
	if trailing := len(in.data) - l; trailing > 0 {
		if o.strict {
			return nil, errors.Errorf("%s: %d bytes of trailing data", in.name, trailing)
		}
		logrus.Warnf("%s: ignoring %d bytes of trailing data", in.name, trailing)
	}
	return n, nil
}

// writeOutput writes der to path in the configured format. An empty path or
// "-" denotes standard output.
func (o *rootOpts) writeOutput(cmd *cobra.Command, path, blockType string, der []byte) error {
	format := o.v.GetString(keyFormat)
	out := der
	if format == formatPEM {
		out = certs.EncodePEM(blockType, der)
	}

	if path == "" || path == "-" {
		w := cmd.OutOrStdout()
		if f, ok := w.(*os.File); ok && format == formatDER && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write binary data to a terminal, use --out or --format pem")
		}
		_, err := w.Write(out)
		return errors.Wrap(err, "failed to write output")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	logrus.Infof("wrote %s", path)
	return nil
}

// writeKey writes key as PEM encoded PKCS#8 to path.
func writeKey(path string, key crypto.Signer) error {
	b, err := certs.MarshalPrivateKey(key)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, b, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write private key to %s", path)
	}
	logrus.Infof("wrote private key to %s", path)
	return nil
}
