// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the asn1tree command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codello.dev/asn1tree/der"
)

// Configuration keys. Each key can be set by a flag of the same name, by an
// environment variable with the prefix ASN1TREE_ or in the config file.
const (
	keyDebug    = "debug"
	keyHideTime = "hide-time"
	keyMaxDepth = "max-depth"
	keyStrict   = "strict"
	keyFormat   = "format"
)

const (
	formatDER = "der"
	formatPEM = "pem"
)

var supportedFormats = []string{formatDER, formatPEM}

var longRootCmdDescription = `asn1tree decodes DER encoded ASN.1 data such as X.509 certificates or
PKCS#10 certificate requests without a schema, prints it as a tree and encodes
it again. It can also create certificate requests and self-signed certificates.
`

type rootOpts struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCmd returns the asn1tree command with all subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "asn1tree",
		Short:         "Inspect and build DER encoded ASN.1 data",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.asn1tree.yaml)")
	flags.BoolP(keyDebug, "d", false, "turn on debug mode")
	flags.Bool(keyHideTime, false, "hide the log time")
	flags.Int(keyMaxDepth, der.DefaultMaxDepth, "maximum nesting depth of decoded data")
	flags.Bool(keyStrict, false, "reject data following the top-level element")
	flags.String(keyFormat, formatPEM, fmt.Sprintf("output encoding, the possible values are %v", supportedFormats))
	for _, key := range []string{keyDebug, keyHideTime, keyMaxDepth, keyStrict, keyFormat} {
		if err := opts.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(newDumpCmd(opts), newReencodeCmd(opts), newCSRCmd(opts), newSelfSignCmd(opts))
	return rootCmd
}

// Execute runs the asn1tree command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("asn1tree: %v", err)
		os.Exit(1)
	}
}

// init reads the config file and environment variables and sets up logging.
func (o *rootOpts) init(cmd *cobra.Command) error {
	o.v.SetEnvPrefix("ASN1TREE")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	cfgFile := o.cfgFile
	if cfgFile == "" {
		// the default config file is optional
		if home, err := homedir.Dir(); err == nil {
			p := filepath.Join(home, ".asn1tree.yaml")
			if _, err = os.Stat(p); err == nil {
				cfgFile = p
			}
		}
	}
	if cfgFile != "" {
		o.v.SetConfigFile(cfgFile)
		if err := o.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
	}

	initLogger(cmd.ErrOrStderr(), o.v.GetBool(keyDebug), o.v.GetBool(keyHideTime))
	if cfgFile != "" {
		logrus.Debugf("using config file %s", cfgFile)
	}

	if f := o.v.GetString(keyFormat); !slices.Contains(supportedFormats, f) {
		return errors.Errorf("invalid format %q, the possible values are %v", f, supportedFormats)
	}
	return nil
}

func initLogger(w io.Writer, verbose, hideTime bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableTimestamp: hideTime,
	})
}

// decodeOptions holds the decoding options of a single command invocation.
type decodeOptions struct {
	decoder der.Decoder
	strict  bool
}

func (o *rootOpts) decodeOpts() decodeOptions {
	return decodeOptions{
		decoder: der.Decoder{MaxDepth: o.v.GetInt(keyMaxDepth)},
		strict:  o.v.GetBool(keyStrict),
	}
}
