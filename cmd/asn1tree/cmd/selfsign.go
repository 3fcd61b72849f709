// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"codello.dev/asn1tree/certs"
)

func newSelfSignCmd(opts *rootOpts) *cobra.Command {
	var (
		k    keyOpts
		days int
	)
	selfSignCmd := &cobra.Command{
		Use:     "selfsign",
		Short:   "Generate a private key and a self-signed CA certificate",
		Example: `asn1tree selfsign --cn 192.168.3.21 --ip 192.168.3.21 --key-out key.pem --out cert.pem`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return errors.Errorf("invalid validity period of %d days", days)
			}
			key, err := certs.GenerateKey(certs.KeyType(k.keyType))
			if err != nil {
				return err
			}
			logrus.Debugf("generated %s key", k.keyType)
			if err = writeKey(k.keyOut, key); err != nil {
				return err
			}
			now := time.Now().UTC()
			cert, err := certs.CreateSelfSigned(key, &certs.Certificate{
				CommonName:  k.commonName,
				DNSNames:    k.dnsNames,
				IPAddresses: k.ips,
				NotBefore:   now,
				NotAfter:    now.AddDate(0, 0, days),
			})
			if err != nil {
				return err
			}
			return opts.writeOutput(cmd, k.out, certs.CertificateBlockType, cert)
		},
	}
	k.addFlags(selfSignCmd)
	selfSignCmd.Flags().IntVar(&days, "days", int(certs.DefaultValidity/(24*time.Hour)), "number of days the certificate is valid")
	return selfSignCmd
}
