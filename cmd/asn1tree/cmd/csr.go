// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"codello.dev/asn1tree/certs"
)

var supportedKeyTypes = []certs.KeyType{certs.KeyP256, certs.KeyP384, certs.KeyRSA2048, certs.KeyRSA3072, certs.KeyRSA4096}

// keyOpts are the flags shared by commands that generate a key.
type keyOpts struct {
	commonName string
	dnsNames   []string
	ips        []net.IP
	keyType    string
	keyOut     string
	out        string
}

func (k *keyOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&k.commonName, "cn", "", "common name of the subject")
	cmd.Flags().StringSliceVar(&k.dnsNames, "dns", nil, "DNS subject alternative name (can be repeated)")
	cmd.Flags().IPSliceVar(&k.ips, "ip", nil, "IP address subject alternative name (can be repeated)")
	cmd.Flags().StringVar(&k.keyType, "key-type", string(certs.KeyP256), fmt.Sprintf("type of the generated key, the possible values are %v", supportedKeyTypes))
	cmd.Flags().StringVar(&k.keyOut, "key-out", "", "file to write the PEM encoded private key to")
	cmd.Flags().StringVar(&k.out, "out", "", `output file ("-" for standard output)`)
	_ = cmd.MarkFlagRequired("cn")
	_ = cmd.MarkFlagRequired("key-out")
}

func newCSRCmd(opts *rootOpts) *cobra.Command {
	var k keyOpts
	csrCmd := &cobra.Command{
		Use:     "csr",
		Short:   "Generate a private key and a PKCS#10 certificate request",
		Example: `asn1tree csr --cn example.com --dns example.com --dns www.example.com --key-out key.pem --out csr.pem`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := certs.GenerateKey(certs.KeyType(k.keyType))
			if err != nil {
				return err
			}
			logrus.Debugf("generated %s key", k.keyType)
			if err = writeKey(k.keyOut, key); err != nil {
				return err
			}
			csr, err := certs.CreateCertificateRequest(key, &certs.Request{
				CommonName:  k.commonName,
				DNSNames:    k.dnsNames,
				IPAddresses: k.ips,
			})
			if err != nil {
				return err
			}
			return opts.writeOutput(cmd, k.out, certs.CertificateRequestBlockType, csr)
		},
	}
	k.addFlags(csrCmd)
	return csrCmd
}
