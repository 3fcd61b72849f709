// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package certs

import (
	"crypto"
	"net"

	"github.com/pkg/errors"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/der"
)

// Request describes a certificate request. The request always asks for the
// serverAuth extended key usage.
type Request struct {
	CommonName  string
	DNSNames    []string
	IPAddresses []net.IP
}

// CreateCertificateRequest creates a PKCS#10 certificate request (RFC 2986)
// for req signed with key. The result is DER encoded.
func CreateCertificateRequest(key crypto.Signer, req *Request) ([]byte, error) {
	alg, err := SignatureAlgorithm(key)
	if err != nil {
		return nil, err
	}
	spki, err := SubjectPublicKeyInfo(key.Public())
	if err != nil {
		return nil, err
	}

	var exts []asn1tree.Node
	if len(req.DNSNames) > 0 || len(req.IPAddresses) > 0 {
		names, err := generalNames(req.DNSNames, req.IPAddresses)
		if err != nil {
			return nil, err
		}
		exts = append(exts, extension(asn1tree.OIDSubjectAltName, false, names))
	}
	exts = append(exts, extension(asn1tree.OIDExtKeyUsage, false, asn1tree.NewSequence(asn1tree.OIDServerAuth)))

	info, err := der.Encode(asn1tree.NewSequence(
		asn1tree.NewInteger(0),
		name(req.CommonName),
		spki,
		asn1tree.NewExplicit(0,
			asn1tree.NewSequence(
				asn1tree.OIDExtensionRequest,
				asn1tree.NewSet(asn1tree.NewSequence(exts...)),
			),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode CertificationRequestInfo")
	}

	sig, err := sign(key, alg, info)
	if err != nil {
		return nil, err
	}
	csr, err := der.Encode(asn1tree.NewSequence(
		asn1tree.Raw(info),
		alg.Node(),
		asn1tree.NewBitString(sig, 0),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode CertificationRequest")
	}
	return csr, nil
}
