// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package certs

import (
	"crypto"
	"crypto/rand"
	"math/big"
	"net"
	"time"

	"github.com/pkg/errors"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/der"
)

// DefaultValidity is the validity period of a certificate if no NotAfter time
// is given.
const DefaultValidity = 800 * 24 * time.Hour

// Certificate describes a self-signed certificate.
type Certificate struct {
	CommonName  string
	DNSNames    []string
	IPAddresses []net.IP

	// SerialNumber must be positive. If nil, a random 159 bit number is used.
	SerialNumber *big.Int

	// Validity period. A zero NotBefore means now and a zero NotAfter means
	// NotBefore plus DefaultValidity. Both times must lie between 2000 and
	// 2099 and are truncated to seconds.
	NotBefore time.Time
	NotAfter  time.Time
}

// CreateSelfSigned creates a self-signed X.509 v3 CA certificate for tmpl
// signed with key. The result is DER encoded.
func CreateSelfSigned(key crypto.Signer, tmpl *Certificate) ([]byte, error) {
	alg, err := SignatureAlgorithm(key)
	if err != nil {
		return nil, err
	}
	spki, err := SubjectPublicKeyInfo(key.Public())
	if err != nil {
		return nil, err
	}
	keyID, err := KeyIdentifier(spki)
	if err != nil {
		return nil, err
	}

	serial := tmpl.SerialNumber
	if serial == nil {
		b := make([]byte, 20)
		if _, err = rand.Read(b); err != nil {
			return nil, errors.Wrap(err, "failed to generate serial number")
		}
		b[0] &= 0x7f
		serial = new(big.Int).SetBytes(b)
	}
	if serial.Sign() < 0 {
		return nil, errors.New("negative serial number")
	}
	notBefore := tmpl.NotBefore
	if notBefore.IsZero() {
		notBefore = time.Now()
	}
	notAfter := tmpl.NotAfter
	if notAfter.IsZero() {
		notAfter = notBefore.Add(DefaultValidity)
	}
	if notAfter.Before(notBefore) {
		return nil, errors.Errorf("NotAfter %s is before NotBefore %s", notAfter, notBefore)
	}

	exts := []asn1tree.Node{
		extension(asn1tree.OIDSubjectKeyIdentifier, false, asn1tree.NewOctetString(keyID)),
		extension(asn1tree.OIDAuthorityKeyIdentifier, false, asn1tree.NewSequence(asn1tree.NewImplicit(0, keyID))),
		extension(asn1tree.OIDBasicConstraints, true, asn1tree.NewSequence(asn1tree.Boolean(true))),
	}
	if len(tmpl.DNSNames) > 0 || len(tmpl.IPAddresses) > 0 {
		names, err := generalNames(tmpl.DNSNames, tmpl.IPAddresses)
		if err != nil {
			return nil, err
		}
		exts = append(exts, extension(asn1tree.OIDSubjectAltName, false, names))
	}

	subject := name(tmpl.CommonName)
	tbs, err := der.Encode(asn1tree.NewSequence(
		asn1tree.NewExplicit(0, asn1tree.NewInteger(2)),
		asn1tree.NewBigInteger(serial),
		alg.Node(),
		subject,
		asn1tree.NewSequence(asn1tree.UTCTime(notBefore), asn1tree.UTCTime(notAfter)),
		subject,
		spki,
		asn1tree.NewExplicit(3, asn1tree.NewSequence(exts...)),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode TBSCertificate")
	}

	sig, err := sign(key, alg, tbs)
	if err != nil {
		return nil, err
	}
	cert, err := der.Encode(asn1tree.NewSequence(
		asn1tree.Raw(tbs),
		alg.Node(),
		asn1tree.NewBitString(sig, 0),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode Certificate")
	}
	return cert, nil
}
