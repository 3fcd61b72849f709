// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package certs builds PKCS#10 certificate requests and self-signed X.509
// certificates as asn1tree trees and encodes them with the der package.
//
// Only a small subset of X.509 is supported: the subject is a single common
// name, subject alternative names are DNS names and IP addresses. Keys must be
// ECDSA keys on P-256 or P-384 or RSA keys.
package certs

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"net"

	"github.com/pkg/errors"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/tlv"
)

// KeyType identifies the kind of key created by [GenerateKey].
type KeyType string

// Supported key types.
const (
	KeyP256    KeyType = "p256"
	KeyP384    KeyType = "p384"
	KeyRSA2048 KeyType = "rsa2048"
	KeyRSA3072 KeyType = "rsa3072"
	KeyRSA4096 KeyType = "rsa4096"
)

// GenerateKey creates a new private key of type t.
func GenerateKey(t KeyType) (crypto.Signer, error) {
	switch t {
	case KeyP256:
		return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case KeyP384:
		return ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	case KeyRSA2048:
		return rsa.GenerateKey(rand.Reader, 2048)
	case KeyRSA3072:
		return rsa.GenerateKey(rand.Reader, 3072)
	case KeyRSA4096:
		return rsa.GenerateKey(rand.Reader, 4096)
	}
	return nil, errors.Errorf("unsupported key type %q", t)
}

// SubjectPublicKeyInfo returns the DER encoded SubjectPublicKeyInfo of pub as a
// Raw node, so that it is embedded into a tree without modification.
func SubjectPublicKeyInfo(pub crypto.PublicKey) (asn1tree.Raw, error) {
	b, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal public key")
	}
	return b, nil
}

// SignatureAlgorithm returns the algorithm used to sign with key.
func SignatureAlgorithm(key crypto.Signer) (asn1tree.SignatureAlgorithm, error) {
	switch pub := key.Public().(type) {
	case *ecdsa.PublicKey:
		switch pub.Curve {
		case elliptic.P256():
			return asn1tree.ECDSAWithSHA256, nil
		case elliptic.P384():
			return asn1tree.ECDSAWithSHA384, nil
		}
		return asn1tree.SignatureAlgorithm{}, errors.Errorf("unsupported curve %s", pub.Curve.Params().Name)
	case *rsa.PublicKey:
		return asn1tree.SHA256WithRSA, nil
	default:
		return asn1tree.SignatureAlgorithm{}, errors.Errorf("unsupported key type %T", pub)
	}
}

// KeyIdentifier computes the key identifier of a DER encoded
// SubjectPublicKeyInfo: the SHA-1 hash of the subjectPublicKey BIT STRING
// without the unused bits octet (RFC 5280, Section 4.2.1.2).
func KeyIdentifier(spki []byte) ([]byte, error) {
	h, pos, err := tlv.ParseHeader(spki, 0, len(spki))
	if err != nil {
		return nil, errors.Wrap(err, "invalid SubjectPublicKeyInfo")
	}
	if h.Tag != asn1tree.TagSequence {
		return nil, errors.Errorf("invalid SubjectPublicKeyInfo: unexpected %s", h.Tag)
	}
	end := pos + h.Length

	// skip the AlgorithmIdentifier
	if h, pos, err = tlv.ParseHeader(spki, pos, end); err != nil {
		return nil, errors.Wrap(err, "invalid SubjectPublicKeyInfo algorithm")
	}
	pos += h.Length

	if h, pos, err = tlv.ParseHeader(spki, pos, end); err != nil {
		return nil, errors.Wrap(err, "invalid SubjectPublicKeyInfo public key")
	}
	if h.Tag != asn1tree.TagBitString || h.Length < 1 {
		return nil, errors.Errorf("invalid SubjectPublicKeyInfo: unexpected %s", h)
	}
	sum := sha1.Sum(spki[pos+1 : pos+h.Length])
	return sum[:], nil
}

// sign signs data with key using the hash function of alg.
func sign(key crypto.Signer, alg asn1tree.SignatureAlgorithm, data []byte) ([]byte, error) {
	hash := alg.Hash.New()
	hash.Write(data)
	sig, err := key.Sign(rand.Reader, hash.Sum(nil), alg.Hash)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign with %s", alg.OID.Name())
	}
	return sig, nil
}

// name returns an X.509 Name consisting of a single common name.
func name(commonName string) *asn1tree.Array {
	return asn1tree.NewSequence(
		asn1tree.NewSet(
			asn1tree.NewSequence(asn1tree.OIDCommonName, asn1tree.NewUTF8String(commonName)),
		),
	)
}

// extension returns an X.509 Extension whose extnValue is the encoding of
// value.
func extension(oid asn1tree.ObjectIdentifier, critical bool, value asn1tree.Node) *asn1tree.Array {
	ext := asn1tree.NewSequence(oid)
	if critical {
		ext.Elements = append(ext.Elements, asn1tree.Boolean(true))
	}
	ext.Elements = append(ext.Elements, asn1tree.NewEncapsulated(asn1tree.TagOctetString, value))
	return ext
}

// generalNames returns the GeneralNames for a subjectAltName extension. DNS
// names use the dNSName [2] and IP addresses the iPAddress [7] alternative.
func generalNames(dnsNames []string, ips []net.IP) (*asn1tree.Array, error) {
	names := asn1tree.NewSequence()
	for _, dns := range dnsNames {
		names.Elements = append(names.Elements, &asn1tree.String{Tag: asn1tree.ContextSpecific(2, false), Value: dns})
	}
	for _, ip := range ips {
		b := ip.To4()
		if b == nil {
			b = ip.To16()
		}
		if b == nil {
			return nil, errors.Errorf("invalid IP address %v", ip)
		}
		names.Elements = append(names.Elements, asn1tree.NewImplicit(7, b))
	}
	return names, nil
}
