// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import "crypto"

// Object identifiers used when building certificates and certificate requests.
var (
	// PKCS#7 content types
	OIDData          = ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}
	OIDEncryptedData = ObjectIdentifier{1, 2, 840, 113549, 1, 7, 6}

	// PKCS#12 bag types and attributes
	OIDPKCS8ShroudedKeyBag = ObjectIdentifier{1, 2, 840, 113549, 1, 12, 10, 1, 2}
	OIDCertBag             = ObjectIdentifier{1, 2, 840, 113549, 1, 12, 10, 1, 3}
	OIDX509Certificate     = ObjectIdentifier{1, 2, 840, 113549, 1, 9, 22, 1}
	OIDLocalKeyID          = ObjectIdentifier{1, 2, 840, 113549, 1, 9, 21}

	// PKCS#5 and algorithms
	OIDPBES2          = ObjectIdentifier{1, 2, 840, 113549, 1, 5, 13}
	OIDPBKDF2         = ObjectIdentifier{1, 2, 840, 113549, 1, 5, 12}
	OIDHMACWithSHA256 = ObjectIdentifier{1, 2, 840, 113549, 2, 9}
	OIDAES256CBC      = ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 42}
	OIDSHA256         = ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}

	// Public key algorithms
	OIDRSAEncryption = ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	OIDECPublicKey   = ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	OIDP256          = ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	OIDP384          = ObjectIdentifier{1, 3, 132, 0, 34}

	// Signature algorithms
	OIDECDSAWithSHA256 = ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	OIDECDSAWithSHA384 = ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	OIDSHA256WithRSA   = ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}

	// Names, attributes and extensions
	OIDCommonName             = ObjectIdentifier{2, 5, 4, 3}
	OIDExtensionRequest       = ObjectIdentifier{1, 2, 840, 113549, 1, 9, 14}
	OIDSubjectKeyIdentifier   = ObjectIdentifier{2, 5, 29, 14}
	OIDAuthorityKeyIdentifier = ObjectIdentifier{2, 5, 29, 35}
	OIDBasicConstraints       = ObjectIdentifier{2, 5, 29, 19}
	OIDSubjectAltName         = ObjectIdentifier{2, 5, 29, 17}
	OIDExtKeyUsage            = ObjectIdentifier{2, 5, 29, 37}
	OIDServerAuth             = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}
)

// oidNames maps the dotted notation of well-known OIDs to a short name.
var oidNames = map[string]string{
	OIDData.String():                   "data",
	OIDEncryptedData.String():          "encryptedData",
	OIDPKCS8ShroudedKeyBag.String():    "pkcs8ShroudedKeyBag",
	OIDCertBag.String():                "certBag",
	OIDX509Certificate.String():        "x509Certificate",
	OIDLocalKeyID.String():             "localKeyID",
	OIDPBES2.String():                  "PBES2",
	OIDPBKDF2.String():                 "PBKDF2",
	OIDHMACWithSHA256.String():         "hmacWithSHA256",
	OIDAES256CBC.String():              "aes256-CBC",
	OIDSHA256.String():                 "sha256",
	OIDRSAEncryption.String():          "rsaEncryption",
	OIDECPublicKey.String():            "ecPublicKey",
	OIDP256.String():                   "prime256v1",
	OIDP384.String():                   "secp384r1",
	OIDECDSAWithSHA256.String():        "ecdsa-with-SHA256",
	OIDECDSAWithSHA384.String():        "ecdsa-with-SHA384",
	OIDSHA256WithRSA.String():          "sha256WithRSAEncryption",
	OIDCommonName.String():             "commonName",
	OIDExtensionRequest.String():       "extensionRequest",
	OIDSubjectKeyIdentifier.String():   "subjectKeyIdentifier",
	OIDAuthorityKeyIdentifier.String(): "authorityKeyIdentifier",
	OIDBasicConstraints.String():       "basicConstraints",
	OIDSubjectAltName.String():         "subjectAltName",
	OIDExtKeyUsage.String():            "extKeyUsage",
	OIDServerAuth.String():             "serverAuth",
}

// Name returns a short, human-readable name for well-known identifiers, or ""
// if oid is not known.
func (oid ObjectIdentifier) Name() string {
	return oidNames[oid.String()]
}

// SignatureAlgorithm describes an AlgorithmIdentifier used to sign
// certificates and certificate requests.
type SignatureAlgorithm struct {
	OID  ObjectIdentifier
	Hash crypto.Hash

	// NullParameters indicates that the AlgorithmIdentifier carries an explicit
	// NULL parameter, as required for the PKCS#1 algorithms (RFC 4055).
	NullParameters bool
}

// Node returns the AlgorithmIdentifier SEQUENCE for a.
func (a SignatureAlgorithm) Node() *Array {
	if a.NullParameters {
		return NewSequence(a.OID, Null{})
	}
	return NewSequence(a.OID)
}

// Supported signature algorithms.
var (
	ECDSAWithSHA256 = SignatureAlgorithm{OID: OIDECDSAWithSHA256, Hash: crypto.SHA256}
	ECDSAWithSHA384 = SignatureAlgorithm{OID: OIDECDSAWithSHA384, Hash: crypto.SHA384}
	SHA256WithRSA   = SignatureAlgorithm{OID: OIDSHA256WithRSA, Hash: crypto.SHA256, NullParameters: true}
)
