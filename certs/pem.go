// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package certs

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
)

// Possible values for the type of a PEM block.
const (
	CertificateBlockType        = "CERTIFICATE"
	CertificateRequestBlockType = "CERTIFICATE REQUEST"
	PrivateKeyBlockType         = "PRIVATE KEY"
)

// EncodePEM returns the PEM encoding of der using the given block type.
func EncodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

// DecodePEM returns the type and contents of the first PEM block in data.
func DecodePEM(data []byte) (blockType string, der []byte, err error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return "", nil, errors.New("no PEM data found")
	}
	return block.Type, block.Bytes, nil
}

// MarshalPrivateKey returns the PEM encoded PKCS#8 form of key.
func MarshalPrivateKey(key crypto.Signer) ([]byte, error) {
	b, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal private key")
	}
	return EncodePEM(PrivateKeyBlockType, b), nil
}
