// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-pensign.
//
// go-pensign is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package verification checks document signatures using only the public
// key. It uses the same pinned scheme as the signer: RSA-PSS over a
// SHA-256 digest with auto-detected salt length. A mismatched signature
// is a normal outcome, reported as a sentinel error rather than raised.
package verification

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/jeremyhahn/go-pensign/pkg/signing"
)

// Verify validates an RSA-PSS signature over the message bytes. It
// returns nil for a valid signature and ErrSignatureVerification for a
// mismatch.
func Verify(pub *rsa.PublicKey, message, signature []byte) error {
	if pub == nil {
		return ErrInvalidPublicKey
	}

	digest := sha256.Sum256(message)
	if err := rsa.VerifyPSS(pub, signing.Hash, digest[:], signature, signing.PSSOptions()); err != nil {
		return ErrSignatureVerification
	}
	return nil
}

// VerifyAppended checks a sign-and-append artifact: the trailing
// pub.Size() bytes are the signature, everything before them is the
// signed content. The append format is not self-describing, so the split
// is derived from the key's modulus size.
func VerifyAppended(pub *rsa.PublicKey, signedPath string) error {
	if pub == nil {
		return ErrInvalidPublicKey
	}

	data, err := os.ReadFile(signedPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignedFileUnreadable, err)
	}

	signatureLen := pub.Size()
	if len(data) < signatureLen {
		return fmt.Errorf("%w: %s", ErrMalformedSignedFile, signedPath)
	}

	split := len(data) - signatureLen
	return Verify(pub, data[:split], data[split:])
}
