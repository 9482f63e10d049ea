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

// Package signing produces detached RSA-PSS signatures over document
// bytes. The algorithm is pinned: SHA-256 digest, MGF1-SHA256 mask
// generation, maximum salt length. The randomized salt means two
// signatures over identical content and key are not byte-identical,
// yet both verify.
package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/jeremyhahn/go-pensign/pkg/keys"
)

// Hash is the digest algorithm pinned for document signatures.
const Hash = crypto.SHA256

// PSSOptions returns the padding parameters pinned for document
// signatures: MGF1 with the signature hash and the largest salt the key
// allows.
func PSSOptions() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       Hash,
	}
}

// DocumentSigner signs documents with a single loaded private key. It is
// bound to the key for the duration of one signing operation and is not
// safe for concurrent use; destroy the key and discard the signer when
// the operation completes.
type DocumentSigner struct {
	key *keys.PrivateKey
}

// NewDocumentSigner creates a signer bound to the provided signing context.
func NewDocumentSigner(key *keys.PrivateKey) (*DocumentSigner, error) {
	if key == nil || key.Signer() == nil {
		return nil, ErrSignerRequired
	}
	return &DocumentSigner{key: key}, nil
}

// Sign computes an RSA-PSS signature over the SHA-256 digest of the
// document bytes.
func (s *DocumentSigner) Sign(document []byte) ([]byte, error) {
	privateKey := s.key.Signer()
	if privateKey == nil {
		return nil, ErrKeyDestroyed
	}

	digest := sha256.Sum256(document)
	signature, err := rsa.SignPSS(rand.Reader, privateKey, Hash, digest[:], PSSOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	return signature, nil
}

// SignFile signs the content of the document at path without modifying
// it. The document is read once in full; a missing or unreadable document
// is a recoverable ErrDocumentUnreadable.
func (s *DocumentSigner) SignFile(path string) ([]byte, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	return s.Sign(document)
}

// SignAndAppend signs the document at path and writes the raw signature
// bytes after the existing content, with no marker or length prefix.
//
// The append is a single write issued only once the signature is fully
// produced; any signing failure leaves the document untouched. The
// mutation is irreversible — callers that need the unsigned content must
// retain their own copy, or use SignFile instead.
func (s *DocumentSigner) SignAndAppend(path string) ([]byte, error) {
	signature, err := s.SignFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	if _, err := f.Write(signature); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrSignatureAppend, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureAppend, err)
	}

	return signature, nil
}
