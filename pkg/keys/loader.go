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

package keys

import (
	"crypto/rsa"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/youmark/pkcs8"
)

// PEM block types produced by the key generator and accepted by the loader.
const (
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemTypePublicKey           = "PUBLIC KEY"
)

// PrivateKey is the in-memory signing context bound to one decrypted
// private key. At most one exists per signing operation; it must never be
// serialized, cached, or written back to storage. Call Destroy when the
// signing operation completes.
type PrivateKey struct {
	key *rsa.PrivateKey
}

// NewPrivateKey wraps an already-decrypted RSA key in a signing context.
// Production flows obtain the context from LoadPrivateKey; this
// constructor serves key-generation tooling and tests.
func NewPrivateKey(key *rsa.PrivateKey) (*PrivateKey, error) {
	if key == nil {
		return nil, ErrNilPrivateKey
	}
	return &PrivateKey{key: key}, nil
}

// Signer returns the underlying RSA private key, or nil after Destroy.
func (k *PrivateKey) Signer() *rsa.PrivateKey {
	return k.key
}

// Public returns the public half of the key, or nil after Destroy.
func (k *PrivateKey) Public() *rsa.PublicKey {
	if k.key == nil {
		return nil
	}
	return &k.key.PublicKey
}

// Destroy drops the private key so the context cannot sign again. No copy
// of the key material survives in this package afterwards.
func (k *PrivateKey) Destroy() {
	k.key = nil
}

// LoadPrivateKey decrypts a PEM-encoded encrypted private key artifact
// using unlock material derived from the passphrase.
//
// The passphrase and the unlock material are zeroed before returning, on
// every path. Failure modes are distinguishable: a garbage or truncated
// artifact yields ErrMalformedKeyArtifact, while a well-formed encrypted
// artifact that fails to decrypt yields ErrInvalidPassphrase. No partial
// key material is retained on failure.
func LoadPrivateKey(artifactPEM []byte, passphrase *Passphrase) (*PrivateKey, error) {
	defer passphrase.Clear()

	unlock, err := passphrase.unlockMaterial()
	if err != nil {
		return nil, err
	}
	defer zeroize(unlock)

	block, _ := pem.Decode(artifactPEM)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block", ErrMalformedKeyArtifact)
	}
	if block.Type != pemTypeEncryptedPrivateKey {
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrMalformedKeyArtifact, block.Type)
	}

	// The decrypt-and-parse below reports a corrupt artifact and a wrong
	// password through the same error, so validate the outer ASN.1
	// structure first to keep the two failure modes distinguishable.
	var raw asn1.RawValue
	if rest, err := asn1.Unmarshal(block.Bytes, &raw); err != nil || len(rest) > 0 {
		return nil, fmt.Errorf("%w: invalid EncryptedPrivateKeyInfo", ErrMalformedKeyArtifact)
	}

	parsed, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, unlock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPassphrase, err)
	}

	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported key type %T", ErrMalformedKeyArtifact, parsed)
	}

	return &PrivateKey{key: rsaKey}, nil
}

// LoadPrivateKeyFile loads and decrypts the key artifact at path.
// A missing or unreadable artifact yields ErrArtifactNotFound, which is
// distinguishable from a passphrase failure so callers can decide whether
// to re-scan for media or re-prompt.
func LoadPrivateKeyFile(path string, passphrase *Passphrase) (*PrivateKey, error) {
	artifact, err := os.ReadFile(path)
	if err != nil {
		passphrase.Clear()
		return nil, fmt.Errorf("%w: %v", ErrArtifactNotFound, err)
	}
	return LoadPrivateKey(artifact, passphrase)
}
