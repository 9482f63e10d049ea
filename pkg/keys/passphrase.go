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

// Package keys loads password-protected private key artifacts and their
// public counterparts from PEM encodings.
//
// The passphrase and the unlock material derived from it live only for a
// single unlock attempt: both are zeroed on every exit path of the loader,
// whether or not it succeeds. Decrypted private keys are held in an
// in-memory signing context that is destroyed after one signing operation.
package keys

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Passphrase holds a user-supplied secret in memory for a single unlock
// attempt. The backing bytes are copied on construction so the caller's
// buffer can be scrubbed independently, and Clear zeroes the copy.
type Passphrase struct {
	secret []byte
}

// NewPassphrase creates a passphrase from a byte slice.
//
// The slice is copied to prevent external modification. Returns an error
// if the passphrase is empty.
func NewPassphrase(secret []byte) (*Passphrase, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyPassphrase
	}
	p := make([]byte, len(secret))
	copy(p, secret)
	return &Passphrase{secret: p}, nil
}

// NewPassphraseFromString creates a passphrase from a string, as supplied
// by an external prompt collaborator.
func NewPassphraseFromString(secret string) (*Passphrase, error) {
	return NewPassphrase([]byte(secret))
}

// Bytes returns a copy of the passphrase bytes, or nil after Clear.
// Callers own the copy and should zero it when done.
func (p *Passphrase) Bytes() []byte {
	if p.secret == nil {
		return nil
	}
	result := make([]byte, len(p.secret))
	copy(result, p.secret)
	return result
}

// Clear zeroes the passphrase memory. Irreversible; subsequent accessor
// calls fail.
func (p *Passphrase) Clear() {
	if p.secret != nil {
		zeroize(p.secret)
		p.secret = nil
	}
}

// unlockMaterial derives the fixed-width decryption secret for an
// encrypted key artifact: a single SHA-256 digest of the passphrase.
// The digest is deterministic and unsalted; the artifact's own PKCS#8
// key-derivation parameters provide the stretching. Callers must zero
// the returned slice when done.
func (p *Passphrase) unlockMaterial() ([]byte, error) {
	if p.secret == nil {
		return nil, ErrPassphraseCleared
	}
	sum := sha256.Sum256(p.secret)
	return sum[:], nil
}

// zeroize overwrites b with zeros. The constant-time copy keeps the
// compiler from eliding the wipe.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
