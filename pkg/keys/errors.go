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

import "errors"

var (
	// ErrEmptyPassphrase is returned when an empty passphrase is provided.
	ErrEmptyPassphrase = errors.New("keys: passphrase cannot be empty")

	// ErrPassphraseCleared is returned when the passphrase has been zeroed.
	ErrPassphraseCleared = errors.New("keys: passphrase has been cleared")

	// ErrArtifactNotFound is returned when a key artifact file is missing or unreadable.
	ErrArtifactNotFound = errors.New("keys: key artifact not found")

	// ErrMalformedKeyArtifact is returned when a key artifact cannot be decoded.
	ErrMalformedKeyArtifact = errors.New("keys: malformed key artifact")

	// ErrInvalidPassphrase is returned when decryption of a well-formed
	// artifact fails, meaning the supplied passphrase was wrong.
	ErrInvalidPassphrase = errors.New("keys: invalid passphrase")

	// ErrInvalidKeySize is returned when key generation is requested with
	// an unacceptable modulus size.
	ErrInvalidKeySize = errors.New("keys: invalid key size")

	// ErrNilPrivateKey is returned when wrapping a nil key in a signing context.
	ErrNilPrivateKey = errors.New("keys: nil private key")
)
