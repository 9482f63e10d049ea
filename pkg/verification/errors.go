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

package verification

import "errors"

var (
	// ErrInvalidPublicKey indicates a nil or unusable public key.
	ErrInvalidPublicKey = errors.New("verification: invalid public key")

	// ErrSignatureVerification indicates the signature did not verify.
	// A mismatch is a normal outcome, not a failure of the verifier.
	ErrSignatureVerification = errors.New("verification: signature verification failed")

	// ErrSignedFileUnreadable indicates the signed artifact cannot be read.
	ErrSignedFileUnreadable = errors.New("verification: signed file unreadable")

	// ErrMalformedSignedFile indicates the signed artifact is too short to
	// contain a signature.
	ErrMalformedSignedFile = errors.New("verification: signed file shorter than one signature")
)
