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

package signing

import "errors"

var (
	// ErrSignerRequired indicates a nil or empty signing context was provided.
	ErrSignerRequired = errors.New("signing: signing context is required")

	// ErrKeyDestroyed indicates the signing context was destroyed before use.
	ErrKeyDestroyed = errors.New("signing: signing context has been destroyed")

	// ErrDocumentUnreadable indicates the target document is missing or
	// cannot be read. Recoverable; no bytes are written.
	ErrDocumentUnreadable = errors.New("signing: document unreadable")

	// ErrSigningFailed indicates signature generation failed.
	ErrSigningFailed = errors.New("signing: signature generation failed")

	// ErrSignatureAppend indicates the append write failed after a
	// signature was produced.
	ErrSignatureAppend = errors.New("signing: signature append failed")
)
