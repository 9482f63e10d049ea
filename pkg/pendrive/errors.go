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

package pendrive

import "errors"

var (
	// ErrDeviceEnumeration is returned when querying the OS device table fails.
	ErrDeviceEnumeration = errors.New("pendrive: device enumeration failed")

	// ErrNoKeyVolume is returned when no scanned volume carries a key artifact.
	ErrNoKeyVolume = errors.New("pendrive: no volume with a private key artifact")

	// ErrNoKeyArtifact is returned when a volume carries no key artifact.
	ErrNoKeyArtifact = errors.New("pendrive: no private key artifact on volume")
)
