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

//go:build !linux && !windows

package pendrive

// unsupportedLocator is the backend for platforms without device
// enumeration support. It deterministically reports no volumes — a
// documented coverage gap, not a failure.
//
// TODO: macOS backend via IOKit removable-media properties.
type unsupportedLocator struct{}

func newPlatformLocator() Locator {
	return &unsupportedLocator{}
}

func (l *unsupportedLocator) FindAllRemovableVolumes() ([]Volume, error) {
	return []Volume{}, nil
}

// Verify interface compliance at compile time.
var _ Locator = (*unsupportedLocator)(nil)
