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

// Package pendrive discovers removable storage volumes and locates
// private key artifacts stored on them.
//
// Removability is decided from OS-reported device attributes, never from
// filesystem heuristics: the sysfs block-device removable flag on Linux,
// the USB controller interface type on Windows. Platforms without a
// backend report no volumes rather than failing.
package pendrive

// Volume identifies a mounted removable storage volume. Volumes are
// discovered per invocation and never persisted.
type Volume struct {
	// Device is the OS device identifier backing the volume
	// (e.g. /dev/sdb1 on Linux, \\.\PHYSICALDRIVE1 on Windows).
	Device string

	// MountPoint is the filesystem path where the volume is accessible.
	MountPoint string
}

// Locator enumerates the removable storage volumes currently attached to
// the system. Enumeration is read-only against live OS device state.
type Locator interface {
	// FindAllRemovableVolumes returns all mounted removable volumes.
	// An environment with no removable media yields an empty result,
	// not an error.
	FindAllRemovableVolumes() ([]Volume, error)
}

// NewLocator returns the locator backend for the current platform,
// selected once at construction rather than per call.
func NewLocator() Locator {
	return newPlatformLocator()
}
