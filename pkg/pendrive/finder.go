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

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeySuffix is the filename convention identifying a private key artifact.
// No other file metadata is consulted during discovery.
const KeySuffix = ".pem"

// FindVolumeWithKey returns the first volume whose top-level directory
// contains a private key artifact. The scan is non-recursive and follows
// the input order; the first match wins.
func FindVolumeWithKey(volumes []Volume) (Volume, error) {
	for _, volume := range volumes {
		if _, err := KeyPathOnVolume(volume); err == nil {
			return volume, nil
		}
	}
	return Volume{}, ErrNoKeyVolume
}

// KeyPathOnVolume returns the full path of the first private key artifact
// directly on the volume's mount point. Only regular files are considered
// and file contents are never opened.
func KeyPathOnVolume(volume Volume) (string, error) {
	entries, err := os.ReadDir(volume.MountPoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoKeyArtifact, err)
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), KeySuffix) && entry.Type().IsRegular() {
			return filepath.Join(volume.MountPoint, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoKeyArtifact, volume.MountPoint)
}
