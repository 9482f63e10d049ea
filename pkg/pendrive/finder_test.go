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
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newVolume creates a temporary directory posing as a mounted volume and
// populates it with the named files.
func newVolume(t *testing.T, files ...string) Volume {
	t.Helper()

	dir := t.TempDir()
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return Volume{Device: "/dev/test", MountPoint: dir}
}

func TestFindVolumeWithKey(t *testing.T) {
	t.Run("SecondVolumeHasKey", func(t *testing.T) {
		empty := newVolume(t, "readme.txt")
		withKey := newVolume(t, "key.pem")

		found, err := FindVolumeWithKey([]Volume{empty, withKey})
		if err != nil {
			t.Fatalf("FindVolumeWithKey failed: %v", err)
		}
		if found.MountPoint != withKey.MountPoint {
			t.Errorf("Expected %s, got %s", withKey.MountPoint, found.MountPoint)
		}
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		first := newVolume(t, "a.pem")
		second := newVolume(t, "b.pem")

		found, err := FindVolumeWithKey([]Volume{first, second})
		if err != nil {
			t.Fatalf("FindVolumeWithKey failed: %v", err)
		}
		if found.MountPoint != first.MountPoint {
			t.Errorf("Expected first volume %s, got %s", first.MountPoint, found.MountPoint)
		}
	})

	t.Run("NoKeyAnywhere", func(t *testing.T) {
		_, err := FindVolumeWithKey([]Volume{
			newVolume(t, "notes.txt"),
			newVolume(t),
		})
		if !errors.Is(err, ErrNoKeyVolume) {
			t.Errorf("Expected ErrNoKeyVolume, got %v", err)
		}
	})

	t.Run("NoVolumes", func(t *testing.T) {
		_, err := FindVolumeWithKey(nil)
		if !errors.Is(err, ErrNoKeyVolume) {
			t.Errorf("Expected ErrNoKeyVolume, got %v", err)
		}
	})
}

func TestKeyPathOnVolume(t *testing.T) {
	t.Run("ReturnsFullPath", func(t *testing.T) {
		volume := newVolume(t, "document.txt", "private-key.pem")

		path, err := KeyPathOnVolume(volume)
		if err != nil {
			t.Fatalf("KeyPathOnVolume failed: %v", err)
		}
		expected := filepath.Join(volume.MountPoint, "private-key.pem")
		if path != expected {
			t.Errorf("Expected %s, got %s", expected, path)
		}
	})

	t.Run("IgnoresDirectories", func(t *testing.T) {
		volume := newVolume(t)
		if err := os.Mkdir(filepath.Join(volume.MountPoint, "decoy.pem"), 0755); err != nil {
			t.Fatalf("Failed to create decoy directory: %v", err)
		}

		_, err := KeyPathOnVolume(volume)
		if !errors.Is(err, ErrNoKeyArtifact) {
			t.Errorf("Expected ErrNoKeyArtifact for directory match, got %v", err)
		}
	})

	t.Run("NonRecursive", func(t *testing.T) {
		volume := newVolume(t)
		nested := filepath.Join(volume.MountPoint, "keys")
		if err := os.Mkdir(nested, 0755); err != nil {
			t.Fatalf("Failed to create nested directory: %v", err)
		}
		if err := os.WriteFile(filepath.Join(nested, "key.pem"), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create nested key: %v", err)
		}

		_, err := KeyPathOnVolume(volume)
		if !errors.Is(err, ErrNoKeyArtifact) {
			t.Errorf("Expected ErrNoKeyArtifact for nested key, got %v", err)
		}
	})

	t.Run("UnreadableMountPoint", func(t *testing.T) {
		_, err := KeyPathOnVolume(Volume{MountPoint: filepath.Join(t.TempDir(), "gone")})
		if !errors.Is(err, ErrNoKeyArtifact) {
			t.Errorf("Expected ErrNoKeyArtifact for missing mount point, got %v", err)
		}
	})
}
