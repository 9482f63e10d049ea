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

//go:build linux

package pendrive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v4/disk"
)

// fakeSysBlock builds a sysfs-shaped fixture directory. Each device maps
// to its removable attribute value and partition names.
type fakeDevice struct {
	removable  string
	partitions []string
}

func fakeSysBlock(t *testing.T, devices map[string]fakeDevice) string {
	t.Helper()

	root := t.TempDir()
	for name, device := range devices {
		devDir := filepath.Join(root, name)
		if err := os.MkdirAll(devDir, 0755); err != nil {
			t.Fatalf("Failed to create device dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(devDir, "removable"), []byte(device.removable+"\n"), 0644); err != nil {
			t.Fatalf("Failed to write removable attribute: %v", err)
		}
		for _, partition := range device.partitions {
			if err := os.MkdirAll(filepath.Join(devDir, partition), 0755); err != nil {
				t.Fatalf("Failed to create partition dir: %v", err)
			}
		}
	}
	return root
}

func fixedPartitions(stats []disk.PartitionStat) func(bool) ([]disk.PartitionStat, error) {
	return func(bool) ([]disk.PartitionStat, error) {
		return stats, nil
	}
}

func TestLinuxLocator(t *testing.T) {
	t.Run("RemovablePartitionMounted", func(t *testing.T) {
		locator := &linuxLocator{
			sysBlockPath: fakeSysBlock(t, map[string]fakeDevice{
				"sda": {removable: "0", partitions: []string{"sda1"}},
				"sdb": {removable: "1", partitions: []string{"sdb1", "sdb2"}},
			}),
			partitions: fixedPartitions([]disk.PartitionStat{
				{Device: "/dev/sda1", Mountpoint: "/"},
				{Device: "/dev/sdb1", Mountpoint: "/media/usb0"},
				{Device: "/dev/sdb2", Mountpoint: "/media/usb1"},
			}),
		}

		volumes, err := locator.FindAllRemovableVolumes()
		if err != nil {
			t.Fatalf("FindAllRemovableVolumes failed: %v", err)
		}
		if len(volumes) != 2 {
			t.Fatalf("Expected 2 volumes, got %d: %v", len(volumes), volumes)
		}
		if volumes[0].MountPoint != "/media/usb0" || volumes[1].MountPoint != "/media/usb1" {
			t.Errorf("Unexpected mount points: %v", volumes)
		}
	})

	t.Run("WholeDiskMounted", func(t *testing.T) {
		locator := &linuxLocator{
			sysBlockPath: fakeSysBlock(t, map[string]fakeDevice{
				"sdc": {removable: "1"},
			}),
			partitions: fixedPartitions([]disk.PartitionStat{
				{Device: "/dev/sdc", Mountpoint: "/media/raw"},
			}),
		}

		volumes, err := locator.FindAllRemovableVolumes()
		if err != nil {
			t.Fatalf("FindAllRemovableVolumes failed: %v", err)
		}
		if len(volumes) != 1 || volumes[0].MountPoint != "/media/raw" {
			t.Errorf("Expected whole-disk mount /media/raw, got %v", volumes)
		}
	})

	t.Run("RemovableButUnmounted", func(t *testing.T) {
		locator := &linuxLocator{
			sysBlockPath: fakeSysBlock(t, map[string]fakeDevice{
				"sdd": {removable: "1", partitions: []string{"sdd1"}},
			}),
			partitions: fixedPartitions(nil),
		}

		volumes, err := locator.FindAllRemovableVolumes()
		if err != nil {
			t.Fatalf("FindAllRemovableVolumes failed: %v", err)
		}
		if len(volumes) != 0 {
			t.Errorf("Expected no volumes for unmounted device, got %v", volumes)
		}
	})

	t.Run("NoRemovableDevices", func(t *testing.T) {
		locator := &linuxLocator{
			sysBlockPath: fakeSysBlock(t, map[string]fakeDevice{
				"sda":     {removable: "0", partitions: []string{"sda1"}},
				"nvme0n1": {removable: "0", partitions: []string{"nvme0n1p1"}},
			}),
			partitions: fixedPartitions([]disk.PartitionStat{
				{Device: "/dev/sda1", Mountpoint: "/"},
			}),
		}

		volumes, err := locator.FindAllRemovableVolumes()
		if err != nil {
			t.Fatalf("FindAllRemovableVolumes failed: %v", err)
		}
		if len(volumes) != 0 {
			t.Errorf("Expected empty result, got %v", volumes)
		}
	})

	t.Run("MissingRemovableAttribute", func(t *testing.T) {
		root := fakeSysBlock(t, map[string]fakeDevice{})
		if err := os.MkdirAll(filepath.Join(root, "loop0"), 0755); err != nil {
			t.Fatalf("Failed to create device dir: %v", err)
		}

		locator := &linuxLocator{
			sysBlockPath: root,
			partitions:   fixedPartitions(nil),
		}

		volumes, err := locator.FindAllRemovableVolumes()
		if err != nil {
			t.Fatalf("FindAllRemovableVolumes failed: %v", err)
		}
		if len(volumes) != 0 {
			t.Errorf("Expected devices without the attribute to be skipped, got %v", volumes)
		}
	})
}

func TestNewLocator(t *testing.T) {
	if NewLocator() == nil {
		t.Fatal("NewLocator returned nil")
	}
}
