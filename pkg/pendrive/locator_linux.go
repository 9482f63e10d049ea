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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

const sysBlock = "/sys/block"

// linuxLocator classifies block devices through the sysfs removable
// attribute and resolves mount points through the kernel mount table.
type linuxLocator struct {
	sysBlockPath string
	partitions   func(all bool) ([]disk.PartitionStat, error)
}

func newPlatformLocator() Locator {
	return &linuxLocator{
		sysBlockPath: sysBlock,
		partitions:   disk.Partitions,
	}
}

// FindAllRemovableVolumes reports the mounted volumes of every block
// device whose removable attribute is set. Mounted partitions of a
// removable disk are reported individually; a whole-disk device mounted
// without partitions is reported as-is.
func (l *linuxLocator) FindAllRemovableVolumes() ([]Volume, error) {
	devices, err := os.ReadDir(l.sysBlockPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceEnumeration, err)
	}

	stats, err := l.partitions(false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceEnumeration, err)
	}
	mounts := make(map[string]string, len(stats))
	for _, stat := range stats {
		mounts[stat.Device] = stat.Mountpoint
	}

	volumes := []Volume{}
	for _, device := range devices {
		name := device.Name()
		if !l.isRemovable(name) {
			continue
		}

		node := "/dev/" + name
		if mountPoint, ok := mounts[node]; ok {
			volumes = append(volumes, Volume{Device: node, MountPoint: mountPoint})
			continue
		}

		for _, partition := range l.partitionNames(name) {
			node := "/dev/" + partition
			if mountPoint, ok := mounts[node]; ok {
				volumes = append(volumes, Volume{Device: node, MountPoint: mountPoint})
			}
		}
	}

	return volumes, nil
}

// isRemovable reads the sysfs removable attribute for a block device.
// Devices without the attribute are treated as fixed.
func (l *linuxLocator) isRemovable(device string) bool {
	attr, err := os.ReadFile(filepath.Join(l.sysBlockPath, device, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(attr)) == "1"
}

// Verify interface compliance at compile time.
var _ Locator = (*linuxLocator)(nil)

// partitionNames lists the partition device names nested under a disk's
// sysfs directory (e.g. sdb1, sdb2 under /sys/block/sdb).
func (l *linuxLocator) partitionNames(device string) []string {
	entries, err := os.ReadDir(filepath.Join(l.sysBlockPath, device))
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), device) {
			names = append(names, entry.Name())
		}
	}
	return names
}
