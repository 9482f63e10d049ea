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

//go:build windows

package pendrive

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// WMI projections for the disk association chain. Field names must match
// the WMI class properties.
type win32DiskDrive struct {
	DeviceID      string
	InterfaceType string
}

type win32DiskPartition struct {
	DeviceID string
}

type win32LogicalDisk struct {
	DeviceID string
}

// windowsLocator classifies disks through WMI: a drive is removable when
// its controller interface type is USB. Each wmi.Query call owns its COM
// session for the duration of the query, so no handle outlives a call.
type windowsLocator struct{}

func newPlatformLocator() Locator {
	return &windowsLocator{}
}

// FindAllRemovableVolumes reports every logical disk backed by a
// USB-attached drive, resolved through the partition-to-logical-disk
// association chain.
func (l *windowsLocator) FindAllRemovableVolumes() ([]Volume, error) {
	var drives []win32DiskDrive
	query := "SELECT DeviceID, InterfaceType FROM Win32_DiskDrive WHERE InterfaceType = 'USB'"
	if err := wmi.Query(query, &drives); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceEnumeration, err)
	}

	volumes := []Volume{}
	for _, drive := range drives {
		var partitions []win32DiskPartition
		query := fmt.Sprintf(
			"ASSOCIATORS OF {Win32_DiskDrive.DeviceID='%s'} WHERE AssocClass = Win32_DiskDriveToDiskPartition",
			drive.DeviceID)
		if err := wmi.Query(query, &partitions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeviceEnumeration, err)
		}

		for _, partition := range partitions {
			var logicalDisks []win32LogicalDisk
			query := fmt.Sprintf(
				"ASSOCIATORS OF {Win32_DiskPartition.DeviceID='%s'} WHERE AssocClass = Win32_LogicalDiskToPartition",
				partition.DeviceID)
			if err := wmi.Query(query, &logicalDisks); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDeviceEnumeration, err)
			}

			for _, logicalDisk := range logicalDisks {
				volumes = append(volumes, Volume{
					Device:     drive.DeviceID,
					MountPoint: logicalDisk.DeviceID + `\`,
				})
			}
		}
	}

	return volumes, nil
}

// Verify interface compliance at compile time.
var _ Locator = (*windowsLocator)(nil)
