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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pensign/pkg/pendrive"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List removable volumes and any key artifacts on them",
	RunE: func(cmd *cobra.Command, args []string) error {
		volumes, err := pendrive.NewLocator().FindAllRemovableVolumes()
		if err != nil {
			return err
		}

		if len(volumes) == 0 {
			fmt.Println("No removable volumes found.")
			return nil
		}

		for _, volume := range volumes {
			line := fmt.Sprintf("%-24s %s", volume.Device, volume.MountPoint)
			if path, err := pendrive.KeyPathOnVolume(volume); err == nil {
				line += fmt.Sprintf("  [key: %s]", path)
			}
			fmt.Println(line)
		}
		return nil
	},
}
