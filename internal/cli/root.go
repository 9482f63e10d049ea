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

// Package cli implements the pensign command-line interface. The CLI is
// the external collaborator around the core: it prompts for the
// passphrase, resolves key paths, and composes the locate → find → load
// → sign workflow. The core packages never render prompts or log secrets.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pensign/internal/config"
	"github.com/jeremyhahn/go-pensign/pkg/logging"
)

var (
	configFile string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pensign",
	Short: "pensign - pendrive-gated document signing",
	Long: `pensign signs documents with a private key that lives only on
removable media. The key artifact is discovered on an attached pendrive,
decrypted in memory with a passphrase, used for one signing operation,
and discarded. Verification needs only the public key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.pensign.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the configuration from the --config flag or the
// default location.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// newLogger builds the CLI logger from the configuration and the
// --verbose flag.
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(verbose || cfg.Logging.Level == "debug")
}
