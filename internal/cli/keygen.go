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
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pensign/pkg/keys"
)

var (
	keygenOutDir string
	keygenBits   int
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a passphrase-protected signing key pair",
	Long: `Keygen creates an RSA key pair: an encrypted private key artifact
intended to live on a pendrive and a public key for verification. The
private key file should be the only .pem file on its volume so discovery
is unambiguous.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := readPassphrase("Enter PIN: ")
		if err != nil {
			return err
		}
		confirm, err := readPassphrase("Confirm PIN: ")
		if err != nil {
			scrub(secret)
			return err
		}
		match := bytes.Equal(secret, confirm)
		scrub(confirm)
		if !match {
			scrub(secret)
			return fmt.Errorf("passphrases do not match")
		}

		passphrase, err := keys.NewPassphrase(secret)
		scrub(secret)
		if err != nil {
			return err
		}

		privatePEM, publicPEM, err := keys.GenerateKeyPair(keygenBits, passphrase)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(keygenOutDir, 0755); err != nil {
			return err
		}

		privatePath := filepath.Join(keygenOutDir, "private-key.pem")
		if err := os.WriteFile(privatePath, privatePEM, 0600); err != nil {
			return err
		}
		publicPath := filepath.Join(keygenOutDir, "public-key.pem")
		if err := os.WriteFile(publicPath, publicPEM, 0644); err != nil {
			return err
		}

		fmt.Printf("wrote %s\nwrote %s\n", privatePath, publicPath)
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenOutDir, "out", ".",
		"output directory for the key pair")
	keygenCmd.Flags().IntVar(&keygenBits, "bits", keys.MinRSAKeySize,
		"RSA modulus size in bits")
}
