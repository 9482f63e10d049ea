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
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pensign/pkg/keys"
	"github.com/jeremyhahn/go-pensign/pkg/verification"
)

var (
	verifyPublicKeyPath string
	verifySignaturePath string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <document>",
	Short: "Verify a document signature with the public key",
	Long: `Verify checks a signature using only the public key. Without
--signature, the document is treated as a sign-and-append artifact whose
trailing bytes are the signature; with --signature, the document is the
original content and the signature is read from the given file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		publicKeyPath := verifyPublicKeyPath
		if publicKeyPath == "" {
			publicKeyPath = cfg.Keys.PublicKeyFile
		}
		publicKey, err := keys.LoadPublicKeyFile(publicKeyPath)
		if err != nil {
			return err
		}

		if verifySignaturePath != "" {
			message, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			signature, err := os.ReadFile(verifySignaturePath)
			if err != nil {
				return err
			}
			if err := verification.Verify(publicKey, message, signature); err != nil {
				return err
			}
		} else {
			if err := verification.VerifyAppended(publicKey, args[0]); err != nil {
				return err
			}
		}

		fmt.Println("signature verified")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyPublicKeyPath, "public-key", "",
		"public key file (default from config)")
	verifyCmd.Flags().StringVar(&verifySignaturePath, "signature", "",
		"detached signature file (default: signature appended to document)")
}
