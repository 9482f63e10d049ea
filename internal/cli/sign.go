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
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pensign/pkg/keys"
	"github.com/jeremyhahn/go-pensign/pkg/logging"
	"github.com/jeremyhahn/go-pensign/pkg/pendrive"
	"github.com/jeremyhahn/go-pensign/pkg/signing"
)

var (
	signKeyPath  string
	signDetached string
)

var signCmd = &cobra.Command{
	Use:   "sign <document>",
	Short: "Sign a document with the private key from a pendrive",
	Long: `Sign discovers a private key artifact on attached removable media
(or uses --key), decrypts it in memory with a prompted passphrase, and
signs the document. The decrypted key exists only for this one operation.

By default the raw signature bytes are appended to the document in place,
which is irreversible; keep a copy of the unsigned document or use
--detached to write the signature to a separate file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		documentPath := args[0]

		keyPath := signKeyPath
		if keyPath == "" {
			keyPath, err = discoverKeyArtifact(log)
			if err != nil {
				return err
			}
		}
		log.Debug("using key artifact", "path", keyPath)

		secret, err := readPassphrase("Enter PIN: ")
		if err != nil {
			return err
		}
		passphrase, err := keys.NewPassphrase(secret)
		scrub(secret)
		if err != nil {
			return err
		}

		// The loader consumes the passphrase on every path.
		key, err := keys.LoadPrivateKeyFile(keyPath, passphrase)
		if err != nil {
			return err
		}
		defer key.Destroy()

		signer, err := signing.NewDocumentSigner(key)
		if err != nil {
			return err
		}

		if signDetached == "" && cfg.Signing.Append {
			if _, err := signer.SignAndAppend(documentPath); err != nil {
				return err
			}
			log.Info("signature appended", "document", documentPath)
			return nil
		}

		signature, err := signer.SignFile(documentPath)
		if err != nil {
			return err
		}

		outPath := signDetached
		if outPath == "" {
			outPath = documentPath + ".sig"
		}
		if err := os.WriteFile(outPath, signature, 0644); err != nil {
			return err
		}
		log.Info("detached signature written", "document", documentPath, "signature", outPath)
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signKeyPath, "key", "",
		"private key artifact path (skips pendrive discovery)")
	signCmd.Flags().StringVar(&signDetached, "detached", "",
		"write the signature to this file instead of appending to the document")
}

// discoverKeyArtifact runs the locate → find chain: enumerate removable
// volumes, pick the first one carrying a key artifact, resolve its path.
func discoverKeyArtifact(log *logging.Logger) (string, error) {
	volumes, err := pendrive.NewLocator().FindAllRemovableVolumes()
	if err != nil {
		return "", err
	}
	log.Debug("removable volumes discovered", "count", len(volumes))

	volume, err := pendrive.FindVolumeWithKey(volumes)
	if err != nil {
		return "", err
	}
	return pendrive.KeyPathOnVolume(volume)
}
