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

package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/youmark/pkcs8"
)

// MinRSAKeySize is the smallest modulus accepted for generated keys.
const MinRSAKeySize = 2048

// GenerateKeyPair creates an RSA key pair and returns its PEM encodings:
// an encrypted PKCS#8 private key gated on the passphrase-derived unlock
// material, and a PKIX public key.
//
// The passphrase and the unlock material are zeroed before returning on
// every path, mirroring the loader's discipline.
func GenerateKeyPair(bits int, passphrase *Passphrase) (privatePEM, publicPEM []byte, err error) {
	defer passphrase.Clear()

	if bits < MinRSAKeySize {
		return nil, nil, fmt.Errorf("%w: RSA key size must be at least %d bits", ErrInvalidKeySize, MinRSAKeySize)
	}

	unlock, err := passphrase.unlockMaterial()
	if err != nil {
		return nil, nil, err
	}
	defer zeroize(unlock)

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("key generation failed: %w", err)
	}

	privateDER, err := pkcs8.MarshalPrivateKey(key, unlock, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("private key encoding failed: %w", err)
	}
	privatePEM = pem.EncodeToMemory(&pem.Block{
		Type:  pemTypeEncryptedPrivateKey,
		Bytes: privateDER,
	})

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("public key encoding failed: %w", err)
	}
	publicPEM = pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePublicKey,
		Bytes: publicDER,
	})

	return privatePEM, publicPEM, nil
}
