// Package cryptotest reproduces the server-side field encryption so tests can
// build ciphertext that the client must be able to decrypt.
package cryptotest

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/crypto"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// EncryptField encrypts plaintext for the field fieldID with the key derived
// from password and salt, and returns base64 ciphertext.
func EncryptField(t testing.TB, plaintext, password, salt, fieldID string) string {
	t.Helper()

	key, err := crypto.NewKeyDeriver().DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("derive key: %v", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}

	pad := aes.BlockSize - len(plaintext)%aes.BlockSize
	data := append([]byte(plaintext), bytes.Repeat([]byte{byte(pad)}, pad)...)

	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, crypto.FieldIV(fieldID)).CryptBlocks(out, data)

	return base64.StdEncoding.EncodeToString(out)
}

// EncryptedComponent returns an encrypted SecretComponent holding plaintext.
func EncryptedComponent(t testing.TB, id, plaintext, password, salt string) *models.SecretComponent {
	t.Helper()

	return &models.SecretComponent{
		ID:                  id,
		Value:               EncryptField(t, plaintext, password, salt, id),
		Encrypted:           true,
		EncryptionAlgorithm: models.AlgorithmAESCBCPKCS5,
	}
}
