// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-secret-keeper/models"
)

type cbcFieldDecrypter struct{}

// NewFieldDecrypter returns the AES-CBC/PKCS#5 [FieldDecrypter].
func NewFieldDecrypter() FieldDecrypter {
	return &cbcFieldDecrypter{}
}

func (c *cbcFieldDecrypter) Decrypt(ciphertext string, key []byte, fieldID, algorithm string) (string, error) {
	if algorithm != models.AlgorithmAESCBCPKCS5 {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decoding base64: %v", ErrDecryptionFailed, err)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrDecryptionFailed)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: creating cipher: %v", ErrDecryptionFailed, err)
	}

	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, FieldIV(fieldID)).CryptBlocks(plain, data)

	plain, err = pkcs5Unpad(plain)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryptionFailed)
	}

	return string(plain), nil
}

// FieldIV builds the deterministic IV of a field: the UTF-8 bytes of the
// field id left-aligned in one AES block, zero-padded or truncated.
func FieldIV(fieldID string) []byte {
	iv := make([]byte, aes.BlockSize)
	copy(iv, fieldID)
	return iv
}

func pkcs5Unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
		}
	}
	return b[:len(b)-n], nil
}
