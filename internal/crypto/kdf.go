package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the PBKDF2 round count used when the server encrypted
	// the fields. Changing it makes existing ciphertext unreadable.
	KDFIterations = 65536

	// KeySize is the derived key length in bytes (AES-128).
	KeySize = 16
)

type pbkdf2Deriver struct {
	iterations int
	keySize    int
}

// NewKeyDeriver returns the PBKDF2-HMAC-SHA256 [KeyDeriver].
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2Deriver{iterations: KDFIterations, keySize: KeySize}
}

func (d *pbkdf2Deriver) DeriveKey(password, salt string) ([]byte, error) {
	if d.iterations <= 0 || d.keySize <= 0 {
		return nil, fmt.Errorf("%w: iterations=%d key size=%d", ErrKeyDerivationFailed, d.iterations, d.keySize)
	}

	return pbkdf2.Key([]byte(password), []byte(salt), d.iterations, d.keySize, sha256.New), nil
}
