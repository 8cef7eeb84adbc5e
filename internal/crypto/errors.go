package crypto

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")
	ErrDecryptionFailed     = errors.New("decryption failed")
	ErrKeyDerivationFailed  = errors.New("key derivation failed")
)
