// Package crypto holds the client-side field cryptography used to unlock
// secrets protected by direct keys.
//
// The server performs authoritative encryption. The client only reproduces
// the field key from the key password and the key salt and decrypts single
// fields:
//
//	key       = DeriveKey(password, salt)                  PBKDF2-HMAC-SHA256, 65536 rounds, 16 bytes
//	plaintext = Decrypt(ciphertext, key, fieldID, algo)    AES-128-CBC, PKCS#5, IV = fieldID bytes
//
// The IV is built from the field id (zero-padded or truncated to one block).
// It is stable across unlocks and requires field ids to be unique: two
// fields sharing an id would share an IV under the same key.
package crypto

// KeyDeriver turns a key password and a key salt into an AES key.
type KeyDeriver interface {
	// DeriveKey returns a 16-byte key. Identical inputs always yield an
	// identical key. Fails with ErrKeyDerivationFailed when the primitive
	// cannot run with the configured parameters.
	DeriveKey(password, salt string) ([]byte, error)
}

// FieldDecrypter decrypts one secret field.
type FieldDecrypter interface {
	// Decrypt decrypts base64 ciphertext of the field identified by fieldID.
	// algorithm must be models.AlgorithmAESCBCPKCS5, otherwise
	// ErrUnsupportedAlgorithm is returned before any decryption attempt.
	// Malformed input, a wrong key or bad padding yield ErrDecryptionFailed.
	Decrypt(ciphertext string, key []byte, fieldID, algorithm string) (string, error)
}
