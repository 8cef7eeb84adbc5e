// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DirectLockKeyTypeID is the key type identifier of keys whose fields are
// decrypted on the client with a password-derived key.
const DirectLockKeyTypeID = "direct_lock"

// AccountPasswordKeyID is the identifier of the built-in key protected by
// the account password.
const AccountPasswordKeyID = "0"

// KeyClass tells who performs decryption for fields protected by a key.
type KeyClass string

const (
	// KeyClassEscrowed keys are unlocked by the server after it
	// authenticates the key password; the server returns plaintext.
	KeyClassEscrowed KeyClass = "escrowed"

	// KeyClassDirect keys are unlocked locally: the client derives the
	// AES key from the key password and the key salt.
	KeyClassDirect KeyClass = "direct"
)

// KeyType describes the kind of a key as reported by the server.
type KeyType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Abbr string `json:"abbr,omitempty"`
}

// Key is a reference to the key protecting a secret. Secrets reference keys,
// they never own them.
type Key struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ImageName string   `json:"imageName,omitempty"`
	Comments  string   `json:"comments,omitempty"`
	Type      *KeyType `json:"type,omitempty"`

	// Salt is used by direct keys to derive the field decryption key.
	Salt string `json:"salt,omitempty"`
}

// Class returns the key class derived from the key type.
func (k Key) Class() KeyClass {
	if k.Type != nil && k.Type.ID == DirectLockKeyTypeID {
		return KeyClassDirect
	}
	return KeyClassEscrowed
}

// IsAccountPassword reports whether the key is the account password key.
func (k Key) IsAccountPassword() bool {
	return k.ID == AccountPasswordKeyID
}
