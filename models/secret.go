// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AlgorithmAESCBCPKCS5 is the only supported field encryption algorithm tag.
const AlgorithmAESCBCPKCS5 = "AES/CBC/PKCS5Padding"

// Secret type identifiers. The type decides which component bundle a secret
// carries.
const (
	SecretTypeWebsitePassword = "website_password"
	SecretTypeCreditCard      = "credit_card"
	SecretTypeTextBlob        = "text_blob"
	SecretTypeFiles           = "files"
)

// SecretType is the type tag of a secret.
type SecretType struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// SecretComponent is a single secret field as stored by the server.
//
// When Encrypted is false, Value is plaintext or empty. When Encrypted is
// true, Value is base64 ciphertext (or empty) and never plaintext.
type SecretComponent struct {
	ID                  string `json:"id"`
	Value               string `json:"value"`
	Encrypted           bool   `json:"encrypted"`
	EncryptionAlgorithm string `json:"encryptionAlgorithm,omitempty"`
}

// WebsitePasswordComponents is the bundle of a website_password secret.
type WebsitePasswordComponents struct {
	Website  *SecretComponent `json:"website"`
	Username *SecretComponent `json:"username"`
	Password *SecretComponent `json:"password"`
}

// CreditCardComponents is the bundle of a credit_card secret.
type CreditCardComponents struct {
	CompanyName     *SecretComponent `json:"companyName"`
	CardNumber      *SecretComponent `json:"cardNumber"`
	ExpirationMonth *SecretComponent `json:"expirationMonth"`
	ExpirationYear  *SecretComponent `json:"expirationYear"`
	SecurityCode    *SecretComponent `json:"securityCode"`
}

// TextBlobComponents is the bundle of a text_blob secret.
type TextBlobComponents struct {
	TextBlob *SecretComponent `json:"textBlob"`
}

// FilesComponentsFile is one attachment of a files secret.
type FilesComponentsFile struct {
	FileID   *SecretComponent `json:"fileId"`
	FileName *SecretComponent `json:"fileName"`
}

// FilesComponents is the bundle of a files secret.
type FilesComponents struct {
	Files []FilesComponentsFile `json:"files"`
}

// Secret is a vault entry. General data (name, comments, key, type) and the
// variant bundle are fetched by separate queries, so at most one of the
// *Components fields is set, matching Type.
type Secret struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	ImageName string      `json:"imageName,omitempty"`
	Comments  string      `json:"comments,omitempty"`
	Type      *SecretType `json:"type,omitempty"`
	Key       *Key        `json:"key,omitempty"`

	WebsitePasswordComponents *WebsitePasswordComponents `json:"websitePasswordComponents,omitempty"`
	CreditCardComponents      *CreditCardComponents      `json:"creditCardComponents,omitempty"`
	TextBlobComponents        *TextBlobComponents        `json:"textBlobComponents,omitempty"`
	FilesComponents           *FilesComponents           `json:"filesComponents,omitempty"`
}

// TypeID returns the secret type identifier or an empty string.
func (s Secret) TypeID() string {
	if s.Type == nil {
		return ""
	}
	return s.Type.ID
}

// KeyID returns the referenced key identifier or an empty string.
func (s Secret) KeyID() string {
	if s.Key == nil {
		return ""
	}
	return s.Key.ID
}

// WithGeneral returns a copy of variant carrying the general data of s.
// Variant bundles are kept from variant.
func (s Secret) WithGeneral(variant Secret) Secret {
	variant.ID = s.ID
	variant.Name = s.Name
	variant.ImageName = s.ImageName
	variant.Comments = s.Comments
	variant.Type = s.Type
	variant.Key = s.Key
	return variant
}
