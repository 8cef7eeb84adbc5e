package models

// UnlockRequest asks the server to unlock a secret protected by an escrowed key.
type UnlockRequest struct {
	SecretID    string `json:"secretId"`
	KeyPassword string `json:"keyPassword"`
}

// SecretResponse is the common envelope of the ownedSecret, unlockSecret and
// saveSecret operations.
type SecretResponse struct {
	Success  bool    `json:"success"`
	ErrorMsg string  `json:"errorMsg"`
	Secret   *Secret `json:"secret"`
}

// DeleteSecretResponse is the envelope of the deleteSecret mutation.
type DeleteSecretResponse struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"errorMsg"`
}
