// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secret-keeper/models"
)

// SecretAPI is the client-side gateway to the secret query/mutation service.
//
// All methods that reach the server accept a context that controls the
// request lifetime. A response with success=false is returned as an error
// wrapping [ErrServerRejected] with the server's message attached, so callers
// only ever inspect the returned error.
type SecretAPI interface {
	// SetToken stores the bearer token used for every subsequent request.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string

	// FetchGeneralData loads the general part of a secret: name, comments,
	// image, type and key. Variant components are not included.
	FetchGeneralData(ctx context.Context, secretID string) (models.Secret, error)

	// FetchVariantData loads the component bundle of a secret of the given
	// type. Encrypted components arrive as ciphertext.
	FetchVariantData(ctx context.Context, typeID, secretID string) (models.Secret, error)

	// UnlockVariant asks the server to decrypt the bundle of a secret
	// protected by an escrowed key. The returned bundle holds plaintext.
	UnlockVariant(ctx context.Context, typeID string, req models.UnlockRequest) (models.Secret, error)

	// SaveSecret creates or updates a secret and returns the stored state.
	SaveSecret(ctx context.Context, input models.SecretInput) (models.Secret, error)

	// DeleteSecret removes a secret.
	DeleteSecret(ctx context.Context, secretID string) error
}

// FileTransfer uploads and downloads secret attachments.
type FileTransfer interface {
	// UploadFile stores content encrypted under the referenced key and
	// returns the server-assigned file id.
	UploadFile(ctx context.Context, req models.SaveFileRequest, content []byte) (string, error)

	// DownloadFile returns the decrypted content of a stored attachment.
	DownloadFile(ctx context.Context, req models.LoadFileRequest) ([]byte, error)
}
