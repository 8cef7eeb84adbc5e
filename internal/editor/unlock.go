package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/crypto"
	"github.com/MKhiriev/go-secret-keeper/models"
)

type unlocker struct {
	api       adapter.SecretAPI
	deriver   crypto.KeyDeriver
	decrypter crypto.FieldDecrypter
}

func newUnlocker(d Deps) unlocker {
	return unlocker{api: d.API, deriver: d.Deriver, decrypter: d.Decrypter}
}

// isDirect reports whether the secret's key is decrypted on the client.
func isDirect(secret models.Secret) bool {
	return secret.Key != nil && secret.Key.Class() == models.KeyClassDirect
}

// escrowed sends the key password to the server and returns its plaintext
// bundle.
func (u unlocker) escrowed(ctx context.Context, secret models.Secret, keyPassword string) (models.Secret, error) {
	if u.api == nil {
		return models.Secret{}, fmt.Errorf("%w: no secret service configured", ErrUnlockFailed)
	}

	bundle, err := u.api.UnlockVariant(ctx, secret.TypeID(), models.UnlockRequest{
		SecretID:    secret.ID,
		KeyPassword: keyPassword,
	})
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	return bundle, nil
}

// direct decrypts every locked field of slots. The i-th result is the
// plaintext of slots[i] (empty for fields that were not locked). All fields
// are attempted; on failure the first error in slot order is returned and
// no plaintext at all.
func (u unlocker) direct(key models.Key, keyPassword string, slots []*slot) ([]string, error) {
	var (
		aesKey    []byte
		deriveErr error
		derived   bool
	)
	deriveOnce := func() ([]byte, error) {
		if !derived {
			aesKey, deriveErr = u.deriver.DeriveKey(keyPassword, key.Salt)
			derived = true
		}
		return aesKey, deriveErr
	}

	plain := make([]string, len(slots))
	var firstErr error
	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for i, s := range slots {
		f := s.state
		if !f.Locked() {
			continue
		}
		if f.ID() == "" || f.Algorithm() == "" {
			fail(fmt.Errorf("decrypt %s: %w", s.name, ErrDataIntegrity))
			continue
		}

		k, err := deriveOnce()
		if err != nil {
			fail(fmt.Errorf("decrypt %s: %w", s.name, err))
			continue
		}

		text, err := u.decrypter.Decrypt(f.Ciphertext(), k, f.ID(), f.Algorithm())
		if err != nil {
			fail(fmt.Errorf("decrypt %s: %w", s.name, err))
			continue
		}
		plain[i] = text
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return plain, nil
}

// checkPlaintext rejects a server bundle that still carries ciphertext.
func checkPlaintext(components []*models.SecretComponent) error {
	for _, c := range components {
		if c != nil && c.Encrypted && c.Value != "" {
			return fmt.Errorf("%w: server returned an encrypted field %q", ErrUnlockFailed, c.ID)
		}
	}
	return nil
}

// IsCryptoFailure reports whether err comes from local decryption.
func IsCryptoFailure(err error) bool {
	return errors.Is(err, crypto.ErrDecryptionFailed) ||
		errors.Is(err, crypto.ErrKeyDerivationFailed) ||
		errors.Is(err, crypto.ErrUnsupportedAlgorithm) ||
		errors.Is(err, ErrDataIntegrity)
}
