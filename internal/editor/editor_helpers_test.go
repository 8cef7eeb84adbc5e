package editor

import (
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/crypto/cryptotest"
	"github.com/MKhiriev/go-secret-keeper/models"
)

const (
	testKeyPassword = "correct horse"
	testSalt        = "salt-of-key-9"
)

func directKey() *models.Key {
	return &models.Key{ID: "9", Name: "Laptop", Type: &models.KeyType{ID: models.DirectLockKeyTypeID}, Salt: testSalt}
}

func escrowedKey() *models.Key {
	return &models.Key{ID: "3", Name: "Team", Type: &models.KeyType{ID: "server_lock"}}
}

func encrypted(t *testing.T, id, plaintext string) *models.SecretComponent {
	t.Helper()
	return cryptotest.EncryptedComponent(t, id, plaintext, testKeyPassword, testSalt)
}

func plain(id, value string) *models.SecretComponent {
	return &models.SecretComponent{ID: id, Value: value}
}

// lockedWebsiteSecret is a website password secret whose username and
// password are encrypted under a direct key.
func lockedWebsiteSecret(t *testing.T) models.Secret {
	t.Helper()
	return models.Secret{
		ID:   "s-1",
		Name: "Mail",
		Type: &models.SecretType{ID: models.SecretTypeWebsitePassword},
		Key:  directKey(),
		WebsitePasswordComponents: &models.WebsitePasswordComponents{
			Website:  plain("101", "example.com"),
			Username: encrypted(t, "102", "alice"),
			Password: encrypted(t, "103", "s3cret"),
		},
	}
}

func fieldValue(t *testing.T, e VariantEditor, field string) string {
	t.Helper()
	v, err := e.Value(field)
	if err != nil {
		t.Fatalf("Value(%s): %v", field, err)
	}
	return v
}

// cryptotestForeign encrypts under a password other than testKeyPassword.
func cryptotestForeign(t *testing.T, id, plaintext string) *models.SecretComponent {
	t.Helper()
	return cryptotest.EncryptedComponent(t, id, plaintext, "another password", testSalt)
}
