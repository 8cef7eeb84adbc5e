package editor

import (
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/models"
)

// New returns an empty editor for the secret type typeID.
func New(typeID string, deps Deps) (VariantEditor, error) {
	switch typeID {
	case models.SecretTypeWebsitePassword:
		return NewWebsitePasswordEditor(deps), nil
	case models.SecretTypeCreditCard:
		return NewCreditCardEditor(deps), nil
	case models.SecretTypeTextBlob:
		return NewTextBlobEditor(deps), nil
	case models.SecretTypeFiles:
		return NewFilesEditor(deps), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, typeID)
	}
}

// NewForSecret returns an editor for the type of secret, loaded with it.
func NewForSecret(secret models.Secret, deps Deps) (VariantEditor, error) {
	e, err := New(secret.TypeID(), deps)
	if err != nil {
		return nil, err
	}
	e.Load(secret)
	return e, nil
}
