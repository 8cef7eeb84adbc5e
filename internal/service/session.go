package service

import (
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// Session is one secret opened for editing. The general data (name,
// comments, image) is edited here; the variant fields live in Editor.
type Session struct {
	// ID identifies the session; results are applied only while it is the
	// active one.
	ID string

	Editor editor.VariantEditor

	name      string
	comments  string
	imageName string

	// revision counts reloads of the editor.
	revision int
}

// NewSession wraps a loaded editor.
func NewSession(id string, ed editor.VariantEditor) *Session {
	s := &Session{ID: id, Editor: ed}
	s.syncGeneral(ed.Secret())
	return s
}

func (s *Session) syncGeneral(secret models.Secret) {
	s.name = secret.Name
	s.comments = secret.Comments
	s.imageName = secret.ImageName
}

// SecretID returns the server id of the secret, empty for a new secret.
func (s *Session) SecretID() string { return s.Editor.Secret().ID }

// Key returns the key protecting the secret, or nil.
func (s *Session) Key() *models.Key { return s.Editor.Secret().Key }

func (s *Session) Name() string     { return s.name }
func (s *Session) Comments() string { return s.comments }

// Rename sets the secret name used by the next save.
func (s *Session) Rename(name string) { s.name = name }

// SetComments sets the comments used by the next save.
func (s *Session) SetComments(comments string) { s.comments = comments }

// input returns the general part of the save payload.
func (s *Session) input() models.SecretInput {
	in := models.NewSecretInput(s.Editor.Secret())
	in.Name = s.name
	in.Comments = s.comments
	in.ImageName = s.imageName
	return in
}

// reload replaces the editor state and the general data with secret.
func (s *Session) reload(secret models.Secret) {
	s.replaceVariant(secret)
	s.syncGeneral(secret)
}

// replaceVariant replaces the editor state and keeps the general data
// edited in the session.
func (s *Session) replaceVariant(secret models.Secret) {
	s.Editor.Load(secret)
	s.revision++
}

// mergeSecret combines the general data with a variant bundle. The variant
// query returns the key with its salt, so its key wins.
func mergeSecret(general, variant models.Secret) models.Secret {
	s := general.WithGeneral(variant)
	if variant.Key != nil {
		s.Key = variant.Key
	}
	return s
}

// hasVariantBundle reports whether secret carries the components of its
// own type.
func hasVariantBundle(secret models.Secret) bool {
	switch secret.TypeID() {
	case models.SecretTypeWebsitePassword:
		return secret.WebsitePasswordComponents != nil
	case models.SecretTypeCreditCard:
		return secret.CreditCardComponents != nil
	case models.SecretTypeTextBlob:
		return secret.TextBlobComponents != nil
	case models.SecretTypeFiles:
		return secret.FilesComponents != nil
	}
	return false
}

func unlockPrompt(key *models.Key) string {
	if key != nil && key.Name != "" {
		return fmt.Sprintf(app.PromptUnlockWithKey, key.Name)
	}
	return app.PromptUnlock
}

func savePrompt(key *models.Key) string {
	if key != nil && key.IsAccountPassword() {
		return app.PromptAccountPassword
	}
	return app.PromptKeyPassword
}
