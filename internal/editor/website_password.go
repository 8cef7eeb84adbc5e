package editor

import "github.com/MKhiriev/go-secret-keeper/models"

// Website password slots.
const (
	SlotWebsite  = "website"
	SlotUsername = "username"
	SlotPassword = "password"
)

var websitePasswordLayout = layout{
	typeID: models.SecretTypeWebsitePassword,
	slots: []slotSpec{
		{name: SlotWebsite},
		{name: SlotUsername, sensitive: true},
		{name: SlotPassword, sensitive: true},
	},
	extract: func(s models.Secret) ([]*models.SecretComponent, bool) {
		c := s.WebsitePasswordComponents
		if c == nil {
			return make([]*models.SecretComponent, 3), false
		}
		return []*models.SecretComponent{c.Website, c.Username, c.Password}, true
	},
	compose: func(s *models.Secret, c []*models.SecretComponent) {
		s.WebsitePasswordComponents = &models.WebsitePasswordComponents{Website: c[0], Username: c[1], Password: c[2]}
	},
	assemble: func(in *models.SecretInput, c []*models.SecretComponentInput) {
		in.WebsitePasswordComponents = &models.WebsitePasswordComponentsInput{Website: c[0], Username: c[1], Password: c[2]}
	},
}

// WebsitePasswordEditor edits website_password secrets. The website URL is
// metadata and is never encrypted.
type WebsitePasswordEditor struct {
	*slotBundle
}

// NewWebsitePasswordEditor returns an editor holding an empty bundle.
func NewWebsitePasswordEditor(deps Deps) *WebsitePasswordEditor {
	return &WebsitePasswordEditor{slotBundle: newSlotBundle(websitePasswordLayout, deps.withDefaults())}
}

// ApplyGeneratedPassword fills an empty password field with password. It
// reports false, leaving the field alone, when the field already has a
// value.
func (e *WebsitePasswordEditor) ApplyGeneratedPassword(password string) (bool, error) {
	if e.Locked() {
		return false, ErrSecretLocked
	}

	s, _ := e.fields.lookup(SlotPassword)
	if s.state.Display() != "" {
		return false, nil
	}
	if err := s.state.Edit(password); err != nil {
		return false, err
	}
	return true, nil
}
