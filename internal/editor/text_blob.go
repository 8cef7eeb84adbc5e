package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-secret-keeper/models"
)

// SlotTextBlob is the only slot of a text blob.
const SlotTextBlob = "textBlob"

// DefaultMaxTextLength is the text blob limit used when none is configured.
const DefaultMaxTextLength = 524288

var textBlobLayout = layout{
	typeID: models.SecretTypeTextBlob,
	slots:  []slotSpec{{name: SlotTextBlob, sensitive: true}},
	extract: func(s models.Secret) ([]*models.SecretComponent, bool) {
		if s.TextBlobComponents == nil {
			return make([]*models.SecretComponent, 1), false
		}
		return []*models.SecretComponent{s.TextBlobComponents.TextBlob}, true
	},
	compose: func(s *models.Secret, c []*models.SecretComponent) {
		s.TextBlobComponents = &models.TextBlobComponents{TextBlob: c[0]}
	},
	assemble: func(in *models.SecretInput, c []*models.SecretComponentInput) {
		in.TextBlobComponents = &models.TextBlobComponentsInput{TextBlob: c[0]}
	},
}

// TextBlobEditor edits text_blob secrets.
type TextBlobEditor struct {
	*slotBundle
	maxLength int
}

// NewTextBlobEditor returns an editor holding an empty bundle.
func NewTextBlobEditor(deps Deps) *TextBlobEditor {
	maxLength := deps.Limits.MaxTextLength
	if maxLength <= 0 {
		maxLength = DefaultMaxTextLength
	}
	return &TextBlobEditor{slotBundle: newSlotBundle(textBlobLayout, deps.withDefaults()), maxLength: maxLength}
}

// Validate rejects text longer than the configured limit. A locked blob is
// not checked.
func (e *TextBlobEditor) Validate() error {
	s, _ := e.fields.lookup(SlotTextBlob)
	if s.state.Locked() {
		return nil
	}
	if n := utf8.RuneCountInString(s.state.Display()); n > e.maxLength {
		return fmt.Errorf("%w: %d > %d", ErrTextTooLong, n, e.maxLength)
	}
	return nil
}
