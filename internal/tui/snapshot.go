package tui

import (
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/service"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// row is one selectable line of the secret view: a field of a slot editor
// or an attachment of a files secret.
type row struct {
	label     string
	field     string
	index     int
	value     string
	status    editor.FieldStatus
	sensitive bool
	dirty     bool
	pending   bool
	size      int64
}

// snapshot is the state rendered by the view. It is taken under the
// workspace lock so rendering never reads an editor that a background
// unlock or key event is changing.
type snapshot struct {
	name     string
	comments string
	variant  string
	keyName  string
	locked   bool
	isNew    bool
	rows     []row
}

func takeSnapshot(s *service.Session) *snapshot {
	snap := &snapshot{
		name:     s.Name(),
		comments: s.Comments(),
		variant:  s.Editor.Variant(),
		locked:   s.Editor.Locked(),
		isNew:    s.SecretID() == "",
	}
	if k := s.Key(); k != nil {
		snap.keyName = k.Name
	}

	if fe, ok := s.Editor.(*editor.FilesEditor); ok {
		for _, a := range fe.Attachments().Entries() {
			snap.rows = append(snap.rows, row{
				label:   fmt.Sprintf("File %d", a.Index+1),
				index:   a.Index,
				value:   a.Name,
				status:  a.Status,
				pending: a.Pending,
				size:    a.Size,
			})
		}
		return snap
	}

	for _, f := range s.Editor.Fields() {
		snap.rows = append(snap.rows, row{
			label:     fieldLabel(f.Name),
			field:     f.Name,
			value:     f.Value,
			status:    f.Status,
			sensitive: f.Sensitive,
			dirty:     f.Dirty,
		})
	}
	return snap
}

func (s *snapshot) isFiles() bool { return s.variant == models.SecretTypeFiles }

func (s *snapshot) isWebsite() bool { return s.variant == models.SecretTypeWebsitePassword }

func fieldLabel(field string) string {
	switch field {
	case editor.SlotWebsite:
		return "Website"
	case editor.SlotUsername:
		return "Username"
	case editor.SlotPassword:
		return "Password"
	case editor.SlotCompanyName:
		return "Company"
	case editor.SlotCardNumber:
		return "Card number"
	case editor.SlotExpirationMonth:
		return "Exp. month"
	case editor.SlotExpirationYear:
		return "Exp. year"
	case editor.SlotSecurityCode:
		return "Security code"
	case editor.SlotTextBlob:
		return "Text"
	default:
		return field
	}
}

func variantName(typeID string) string {
	switch typeID {
	case models.SecretTypeWebsitePassword:
		return "Website password"
	case models.SecretTypeCreditCard:
		return "Credit card"
	case models.SecretTypeTextBlob:
		return "Text"
	case models.SecretTypeFiles:
		return "Files"
	default:
		return "Unknown"
	}
}
