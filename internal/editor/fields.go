package editor

import "github.com/MKhiriev/go-secret-keeper/models"

// FieldView is a read-only snapshot of one field for rendering.
type FieldView struct {
	Name      string
	Value     string
	Status    FieldStatus
	Sensitive bool
	Dirty     bool
}

// slot is a named field of a bundle. Sensitive slots are the ones the server
// encrypts; the others are metadata that is always sent as plaintext.
type slot struct {
	name      string
	sensitive bool
	state     *FieldState
}

// fieldSet is the ordered slot list shared by every variant.
type fieldSet []*slot

func (fs fieldSet) lookup(name string) (*slot, bool) {
	for _, s := range fs {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// locked reports whether any field still holds ciphertext.
func (fs fieldSet) locked() bool {
	for _, s := range fs {
		if s.state.Locked() {
			return true
		}
	}
	return false
}

// requiresKeyPassword is true when the set is unlocked and some field was
// changed to a non-empty value.
func (fs fieldSet) requiresKeyPassword() bool {
	if fs.locked() {
		return false
	}
	for _, s := range fs {
		if s.state.Dirty() && s.state.Display() != "" {
			return true
		}
	}
	return false
}

// inputs converts the set into save payload components, one per slot. An
// unlocked set resubmits every field, changed or not. A locked set sends
// only its metadata slots; a nil element leaves the stored ciphertext
// untouched.
func (fs fieldSet) inputs() []*models.SecretComponentInput {
	unlocked := !fs.locked()

	out := make([]*models.SecretComponentInput, len(fs))
	for i, s := range fs {
		if s.state.Locked() {
			continue
		}
		if unlocked || !s.sensitive {
			out[i] = s.state.Input()
		}
	}
	return out
}

func (fs fieldSet) components() []*models.SecretComponent {
	out := make([]*models.SecretComponent, len(fs))
	for i, s := range fs {
		out[i] = s.state.component()
	}
	return out
}

func (fs fieldSet) views() []FieldView {
	out := make([]FieldView, len(fs))
	for i, s := range fs {
		out[i] = FieldView{
			Name:      s.name,
			Value:     s.state.Display(),
			Status:    s.state.Status(),
			Sensitive: s.sensitive,
			Dirty:     s.state.Dirty(),
		}
	}
	return out
}
