package editor

import "github.com/MKhiriev/go-secret-keeper/models"

// Placeholder is displayed instead of ciphertext while a field is locked.
const Placeholder = "placeholder"

// FieldStatus describes what a FieldState currently holds.
type FieldStatus int

const (
	FieldEmpty FieldStatus = iota
	FieldLocked
	FieldPlaintext
)

func (s FieldStatus) String() string {
	switch s {
	case FieldLocked:
		return "locked"
	case FieldPlaintext:
		return "plaintext"
	default:
		return "empty"
	}
}

// FieldState holds one secret field and its display value.
//
// A locked field never exposes its ciphertext: Display returns Placeholder
// until Unlock supplies verified plaintext.
type FieldState struct {
	id         string
	algorithm  string
	ciphertext string

	status   FieldStatus
	display  string
	baseline string
}

// NewFieldState wraps a server component. A nil component yields an empty,
// unsaved field.
func NewFieldState(c *models.SecretComponent) *FieldState {
	f := &FieldState{}
	if c == nil {
		return f
	}

	f.id = c.ID
	f.algorithm = c.EncryptionAlgorithm

	switch {
	case c.Value == "":
		f.status = FieldEmpty
	case c.Encrypted:
		f.status = FieldLocked
		f.ciphertext = c.Value
		f.display = Placeholder
	default:
		f.status = FieldPlaintext
		f.display = c.Value
		f.baseline = c.Value
	}

	return f
}

func (f *FieldState) ID() string          { return f.id }
func (f *FieldState) Algorithm() string   { return f.algorithm }
func (f *FieldState) Ciphertext() string  { return f.ciphertext }
func (f *FieldState) Status() FieldStatus { return f.status }
func (f *FieldState) Display() string     { return f.display }
func (f *FieldState) Locked() bool        { return f.status == FieldLocked }

// Dirty reports whether the current value differs from the value the field
// had when it was loaded or unlocked. Locked fields are never dirty.
func (f *FieldState) Dirty() bool {
	return f.status != FieldLocked && f.display != f.baseline
}

// Unlock replaces the placeholder with verified plaintext. The plaintext
// becomes the new baseline, so an unlocked field is not dirty.
func (f *FieldState) Unlock(plaintext string) {
	f.ciphertext = ""
	f.display = plaintext
	f.baseline = plaintext
	f.status = statusOf(plaintext)
}

// Edit sets a new value. Locked fields refuse edits.
func (f *FieldState) Edit(value string) error {
	if f.status == FieldLocked {
		return ErrFieldLocked
	}

	f.display = value
	f.status = statusOf(value)
	return nil
}

// Input returns the field as a save payload component.
func (f *FieldState) Input() *models.SecretComponentInput {
	return &models.SecretComponentInput{ID: f.id, Value: f.display}
}

func statusOf(value string) FieldStatus {
	if value == "" {
		return FieldEmpty
	}
	return FieldPlaintext
}

// unlockFrom applies a plaintext component returned by the server. An
// unsaved field adopts the server-assigned id.
func (f *FieldState) unlockFrom(c *models.SecretComponent) {
	if c == nil {
		f.Unlock("")
		return
	}
	if f.id == "" {
		f.id = c.ID
	}
	f.Unlock(c.Value)
}

// component returns the field in server shape. Locked fields carry their
// ciphertext and are flagged encrypted.
func (f *FieldState) component() *models.SecretComponent {
	if f.status == FieldLocked {
		return &models.SecretComponent{ID: f.id, Value: f.ciphertext, Encrypted: true, EncryptionAlgorithm: f.algorithm}
	}
	return &models.SecretComponent{ID: f.id, Value: f.display}
}
