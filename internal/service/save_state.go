package service

import "github.com/MKhiriev/go-secret-keeper/models"

// SaveState is a step of the save state machine.
type SaveState int

const (
	StateIdle SaveState = iota
	StateValidating
	StateAwaitingPassword
	StatePreparingPayload
	StateSubmitting
	StateSaved
	StateAborted
	StateFailed
)

func (s SaveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateAwaitingPassword:
		return "awaiting_password"
	case StatePreparingPayload:
		return "preparing_payload"
	case StateSubmitting:
		return "submitting"
	case StateSaved:
		return "saved"
	case StateAborted:
		return "aborted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the machine stops in s.
func (s SaveState) Terminal() bool {
	return s == StateSaved || s == StateAborted || s == StateFailed
}

// SaveResult describes where a save stopped.
type SaveResult struct {
	// State is the last state entered.
	State SaveState

	// Trace lists every state entered, in order.
	Trace []SaveState

	// Secret is the stored state after StateSaved.
	Secret models.Secret

	// Applied is false when the session was replaced before the stored
	// state could be loaded into it.
	Applied bool

	// Dropped names the attachments whose upload failed and that were left
	// out of the payload.
	Dropped []string

	// Message is the user-facing reason of StateFailed or StateAborted.
	Message string

	// Warnings are user-facing notes about a successful save.
	Warnings []string
}

func (r *SaveResult) enter(s SaveState) {
	r.State = s
	r.Trace = append(r.Trace, s)
}
