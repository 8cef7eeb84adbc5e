package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/service_interfaces_mock.go -package=servicemock

import (
	"context"

	"github.com/MKhiriev/go-secret-keeper/internal/utils"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// SessionGuard runs fn while holding the lock that protects an edit session.
// active reports whether the session is still the one being edited.
type SessionGuard func(fn func(active bool) error) error

// SaveCoordinator drives one save of an edit session through validation,
// the optional password prompt, the variant's pre-save step and the server
// mutation.
type SaveCoordinator interface {
	// Save runs the save state machine for session. Every read and write of
	// the session happens inside guard; the prompt and the network calls
	// happen outside it. A nil guard is for sessions nobody else shares.
	//
	// The returned result is always filled; its State tells where the
	// machine stopped. A cancelled password prompt returns the result in
	// StateIdle with ErrPromptCancelled.
	Save(ctx context.Context, session *Session, guard SessionGuard) (SaveResult, error)
}

// SecretWorkspace owns the single active edit session of the client.
//
// Opening or creating a secret replaces the active session. Results of
// unlocks and saves that finish after their session was replaced are not
// applied.
type SecretWorkspace interface {
	// Open loads the general data and the variant bundle of secretID and
	// makes it the active session.
	Open(ctx context.Context, secretID string) (*Session, error)

	// Create starts a session for a new, unsaved secret.
	Create(typeID, name string, key models.Key) (*Session, error)

	// Active returns the active session or ErrNoActiveSession.
	Active() (*Session, error)

	// Close discards the active session.
	Close()

	// WithActive runs fn with the active session while holding the
	// workspace lock, or returns ErrNoActiveSession. fn must not call back
	// into the workspace.
	WithActive(fn func(*Session) error) error

	// Unlock prompts for the key password and unlocks the active session.
	Unlock(ctx context.Context) error

	// Save saves the active session and publishes SecretUpdated.
	Save(ctx context.Context) (SaveResult, error)

	// Delete removes the secret of the active session, publishes
	// SecretDeleted and closes the session.
	Delete(ctx context.Context) error

	// CopyField copies a plaintext field of the active session.
	CopyField(field string) error

	// GeneratePassword fills the empty password field of an unlocked
	// website password session and copies the password.
	GeneratePassword(opts utils.PasswordOptions) (string, error)

	// DownloadFile prompts for the key password and fetches the attachment
	// at index of a files session.
	DownloadFile(ctx context.Context, index int) (string, []byte, error)

	// Watch applies key change events to the active session until ctx is
	// done.
	Watch(ctx context.Context)
}
