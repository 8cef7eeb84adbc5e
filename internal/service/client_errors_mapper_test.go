package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/crypto"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func rejected(msg string) error {
	return fmt.Errorf("%w: %s", adapter.ErrServerRejected, msg)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "cancelled prompt is silent", err: ErrPromptCancelled, want: ""},
		{name: "name required", err: fmt.Errorf("%w: %w", ErrValidationFailed, validators.ErrSecretNameRequired), want: app.MsgSecretNameRequired},
		{
			name: "joined validation errors",
			err:  errors.Join(validators.ErrSecretNameRequired, validators.ErrSecretTypeRequired),
			want: app.MsgSecretNameRequired + "\n" + app.MsgSecretTypeRequired,
		},
		{
			name: "rejected attachment",
			err:  errors.Join(validators.ErrEmptyFile, fmt.Errorf("%w: %q", editor.ErrDuplicateFileName, "a.txt")),
			want: app.MsgFileEmpty + "\n" + app.MsgFileNameExists,
		},
		{name: "text too long", err: editor.ErrTextTooLong, want: app.MsgTextTooLong},
		{name: "secret locked", err: editor.ErrSecretLocked, want: app.MsgSecretLocked},
		{name: "empty secret", err: editor.ErrEmptySecret, want: app.MsgEmptySecret},
		{name: "uploads failed", err: fmt.Errorf("%w: boom", editor.ErrUploadFailed), want: app.MsgFailedToSaveFiles},
		{name: "data integrity", err: fmt.Errorf("field 3: %w", editor.ErrDataIntegrity), want: app.MsgDataIntegrity},
		{name: "unsupported algorithm", err: crypto.ErrUnsupportedAlgorithm, want: app.MsgUnsupportedAlgorithm},
		{name: "decryption failed", err: fmt.Errorf("field 3: %w", crypto.ErrDecryptionFailed), want: app.MsgFailedToDecrypt},
		{name: "unlock rejected with message", err: fmt.Errorf("%w: %w", editor.ErrUnlockFailed, rejected("Key is disabled")), want: app.MsgUnableToUnlock + "Key is disabled"},
		{name: "unlock rejected without message", err: fmt.Errorf("%w: %w", editor.ErrUnlockFailed, rejected("")), want: app.MsgFailedToUnlock},
		{name: "expired token", err: adapter.ErrTokenIsExpired, want: app.MsgSessionExpired},
		{name: "unauthorized", err: fmt.Errorf("save: %w", adapter.ErrUnauthorized), want: app.MsgSessionExpired},
		{name: "server down", err: adapter.ErrServerUnavailable, want: app.MsgServerUnavailable},
		{name: "upload too large", err: adapter.ErrPayloadTooLarge, want: app.MsgFileTooLarge},
		{name: "server message", err: fmt.Errorf("save secret: %w", rejected("Name already used")), want: "Name already used"},
		{name: "nested rejection keeps last message", err: rejected("outer: " + rejected("inner").Error()), want: "inner"},
		{name: "rejection without message", err: rejected(""), want: app.MsgUnexpectedError},
		{name: "no session", err: ErrNoActiveSession, want: app.MsgNoSecretOpen},
		{name: "discarded", err: ErrSessionDiscarded, want: app.MsgSecretClosed},
		{name: "nothing to copy", err: ErrNothingToCopy, want: app.MsgNothingToCopy},
		{name: "unsupported", err: ErrUnsupportedOperation, want: app.MsgNotSupported},
		{name: "unknown", err: errors.New("boom"), want: app.MsgUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessageOr_Fallback(t *testing.T) {
	assert.Equal(t, app.MsgFailedToSave, UserMessageOr(rejected(""), app.MsgFailedToSave))
	assert.Equal(t, app.MsgFailedToDelete, UserMessageOr(errors.New("boom"), app.MsgFailedToDelete))
	assert.Equal(t, "Quota exceeded", UserMessageOr(rejected("Quota exceeded"), app.MsgFailedToSave))
}

func TestSaveState(t *testing.T) {
	assert.Equal(t, "awaiting_password", StateAwaitingPassword.String())
	assert.Equal(t, "unknown", SaveState(42).String())

	for _, s := range []SaveState{StateSaved, StateAborted, StateFailed} {
		assert.True(t, s.Terminal(), s.String())
	}
	for _, s := range []SaveState{StateIdle, StateValidating, StateAwaitingPassword, StatePreparingPayload, StateSubmitting} {
		assert.False(t, s.Terminal(), s.String())
	}
}
