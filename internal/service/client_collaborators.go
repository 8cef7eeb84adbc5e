package service

//go:generate mockgen -source=client_collaborators.go -destination=../mock/service_mock.go -package=mock

import "context"

// PasswordPrompt collects a key password from the user. It is used the same
// way for unlocking and for confirming a save that re-encrypts data.
type PasswordPrompt interface {
	// CollectPassword shows prompt and blocks until the user answers.
	// A cancelled prompt returns ErrPromptCancelled.
	CollectPassword(ctx context.Context, prompt string) (string, error)
}

// Clipboard receives copied field values and generated passwords.
type Clipboard interface {
	WriteAll(text string) error
}
