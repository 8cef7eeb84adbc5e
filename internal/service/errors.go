package service

import "errors"

var (
	ErrValidationFailed     = errors.New("validation failed")
	ErrPromptCancelled      = errors.New("password prompt cancelled")
	ErrSessionDiscarded     = errors.New("edit session was discarded")
	ErrNoActiveSession      = errors.New("no secret is open")
	ErrNothingToCopy        = errors.New("nothing to copy")
	ErrUnsupportedOperation = errors.New("operation is not supported by this secret type")
)
