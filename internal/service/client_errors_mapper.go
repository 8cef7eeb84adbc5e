// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/crypto"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
)

// UserMessage translates an error of any layer into the text shown to the
// user. Unknown errors become [app.MsgUnexpectedError].
func UserMessage(err error) string {
	return UserMessageOr(err, app.MsgUnexpectedError)
}

// UserMessageOr is [UserMessage] with the fallback used for server
// rejections without a message and for unknown errors.
func UserMessageOr(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if msgs := validationMessages(err); len(msgs) > 0 {
		return strings.Join(msgs, "\n")
	}

	switch {
	case errors.Is(err, ErrPromptCancelled):
		return ""
	case errors.Is(err, ErrNothingToCopy):
		return app.MsgNothingToCopy
	case errors.Is(err, ErrNoActiveSession):
		return app.MsgNoSecretOpen
	case errors.Is(err, ErrSessionDiscarded):
		return app.MsgSecretClosed
	case errors.Is(err, ErrUnsupportedOperation):
		return app.MsgNotSupported

	case errors.Is(err, editor.ErrSecretLocked):
		return app.MsgSecretLocked
	case errors.Is(err, editor.ErrEmptySecret):
		return app.MsgEmptySecret
	case errors.Is(err, editor.ErrUploadFailed):
		return app.MsgFailedToSaveFiles

	case errors.Is(err, editor.ErrDataIntegrity):
		return app.MsgDataIntegrity
	case errors.Is(err, crypto.ErrUnsupportedAlgorithm):
		return app.MsgUnsupportedAlgorithm
	case errors.Is(err, crypto.ErrDecryptionFailed), errors.Is(err, crypto.ErrKeyDerivationFailed):
		return app.MsgFailedToDecrypt
	case errors.Is(err, editor.ErrUnlockFailed):
		if msg := serverMessage(err); msg != "" {
			return app.MsgUnableToUnlock + msg
		}
		return app.MsgFailedToUnlock

	case errors.Is(err, adapter.ErrTokenIsExpired), errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.MsgServerUnavailable
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return app.MsgFileTooLarge
	case errors.Is(err, adapter.ErrServerRejected):
		if msg := serverMessage(err); msg != "" {
			return msg
		}
	}

	return fallback
}

// validationMessages collects the messages of every validation failure in
// err, which may join several of them.
func validationMessages(err error) []string {
	checks := []struct {
		target error
		msg    string
	}{
		{validators.ErrSecretNameRequired, app.MsgSecretNameRequired},
		{validators.ErrSecretTypeRequired, app.MsgSecretTypeRequired},
		{editor.ErrNoAttachments, app.MsgNoFilesAttached},
		{editor.ErrTextTooLong, app.MsgTextTooLong},
		{validators.ErrEmptyFile, app.MsgFileEmpty},
		{validators.ErrFileTooLarge, app.MsgFileTooLarge},
		{editor.ErrDuplicateFileName, app.MsgFileNameExists},
	}

	var msgs []string
	for _, c := range checks {
		if errors.Is(err, c.target) {
			msgs = append(msgs, c.msg)
		}
	}
	return msgs
}

// serverMessage extracts the text the server attached to a rejection of
// the form "...server rejected the request: <message>".
func serverMessage(err error) string {
	msg := err.Error()
	marker := adapter.ErrServerRejected.Error() + ": "
	if idx := strings.LastIndex(msg, marker); idx != -1 {
		return strings.TrimSpace(msg[idx+len(marker):])
	}
	return ""
}
