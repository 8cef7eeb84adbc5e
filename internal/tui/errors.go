// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-secret-keeper/internal/service"
)

var (
	ErrNotAFile      = errors.New("path is a directory, not a file")
	ErrNoDownloadDir = errors.New("no download directory configured")
	ErrNothingChosen = errors.New("no entry selected")
)

// errorText is the message shown for err; local errors without a user
// message are shown as they are.
func errorText(err error) string {
	return service.UserMessageOr(err, err.Error())
}
