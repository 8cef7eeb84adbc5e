// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks secret payloads and pending attachments before
// anything reaches the network.
//
// A Validator receives the value and, optionally, the names of the fields to
// check (see the Field* constants). Without field names every rule that
// applies to the value's type runs.
package validators

import "context"

// Validator validates an arbitrary model, optionally restricted to the named
// fields. A nil result means the value is acceptable.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
