// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor holds the in-memory edit state of one secret.
//
// Every secret type (website password, credit card, text blob, files) has
// its own [VariantEditor]. An editor is loaded from the server bundle, where
// sensitive fields may be ciphertext, and shows them as [Placeholder] until
// an unlock succeeds. Unlocking uses one of two strategies chosen by the key
// class:
//   - escrowed: the server checks the key password and returns plaintext;
//   - direct: the client derives the AES key and decrypts every field
//     locally; a single failing field fails the whole unlock.
//
// On save the editor decides whether a key password is needed and converts
// its fields into a [models.SecretInput]. Fields that stay locked are sent
// as null so the server keeps their ciphertext.
package editor

import (
	"context"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/crypto"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/MKhiriev/go-secret-keeper/internal/workers"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// VariantEditor is the contract every secret variant implements.
type VariantEditor interface {
	// Variant returns the secret type id handled by the editor.
	Variant() string

	// Secret returns the loaded secret with the current bundle. Locked
	// fields are returned as ciphertext.
	Secret() models.Secret

	// Load replaces the editor state with the given secret. A secret
	// without a bundle for this variant loads as an all-empty bundle.
	Load(secret models.Secret)

	// Locked reports whether any field still holds ciphertext.
	Locked() bool

	// Fields returns display snapshots of the fields in slot order.
	Fields() []FieldView

	// Edit sets the plaintext value of a field. It fails with
	// ErrSecretLocked while the bundle is locked.
	Edit(field, value string) error

	// Value returns the plaintext of a field, or ErrFieldLocked.
	Value(field string) (string, error)

	// PrepareUnlock resolves the plaintext bundle without touching the
	// editor state. The result is applied with [Unlocked.Apply].
	PrepareUnlock(ctx context.Context, keyPassword string) (*Unlocked, error)

	// Unlock is PrepareUnlock followed by Apply.
	Unlock(ctx context.Context, keyPassword string) (models.Secret, error)

	// SaveRequiresKeyPassword reports whether saving would send new
	// plaintext that the server has to encrypt.
	SaveRequiresKeyPassword() bool

	// PrepareSave plans the variant's pre-save step with the key id and key
	// password taken from input. Only the files variant does work here.
	PrepareSave(input models.SecretInput) (*Presave, error)

	// BeforeSave is PrepareSave followed by Run and Apply.
	BeforeSave(ctx context.Context, input *models.SecretInput) error

	// BuildUpdatePayload fills the variant part of input.
	BuildUpdatePayload(input *models.SecretInput)

	// Validate runs the variant-specific save checks.
	Validate() error
}

// Unlocked is a resolved unlock that has not been applied yet. Callers that
// may have discarded the editor while the unlock was running drop it
// instead of applying it.
type Unlocked struct {
	// Bundle is the secret with plaintext components.
	Bundle models.Secret

	apply func()
}

// Apply writes the plaintext into the editor. Subsequent calls do nothing.
func (u *Unlocked) Apply() {
	if u == nil || u.apply == nil {
		return
	}
	u.apply()
	u.apply = nil
}

// Presave is a planned pre-save step. Run does the network work and never
// touches the editor, so callers sharing the editor only need to hold their
// lock around PrepareSave and Apply.
type Presave struct {
	run   func(ctx context.Context)
	apply func() error
}

// Run performs the step's network work.
func (p *Presave) Run(ctx context.Context) {
	if p != nil && p.run != nil {
		p.run(ctx)
	}
}

// Apply writes the outcome of Run into the editor.
func (p *Presave) Apply() error {
	if p == nil || p.apply == nil {
		return nil
	}
	return p.apply()
}

// Limits bounds user input.
type Limits struct {
	// MaxFileSize is the attachment size limit in bytes (<= 0: unlimited).
	MaxFileSize int64
	// MaxTextLength is the text blob limit in characters (<= 0: unlimited).
	MaxTextLength int
}

// Deps are the collaborators shared by all editors. Nil crypto, validator,
// runner and logger fields are replaced by defaults.
type Deps struct {
	API       adapter.SecretAPI
	Files     adapter.FileTransfer
	Deriver   crypto.KeyDeriver
	Decrypter crypto.FieldDecrypter
	Validator validators.Validator
	Runner    workers.Runner
	Limits    Limits
	Logger    *logger.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Deriver == nil {
		d.Deriver = crypto.NewKeyDeriver()
	}
	if d.Decrypter == nil {
		d.Decrypter = crypto.NewFieldDecrypter()
	}
	if d.Validator == nil {
		d.Validator = validators.NewSecretValidator(d.Limits.MaxFileSize)
	}
	if d.Runner == nil {
		d.Runner = workers.NewBatch(0)
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return d
}
