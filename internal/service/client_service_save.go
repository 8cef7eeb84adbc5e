package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/MKhiriev/go-secret-keeper/models"
)

type saveCoordinator struct {
	api       adapter.SecretAPI
	prompt    PasswordPrompt
	validator validators.Validator
	logger    *logger.Logger
}

// NewSaveCoordinator returns the [SaveCoordinator] submitting through api.
func NewSaveCoordinator(api adapter.SecretAPI, prompt PasswordPrompt, validator validators.Validator, log *logger.Logger) SaveCoordinator {
	if log == nil {
		log = logger.Nop()
	}
	return &saveCoordinator{api: api, prompt: prompt, validator: validator, logger: log}
}

// unguarded is the guard of a session that is not shared.
func unguarded(fn func(active bool) error) error { return fn(true) }

// Save implements [SaveCoordinator].
//
//	Idle -> Validating -> [AwaitingPassword] -> PreparingPayload -> Submitting -> Saved
//
// Validation and server errors end in Failed. A files pre-save that cannot
// keep any attachment ends in Aborted. Nothing reaches the network before
// PreparingPayload.
func (c *saveCoordinator) Save(ctx context.Context, session *Session, guard SessionGuard) (SaveResult, error) {
	if guard == nil {
		guard = unguarded
	}
	ed := session.Editor

	var res SaveResult
	res.enter(StateIdle)

	var (
		input         models.SecretInput
		key           *models.Key
		needsPassword bool
	)
	_ = guard(func(bool) error {
		input = session.input()
		key = session.Key()
		return nil
	})
	log := c.logger.ForSecret(input.ID, ed.Variant())

	stop := func(state SaveState, err error, fallback string) (SaveResult, error) {
		res.enter(state)
		res.Message = UserMessageOr(err, fallback)
		log.Warn().Err(err).Str("state", state.String()).Msg("save stopped")
		return res, err
	}

	res.enter(StateValidating)
	err := guard(func(bool) error {
		if err := c.validator.Validate(ctx, input); err != nil {
			return err
		}
		if err := ed.Validate(); err != nil {
			return err
		}
		needsPassword = ed.SaveRequiresKeyPassword()
		return nil
	})
	if err != nil {
		return stop(StateFailed, fmt.Errorf("%w: %w", ErrValidationFailed, err), app.MsgFailedToSave)
	}

	if needsPassword {
		res.enter(StateAwaitingPassword)
		password, err := c.prompt.CollectPassword(ctx, savePrompt(key))
		if errors.Is(err, ErrPromptCancelled) || (err == nil && password == "") {
			res.enter(StateIdle)
			log.Debug().Msg("save cancelled at the password prompt")
			return res, ErrPromptCancelled
		}
		if err != nil {
			return stop(StateFailed, fmt.Errorf("collect key password: %w", err), app.MsgFailedToSave)
		}
		input.KeyPassword = password
	}

	res.enter(StatePreparingPayload)
	var (
		presave *editor.Presave
		prev    models.Secret
	)
	err = guard(func(bool) error {
		var err error
		presave, err = ed.PrepareSave(input)
		return err
	})
	if err == nil {
		presave.Run(ctx)
		err = guard(func(bool) error {
			err := presave.Apply()
			if fe, ok := ed.(*editor.FilesEditor); ok {
				res.Dropped = fe.Attachments().Dropped()
			}
			if err != nil {
				return err
			}
			ed.BuildUpdatePayload(&input)
			prev = ed.Secret()
			return nil
		})
	}
	if err != nil {
		if errors.Is(err, editor.ErrEmptySecret) || errors.Is(err, editor.ErrUploadFailed) {
			return stop(StateAborted, err, app.MsgFailedToSaveFiles)
		}
		return stop(StateFailed, err, app.MsgFailedToSave)
	}
	for _, name := range res.Dropped {
		res.Warnings = append(res.Warnings, fmt.Sprintf(app.MsgFileDropped, name))
	}

	res.enter(StateSubmitting)
	saved, err := c.api.SaveSecret(ctx, input)
	if err != nil {
		return stop(StateFailed, fmt.Errorf("save secret: %w", err), app.MsgFailedToSave)
	}

	res.enter(StateSaved)
	res.Secret = c.storedState(ctx, prev, saved, &res)

	// the identity check and the reload share one critical section
	_ = guard(func(active bool) error {
		if !active {
			return nil
		}
		session.reload(res.Secret)
		res.Applied = true
		return nil
	})
	if !res.Applied {
		log.Info().Msg("secret saved after its session was closed, state not applied")
		return res, nil
	}

	log.Info().Bool("password_sent", input.KeyPassword != "").Int("dropped", len(res.Dropped)).Msg("secret saved")
	return res, nil
}

// storedState completes the server response into a loadable secret. prev
// is the editor state the payload was built from. A response without the
// variant bundle is followed by a refetch; when that fails the submitted
// state is kept.
func (c *saveCoordinator) storedState(ctx context.Context, prev, saved models.Secret, res *SaveResult) models.Secret {
	if saved.ID == "" {
		saved.ID = prev.ID
	}
	if saved.Type == nil {
		saved.Type = prev.Type
	}
	if prev.Key != nil && (saved.Key == nil || (saved.Key.ID == prev.Key.ID && saved.Key.Salt == "")) {
		saved.Key = prev.Key
	}

	if hasVariantBundle(saved) {
		return saved
	}

	variant, err := c.api.FetchVariantData(ctx, saved.TypeID(), saved.ID)
	if err != nil {
		c.logger.Warn().Err(err).Str("secret_id", saved.ID).Msg("reload after save failed")
		res.Warnings = append(res.Warnings, app.MsgReloadFailed)
		return saved.WithGeneral(prev)
	}
	return mergeSecret(saved, variant)
}
