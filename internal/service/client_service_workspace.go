package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/notify"
	"github.com/MKhiriev/go-secret-keeper/internal/utils"
	"github.com/MKhiriev/go-secret-keeper/models"
)

type workspace struct {
	mu     sync.Mutex
	active *Session

	deps      editor.Deps
	saver     SaveCoordinator
	prompt    PasswordPrompt
	clipboard Clipboard
	bus       *notify.Bus
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewSecretWorkspace returns a [SecretWorkspace]. deps.API is used for the
// secret queries and is handed to every editor.
func NewSecretWorkspace(deps editor.Deps, saver SaveCoordinator, prompt PasswordPrompt, clipboard Clipboard, bus *notify.Bus, log *logger.Logger) SecretWorkspace {
	if log == nil {
		log = logger.Nop()
	}
	deps.Logger = log
	return &workspace{
		deps:      deps,
		saver:     saver,
		prompt:    prompt,
		clipboard: clipboard,
		bus:       bus,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func (w *workspace) activate(s *Session) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active != nil {
		w.logger.Debug().Str("session_id", w.active.ID).Msg("edit session replaced")
	}
	w.active = s
}

// guard returns the SessionGuard of s: fn runs under the workspace lock and
// learns whether s is still active.
func (w *workspace) guard(s *Session) SessionGuard {
	return func(fn func(active bool) error) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		return fn(w.active == s)
	}
}

// activeSecret returns the active session and a copy of its secret taken
// under the lock.
func (w *workspace) activeSecret() (*Session, models.Secret, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active == nil {
		return nil, models.Secret{}, ErrNoActiveSession
	}
	return w.active, w.active.Editor.Secret(), nil
}

func (w *workspace) Open(ctx context.Context, secretID string) (*Session, error) {
	id := w.ids.Generate()
	ctx = utils.WithSessionID(ctx, id)

	general, err := w.deps.API.FetchGeneralData(ctx, secretID)
	if err != nil {
		return nil, fmt.Errorf("fetch general data: %w", err)
	}
	variant, err := w.deps.API.FetchVariantData(ctx, general.TypeID(), secretID)
	if err != nil {
		return nil, fmt.Errorf("fetch variant data: %w", err)
	}

	ed, err := editor.NewForSecret(mergeSecret(general, variant), w.deps)
	if err != nil {
		return nil, err
	}

	s := NewSession(id, ed)
	w.activate(s)

	w.logger.ForSecret(secretID, ed.Variant()).Info().Str("session_id", id).Bool("locked", ed.Locked()).Msg("secret opened")
	return s, nil
}

func (w *workspace) Create(typeID, name string, key models.Key) (*Session, error) {
	ed, err := editor.New(typeID, w.deps)
	if err != nil {
		return nil, err
	}
	ed.Load(models.Secret{Name: name, Type: &models.SecretType{ID: typeID}, Key: &key})

	s := NewSession(w.ids.Generate(), ed)
	w.activate(s)
	return s, nil
}

func (w *workspace) Active() (*Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active == nil {
		return nil, ErrNoActiveSession
	}
	return w.active, nil
}

func (w *workspace) WithActive(fn func(*Session) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active == nil {
		return ErrNoActiveSession
	}
	return fn(w.active)
}

func (w *workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = nil
}

// collectPassword asks for a password; an empty answer counts as cancelled.
func (w *workspace) collectPassword(ctx context.Context, prompt string) (string, error) {
	password, err := w.prompt.CollectPassword(ctx, prompt)
	if errors.Is(err, ErrPromptCancelled) || (err == nil && password == "") {
		return "", ErrPromptCancelled
	}
	if err != nil {
		return "", fmt.Errorf("collect key password: %w", err)
	}
	return password, nil
}

// Unlock implements [SecretWorkspace]. The unlock runs on a detached copy
// of the editor, so the session stays readable meanwhile. The plaintext is
// applied only if s is still the active session and was not reloaded when
// the unlock completes.
func (w *workspace) Unlock(ctx context.Context) error {
	var (
		s        *Session
		secret   models.Secret
		locked   bool
		revision int
	)
	err := w.WithActive(func(active *Session) error {
		s, revision = active, active.revision
		secret = active.Editor.Secret()
		locked = active.Editor.Locked()
		return nil
	})
	if err != nil {
		return err
	}
	if !locked {
		return nil
	}

	password, err := w.collectPassword(ctx, unlockPrompt(secret.Key))
	if err != nil {
		return err
	}

	log := w.logger.ForSecret(secret.ID, secret.TypeID())
	detached, err := editor.NewForSecret(secret, w.deps)
	if err != nil {
		return err
	}
	if _, err = detached.Unlock(utils.WithSessionID(ctx, s.ID), password); err != nil {
		log.Warn().Err(err).Msg("unlock failed")
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active != s {
		log.Info().Str("session_id", s.ID).Msg("unlock finished after its session was closed")
		return ErrSessionDiscarded
	}
	if s.revision != revision {
		log.Info().Str("session_id", s.ID).Msg("unlock finished after the secret was reloaded")
		return ErrSessionDiscarded
	}
	s.replaceVariant(detached.Secret())

	log.Info().Msg("secret unlocked")
	return nil
}

func (w *workspace) Save(ctx context.Context) (SaveResult, error) {
	s, secret, err := w.activeSecret()
	if err != nil {
		return SaveResult{}, err
	}
	created := secret.ID == ""

	res, err := w.saver.Save(utils.WithSessionID(ctx, s.ID), s, w.guard(s))
	if err != nil {
		return res, err
	}

	w.bus.Publish(notify.SecretUpdated{Secret: res.Secret, Created: created})
	return res, nil
}

func (w *workspace) Delete(ctx context.Context) error {
	s, secret, err := w.activeSecret()
	if err != nil {
		return err
	}

	secretID := secret.ID
	if secretID != "" {
		if err = w.deps.API.DeleteSecret(utils.WithSessionID(ctx, s.ID), secretID); err != nil {
			return fmt.Errorf("delete secret: %w", err)
		}
	}

	w.mu.Lock()
	if w.active == s {
		w.active = nil
	}
	w.mu.Unlock()

	if secretID != "" {
		w.bus.Publish(notify.SecretDeleted{SecretID: secretID})
		w.logger.Info().Str("secret_id", secretID).Msg("secret deleted")
	}
	return nil
}

func (w *workspace) CopyField(field string) error {
	s, err := w.Active()
	if err != nil {
		return err
	}

	w.mu.Lock()
	value, err := s.Editor.Value(field)
	w.mu.Unlock()
	if errors.Is(err, editor.ErrFieldLocked) || (err == nil && value == "") {
		return ErrNothingToCopy
	}
	if err != nil {
		return err
	}

	if err = w.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// GeneratePassword implements [SecretWorkspace]. The password is always
// copied; it is written into the session only when the bundle is unlocked
// and the password field is empty.
func (w *workspace) GeneratePassword(opts utils.PasswordOptions) (string, error) {
	s, err := w.Active()
	if err != nil {
		return "", err
	}
	wp, ok := s.Editor.(*editor.WebsitePasswordEditor)
	if !ok {
		return "", ErrUnsupportedOperation
	}

	password, err := utils.GeneratePassword(opts)
	if err != nil {
		return "", err
	}

	w.mu.Lock()
	applied, err := wp.ApplyGeneratedPassword(password)
	w.mu.Unlock()
	if err != nil && !errors.Is(err, editor.ErrSecretLocked) {
		return "", err
	}
	w.logger.Debug().Bool("applied", applied).Msg("password generated")

	if err = w.clipboard.WriteAll(password); err != nil {
		return password, fmt.Errorf("copy to clipboard: %w", err)
	}
	return password, nil
}

func (w *workspace) DownloadFile(ctx context.Context, index int) (string, []byte, error) {
	var (
		s   *Session
		fe  *editor.FilesEditor
		key *models.Key
		req models.LoadFileRequest
	)
	err := w.WithActive(func(active *Session) error {
		var ok bool
		if fe, ok = active.Editor.(*editor.FilesEditor); !ok {
			return ErrUnsupportedOperation
		}
		s, key = active, active.Key()

		var err error
		req, err = fe.DownloadRequest(index)
		return err
	})
	if err != nil {
		return "", nil, err
	}

	password, err := w.collectPassword(ctx, savePrompt(key))
	if err != nil {
		return "", nil, err
	}
	req.KeyPassword = password

	content, err := fe.Fetch(utils.WithSessionID(ctx, s.ID), req)
	if err != nil {
		return "", nil, err
	}
	return req.FileName, content, nil
}

// Watch implements [SecretWorkspace]. A deleted key closes the session of
// a secret protected by it; an updated key is loaded into a locked session.
func (w *workspace) Watch(ctx context.Context) {
	sub := w.bus.Subscribe(notify.DefaultBuffer, notify.TopicKeyUpdated, notify.TopicKeyDeleted)
	defer w.bus.Unsubscribe(sub.ID)

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub.C:
			if !ok {
				return
			}
			w.applyKeyEvent(e)
		}
	}
}

func (w *workspace) applyKeyEvent(e notify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.active
	if s == nil {
		return
	}
	current := s.Key()
	if current == nil {
		return
	}

	switch ev := e.(type) {
	case notify.KeyDeleted:
		if ev.KeyID == current.ID {
			w.active = nil
			w.logger.Info().Str("key_id", ev.KeyID).Msg("key deleted, edit session closed")
		}
	case notify.KeyUpdated:
		if ev.Key.ID != current.ID || !s.Editor.Locked() {
			return
		}
		key := ev.Key
		if key.Salt == "" {
			key.Salt = current.Salt
		}
		secret := s.Editor.Secret()
		secret.Key = &key
		s.replaceVariant(secret)
	}
}
