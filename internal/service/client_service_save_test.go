// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/MKhiriev/go-secret-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// owned is the guard of a session that stays active.
func owned(fn func(active bool) error) error { return fn(true) }

// ── Validation ───────────────────────────────────────────────────────────────

func TestSave_NameRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())
	s.Rename("   ")

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.ErrorIs(t, err, ErrValidationFailed)
	require.ErrorIs(t, err, validators.ErrSecretNameRequired)
	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, []SaveState{StateIdle, StateValidating, StateFailed}, res.Trace)
	assert.Equal(t, app.MsgSecretNameRequired, res.Message)
}

func TestSave_VariantValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, models.Secret{
		ID:                 "s-2",
		Name:               "Note",
		Type:               &models.SecretType{ID: models.SecretTypeTextBlob},
		Key:                teamKey(),
		TextBlobComponents: &models.TextBlobComponents{TextBlob: plainComponent("401", "short")},
	})
	require.NoError(t, s.Editor.Edit(editor.SlotTextBlob, "definitely longer than sixteen"))

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.ErrorIs(t, err, editor.ErrTextTooLong)
	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, app.MsgTextTooLong, res.Message)
}

func TestSave_FilesWithoutAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, models.Secret{Name: "Docs", Type: &models.SecretType{ID: models.SecretTypeFiles}, Key: teamKey()})

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.ErrorIs(t, err, editor.ErrNoAttachments)
	assert.Equal(t, app.MsgNoFilesAttached, res.Message)
}

// ── Password prompt ──────────────────────────────────────────────────────────

func TestSave_UnchangedNeedsNoPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())

	stored := lockedWebsiteSecret()
	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in models.SecretInput) (models.Secret, error) {
			assert.Empty(t, in.KeyPassword)
			assert.Equal(t, "s-1", in.ID)
			assert.Equal(t, "Mail", in.Name)
			assert.Equal(t, "personal", in.Comments)
			assert.Equal(t, "3", in.KeyID)
			assert.Equal(t, models.SecretTypeWebsitePassword, in.TypeID)
			assert.Equal(t, &models.SecretComponentInput{ID: "101", Value: "example.com"}, in.WebsitePasswordComponents.Website)
			return stored, nil
		})

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.NoError(t, err)
	assert.Equal(t, []SaveState{StateIdle, StateValidating, StatePreparingPayload, StateSubmitting, StateSaved}, res.Trace)
	assert.True(t, res.Applied)
	assert.True(t, s.Editor.Locked(), "the stored ciphertext is loaded back")
}

func TestSave_EditedFieldAsksForPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())
	require.NoError(t, s.Editor.Edit(editor.SlotPassword, "n3w-pass"))

	fx.prompt.EXPECT().CollectPassword(gomock.Any(), app.PromptKeyPassword).Return("kp", nil)
	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in models.SecretInput) (models.Secret, error) {
			assert.Equal(t, "kp", in.KeyPassword)
			c := in.WebsitePasswordComponents
			assert.Equal(t, "example.com", c.Website.Value)
			assert.Equal(t, "alice", c.Username.Value)
			assert.Equal(t, "n3w-pass", c.Password.Value)
			return lockedWebsiteSecret(), nil
		})

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.NoError(t, err)
	assert.Equal(t, StateSaved, res.State)
	assert.Contains(t, res.Trace, StateAwaitingPassword)
}

func TestSave_AccountPasswordPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	secret := plainWebsiteSecret()
	secret.Key = &models.Key{ID: models.AccountPasswordKeyID, Name: "Account"}
	s := fx.session(t, secret)
	require.NoError(t, s.Editor.Edit(editor.SlotUsername, "bob"))

	fx.prompt.EXPECT().CollectPassword(gomock.Any(), app.PromptAccountPassword).Return("account-pw", nil)
	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).Return(secret, nil)

	_, err := fx.saver.Save(context.Background(), s, owned)
	require.NoError(t, err)
}

func TestSave_PromptCancelled(t *testing.T) {
	tests := []struct {
		name     string
		password string
		err      error
	}{
		{name: "cancelled", err: ErrPromptCancelled},
		{name: "empty password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fx := newFixture(t, ctrl)
			s := fx.session(t, plainWebsiteSecret())
			require.NoError(t, s.Editor.Edit(editor.SlotPassword, "n3w-pass"))

			fx.prompt.EXPECT().CollectPassword(gomock.Any(), gomock.Any()).Return(tt.password, tt.err)

			res, err := fx.saver.Save(context.Background(), s, owned)

			require.ErrorIs(t, err, ErrPromptCancelled)
			assert.Equal(t, StateIdle, res.State)
			assert.Equal(t, []SaveState{StateIdle, StateValidating, StateAwaitingPassword, StateIdle}, res.Trace)
			assert.Equal(t, "n3w-pass", value(t, s, editor.SlotPassword), "edits survive a cancelled save")
		})
	}
}

func TestSave_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())
	require.NoError(t, s.Editor.Edit(editor.SlotPassword, "n3w-pass"))

	fx.prompt.EXPECT().CollectPassword(gomock.Any(), gomock.Any()).Return("", errors.New("tty closed"))

	res, err := fx.saver.Save(context.Background(), s, owned)
	require.Error(t, err)
	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, app.MsgFailedToSave, res.Message)
}

// ── Submitting ───────────────────────────────────────────────────────────────

func TestSave_ServerRejected(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "with message", err: fmt.Errorf("%w: %s", adapter.ErrServerRejected, "Secret name already used"), message: "Secret name already used"},
		{name: "without message", err: fmt.Errorf("%w: %s", adapter.ErrServerRejected, ""), message: app.MsgFailedToSave},
		{name: "network", err: fmt.Errorf("save: %w", adapter.ErrServerUnavailable), message: app.MsgServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fx := newFixture(t, ctrl)
			s := fx.session(t, plainWebsiteSecret())

			fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).Return(models.Secret{}, tt.err)

			res, err := fx.saver.Save(context.Background(), s, owned)

			require.Error(t, err)
			assert.Equal(t, StateFailed, res.State)
			assert.Equal(t, tt.message, res.Message)
			assert.False(t, s.Editor.Locked())
		})
	}
}

func TestSave_RefetchWhenResponseHasNoBundle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())
	s.Rename("Mail (old)")

	general := models.Secret{ID: "s-1", Name: "Mail (old)", Type: &models.SecretType{ID: models.SecretTypeWebsitePassword}}
	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).Return(general, nil)
	fx.api.EXPECT().FetchVariantData(gomock.Any(), models.SecretTypeWebsitePassword, "s-1").Return(models.Secret{
		Key:                       &models.Key{ID: "3", Name: "Team", Salt: "pepper"},
		WebsitePasswordComponents: websiteBundle(sealed("102"), sealed("103")),
	}, nil)

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.NoError(t, err)
	assert.True(t, s.Editor.Locked())
	assert.Equal(t, "pepper", res.Secret.Key.Salt)
	assert.Equal(t, "Mail (old)", s.Name())
}

func TestSave_RefetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())

	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).Return(models.Secret{ID: "s-1", Name: "Mail"}, nil)
	fx.api.EXPECT().FetchVariantData(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Secret{}, adapter.ErrServerUnavailable)

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.NoError(t, err)
	assert.Equal(t, StateSaved, res.State)
	assert.Equal(t, []string{app.MsgReloadFailed}, res.Warnings)
	assert.Equal(t, "alice", value(t, s, editor.SlotUsername))
}

func TestSave_SessionReplacedBeforeApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := fx.session(t, plainWebsiteSecret())
	require.NoError(t, s.Editor.Edit(editor.SlotPassword, "n3w-pass"))

	fx.prompt.EXPECT().CollectPassword(gomock.Any(), gomock.Any()).Return("kp", nil)
	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).Return(lockedWebsiteSecret(), nil)

	replaced := func(fn func(active bool) error) error { return fn(false) }
	res, err := fx.saver.Save(context.Background(), s, replaced)

	require.NoError(t, err)
	assert.Equal(t, StateSaved, res.State)
	assert.False(t, res.Applied)
	assert.False(t, s.Editor.Locked(), "a discarded session keeps its state")
}

// ── Files ────────────────────────────────────────────────────────────────────

func newFilesSession(t *testing.T, fx *fixture, names ...string) *Session {
	t.Helper()
	s := fx.session(t, models.Secret{ID: "s-9", Name: "Docs", Type: &models.SecretType{ID: models.SecretTypeFiles}, Key: teamKey()})
	fe := s.Editor.(*editor.FilesEditor)
	for _, name := range names {
		require.NoError(t, fe.AddPendingFile(context.Background(), models.PendingFile{Name: name, Content: []byte("content of " + name)}))
	}
	return s
}

func TestSave_FilesPartialUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := newFilesSession(t, fx, "a.txt", "b.txt", "c.txt")

	fx.prompt.EXPECT().CollectPassword(gomock.Any(), app.PromptKeyPassword).Return("kp", nil)
	fx.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, req models.SaveFileRequest, _ []byte) (string, error) {
			assert.Equal(t, "3", req.KeyID)
			assert.Equal(t, "kp", req.KeyPassword)
			if req.FileName == "b.txt" {
				return "", adapter.ErrPayloadTooLarge
			}
			return "id-" + req.FileName, nil
		})
	fx.api.EXPECT().SaveSecret(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in models.SecretInput) (models.Secret, error) {
			require.NotNil(t, in.FilesComponents)
			require.Len(t, in.FilesComponents.Files, 2)
			assert.Equal(t, "id-a.txt", in.FilesComponents.Files[0].FileID.Value)
			assert.Equal(t, "a.txt", in.FilesComponents.Files[0].FileName.Value)
			assert.Equal(t, "id-c.txt", in.FilesComponents.Files[1].FileID.Value)
			assert.Equal(t, "c.txt", in.FilesComponents.Files[1].FileName.Value)
			return models.Secret{ID: "s-9", Name: "Docs", FilesComponents: &models.FilesComponents{Files: []models.FilesComponentsFile{
				{FileID: plainComponent("1", "id-a.txt"), FileName: sealed("2")},
				{FileID: plainComponent("3", "id-c.txt"), FileName: sealed("4")},
			}}}, nil
		})

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.NoError(t, err)
	assert.Equal(t, StateSaved, res.State)
	assert.Equal(t, []string{"b.txt"}, res.Dropped)
	assert.Equal(t, []string{fmt.Sprintf(app.MsgFileDropped, "b.txt")}, res.Warnings)
	assert.Equal(t, 2, s.Editor.(*editor.FilesEditor).Attachments().Len())
}

func TestSave_FilesAllUploadsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl)
	s := newFilesSession(t, fx, "a.txt", "b.txt")

	fx.prompt.EXPECT().CollectPassword(gomock.Any(), gomock.Any()).Return("kp", nil)
	fx.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return("", adapter.ErrServerUnavailable)

	res, err := fx.saver.Save(context.Background(), s, owned)

	require.ErrorIs(t, err, editor.ErrUploadFailed)
	assert.Equal(t, StateAborted, res.State)
	assert.Equal(t, app.MsgFailedToSaveFiles, res.Message)
	assert.NotContains(t, res.Trace, StateSubmitting)
}
