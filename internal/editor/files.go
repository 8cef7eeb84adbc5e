package editor

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// FilesEditor edits files secrets. The bundle is a variable-length list of
// attachments; its fields are not edited one by one, so Edit and Value
// always fail with ErrUnknownField.
type FilesEditor struct {
	deps Deps
	log  *logger.Logger

	secret      models.Secret
	attachments *Attachments
}

// NewFilesEditor returns an editor holding an empty attachment list.
func NewFilesEditor(deps Deps) *FilesEditor {
	deps = deps.withDefaults()
	e := &FilesEditor{deps: deps, log: deps.Logger, attachments: newAttachments(deps)}
	e.Load(models.Secret{Type: &models.SecretType{ID: models.SecretTypeFiles}})
	return e
}

func (e *FilesEditor) Variant() string { return models.SecretTypeFiles }

// Attachments exposes the attachment list for adds and removals.
func (e *FilesEditor) Attachments() *Attachments { return e.attachments }

func (e *FilesEditor) Secret() models.Secret {
	s := e.secret
	s.FilesComponents = &models.FilesComponents{Files: e.attachments.components()}
	return s
}

func (e *FilesEditor) Load(secret models.Secret) {
	var files []models.FilesComponentsFile
	if secret.FilesComponents != nil {
		files = secret.FilesComponents.Files
	}

	e.secret = generalOnly(secret, models.SecretTypeFiles)
	e.log = e.deps.Logger.ForSecret(e.secret.ID, models.SecretTypeFiles)
	e.attachments.log = e.log
	e.attachments.load(files)
}

func (e *FilesEditor) Locked() bool { return e.attachments.locked() }

// Fields returns one view per stored attachment name. Pending files are
// listed by Attachments().Entries.
func (e *FilesEditor) Fields() []FieldView {
	var out []FieldView
	for _, s := range e.attachments.slots() {
		if !s.sensitive {
			continue
		}
		out = append(out, FieldView{
			Name:      s.name,
			Value:     s.state.Display(),
			Status:    s.state.Status(),
			Sensitive: true,
			Dirty:     s.state.Dirty(),
		})
	}
	return out
}

func (e *FilesEditor) Edit(field, _ string) error {
	return fmt.Errorf("%w: %s", ErrUnknownField, field)
}

func (e *FilesEditor) Value(field string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
}

// AddPendingFile attaches a local file. It is refused while locked.
func (e *FilesEditor) AddPendingFile(ctx context.Context, file models.PendingFile) error {
	if e.Locked() {
		return ErrSecretLocked
	}
	return e.attachments.AddPendingFile(ctx, file)
}

// RemoveEntry detaches the entry at index. It is refused while locked.
func (e *FilesEditor) RemoveEntry(index int) error {
	if e.Locked() {
		return ErrSecretLocked
	}
	return e.attachments.RemoveEntry(index)
}

func (e *FilesEditor) PrepareUnlock(ctx context.Context, keyPassword string) (*Unlocked, error) {
	if !e.Locked() {
		return &Unlocked{Bundle: e.Secret(), apply: func() {}}, nil
	}

	u := newUnlocker(e.deps)
	a := e.attachments

	if isDirect(e.secret) {
		slots := a.slots()
		plain, err := u.direct(*e.secret.Key, keyPassword, slots)
		if err != nil {
			e.log.Warn().Err(err).Msg("direct unlock failed")
			return nil, err
		}

		files := a.components()
		for i, f := range files {
			if s := slots[2*i]; s.state.Locked() {
				files[i].FileID = &models.SecretComponent{ID: f.FileID.ID, Value: plain[2*i]}
			}
			if s := slots[2*i+1]; s.state.Locked() {
				files[i].FileName = &models.SecretComponent{ID: f.FileName.ID, Value: plain[2*i+1]}
			}
		}
		bundle := e.secret
		bundle.FilesComponents = &models.FilesComponents{Files: files}

		return &Unlocked{Bundle: bundle, apply: func() {
			for i, s := range slots {
				if s.state.Locked() {
					s.state.Unlock(plain[i])
				}
			}
		}}, nil
	}

	resp, err := u.escrowed(ctx, e.secret, keyPassword)
	if err != nil {
		e.log.Warn().Err(err).Msg("escrowed unlock failed")
		return nil, err
	}
	if resp.FilesComponents == nil {
		return nil, fmt.Errorf("%w: response carries no %s bundle", ErrUnlockFailed, models.SecretTypeFiles)
	}
	files := resp.FilesComponents.Files
	for _, f := range files {
		if err = checkPlaintext([]*models.SecretComponent{f.FileID, f.FileName}); err != nil {
			return nil, err
		}
	}

	bundle := e.secret
	bundle.FilesComponents = &models.FilesComponents{Files: files}

	return &Unlocked{Bundle: bundle, apply: func() {
		a.rebuildUnlocked(files)
	}}, nil
}

func (e *FilesEditor) Unlock(ctx context.Context, keyPassword string) (models.Secret, error) {
	return unlockNow(ctx, e, keyPassword)
}

func (e *FilesEditor) SaveRequiresKeyPassword() bool { return e.attachments.SaveRequiresKeyPassword() }

// PrepareSave plans the upload of pending attachments with the key id and
// key password of input.
func (e *FilesEditor) PrepareSave(input models.SecretInput) (*Presave, error) {
	batch, err := e.attachments.planUploads(input.KeyID, input.KeyPassword)
	if err != nil {
		return nil, err
	}
	return &Presave{run: batch.run, apply: batch.apply}, nil
}

// BeforeSave uploads pending attachments with the key id and key password
// of input.
func (e *FilesEditor) BeforeSave(ctx context.Context, input *models.SecretInput) error {
	return beforeSaveNow(ctx, e, *input)
}

func (e *FilesEditor) BuildUpdatePayload(input *models.SecretInput) {
	if e.Locked() {
		return
	}
	input.FilesComponents = &models.FilesComponentsInput{Files: e.attachments.inputs()}
}

// Validate rejects a files secret without attachments.
func (e *FilesEditor) Validate() error {
	if e.attachments.Len() == 0 {
		return ErrNoAttachments
	}
	return nil
}

// DownloadRequest resolves the stored attachment at index into a download
// request without the key password. The name must be unlocked, since the
// server looks the file up by id and name.
func (e *FilesEditor) DownloadRequest(index int) (models.LoadFileRequest, error) {
	a := e.attachments
	if index < 0 || index >= len(a.entries) {
		return models.LoadFileRequest{}, fmt.Errorf("%w: %d", ErrNoSuchEntry, index)
	}
	entry := a.entries[index]
	if entry.pending != nil {
		return models.LoadFileRequest{}, ErrNotUploaded
	}
	if entry.fileID.Locked() || entry.fileName.Locked() {
		return models.LoadFileRequest{}, ErrSecretLocked
	}

	return models.LoadFileRequest{
		FileID:   entry.fileID.Display(),
		FileName: entry.fileName.Display(),
		KeyID:    e.secret.KeyID(),
	}, nil
}

// Fetch downloads the attachment described by req. It does not read the
// editor state.
func (e *FilesEditor) Fetch(ctx context.Context, req models.LoadFileRequest) ([]byte, error) {
	if e.deps.Files == nil {
		return nil, fmt.Errorf("download %q: no file transfer configured", req.FileName)
	}

	content, err := e.deps.Files.DownloadFile(ctx, req)
	if err != nil {
		e.deps.Logger.Warn().Err(err).Str("file_name", req.FileName).Msg("file download failed")
		return nil, err
	}
	return content, nil
}

// Download is DownloadRequest followed by Fetch. It returns the file name
// and the content.
func (e *FilesEditor) Download(ctx context.Context, index int, keyPassword string) (string, []byte, error) {
	req, err := e.DownloadRequest(index)
	if err != nil {
		return "", nil, err
	}
	req.KeyPassword = keyPassword

	content, err := e.Fetch(ctx, req)
	if err != nil {
		return "", nil, err
	}
	return req.FileName, content, nil
}
