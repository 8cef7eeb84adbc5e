package editor

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/MKhiriev/go-secret-keeper/internal/workers"
	"github.com/MKhiriev/go-secret-keeper/models"
)

// attachment is either existing (stored on the server, has a file id) or
// pending (chosen locally, holds the content until it is uploaded).
type attachment struct {
	fileID   *FieldState
	fileName *FieldState
	pending  *models.PendingFile

	// uploaded marks a pending entry that was uploaded since load.
	uploaded bool
}

func (a *attachment) name() string {
	if a.pending != nil {
		return a.pending.Name
	}
	return a.fileName.Display()
}

// AttachmentView is a read-only snapshot of one attachment.
type AttachmentView struct {
	Index   int
	FileID  string
	Name    string
	Status  FieldStatus
	Pending bool
	Size    int64
}

// Attachments coordinates the attachment list of a files secret: local adds
// and removals, and the concurrent upload of pending files before a save.
type Attachments struct {
	entries     []*attachment
	loadedCount int

	// dropped holds the names of pending files whose upload failed during
	// the last save.
	dropped []string

	files     adapter.FileTransfer
	validator validators.Validator
	runner    workers.Runner
	log       *logger.Logger
}

func newAttachments(deps Deps) *Attachments {
	return &Attachments{
		files:     deps.Files,
		validator: deps.Validator,
		runner:    deps.Runner,
		log:       deps.Logger,
	}
}

func (a *Attachments) load(files []models.FilesComponentsFile) {
	a.entries = make([]*attachment, 0, len(files))
	for _, f := range files {
		a.entries = append(a.entries, &attachment{fileID: NewFieldState(f.FileID), fileName: NewFieldState(f.FileName)})
	}
	a.loadedCount = len(a.entries)
	a.dropped = nil
}

// Len returns the number of entries, existing and pending.
func (a *Attachments) Len() int { return len(a.entries) }

// Dropped returns the names of files left out of the last save because
// their upload failed.
func (a *Attachments) Dropped() []string { return slices.Clone(a.dropped) }

// Entries returns snapshots of all entries in list order.
func (a *Attachments) Entries() []AttachmentView {
	out := make([]AttachmentView, len(a.entries))
	for i, e := range a.entries {
		v := AttachmentView{Index: i, Name: e.name()}
		if e.pending != nil {
			v.Pending = true
			v.Status = FieldPlaintext
			v.Size = e.pending.Size()
		} else {
			v.FileID = e.fileID.Display()
			v.Status = e.fileName.Status()
		}
		out[i] = v
	}
	return out
}

func (a *Attachments) locked() bool {
	for _, e := range a.entries {
		if e.pending == nil && (e.fileID.Locked() || e.fileName.Locked()) {
			return true
		}
	}
	return false
}

// hasNew reports whether an entry was added since load, uploaded or not.
func (a *Attachments) hasNew() bool {
	for _, e := range a.entries {
		if e.pending != nil || e.uploaded {
			return true
		}
	}
	return false
}

// slots exposes the stored fields for direct decryption.
func (a *Attachments) slots() []*slot {
	out := make([]*slot, 0, 2*len(a.entries))
	for i, e := range a.entries {
		if e.pending != nil {
			continue
		}
		out = append(out,
			&slot{name: fmt.Sprintf("files[%d].fileId", i), state: e.fileID},
			&slot{name: fmt.Sprintf("files[%d].fileName", i), sensitive: true, state: e.fileName},
		)
	}
	return out
}

// AddPendingFile appends a file to upload on the next save. Empty files,
// files over the size limit and files whose name is already used are
// rejected and the list is left unchanged; every reason is reported.
func (a *Attachments) AddPendingFile(ctx context.Context, file models.PendingFile) error {
	var errs []error
	if err := a.validator.Validate(ctx, file); err != nil {
		errs = append(errs, err)
	}
	for _, e := range a.entries {
		if e.name() == file.Name {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateFileName, file.Name))
			break
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	a.entries = append(a.entries, &attachment{pending: &models.PendingFile{Name: file.Name, Content: file.Content}})
	return nil
}

// RemoveEntry removes the entry at index, existing or pending. Nothing is
// sent to the server until the secret is saved.
func (a *Attachments) RemoveEntry(index int) error {
	if index < 0 || index >= len(a.entries) {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, index)
	}
	a.entries = slices.Delete(a.entries, index, index+1)
	return nil
}

// SaveRequiresKeyPassword is true for a non-trivial unlocked list whose size
// changed since load or that gained new entries. The second check covers
// equal numbers of adds and removes.
func (a *Attachments) SaveRequiresKeyPassword() bool {
	if a.locked() {
		return false
	}
	if len(a.entries) == 0 && a.loadedCount == 0 {
		return false
	}
	return len(a.entries) != a.loadedCount || a.hasNew()
}

// uploadBatch is the upload of the pending entries taken at plan time. It
// keeps its own copies of the files and collaborators, so run can go on
// while the list is read or edited.
type uploadBatch struct {
	list    *Attachments
	entries []*attachment
	files   []models.PendingFile

	keyID       string
	keyPassword string

	transfer adapter.FileTransfer
	runner   workers.Runner
	log      *logger.Logger

	fileIDs []string
	results []error
}

// planUploads collects the pending entries for the next save.
func (a *Attachments) planUploads(keyID, keyPassword string) (*uploadBatch, error) {
	a.dropped = nil

	if len(a.entries) == 0 {
		return nil, ErrEmptySecret
	}

	b := &uploadBatch{
		list:        a,
		keyID:       keyID,
		keyPassword: keyPassword,
		transfer:    a.files,
		runner:      a.runner,
		log:         a.log,
	}
	for _, e := range a.entries {
		if e.pending != nil {
			b.entries = append(b.entries, e)
			b.files = append(b.files, *e.pending)
		}
	}
	if len(b.entries) > 0 && a.files == nil {
		return nil, fmt.Errorf("%w: no file transfer configured", ErrUploadFailed)
	}
	return b, nil
}

// run uploads every planned file concurrently and waits for the whole
// batch.
func (b *uploadBatch) run(ctx context.Context) {
	if len(b.files) == 0 {
		return
	}

	b.fileIDs = make([]string, len(b.files))
	tasks := make([]workers.Task, len(b.files))
	for j, file := range b.files {
		tasks[j] = func(ctx context.Context) error {
			id, err := b.transfer.UploadFile(ctx, models.SaveFileRequest{
				FileName:    file.Name,
				KeyID:       b.keyID,
				KeyPassword: b.keyPassword,
			}, file.Content)
			if err != nil {
				return err
			}
			if id == "" {
				return errors.New("server returned an empty file id")
			}
			b.fileIDs[j] = id
			return nil
		}
	}

	b.results = b.runner.Run(ctx, tasks)
}

// apply reconciles the list with the upload results.
//
// If every upload fails and no existing entry is left, the save is aborted
// with ErrUploadFailed. Otherwise failed entries are dropped and uploaded
// entries become existing ones carrying their new file ids. Entries removed
// while the batch ran are skipped.
func (b *uploadBatch) apply() error {
	if len(b.entries) == 0 {
		return nil
	}
	a := b.list

	var failed []*attachment
	var uploadErrs []error
	for j, err := range b.results {
		if err == nil {
			continue
		}
		name := b.files[j].Name
		b.log.Warn().Err(err).Str("file_name", name).Msg("file upload failed")
		failed = append(failed, b.entries[j])
		uploadErrs = append(uploadErrs, fmt.Errorf("upload %q: %w", name, err))
	}

	existing := 0
	for _, e := range a.entries {
		if e.pending == nil {
			existing++
		}
	}
	if len(failed) == len(b.entries) && existing == 0 {
		return fmt.Errorf("%w: %w", ErrUploadFailed, errors.Join(uploadErrs...))
	}

	for j, e := range b.entries {
		if b.results[j] != nil || !slices.Contains(a.entries, e) {
			continue
		}
		e.fileID = NewFieldState(&models.SecretComponent{Value: b.fileIDs[j]})
		e.fileName = NewFieldState(&models.SecretComponent{Value: b.files[j].Name})
		e.pending = nil
		e.uploaded = true
	}

	for _, e := range failed {
		idx := slices.Index(a.entries, e)
		if idx < 0 {
			continue
		}
		a.dropped = append(a.dropped, e.pending.Name)
		a.entries = slices.Delete(a.entries, idx, idx+1)
	}

	return nil
}

// inputs converts the list into the files payload. Unlocked names are
// always resubmitted. Pending entries are never part of a payload.
func (a *Attachments) inputs() []models.FilesComponentsFileInput {
	unlocked := !a.locked()

	out := make([]models.FilesComponentsFileInput, 0, len(a.entries))
	for _, e := range a.entries {
		if e.pending != nil {
			continue
		}
		in := models.FilesComponentsFileInput{}
		if !e.fileID.Locked() {
			in.FileID = e.fileID.Input()
		}
		if unlocked && !e.fileName.Locked() {
			in.FileName = e.fileName.Input()
		}
		out = append(out, in)
	}
	return out
}

func (a *Attachments) components() []models.FilesComponentsFile {
	out := make([]models.FilesComponentsFile, 0, len(a.entries))
	for _, e := range a.entries {
		if e.pending != nil {
			continue
		}
		out = append(out, models.FilesComponentsFile{FileID: e.fileID.component(), FileName: e.fileName.component()})
	}
	return out
}

// rebuildUnlocked replaces a locked list with the plaintext list returned by
// the server.
func (a *Attachments) rebuildUnlocked(files []models.FilesComponentsFile) {
	a.entries = make([]*attachment, 0, len(files))
	for _, f := range files {
		id, name := &FieldState{}, &FieldState{}
		id.unlockFrom(f.FileID)
		name.unlockFrom(f.FileName)
		a.entries = append(a.entries, &attachment{fileID: id, fileName: name})
	}
	a.loadedCount = len(a.entries)
}
