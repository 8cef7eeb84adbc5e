package editor

import "errors"

var (
	ErrUnknownVariant    = errors.New("unknown secret variant")
	ErrUnknownField      = errors.New("unknown field")
	ErrSecretLocked      = errors.New("secret is locked")
	ErrFieldLocked       = errors.New("field is locked")
	ErrUnlockFailed      = errors.New("unlock failed")
	ErrDataIntegrity     = errors.New("encrypted field is missing its id or algorithm")
	ErrTextTooLong       = errors.New("text exceeds maximum allowed length")
	ErrNoAttachments     = errors.New("no files attached")
	ErrEmptySecret       = errors.New("refusing to save a secret without attachments")
	ErrUploadFailed      = errors.New("file upload failed")
	ErrDuplicateFileName = errors.New("another file already exists with this name")
	ErrNoSuchEntry       = errors.New("no attachment at this position")
	ErrNotUploaded       = errors.New("attachment is not uploaded yet")
)
