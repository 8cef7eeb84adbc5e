package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrSecretNameRequired = errors.New("secret name is required")
	ErrSecretTypeRequired = errors.New("secret type is required")
	ErrUnknownSecretType  = errors.New("unknown secret type")
	ErrEmptyFile          = errors.New("file cannot be empty")
	ErrFileTooLarge       = errors.New("file size exceeds maximum allowed size")
	ErrEmptyFileName      = errors.New("file name is required")
)
