package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-secret-keeper/models"
)

// SecretValidator implements the Validator interface for the models handled
// by the secret editor: SecretInput and PendingFile.
//
// Unlike a fail-fast check, every selected field is validated and all
// violations are returned together (joined with errors.Join), so the user
// sees every problem at once.
type SecretValidator struct {
	maxFileSize int64
}

// NewSecretValidator constructs a SecretValidator. maxFileSize is the
// attachment size limit in bytes; a value <= 0 disables the size check.
func NewSecretValidator(maxFileSize int64) Validator {
	return &SecretValidator{maxFileSize: maxFileSize}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.SecretInput / *models.SecretInput
//   - models.PendingFile / *models.PendingFile
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *SecretValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SecretInput:
		return v.validateSecretInput(ctx, value, fields...)
	case *models.SecretInput:
		return v.validateSecretInput(ctx, *value, fields...)

	case models.PendingFile:
		return v.validatePendingFile(ctx, value, fields...)
	case *models.PendingFile:
		return v.validatePendingFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SecretValidator) validateSecretInput(_ context.Context, input models.SecretInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				errs = append(errs, ErrSecretNameRequired)
			}
		case FieldType:
			if input.TypeID == "" {
				errs = append(errs, ErrSecretTypeRequired)
			} else if !slices.Contains(allowedSecretTypes, input.TypeID) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSecretType, input.TypeID))
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *SecretValidator) validatePendingFile(_ context.Context, file models.PendingFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldFileContent, FieldFileSize}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(file.Name) == "" {
				errs = append(errs, ErrEmptyFileName)
			}
		case FieldFileContent:
			if file.Size() == 0 {
				errs = append(errs, ErrEmptyFile)
			}
		case FieldFileSize:
			if v.maxFileSize > 0 && file.Size() > v.maxFileSize {
				errs = append(errs, fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, file.Size(), v.maxFileSize))
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
