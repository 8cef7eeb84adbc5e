package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secret-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validInput() models.SecretInput {
	return models.SecretInput{
		Name:   "Bank",
		TypeID: models.SecretTypeWebsitePassword,
		KeyID:  "0",
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewSecretValidator(t *testing.T) {
	require.NotNil(t, NewSecretValidator(10))
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewSecretValidator(10).Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerAndValue(t *testing.T) {
	v := NewSecretValidator(10)
	in := validInput()

	assert.NoError(t, v.Validate(context.Background(), in))
	assert.NoError(t, v.Validate(context.Background(), &in))

	f := models.PendingFile{Name: "a.txt", Content: []byte("x")}
	assert.NoError(t, v.Validate(context.Background(), f))
	assert.NoError(t, v.Validate(context.Background(), &f))
}

// ---------------------------------------------------------------------------
// SecretInput
// ---------------------------------------------------------------------------

func TestValidateSecretInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.SecretInput)
		fields  []string
		wantErr []error
	}{
		{name: "valid", mutate: func(*models.SecretInput) {}},
		{
			name:    "missing name",
			mutate:  func(in *models.SecretInput) { in.Name = "  " },
			wantErr: []error{ErrSecretNameRequired},
		},
		{
			name:    "missing type",
			mutate:  func(in *models.SecretInput) { in.TypeID = "" },
			wantErr: []error{ErrSecretTypeRequired},
		},
		{
			name:    "unknown type",
			mutate:  func(in *models.SecretInput) { in.TypeID = "pgp_key" },
			wantErr: []error{ErrUnknownSecretType},
		},
		{
			name:    "both missing are reported together",
			mutate:  func(in *models.SecretInput) { in.Name, in.TypeID = "", "" },
			wantErr: []error{ErrSecretNameRequired, ErrSecretTypeRequired},
		},
		{
			name:   "scoped to name only",
			mutate: func(in *models.SecretInput) { in.TypeID = "" },
			fields: []string{FieldName},
		},
		{
			name:    "unknown field",
			mutate:  func(*models.SecretInput) {},
			fields:  []string{"color"},
			wantErr: []error{ErrUnknownField},
		},
	}

	v := NewSecretValidator(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in, tt.fields...)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// PendingFile
// ---------------------------------------------------------------------------

func TestValidatePendingFile(t *testing.T) {
	v := NewSecretValidator(4)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PendingFile{Name: "a", Content: []byte("1234")}))

	err := v.Validate(ctx, models.PendingFile{Name: "a"})
	assert.ErrorIs(t, err, ErrEmptyFile)

	err = v.Validate(ctx, models.PendingFile{Name: "a", Content: []byte("12345")})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	err = v.Validate(ctx, models.PendingFile{Name: "", Content: nil})
	assert.ErrorIs(t, err, ErrEmptyFileName)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestValidatePendingFile_NoLimit(t *testing.T) {
	v := NewSecretValidator(0)
	big := make([]byte, 1<<20)

	assert.NoError(t, v.Validate(context.Background(), models.PendingFile{Name: "big.bin", Content: big}))
}
