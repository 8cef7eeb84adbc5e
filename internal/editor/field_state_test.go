package editor

import (
	"testing"

	"github.com/MKhiriev/go-secret-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewFieldState ────────────────────────────────────────────────────────────

func TestNewFieldState(t *testing.T) {
	tests := []struct {
		name        string
		component   *models.SecretComponent
		wantStatus  FieldStatus
		wantDisplay string
	}{
		{name: "nil component", component: nil, wantStatus: FieldEmpty, wantDisplay: ""},
		{name: "empty plaintext", component: &models.SecretComponent{ID: "1"}, wantStatus: FieldEmpty, wantDisplay: ""},
		{name: "empty ciphertext", component: &models.SecretComponent{ID: "1", Encrypted: true}, wantStatus: FieldEmpty, wantDisplay: ""},
		{name: "plaintext", component: &models.SecretComponent{ID: "1", Value: "example.com"}, wantStatus: FieldPlaintext, wantDisplay: "example.com"},
		{name: "ciphertext", component: &models.SecretComponent{ID: "1", Value: "AAAA", Encrypted: true}, wantStatus: FieldLocked, wantDisplay: Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFieldState(tt.component)
			assert.Equal(t, tt.wantStatus, f.Status())
			assert.Equal(t, tt.wantDisplay, f.Display())
			assert.False(t, f.Dirty())
		})
	}
}

func TestFieldState_NeverDisplaysCiphertext(t *testing.T) {
	f := NewFieldState(&models.SecretComponent{ID: "7", Value: "c2VjcmV0", Encrypted: true, EncryptionAlgorithm: models.AlgorithmAESCBCPKCS5})

	assert.True(t, f.Locked())
	assert.Equal(t, Placeholder, f.Display())
	assert.Equal(t, "c2VjcmV0", f.Ciphertext())
}

// ── Edit / Unlock ────────────────────────────────────────────────────────────

func TestFieldState_EditLockedRefused(t *testing.T) {
	f := NewFieldState(&models.SecretComponent{ID: "7", Value: "AAAA", Encrypted: true})

	err := f.Edit("new")
	require.ErrorIs(t, err, ErrFieldLocked)
	assert.Equal(t, Placeholder, f.Display())
}

func TestFieldState_DirtyTracksBaseline(t *testing.T) {
	f := NewFieldState(&models.SecretComponent{ID: "1", Value: "alice"})

	require.NoError(t, f.Edit("bob"))
	assert.True(t, f.Dirty())

	require.NoError(t, f.Edit("alice"))
	assert.False(t, f.Dirty(), "reverting to the loaded value clears dirtiness")

	require.NoError(t, f.Edit(""))
	assert.True(t, f.Dirty())
	assert.Equal(t, FieldEmpty, f.Status())
}

func TestFieldState_UnlockSetsBaseline(t *testing.T) {
	f := NewFieldState(&models.SecretComponent{ID: "1", Value: "AAAA", Encrypted: true})

	f.Unlock("hunter2")
	assert.Equal(t, FieldPlaintext, f.Status())
	assert.Equal(t, "hunter2", f.Display())
	assert.False(t, f.Dirty())
	assert.Empty(t, f.Ciphertext())

	require.NoError(t, f.Edit("hunter3"))
	assert.True(t, f.Dirty())
}

func TestFieldState_Component(t *testing.T) {
	locked := NewFieldState(&models.SecretComponent{ID: "1", Value: "AAAA", Encrypted: true, EncryptionAlgorithm: models.AlgorithmAESCBCPKCS5})
	assert.Equal(t, &models.SecretComponent{ID: "1", Value: "AAAA", Encrypted: true, EncryptionAlgorithm: models.AlgorithmAESCBCPKCS5}, locked.component())

	plain := NewFieldState(&models.SecretComponent{ID: "2", Value: "x"})
	assert.Equal(t, &models.SecretComponent{ID: "2", Value: "x"}, plain.component())
}

func TestFieldState_UnlockFromAdoptsID(t *testing.T) {
	f := NewFieldState(nil)
	f.unlockFrom(&models.SecretComponent{ID: "42", Value: "v"})

	assert.Equal(t, "42", f.ID())
	assert.Equal(t, "v", f.Display())
}
