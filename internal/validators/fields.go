package validators

import "github.com/MKhiriev/go-secret-keeper/models"

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a secret.
	FieldName = "name"

	// FieldType targets the secret type identifier.
	FieldType = "type"

	// FieldFileName targets the name of a pending attachment.
	FieldFileName = "file_name"

	// FieldFileContent requires a pending attachment to be non-empty.
	FieldFileContent = "file_content"

	// FieldFileSize enforces the configured attachment size limit.
	FieldFileSize = "file_size"
)

var allowedSecretTypes = []string{
	models.SecretTypeWebsitePassword,
	models.SecretTypeCreditCard,
	models.SecretTypeTextBlob,
	models.SecretTypeFiles,
}
