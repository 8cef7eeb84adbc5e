package models

// SecretComponentInput is a single field sent to the saveSecret mutation.
// A nil *SecretComponentInput means "leave the stored value untouched".
type SecretComponentInput struct {
	ID    string `json:"id,omitempty"`
	Value string `json:"value"`
}

// WebsitePasswordComponentsInput is the website_password part of SecretInput.
type WebsitePasswordComponentsInput struct {
	Website  *SecretComponentInput `json:"website"`
	Username *SecretComponentInput `json:"username"`
	Password *SecretComponentInput `json:"password"`
}

// CreditCardComponentsInput is the credit_card part of SecretInput.
type CreditCardComponentsInput struct {
	CompanyName     *SecretComponentInput `json:"companyName"`
	CardNumber      *SecretComponentInput `json:"cardNumber"`
	ExpirationMonth *SecretComponentInput `json:"expirationMonth"`
	ExpirationYear  *SecretComponentInput `json:"expirationYear"`
	SecurityCode    *SecretComponentInput `json:"securityCode"`
}

// TextBlobComponentsInput is the text_blob part of SecretInput.
type TextBlobComponentsInput struct {
	TextBlob *SecretComponentInput `json:"textBlob"`
}

// FilesComponentsFileInput is one attachment of FilesComponentsInput.
type FilesComponentsFileInput struct {
	FileID   *SecretComponentInput `json:"fileId"`
	FileName *SecretComponentInput `json:"fileName"`
}

// FilesComponentsInput is the files part of SecretInput.
type FilesComponentsInput struct {
	Files []FilesComponentsFileInput `json:"files"`
}

// SecretInput is the payload of the saveSecret mutation.
type SecretInput struct {
	ID          string `json:"id,omitempty"`
	ImageName   string `json:"imageName,omitempty"`
	Name        string `json:"name"`
	Comments    string `json:"comments"`
	TypeID      string `json:"typeId"`
	KeyID       string `json:"keyId"`
	KeyPassword string `json:"keyPassword,omitempty"`

	WebsitePasswordComponents *WebsitePasswordComponentsInput `json:"websitePasswordComponents,omitempty"`
	CreditCardComponents      *CreditCardComponentsInput      `json:"creditCardComponents,omitempty"`
	TextBlobComponents        *TextBlobComponentsInput        `json:"textBlobComponents,omitempty"`
	FilesComponents           *FilesComponentsInput           `json:"filesComponents,omitempty"`
}

// NewSecretInput builds the general part of a save payload from a secret.
func NewSecretInput(s Secret) SecretInput {
	return SecretInput{
		ID:        s.ID,
		ImageName: s.ImageName,
		Name:      s.Name,
		Comments:  s.Comments,
		TypeID:    s.TypeID(),
		KeyID:     s.KeyID(),
	}
}
