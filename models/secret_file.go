package models

// SaveFileRequest is the JSON "request" part of a multipart file upload.
type SaveFileRequest struct {
	FileName    string `json:"fileName"`
	KeyID       string `json:"keyId"`
	KeyPassword string `json:"keyPassword"`
}

// SaveFileResponse is returned by the file upload endpoint.
type SaveFileResponse struct {
	Success  bool   `json:"success"`
	FileID   string `json:"fileId"`
	ErrorMsg string `json:"errorMsg"`
}

// LoadFileRequest asks the file endpoint for the decrypted content of a
// stored attachment.
type LoadFileRequest struct {
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	KeyID       string `json:"keyId"`
	KeyPassword string `json:"keyPassword"`
}

// PendingFile is a locally chosen attachment that has not been uploaded yet.
type PendingFile struct {
	Name    string
	Content []byte
}

// Size returns the payload length in bytes.
func (f PendingFile) Size() int64 {
	return int64(len(f.Content))
}
