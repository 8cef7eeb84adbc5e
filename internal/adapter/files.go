package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-keeper/internal/config"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/models"
)

const (
	saveFilePath = "/save"
	loadFilePath = "/load"

	requestPart = "request"
	filePart    = "secretFile"
)

// restFileTransfer is the [FileTransfer] implementation over the REST file
// endpoint.
type restFileTransfer struct {
	*httpTransport
	path string
}

// NewRESTFileTransfer constructs a REST implementation of [FileTransfer]
// rooted at adapterCfg.FilesPath. It accepts the same configuration as
// [NewGraphQLSecretAPI].
func NewRESTFileTransfer(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (FileTransfer, error) {
	t, err := newHTTPTransport(adapterCfg, appCfg, log)
	if err != nil {
		return nil, err
	}

	path := strings.TrimRight(adapterCfg.FilesPath, "/")
	if path == "" {
		path = config.DefaultFilesPath
	}
	return &restFileTransfer{httpTransport: t, path: path}, nil
}

// NewSharedFileTransfer returns a REST [FileTransfer] that shares the
// connection pool and the bearer token of api, which must come from
// [NewGraphQLSecretAPI].
func NewSharedFileTransfer(api SecretAPI, filesPath string) (FileTransfer, error) {
	g, ok := api.(*graphQLSecretAPI)
	if !ok {
		return nil, fmt.Errorf("shared file transfer needs the graphql secret api, got %T", api)
	}

	path := strings.TrimRight(filesPath, "/")
	if path == "" {
		path = config.DefaultFilesPath
	}
	return &restFileTransfer{httpTransport: g.httpTransport, path: path}, nil
}

// UploadFile implements [FileTransfer]. It PUTs a multipart form to
// <files>/save with a JSON "request" part describing the file and the
// "secretFile" part holding content. Returns the server-assigned file id.
func (r *restFileTransfer) UploadFile(ctx context.Context, saveReq models.SaveFileRequest, content []byte) (string, error) {
	log := r.requestLogger(ctx, "saveFile")

	meta, err := json.Marshal(saveReq)
	if err != nil {
		return "", fmt.Errorf("encode save file request: %w", err)
	}

	req, err := r.authedRequest(ctx)
	if err != nil {
		return "", err
	}
	if hash := r.computeTransportHash(saveReq); hash != "" {
		req.SetHeader(HashHeader, hash)
	}

	var out models.SaveFileResponse
	resp, err := req.
		SetHeader("Accept", "application/json").
		SetMultipartField(requestPart, "", "application/json", bytes.NewReader(meta)).
		SetFileReader(filePart, saveReq.FileName, bytes.NewReader(content)).
		SetResult(&out).
		Put(r.path + saveFilePath)
	if err != nil {
		log.Warn().Err(err).Str("file_name", saveReq.FileName).Msg("file upload failed")
		return "", mapTransportError("save file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if !out.Success {
		return "", rejected(out.ErrorMsg)
	}
	if out.FileID == "" {
		return "", fmt.Errorf("save file: %w: no file id", ErrEmptyResponse)
	}

	log.Debug().Str("file_name", saveReq.FileName).Int("size", len(content)).Msg("file uploaded")
	return out.FileID, nil
}

// DownloadFile implements [FileTransfer]. It POSTs the JSON load request to
// <files>/load and returns the raw response body. A JSON body with
// success=false is returned as a rejection.
func (r *restFileTransfer) DownloadFile(ctx context.Context, loadReq models.LoadFileRequest) ([]byte, error) {
	req, err := r.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if hash := r.computeTransportHash(loadReq); hash != "" {
		req.SetHeader(HashHeader, hash)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/octet-stream").
		SetBody(loadReq).
		Post(r.path + loadFilePath)
	if err != nil {
		return nil, mapTransportError("load file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		var out struct {
			Success  *bool  `json:"success"`
			ErrorMsg string `json:"errorMsg"`
		}
		if json.Unmarshal(resp.Body(), &out) == nil && out.Success != nil && !*out.Success {
			return nil, rejected(out.ErrorMsg)
		}
	}

	return resp.Body(), nil
}
