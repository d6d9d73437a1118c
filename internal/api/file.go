package api

import (
	"context"
	"io"
	"net/http"
)

// FileAPI binds the /file endpoints.
type FileAPI struct {
	c *Client
}

func NewFileAPI(c *Client) *FileAPI {
	return &FileAPI{c: c}
}

// UploadResult reports where the uploaded media landed and which ad type
// the backend inferred from it.
type UploadResult struct {
	AdType   int    `json:"adType"`
	MediaURL string `json:"mediaUrl"`
}

// Upload sends a media file as multipart form field "file".
func (a *FileAPI) Upload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	form, err := NewFileForm("file", filename, r)
	if err != nil {
		return UploadResult{}, err
	}
	env, err := a.c.Do(ctx, "/file/upload", RequestOptions{Method: http.MethodPost, Body: form})
	if err != nil {
		return UploadResult{}, err
	}
	return DecodeData[UploadResult](env)
}
