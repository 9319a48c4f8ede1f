package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	coreerrors "mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"
)

// maxUpstreamResponse bounds the JSON read back from the upstream service
const maxUpstreamResponse = 64 * 1024 * 1024

// upstreamResponse is the upstream result. Detail is set instead of Error when
// the upstream rejects a request before converting it.
type upstreamResponse struct {
	Success  bool   `json:"success"`
	Markdown string `json:"markdown"`
	FileName string `json:"fileName"`
	Error    string `json:"error"`
	Detail   string `json:"detail"`
}

// UpstreamConverter posts files to a MarkItDown-compatible convert endpoint
type UpstreamConverter struct {
	client   interfaces.HTTPClient
	endpoint string
}

// NewUpstreamConverter creates a converter for the given endpoint URL
func NewUpstreamConverter(client interfaces.HTTPClient, endpoint string) *UpstreamConverter {
	return &UpstreamConverter{client: client, endpoint: endpoint}
}

// Name implements interfaces.Converter
func (c *UpstreamConverter) Name() string { return "upstream" }

// Supports implements interfaces.Converter. The upstream accepts any format.
func (c *UpstreamConverter) Supports(string) bool { return true }

// Convert implements interfaces.Converter. Transport failures, unreadable
// responses and success:false results are all ConversionFailedError.
func (c *UpstreamConverter) Convert(ctx context.Context, fileName string, data []byte) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(fileName))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	resp, err := c.client.Post(ctx, c.endpoint, form.FormDataContentType(), &body)
	if err != nil {
		return "", &coreerrors.ConversionFailedError{FileName: fileName, Err: err}
	}
	defer resp.Body().Close()

	var result upstreamResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body(), maxUpstreamResponse)).Decode(&result); err != nil {
		cause := fmt.Errorf("malformed upstream response: %w", err)
		if resp.StatusCode() >= 300 {
			cause = &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: err.Error(), API: "converter"}
		}
		return "", &coreerrors.ConversionFailedError{FileName: fileName, Err: cause}
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = result.Detail
		}
		return "", &coreerrors.ConversionFailedError{
			FileName: fileName,
			Message:  msg,
			Err:      &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: msg, API: "converter"},
		}
	}

	return result.Markdown, nil
}
