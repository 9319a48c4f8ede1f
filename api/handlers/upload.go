// ABOUTME: Multipart upload helpers shared by the convert and session handlers
// ABOUTME: Reads the "file" part within the upload bound

package handlers

import (
	"io"
	"mime/multipart"

	"mdpreview-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// multipartOverhead is added to the upload bound for the operation body limit
const multipartOverhead = 1 << 20

// bodyLimit returns the request body limit for an upload bound of maxBytes
func bodyLimit(maxBytes int64) int64 {
	if maxBytes <= 0 {
		return 0
	}
	return maxBytes + multipartOverhead
}

// readUploadedFile returns the name and content of the "file" form part.
// Only a missing part or an oversized file is rejected here; an empty file is
// returned as is so the caller decides what it means.
func readUploadedFile(form *multipart.Form, maxBytes int64) (string, []byte, error) {
	if form == nil || len(form.File["file"]) == 0 {
		return "", nil, huma.Error400BadRequest("No file provided")
	}

	fh := form.File["file"][0]
	if maxBytes > 0 && fh.Size > maxBytes {
		return fh.Filename, nil, toHumaError(&errors.InputTooLargeError{Size: fh.Size, Limit: maxBytes})
	}

	f, err := fh.Open()
	if err != nil {
		return fh.Filename, nil, huma.Error400BadRequest("Cannot read uploaded file", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fh.Filename, nil, huma.Error400BadRequest("Cannot read uploaded file", err)
	}

	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return fh.Filename, nil, toHumaError(&errors.InputTooLargeError{Size: int64(len(data)), Limit: maxBytes})
	}
	return fh.Filename, data, nil
}
