// ABOUTME: Upload service drives a file from the input surface into a view controller
// ABOUTME: Checks the size bound, converts the file and loads or rolls back the controller

package upload

import (
	"context"

	"mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"
	"mdpreview-api/core/view"
)

// Service handles file uploads for a view controller
type Service struct {
	converter interfaces.ConversionService
	maxBytes  int64
	logger    interfaces.Logger
}

// NewService creates an upload service. maxBytes is the upload bound checked
// before the converter is called.
func NewService(converter interfaces.ConversionService, maxBytes int64, logger interfaces.Logger) *Service {
	return &Service{
		converter: converter,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// HandleFile converts the file and loads the result into ctrl.
//
// A file over the bound is rejected with InputTooLargeError and ctrl is left
// as it was. Any other failure resets ctrl to "no document" and returns the
// conversion error, so the caller can show it and accept another file.
func (s *Service) HandleFile(ctx context.Context, ctrl *view.Controller, fileName string, data []byte) (view.Output, error) {
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return ctrl.Output(), &errors.InputTooLargeError{Size: int64(len(data)), Limit: s.maxBytes}
	}

	conv, err := s.converter.ConvertFile(ctx, fileName, data)
	if err == nil && !conv.Success {
		err = &errors.ConversionFailedError{FileName: fileName, Message: conv.Error}
	}
	if err != nil {
		if errors.IsInputTooLarge(err) {
			return ctrl.Output(), err
		}
		s.logger.Warn("Upload failed, resetting view", map[string]interface{}{
			"file":  fileName,
			"error": err.Error(),
		})
		ctrl.Reset()
		return ctrl.Output(), err
	}

	name := conv.FileName
	if name == "" {
		name = fileName
	}

	s.logger.Info("Document loaded", map[string]interface{}{
		"file":       name,
		"characters": len(conv.Markdown),
	})
	return ctrl.Load(conv.Markdown, name), nil
}
