// ABOUTME: Conversion handlers for the Huma API
// ABOUTME: Turns uploaded files and web pages into markdown using the conversion service

package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"mdpreview-api/api/dto/mappers"
	"mdpreview-api/api/dto/requests"
	"mdpreview-api/api/dto/responses"
	"mdpreview-api/core/domain"
	"mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"
	"mdpreview-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// ConvertHandler handles conversion requests
type ConvertHandler struct {
	converter interfaces.ConversionService
	maxBytes  int64
	flags     featureflags.Manager
	logger    interfaces.Logger
}

// NewConvertHandler creates a new convert handler. A nil flags manager
// enables every conversion route.
func NewConvertHandler(converter interfaces.ConversionService, maxBytes int64, flags featureflags.Manager, logger interfaces.Logger) *ConvertHandler {
	return &ConvertHandler{
		converter: converter,
		maxBytes:  maxBytes,
		flags:     flags,
		logger:    logger,
	}
}

// RegisterRoutes registers conversion routes
func (h *ConvertHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "convertFile",
		Method:       http.MethodPost,
		Path:         "/api/convert",
		Summary:      "Convert a file to markdown",
		Description:  "Converts the uploaded multipart 'file' to markdown. Failures return success=false with a readable error.",
		Tags:         []string{"Conversion"},
		MaxBodyBytes: bodyLimit(h.maxBytes),
	}, h.ConvertFile)

	huma.Register(api, huma.Operation{
		OperationID: "convertURL",
		Method:      http.MethodPost,
		Path:        "/api/convert/url",
		Summary:     "Convert a web page to markdown",
		Description: "Fetches the page, extracts its main article and converts it to markdown",
		Tags:        []string{"Conversion"},
	}, h.ConvertURL)
}

// ConvertFileInput defines the multipart input for file conversion
type ConvertFileInput struct {
	RawBody multipart.Form
}

// ConvertURLInput defines the input for page conversion
type ConvertURLInput struct {
	Body requests.ConvertURLRequest
}

// ConvertOutput carries the conversion result. Status is 500 for a failed conversion.
type ConvertOutput struct {
	Status int
	Body   responses.ConvertResponse
}

// ConvertFile handles POST /api/convert
func (h *ConvertHandler) ConvertFile(ctx context.Context, input *ConvertFileInput) (*ConvertOutput, error) {
	name, data, err := readUploadedFile(&input.RawBody, h.maxBytes)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, huma.Error400BadRequest("Empty file")
	}

	conv, err := h.converter.ConvertFile(ctx, name, data)
	return h.result(name, conv, err)
}

// ConvertURL handles POST /api/convert/url
func (h *ConvertHandler) ConvertURL(ctx context.Context, input *ConvertURLInput) (*ConvertOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.URLConversion) {
		return nil, huma.Error404NotFound("URL conversion is disabled")
	}

	conv, err := h.converter.ConvertURL(ctx, input.Body.URL)
	return h.result(input.Body.URL, conv, err)
}

func (h *ConvertHandler) result(source string, conv *domain.Conversion, err error) (*ConvertOutput, error) {
	if err != nil && !errors.IsConversionFailed(err) {
		return nil, toHumaError(err)
	}
	if err == nil && conv != nil && conv.Success {
		return &ConvertOutput{Status: http.StatusOK, Body: mappers.ConversionToResponse(conv)}, nil
	}

	message := errors.ConversionMessage(err)
	if err == nil && conv != nil && conv.Error != "" {
		message = conv.Error
	}

	fields := map[string]interface{}{
		"source":  source,
		"message": message,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	h.logger.Warn("Conversion failed", fields)

	return &ConvertOutput{
		Status: http.StatusInternalServerError,
		Body:   responses.ConvertResponse{Success: false, Error: message},
	}, nil
}
