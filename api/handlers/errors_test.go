package handlers

import (
	"fmt"
	"testing"

	"mdpreview-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "session", ID: "abc"},
			expectedStatus: 404,
			expectedDetail: "session not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "mode", Message: "must be 'preview' or 'raw'"},
			expectedStatus: 400,
			expectedDetail: "mode: must be 'preview' or 'raw'",
		},
		{
			name:           "InputTooLargeError returns 413",
			input:          &errors.InputTooLargeError{Size: 11 << 20, Limit: 10 << 20},
			expectedStatus: 413,
			expectedDetail: "File too large (max 10MB)",
		},
		{
			name:           "ConversionFailedError returns 502 with its message",
			input:          &errors.ConversionFailedError{FileName: "a.pdf", Message: "Bad PDF"},
			expectedStatus: 502,
			expectedDetail: "Bad PDF",
		},
		{
			name: "ConversionFailedError wins over wrapped ExternalAPIError",
			input: &errors.ConversionFailedError{
				FileName: "a.pdf",
				Err:      &errors.ExternalAPIError{StatusCode: 500, API: "converter"},
			},
			expectedStatus: 502,
			expectedDetail: "Conversion failed",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedDetail: "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedDetail: "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 404 returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 404, Message: "not found"},
			expectedStatus: 502,
			expectedDetail: "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedDetail: "Unexpected external service response",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "document"}),
			expectedStatus: 404,
			expectedDetail: "document not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			humaErr, ok := toHumaError(tt.input).(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedDetail)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}
