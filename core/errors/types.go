// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// DefaultConversionMessage is shown when a failed conversion carries no message.
const DefaultConversionMessage = "Conversion failed"

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-success status from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// InputTooLargeError is returned before any conversion when a payload exceeds the upload bound
type InputTooLargeError struct {
	Size  int64
	Limit int64
}

// Error implements the error interface
func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("File too large (max %dMB)", e.Limit/1024/1024)
}

// ConversionFailedError represents a document that could not be turned into markdown.
// Message is user-visible; Err keeps the underlying cause for logs.
type ConversionFailedError struct {
	FileName string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ConversionFailedError) Error() string {
	return e.UserMessage()
}

// UserMessage returns Message, or a generic message when Message is empty
func (e *ConversionFailedError) UserMessage() string {
	if e.Message == "" {
		return DefaultConversionMessage
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *ConversionFailedError) Unwrap() error {
	return e.Err
}

// ClipboardUnavailableError represents a failed copy to the system clipboard
type ClipboardUnavailableError struct {
	Err error
}

// Error implements the error interface
func (e *ClipboardUnavailableError) Error() string {
	if e.Err == nil {
		return "clipboard unavailable"
	}
	return fmt.Sprintf("clipboard unavailable: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *ClipboardUnavailableError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsInputTooLarge checks if an error is an InputTooLargeError
func IsInputTooLarge(err error) bool {
	var tooLarge *InputTooLargeError
	return errors.As(err, &tooLarge)
}

// IsConversionFailed checks if an error is a ConversionFailedError
func IsConversionFailed(err error) bool {
	var convErr *ConversionFailedError
	return errors.As(err, &convErr)
}

// IsClipboardUnavailable checks if an error is a ClipboardUnavailableError
func IsClipboardUnavailable(err error) bool {
	var clipErr *ClipboardUnavailableError
	return errors.As(err, &clipErr)
}

// ConversionMessage returns the user-visible message for a failed conversion.
// Errors that are not ConversionFailedError yield the generic message.
func ConversionMessage(err error) string {
	var convErr *ConversionFailedError
	if errors.As(err, &convErr) {
		return convErr.UserMessage()
	}
	return DefaultConversionMessage
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
