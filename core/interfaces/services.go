// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"mdpreview-api/core/domain"
)

// Converter turns the bytes of one document format into markdown
type Converter interface {
	// Name identifies the converter in logs
	Name() string

	// Supports reports whether the converter handles files with the given
	// lower-case extension (including the dot, or "" for none)
	Supports(ext string) bool

	// Convert returns the markdown for data
	Convert(ctx context.Context, fileName string, data []byte) (string, error)
}

// ConversionService converts uploaded files and web pages to markdown
type ConversionService interface {
	ConvertFile(ctx context.Context, fileName string, data []byte) (*domain.Conversion, error)
	ConvertURL(ctx context.Context, pageURL string) (*domain.Conversion, error)
}

// Clipboard copies text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
