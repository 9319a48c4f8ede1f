package convert

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// TextConverter passes markdown and plain text through unchanged
type TextConverter struct{}

// NewTextConverter creates a text converter
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Name implements interfaces.Converter
func (c *TextConverter) Name() string { return "text" }

// Supports implements interfaces.Converter
func (c *TextConverter) Supports(ext string) bool {
	switch ext {
	case "", ".md", ".markdown", ".txt", ".text":
		return true
	}
	return false
}

// Convert returns data as a string without a leading byte order mark
func (c *TextConverter) Convert(_ context.Context, _ string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("file is not valid UTF-8 text")
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
