package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"mdpreview-api/core/domain"

	"github.com/stretchr/testify/require"
)

// mockConversionService is a mock implementation of the conversion service
type mockConversionService struct {
	convertFileFunc func(ctx context.Context, fileName string, data []byte) (*domain.Conversion, error)
	convertURLFunc  func(ctx context.Context, pageURL string) (*domain.Conversion, error)
	calls           int
}

func (m *mockConversionService) ConvertFile(ctx context.Context, fileName string, data []byte) (*domain.Conversion, error) {
	m.calls++
	if m.convertFileFunc != nil {
		return m.convertFileFunc(ctx, fileName, data)
	}
	return &domain.Conversion{Success: true, Markdown: string(data), FileName: fileName}, nil
}

func (m *mockConversionService) ConvertURL(ctx context.Context, pageURL string) (*domain.Conversion, error) {
	m.calls++
	if m.convertURLFunc != nil {
		return m.convertURLFunc(ctx, pageURL)
	}
	return &domain.Conversion{Success: true, Markdown: "# Page", FileName: "page.html"}, nil
}

// mockLogger discards entries but keeps warnings for assertions
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

// multipartFile builds a multipart body with one file part. It returns the
// Content-Type header in the form humatest expects.
func multipartFile(t *testing.T, field, name string, content []byte) (string, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return "Content-Type: " + w.FormDataContentType(), &buf
}
