// ABOUTME: Conversion service turning uploaded documents and web pages into markdown
// ABOUTME: Enforces the upload bound, picks a converter by extension and caches results

package convert

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mdpreview-api/core/domain"
	coreerrors "mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"

	"github.com/zeebo/blake3"
)

// DefaultMaxBytes is the upload bound: 10 MiB.
const DefaultMaxBytes int64 = 10 * 1024 * 1024

// Options configures a Service
type Options struct {
	// MaxBytes bounds uploads and fetched pages. Zero means DefaultMaxBytes.
	MaxBytes int64

	// CacheTTL is how long converted markdown is cached. Zero disables caching.
	CacheTTL time.Duration

	// UpstreamURL is a MarkItDown-compatible convert endpoint used for every
	// extension the local converters do not handle. Empty disables it.
	UpstreamURL string
}

// Service converts files and pages to markdown
type Service struct {
	deps       interfaces.Dependencies
	converters []interfaces.Converter
	fallback   interfaces.Converter
	maxBytes   int64
	cacheTTL   time.Duration
}

// NewService creates a conversion service with the local text, HTML and feed
// converters and, when configured, the upstream converter as fallback.
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	s := &Service{
		deps: deps,
		converters: []interfaces.Converter{
			NewTextConverter(),
			NewHTMLConverter(),
			NewFeedConverter(),
		},
		maxBytes: opts.MaxBytes,
		cacheTTL: opts.CacheTTL,
	}
	if s.maxBytes <= 0 {
		s.maxBytes = DefaultMaxBytes
	}
	if opts.UpstreamURL != "" && deps.HTTPClient != nil {
		s.fallback = NewUpstreamConverter(deps.HTTPClient, opts.UpstreamURL)
	}
	return s
}

// MaxBytes returns the upload bound
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// ConvertFile converts the uploaded file. Empty files fail validation, files
// over the bound fail with InputTooLargeError, and every converter failure is
// returned as a ConversionFailedError.
func (s *Service) ConvertFile(ctx context.Context, fileName string, data []byte) (*domain.Conversion, error) {
	if len(data) == 0 {
		return nil, &coreerrors.ValidationError{Field: "file", Message: "Empty file"}
	}
	if int64(len(data)) > s.maxBytes {
		return nil, &coreerrors.InputTooLargeError{Size: int64(len(data)), Limit: s.maxBytes}
	}

	ext := Extension(fileName)
	key := cacheKey("file", ext, data)
	if md, ok := s.cached(ctx, key); ok {
		return success(md, fileName), nil
	}

	conv := s.converterFor(ext)
	if conv == nil {
		return nil, &coreerrors.ConversionFailedError{
			FileName: fileName,
			Message:  fmt.Sprintf("Unsupported file type %q", ext),
		}
	}

	start := time.Now()
	md, err := conv.Convert(ctx, fileName, data)
	if err != nil {
		s.deps.Logger.Error("Failed to convert file", map[string]interface{}{
			"file":      fileName,
			"converter": conv.Name(),
			"error":     err.Error(),
		})
		return nil, asConversionFailed(fileName, err)
	}

	s.deps.Logger.Debug("Converted file", map[string]interface{}{
		"file":        fileName,
		"converter":   conv.Name(),
		"bytes":       len(data),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	s.store(ctx, key, md)
	return success(md, fileName), nil
}

func (s *Service) converterFor(ext string) interfaces.Converter {
	for _, c := range s.converters {
		if c.Supports(ext) {
			return c
		}
	}
	return s.fallback
}

func (s *Service) cached(ctx context.Context, key string) (string, bool) {
	if s.deps.Cache == nil || s.cacheTTL <= 0 {
		return "", false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.deps.Logger.Warn("Conversion cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return "", false
	}
	return string(data), true
}

func (s *Service) store(ctx context.Context, key, md string) {
	if s.deps.Cache == nil || s.cacheTTL <= 0 || md == "" {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, []byte(md), s.cacheTTL); err != nil {
		s.deps.Logger.Warn("Conversion cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Extension returns the lower-case extension of fileName including the dot
func Extension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}

func cacheKey(kind, ext string, data []byte) string {
	sum := blake3.Sum256(data)
	return "conversion:" + kind + ":" + ext + ":" + hex.EncodeToString(sum[:])
}

func success(md, fileName string) *domain.Conversion {
	return &domain.Conversion{Success: true, Markdown: md, FileName: fileName}
}

func asConversionFailed(fileName string, err error) error {
	if coreerrors.IsConversionFailed(err) {
		return err
	}
	return &coreerrors.ConversionFailedError{FileName: fileName, Message: err.Error(), Err: err}
}
