// ABOUTME: URL conversion fetching a page and extracting its article with readability
// ABOUTME: Results are cached by URL like file conversions

package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"mdpreview-api/core/domain"
	coreerrors "mdpreview-api/core/errors"

	readability "github.com/go-shiori/go-readability"
)

var unsafeNameChars = regexp.MustCompile(`[^\w\- ]+`)

// ConvertURL fetches a web page, extracts its main article and converts it to
// markdown headed by the article title.
func (s *Service) ConvertURL(ctx context.Context, pageURL string) (*domain.Conversion, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute http(s) URL"}
	}

	key := cacheKey("page", "", []byte(u.String()))
	if data, ok := s.cached(ctx, key); ok {
		var cached domain.Conversion
		if err := json.Unmarshal([]byte(data), &cached); err == nil {
			return &cached, nil
		}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, u.String())
	if err != nil {
		return nil, &coreerrors.ConversionFailedError{FileName: u.String(), Message: "Failed to fetch page", Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ConversionFailedError{
			FileName: u.String(),
			Message:  fmt.Sprintf("Page returned status %d", resp.StatusCode()),
			Err:      &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: "page fetch failed", API: u.Host},
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.maxBytes+1))
	if err != nil {
		return nil, &coreerrors.ConversionFailedError{FileName: u.String(), Message: "Failed to read page", Err: err}
	}
	if int64(len(body)) > s.maxBytes {
		return nil, &coreerrors.InputTooLargeError{Size: int64(len(body)), Limit: s.maxBytes}
	}

	start := time.Now()
	article, err := readability.FromReader(utf8HTML(body, resp.Header("Content-Type")), u)
	if err != nil {
		s.deps.Logger.Error("Failed to extract article", map[string]interface{}{
			"url":   u.String(),
			"error": err.Error(),
		})
		return nil, &coreerrors.ConversionFailedError{FileName: u.String(), Message: "No readable content found", Err: err}
	}

	content, err := htmlToMarkdown(article.Content)
	if err != nil {
		return nil, asConversionFailed(u.String(), err)
	}
	markdown := buildArticleMarkdown(article.Title, article.Byline, article.SiteName, content)

	s.deps.Logger.Debug("Converted page", map[string]interface{}{
		"url":         u.String(),
		"title":       article.Title,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	result := success(markdown, pageFileName(article.Title, u))
	if data, err := json.Marshal(result); err == nil {
		s.store(ctx, key, string(data))
	}
	return result, nil
}

// buildArticleMarkdown puts the title and a metadata line above the content
func buildArticleMarkdown(title, author, siteName, content string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}

	var meta []string
	if author != "" {
		meta = append(meta, "**Author:** "+author)
	}
	if siteName != "" {
		meta = append(meta, "**Source:** "+siteName)
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " | ") + "\n\n")
	}

	b.WriteString(content)
	return strings.TrimSpace(b.String())
}

// pageFileName derives a file name from the article title, or the host when
// there is none. The ".html" suffix is what the export rule strips.
func pageFileName(title string, u *url.URL) string {
	name := strings.TrimSpace(unsafeNameChars.ReplaceAllString(title, ""))
	if name == "" {
		name = u.Host
	}
	return name + ".html"
}
