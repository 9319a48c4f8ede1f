package convert

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	coreerrors "mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html><head><title>Sample Article</title></head>
<body>
<nav><a href="/">Home</a> <a href="/about">About</a></nav>
<article>
<h1>Sample Article</h1>
<p>The quick brown fox jumps over the lazy dog. This paragraph is long enough to look like real prose, with commas, clauses, and a handful of sentences that keep going for a while.</p>
<p>Readable content extraction keeps paragraphs like this one, which talk about the subject at length and contain plenty of text, while it drops navigation, footers, and other boilerplate.</p>
<p>A third paragraph makes the article body clearly the densest part of the page, so the extractor picks it as the main content without any doubt at all.</p>
</article>
<footer>Copyright notice</footer>
</body></html>`

func TestConvertURL_InvalidURL(t *testing.T) {
	s := newTestService(&mockHTTPClient{}, nil, Options{})

	for _, raw := range []string{"", "example.com/page", "ftp://example.com/file", "http://"} {
		_, err := s.ConvertURL(context.Background(), raw)
		assert.True(t, coreerrors.IsValidation(err), "url %q", raw)
	}
}

func TestConvertURL_FetchError(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return nil, errors.New("dial tcp: no such host")
	}}
	s := newTestService(client, nil, Options{})

	_, err := s.ConvertURL(context.Background(), "https://example.com/a")

	require.True(t, coreerrors.IsConversionFailed(err))
	assert.Equal(t, "Failed to fetch page", coreerrors.ConversionMessage(err))
}

func TestConvertURL_NotFound(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: 404, body: "not found"}, nil
	}}
	s := newTestService(client, nil, Options{})

	_, err := s.ConvertURL(context.Background(), "https://example.com/missing")

	require.True(t, coreerrors.IsConversionFailed(err))
	assert.Equal(t, "Page returned status 404", coreerrors.ConversionMessage(err))
	assert.True(t, coreerrors.IsExternalAPI(err))
}

func TestConvertURL_TooLarge(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: 200, body: strings.Repeat("a", 64)}, nil
	}}
	s := newTestService(client, nil, Options{MaxBytes: 32})

	_, err := s.ConvertURL(context.Background(), "https://example.com/big")

	assert.True(t, coreerrors.IsInputTooLarge(err))
}

func TestConvertURL_Article(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		calls++
		assert.Equal(t, "https://example.com/posts/sample", url)
		return &mockResponse{statusCode: 200, body: articlePage}, nil
	}}
	cache := newMapCache()
	s := newTestService(client, cache, Options{CacheTTL: time.Minute})

	conv, err := s.ConvertURL(context.Background(), "https://example.com/posts/sample")
	require.NoError(t, err)

	assert.True(t, conv.Success)
	assert.True(t, strings.HasPrefix(conv.Markdown, "# "))
	assert.Contains(t, conv.Markdown, "quick brown fox")
	assert.NotContains(t, conv.Markdown, "Copyright notice")
	assert.True(t, strings.HasSuffix(conv.FileName, ".html"))

	again, err := s.ConvertURL(context.Background(), "https://example.com/posts/sample")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, conv.FileName, again.FileName)
	assert.Equal(t, conv.Markdown, again.Markdown)
}

func TestBuildArticleMarkdown(t *testing.T) {
	got := buildArticleMarkdown("Title", "Ada", "Example", "Body text")
	assert.Equal(t, "# Title\n\n**Author:** Ada | **Source:** Example\n\nBody text", got)

	assert.Equal(t, "Body", buildArticleMarkdown("", "", "", "Body"))
}

func TestPageFileName(t *testing.T) {
	u, _ := url.Parse("https://example.com/x")

	assert.Equal(t, "Hello World.html", pageFileName("Hello: World!", u))
	assert.Equal(t, "example.com.html", pageFileName("", u))
	assert.Equal(t, "example.com.html", pageFileName("???", u))
}
