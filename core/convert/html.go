// ABOUTME: HTML converter cleaning markup with goquery before html-to-markdown
// ABOUTME: Non-UTF-8 input is decoded through its declared charset first

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// strippedElements never carry document content
const strippedElements = "head, script, style, noscript, iframe, template"

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	trailingSpaces = regexp.MustCompile(`[ \t]+\n`)
)

// HTMLConverter converts HTML documents with html-to-markdown after removing
// scripts, styles and other non-content elements
type HTMLConverter struct{}

// NewHTMLConverter creates an HTML converter
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{}
}

// Name implements interfaces.Converter
func (c *HTMLConverter) Name() string { return "html" }

// Supports implements interfaces.Converter
func (c *HTMLConverter) Supports(ext string) bool {
	switch ext {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Convert implements interfaces.Converter. The document title becomes a level
// one heading unless the body already starts with one.
func (c *HTMLConverter) Convert(_ context.Context, _ string, data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(utf8HTML(data, "text/html"))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find(strippedElements).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to read HTML body: %w", err)
	}

	markdown, err := htmlToMarkdown(body)
	if err != nil {
		return "", err
	}
	if title != "" && !strings.HasPrefix(markdown, "# ") {
		markdown = "# " + title + "\n\n" + markdown
	}
	return markdown, nil
}

// utf8HTML decodes data to UTF-8 using the charset from contentType, a BOM or
// a <meta> declaration. Undeclared input is taken as UTF-8 when valid and
// windows-1252 otherwise.
func utf8HTML(data []byte, contentType string) io.Reader {
	r, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return bytes.NewReader(data)
	}
	return r
}

// htmlToMarkdown converts an HTML fragment and tidies the result
func htmlToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return cleanMarkdown(markdown), nil
}

// cleanMarkdown normalises line endings, trailing spaces and runs of blank lines
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")
	markdown = trailingSpaces.ReplaceAllString(markdown, "\n")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
