package convert

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

const feedDateLayout = "January 2, 2006"

// FeedConverter renders RSS, Atom and JSON feeds as a markdown digest
type FeedConverter struct{}

// NewFeedConverter creates a feed converter
func NewFeedConverter() *FeedConverter {
	return &FeedConverter{}
}

// Name implements interfaces.Converter
func (c *FeedConverter) Name() string { return "feed" }

// Supports implements interfaces.Converter
func (c *FeedConverter) Supports(ext string) bool {
	switch ext {
	case ".rss", ".atom", ".xml":
		return true
	}
	return false
}

// Convert implements interfaces.Converter. Each item becomes a level two
// heading linking to the item, followed by its summary.
func (c *FeedConverter) Convert(_ context.Context, _ string, data []byte) (string, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse feed: %w", err)
	}

	var b strings.Builder
	title := strings.TrimSpace(feed.Title)
	if title == "" {
		title = "Untitled feed"
	}
	b.WriteString("# " + title + "\n\n")

	if desc := strings.TrimSpace(feed.Description); desc != "" {
		b.WriteString(desc + "\n\n")
	}
	if feed.Link != "" {
		fmt.Fprintf(&b, "Source: [%s](%s)\n\n", feed.Link, feed.Link)
	}

	for _, item := range feed.Items {
		writeFeedItem(&b, item)
	}

	return strings.TrimSpace(b.String()), nil
}

func writeFeedItem(b *strings.Builder, item *gofeed.Item) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = "Untitled"
	}
	if item.Link != "" {
		fmt.Fprintf(b, "## [%s](%s)\n\n", title, item.Link)
	} else {
		b.WriteString("## " + title + "\n\n")
	}

	var meta []string
	if item.PublishedParsed != nil {
		meta = append(meta, item.PublishedParsed.Format(feedDateLayout))
	}
	if item.Author != nil && item.Author.Name != "" {
		meta = append(meta, item.Author.Name)
	}
	if len(meta) > 0 {
		b.WriteString("*" + strings.Join(meta, " | ") + "*\n\n")
	}

	summary := item.Content
	if summary == "" {
		summary = item.Description
	}
	if summary == "" {
		return
	}
	if text, err := htmlToMarkdown(summary); err == nil && text != "" {
		b.WriteString(text + "\n\n")
	}
}
