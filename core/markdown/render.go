// ABOUTME: Renderer composing the segmenter, inline formatter and escaper into HTML
// ABOUTME: Preview mode interprets markdown, raw mode shows the escaped source

package markdown

import (
	"strconv"
	"strings"
)

// Mode selects how a document is displayed.
type Mode string

const (
	// ModePreview renders markdown as HTML. It is the default for a new document.
	ModePreview Mode = "preview"

	// ModeRaw shows the escaped markdown source in a single preformatted block.
	ModeRaw Mode = "raw"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModePreview || m == ModeRaw
}

// ParseMode converts a string into a Mode. The empty string maps to ModePreview.
func ParseMode(s string) (Mode, bool) {
	if s == "" {
		return ModePreview, true
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}

// Render produces HTML for raw in the given mode. It never fails: markdown that
// does not match any rule is emitted as escaped text. Unknown modes render as
// preview.
func Render(raw string, mode Mode) string {
	if mode == ModeRaw {
		return `<pre class="markdown-raw">` + Escape(raw) + "</pre>"
	}

	var b strings.Builder
	for _, blk := range Segment(raw) {
		writeBlock(&b, blk)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, blk Block) {
	switch blk := blk.(type) {
	case CodeBlock:
		b.WriteString("<pre><code>")
		b.WriteString(Escape(blk.Content))
		b.WriteString("</code></pre>")
	case Heading:
		tag := "h" + strconv.Itoa(blk.Level)
		b.WriteString("<" + tag + ">")
		writeSpans(b, Format(blk.Text))
		b.WriteString("</" + tag + ">")
	case Paragraph:
		b.WriteString("<p>")
		for i, line := range strings.Split(blk.Text, "\n") {
			if i > 0 {
				b.WriteString("<br>")
			}
			writeSpans(b, Format(line))
		}
		b.WriteString("</p>")
	}
}

func writeSpans(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s := s.(type) {
		case PlainText:
			b.WriteString(Escape(s.Text))
		case InlineCode:
			b.WriteString("<code>")
			b.WriteString(Escape(s.Text))
			b.WriteString("</code>")
		case Bold:
			b.WriteString("<strong>")
			writeSpans(b, s.Children)
			b.WriteString("</strong>")
		case Italic:
			b.WriteString("<em>")
			writeSpans(b, s.Children)
			b.WriteString("</em>")
		case Link:
			b.WriteString(`<a href="`)
			b.WriteString(Escape(s.Href))
			b.WriteString(`" target="_blank" rel="noopener noreferrer">`)
			b.WriteString(Escape(s.Label))
			b.WriteString("</a>")
		}
	}
}
