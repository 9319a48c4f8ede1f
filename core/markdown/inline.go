// ABOUTME: Inline formatter turning a line of text into plain, code, emphasis and link spans
// ABOUTME: Passes run in a fixed order so text consumed by one pass is never re-matched

package markdown

import "regexp"

var (
	codePattern   = regexp.MustCompile("`(.+?)`")
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*|_(.+?)_`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Span is one inline run: PlainText, Bold, Italic, InlineCode or Link.
type Span interface {
	span()
}

// PlainText is unformatted text. It is escaped when rendered.
type PlainText struct {
	Text string
}

// Bold wraps spans produced by the italic and link passes.
type Bold struct {
	Children []Span
}

// Italic wraps spans produced by the link pass.
type Italic struct {
	Children []Span
}

// InlineCode is frozen text between single backticks.
type InlineCode struct {
	Text string
}

// Link keeps its label and href literally; neither is validated.
type Link struct {
	Label string
	Href  string
}

func (PlainText) span()  {}
func (Bold) span()       {}
func (Italic) span()     {}
func (InlineCode) span() {}
func (Link) span()       {}

// Format splits text into spans. Passes run code, bold, italic, link; each pass
// only sees text the earlier passes left unmatched, and emphasis content is
// handed to the passes after it. A link label is never formatted, and a
// delimiter consumed by an earlier pass is not reconsidered.
func Format(text string) []Span {
	return formatCode(text)
}

func formatCode(text string) []Span {
	return splitSpans(text, codePattern, formatBold, func(groups []string) Span {
		return InlineCode{Text: groups[1]}
	})
}

func formatBold(text string) []Span {
	return splitSpans(text, boldPattern, formatItalic, func(groups []string) Span {
		return Bold{Children: formatItalic(firstGroup(groups))}
	})
}

func formatItalic(text string) []Span {
	return splitSpans(text, italicPattern, formatLink, func(groups []string) Span {
		return Italic{Children: formatLink(firstGroup(groups))}
	})
}

func formatLink(text string) []Span {
	return splitSpans(text, linkPattern, formatPlain, func(groups []string) Span {
		return Link{Label: groups[1], Href: groups[2]}
	})
}

func formatPlain(text string) []Span {
	if text == "" {
		return nil
	}
	return []Span{PlainText{Text: text}}
}

// splitSpans turns every match of re into a span and hands the text between
// matches to next.
func splitSpans(text string, re *regexp.Regexp, next func(string) []Span, match func([]string) Span) []Span {
	var spans []Span
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, next(text[last:loc[0]])...)
		spans = append(spans, match(submatches(text, loc)))
		last = loc[1]
	}
	return append(spans, next(text[last:])...)
}

func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return groups
}

// firstGroup returns the first non-empty capture of an alternation such as
// `\*\*(.+?)\*\*|__(.+?)__`.
func firstGroup(groups []string) string {
	for _, g := range groups[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
