// ABOUTME: Block segmenter splitting markdown into code blocks, headings and paragraphs
// ABOUTME: Fenced code is extracted first so nothing inside it is ever reinterpreted

package markdown

import (
	"regexp"
	"strings"
)

const fence = "```"

var headingPattern = regexp.MustCompile(`^(#{1,3}) (.*)$`)

// Block is one top-level unit of a document: a CodeBlock, Heading or Paragraph.
type Block interface {
	block()
}

// CodeBlock holds the verbatim content between two fences.
type CodeBlock struct {
	Content string
}

// Heading is a single-line heading of level 1 to 3.
type Heading struct {
	Level int
	Text  string
}

// Paragraph holds paragraph text; single newlines inside Text are soft line breaks.
type Paragraph struct {
	Text string
}

func (CodeBlock) block() {}
func (Heading) block()   {}
func (Paragraph) block() {}

// Segment splits raw markdown into blocks in source order.
//
// A document with no blocks, empty or only blank lines, yields a single empty
// Paragraph. A fence without a closing fence turns the rest of the document
// into one code block.
func Segment(raw string) []Block {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var blocks []Block
	rest := raw
	for {
		open := strings.Index(rest, fence)
		if open < 0 {
			blocks = append(blocks, segmentProse(rest)...)
			break
		}
		blocks = append(blocks, segmentProse(rest[:open])...)

		body := rest[open+len(fence):]
		end := strings.Index(body, fence)
		if end < 0 {
			blocks = append(blocks, CodeBlock{Content: body})
			break
		}
		blocks = append(blocks, CodeBlock{Content: body[:end]})
		rest = body[end+len(fence):]
	}

	if len(blocks) == 0 {
		return []Block{Paragraph{}}
	}
	return blocks
}

// segmentProse splits text outside code fences into headings and paragraphs.
func segmentProse(text string) []Block {
	var blocks []Block
	var para []string

	flush := func() {
		if len(para) > 0 {
			blocks = append(blocks, Paragraph{Text: strings.Join(para, "\n")})
			para = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			blocks = append(blocks, Heading{Level: len(m[1]), Text: m[2]})
			continue
		}
		if line == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()

	return blocks
}
