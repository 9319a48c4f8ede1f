package markdown

import (
	"strings"
	"unicode/utf16"
)

// Stats holds document counts shown next to the preview.
type Stats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Lines      int `json:"lines"`
}

// ComputeStats counts characters, words and lines of raw.
//
// Characters are UTF-16 code units, which matches String.length in the browser
// client. Words are whitespace separated runs. Lines are the number of newline
// separated segments, so the empty document has one line and a trailing newline
// adds an empty last line.
func ComputeStats(raw string) Stats {
	return Stats{
		Characters: utf16Len(raw),
		Words:      len(strings.Fields(raw)),
		Lines:      strings.Count(raw, "\n") + 1,
	}
}

// utf16Len counts UTF-16 code units. Invalid UTF-8 bytes count as one unit each.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
