// ABOUTME: Document domain model holds the markdown currently shown to the user
// ABOUTME: Provides the export file name rule used for downloads

package domain

import (
	"regexp"
	"strings"
)

var extensionPattern = regexp.MustCompile(`\.[^/.]+$`)

// Document is the markdown produced by a conversion together with the name of
// the file it came from. It is a value: every load replaces it wholesale.
type Document struct {
	// Markdown is the raw markdown text
	Markdown string `json:"markdown"`

	// FileName is the name of the uploaded file
	FileName string `json:"fileName"`
}

// IsEmpty reports whether the document has neither content nor a name
func (d Document) IsEmpty() bool {
	return d.Markdown == "" && d.FileName == ""
}

// ExportName returns the download name: the file name with its last extension
// replaced by ".md". A document without a name exports as "document.md".
func (d Document) ExportName() string {
	base := extensionPattern.ReplaceAllString(d.FileName, "")
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if base == "" {
		base = "document"
	}
	return base + ".md"
}
