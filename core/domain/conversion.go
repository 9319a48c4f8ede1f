// ABOUTME: Conversion domain model mirrors the result contract of the conversion service
// ABOUTME: Success carries markdown and the file name, failure carries a readable error

package domain

// Conversion is the result of turning an uploaded document into markdown
type Conversion struct {
	Success  bool   `json:"success"`
	Markdown string `json:"markdown,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Document returns the converted document
func (c *Conversion) Document() Document {
	return Document{Markdown: c.Markdown, FileName: c.FileName}
}
