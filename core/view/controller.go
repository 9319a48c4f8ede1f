// ABOUTME: View state controller owning the current document and view mode
// ABOUTME: Dispatches to the markdown renderer and stats calculator on load, mode change and reset

package view

import (
	"time"

	"mdpreview-api/core/domain"
	"mdpreview-api/core/errors"
	"mdpreview-api/core/markdown"
)

// Output is what the display surface shows after an operation
type Output struct {
	HTML     string         `json:"html"`
	Mode     markdown.Mode  `json:"mode"`
	Stats    markdown.Stats `json:"stats"`
	FileName string         `json:"fileName"`
	Loaded   bool           `json:"loaded"`
}

// Controller holds one open document at a time. The document is only ever
// replaced through Load or cleared through Reset.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	doc    domain.Document
	loaded bool
	mode   markdown.Mode
	stats  markdown.Stats
}

// NewController returns a controller with no document loaded
func NewController() *Controller {
	return &Controller{
		mode:  markdown.ModePreview,
		stats: markdown.ComputeStats(""),
	}
}

// Load replaces the document, switches back to preview and recomputes stats
func (c *Controller) Load(md, fileName string) Output {
	c.doc = domain.Document{Markdown: md, FileName: fileName}
	c.loaded = true
	c.mode = markdown.ModePreview
	c.stats = markdown.ComputeStats(md)
	return c.output()
}

// SetMode changes the view mode and re-renders the current document.
// Stats are left as computed by the last Load.
func (c *Controller) SetMode(mode markdown.Mode) (Output, error) {
	if !mode.Valid() {
		return Output{}, &errors.ValidationError{Field: "mode", Message: "must be 'preview' or 'raw'"}
	}
	c.mode = mode
	return c.output(), nil
}

// Reset clears the document and keeps the current mode. The cleared state
// renders as the empty document in that mode, so after a reset from raw mode
// Render returns an empty <pre class="markdown-raw"></pre> rather than <p></p>.
// Calling Reset again changes nothing.
func (c *Controller) Reset() {
	c.doc = domain.Document{}
	c.loaded = false
	c.stats = markdown.ComputeStats("")
}

// Render renders the current document in the current mode.
// After Reset it renders the empty document.
func (c *Controller) Render() string {
	return markdown.Render(c.doc.Markdown, c.mode)
}

// Output returns the current render together with stats and document details
func (c *Controller) Output() Output {
	return c.output()
}

// Stats returns the stats computed by the last Load
func (c *Controller) Stats() markdown.Stats {
	return c.stats
}

// Document returns the current document
func (c *Controller) Document() domain.Document {
	return c.doc
}

// Mode returns the current view mode
func (c *Controller) Mode() markdown.Mode {
	return c.mode
}

// Loaded reports whether a document is loaded
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Snapshot copies the controller state into s, updating its timestamp
func (c *Controller) Snapshot(s *domain.Session) {
	s.Document = c.doc
	s.Loaded = c.loaded
	s.Mode = string(c.mode)
	s.UpdatedAt = time.Now()
}

// Restore replaces the controller state with the one recorded in s.
// An unknown mode falls back to preview.
func (c *Controller) Restore(s *domain.Session) {
	c.doc = s.Document
	c.loaded = s.Loaded
	c.mode = markdown.ModePreview
	if m := markdown.Mode(s.Mode); m.Valid() {
		c.mode = m
	}
	c.stats = markdown.ComputeStats(c.doc.Markdown)
}

func (c *Controller) output() Output {
	return Output{
		HTML:     c.Render(),
		Mode:     c.mode,
		Stats:    c.stats,
		FileName: c.doc.FileName,
		Loaded:   c.loaded,
	}
}
