package view

import (
	"testing"

	"mdpreview-api/core/domain"
	"mdpreview-api/core/errors"
	"mdpreview-api/core/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController(t *testing.T) {
	c := NewController()

	assert.False(t, c.Loaded())
	assert.Equal(t, markdown.ModePreview, c.Mode())
	assert.Equal(t, markdown.Stats{Characters: 0, Words: 0, Lines: 1}, c.Stats())
	assert.Equal(t, "<p></p>", c.Render())
}

func TestController_Load(t *testing.T) {
	c := NewController()

	out := c.Load("# Title\n\nHello **world**.", "title.docx")

	assert.True(t, out.Loaded)
	assert.Equal(t, "title.docx", out.FileName)
	assert.Equal(t, markdown.ModePreview, out.Mode)
	assert.Equal(t, "<h1>Title</h1><p>Hello <strong>world</strong>.</p>", out.HTML)
	assert.Equal(t, markdown.Stats{Characters: 25, Words: 4, Lines: 3}, out.Stats)
	assert.Equal(t, domain.Document{Markdown: "# Title\n\nHello **world**.", FileName: "title.docx"}, c.Document())
}

func TestController_LoadResetsModeToPreview(t *testing.T) {
	c := NewController()
	c.Load("a", "a.txt")
	_, err := c.SetMode(markdown.ModeRaw)
	require.NoError(t, err)

	out := c.Load("b", "b.txt")

	assert.Equal(t, markdown.ModePreview, out.Mode)
	assert.Equal(t, "<p>b</p>", out.HTML)
}

func TestController_LoadReplacesDocument(t *testing.T) {
	c := NewController()
	c.Load("first document", "one.txt")
	c.Load("second", "two.txt")

	assert.Equal(t, domain.Document{Markdown: "second", FileName: "two.txt"}, c.Document())
	assert.Equal(t, markdown.ComputeStats("second"), c.Stats())
}

func TestController_SetMode(t *testing.T) {
	c := NewController()
	c.Load("<b> & **x**", "x.md")

	out, err := c.SetMode(markdown.ModeRaw)
	require.NoError(t, err)

	assert.Equal(t, markdown.ModeRaw, out.Mode)
	assert.Equal(t, `<pre class="markdown-raw">&lt;b&gt; &amp; **x**</pre>`, out.HTML)
	assert.Equal(t, markdown.ComputeStats("<b> & **x**"), out.Stats)
}

func TestController_SetModeRejectsUnknownMode(t *testing.T) {
	c := NewController()
	c.Load("x", "x.md")

	_, err := c.SetMode(markdown.Mode("pdf"))

	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, markdown.ModePreview, c.Mode())
}

func TestController_ModeSwitchIsPure(t *testing.T) {
	c := NewController()
	first := c.Load("# T\n\n*a* `b` [c](d)\n```\n<x>\n```", "t.md")

	_, err := c.SetMode(markdown.ModeRaw)
	require.NoError(t, err)
	back, err := c.SetMode(markdown.ModePreview)
	require.NoError(t, err)

	assert.Equal(t, first, back)
}

func TestController_Reset(t *testing.T) {
	empty := NewController()

	for _, raw := range []string{"", "# big\n\ndocument", "```\ncode"} {
		c := NewController()
		c.Load(raw, "f.md")
		_, err := c.SetMode(markdown.ModeRaw)
		require.NoError(t, err)

		c.Reset()

		assert.False(t, c.Loaded())
		assert.Equal(t, domain.Document{}, c.Document())
		assert.Equal(t, empty.Stats(), c.Stats())
		assert.Equal(t, markdown.Render("", c.Mode()), c.Render())
	}
}

func TestController_ResetKeepsMode(t *testing.T) {
	c := NewController()
	c.Load("# doc", "doc.md")
	_, err := c.SetMode(markdown.ModeRaw)
	require.NoError(t, err)

	c.Reset()

	assert.Equal(t, markdown.ModeRaw, c.Mode())
	assert.Equal(t, `<pre class="markdown-raw"></pre>`, c.Render())

	_, err = c.SetMode(markdown.ModePreview)
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", c.Render())
}

func TestController_ResetIsIdempotent(t *testing.T) {
	c := NewController()
	c.Load("text", "t.txt")

	c.Reset()
	first := c.Output()
	c.Reset()

	assert.Equal(t, first, c.Output())
}

func TestController_SnapshotRestore(t *testing.T) {
	c := NewController()
	c.Load("**x**", "x.md")
	_, err := c.SetMode(markdown.ModeRaw)
	require.NoError(t, err)

	s := domain.NewSession(0)
	c.Snapshot(s)

	assert.True(t, s.Loaded)
	assert.Equal(t, "raw", s.Mode)
	assert.Equal(t, domain.Document{Markdown: "**x**", FileName: "x.md"}, s.Document)

	restored := NewController()
	restored.Restore(s)
	assert.Equal(t, c.Output(), restored.Output())
}

func TestController_RestoreUnknownMode(t *testing.T) {
	c := NewController()
	c.Restore(&domain.Session{Mode: "bogus", Loaded: true, Document: domain.Document{Markdown: "x"}})

	assert.Equal(t, markdown.ModePreview, c.Mode())
	assert.Equal(t, "<p>x</p>", c.Render())
}
