// Package markdown renders a small markdown dialect to HTML.
//
// Rendering is a two-stage parse rather than a chain of text rewrites:
//
//   - Segment splits a document into blocks (fenced code, headings of level 1
//     to 3, paragraphs). Code is extracted first and kept verbatim.
//   - Format splits one line of heading or paragraph text into inline spans.
//     Passes run in the fixed order code, bold, italic, link.
//
// Render composes both with Escape so that no document text reaches the output
// unescaped. In raw mode it skips interpretation and wraps the escaped source
// in a single <pre> block.
//
// # Limitations
//
// Tables, lists, blockquotes and footnotes are rendered as paragraph text.
// Emphasis does not nest recursively: bold may contain italic and links,
// italic may contain links, and a link label is always literal. Because
// emphasis is matched before links, `[a](x_y_z)` loses its link, and
// `***x***` renders as <strong>*x</strong>*.
//
//	html := markdown.Render("# Title\n\nHello **world**.", markdown.ModePreview)
//	// <h1>Title</h1><p>Hello <strong>world</strong>.</p>
package markdown
