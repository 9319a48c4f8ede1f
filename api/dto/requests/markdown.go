// ABOUTME: Request DTOs for rendering, conversion and session endpoints
// ABOUTME: Validation lives in struct tags so huma rejects bad bodies with 422

package requests

// RenderRequest is the body for one-shot rendering
type RenderRequest struct {
	// Markdown is the raw document text
	Markdown string `json:"markdown" doc:"Raw markdown to render"`

	// Mode selects preview or raw output, preview when empty
	Mode string `json:"mode,omitempty" doc:"View mode, 'preview' (default) or 'raw'"`
}

// StatsRequest is the body for the stats endpoint
type StatsRequest struct {
	Markdown string `json:"markdown" doc:"Raw markdown to count"`
}

// ConvertURLRequest asks the server to fetch and convert a web page
type ConvertURLRequest struct {
	URL string `json:"url" minLength:"1" maxLength:"2048" doc:"Absolute http(s) URL of the page"`
}

// LoadDocumentRequest replaces the document of a session
type LoadDocumentRequest struct {
	Markdown string `json:"markdown" doc:"Markdown to load"`
	FileName string `json:"fileName,omitempty" maxLength:"255" doc:"Name of the file the markdown came from"`
}

// SetModeRequest switches the view mode of a session
type SetModeRequest struct {
	Mode string `json:"mode" minLength:"1" doc:"'preview' or 'raw'"`
}
