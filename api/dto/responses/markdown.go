// ABOUTME: Response DTOs for rendering, conversion and session endpoints
// ABOUTME: Field names follow the browser client contract (camelCase)

package responses

import "time"

// StatsResponse holds document counts
type StatsResponse struct {
	Characters int `json:"characters" doc:"UTF-16 code units"`
	Words      int `json:"words" doc:"Whitespace separated words"`
	Lines      int `json:"lines" doc:"Newline separated lines"`
}

// RenderResponse is a rendered document
type RenderResponse struct {
	HTML  string        `json:"html" doc:"Rendered HTML fragment"`
	Mode  string        `json:"mode" doc:"Mode used for rendering"`
	Stats StatsResponse `json:"stats" doc:"Document stats"`
}

// ConvertResponse mirrors the conversion result contract
type ConvertResponse struct {
	Success  bool   `json:"success" doc:"Whether the conversion succeeded"`
	Markdown string `json:"markdown,omitempty" doc:"Converted markdown"`
	FileName string `json:"fileName,omitempty" doc:"Name of the converted file"`
	Error    string `json:"error,omitempty" doc:"Readable failure message"`
}

// ViewResponse is what a session currently displays
type ViewResponse struct {
	SessionID string        `json:"sessionId" doc:"Session identifier"`
	HTML      string        `json:"html" doc:"Render of the current document in the current mode"`
	Mode      string        `json:"mode" doc:"Current view mode"`
	Stats     StatsResponse `json:"stats" doc:"Stats from the last load"`
	FileName  string        `json:"fileName,omitempty" doc:"Name of the loaded file"`
	Loaded    bool          `json:"loaded" doc:"Whether a document is loaded"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty" doc:"When the session expires without further changes"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service"`
	Version string `json:"version"`
}
