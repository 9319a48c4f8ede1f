// ABOUTME: Render handlers for the Huma API
// ABOUTME: Stateless rendering of markdown to HTML and document stats

package handlers

import (
	"context"
	"net/http"

	"mdpreview-api/api/dto/mappers"
	"mdpreview-api/api/dto/requests"
	"mdpreview-api/api/dto/responses"
	"mdpreview-api/core/markdown"

	"github.com/danielgtaylor/huma/v2"
)

// RenderHandler renders markdown without keeping any state
type RenderHandler struct{}

// NewRenderHandler creates a render handler
func NewRenderHandler() *RenderHandler {
	return &RenderHandler{}
}

// RegisterRoutes registers render routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderMarkdown",
		Method:      http.MethodPost,
		Path:        "/api/render",
		Summary:     "Render markdown",
		Description: "Renders markdown as an HTML preview, or as escaped source in raw mode, together with its stats",
		Tags:        []string{"Render"},
	}, h.Render)

	huma.Register(api, huma.Operation{
		OperationID: "markdownStats",
		Method:      http.MethodPost,
		Path:        "/api/stats",
		Summary:     "Count characters, words and lines",
		Tags:        []string{"Render"},
	}, h.Stats)
}

// RenderInput defines the input for rendering
type RenderInput struct {
	Body requests.RenderRequest
}

// RenderOutput defines the output for rendering
type RenderOutput struct {
	Body responses.RenderResponse
}

// Render handles POST /api/render
func (h *RenderHandler) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	mode, ok := markdown.ParseMode(input.Body.Mode)
	if !ok {
		return nil, huma.Error400BadRequest("mode must be 'preview' or 'raw'")
	}

	html := markdown.Render(input.Body.Markdown, mode)
	stats := markdown.ComputeStats(input.Body.Markdown)

	return &RenderOutput{Body: mappers.RenderToResponse(html, mode, stats)}, nil
}

// StatsInput defines the input for stats
type StatsInput struct {
	Body requests.StatsRequest
}

// StatsOutput defines the output for stats
type StatsOutput struct {
	Body responses.StatsResponse
}

// Stats handles POST /api/stats
func (h *RenderHandler) Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	return &StatsOutput{Body: mappers.StatsToResponse(markdown.ComputeStats(input.Body.Markdown))}, nil
}
