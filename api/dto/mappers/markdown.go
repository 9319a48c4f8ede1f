// ABOUTME: Mappers from domain and view types to API response DTOs
// ABOUTME: Keeps handlers free of field-by-field copying

package mappers

import (
	"mdpreview-api/api/dto/responses"
	"mdpreview-api/core/domain"
	"mdpreview-api/core/markdown"
	"mdpreview-api/core/view"
)

// StatsToResponse converts markdown stats
func StatsToResponse(s markdown.Stats) responses.StatsResponse {
	return responses.StatsResponse{
		Characters: s.Characters,
		Words:      s.Words,
		Lines:      s.Lines,
	}
}

// RenderToResponse builds a render response
func RenderToResponse(html string, mode markdown.Mode, stats markdown.Stats) responses.RenderResponse {
	return responses.RenderResponse{
		HTML:  html,
		Mode:  string(mode),
		Stats: StatsToResponse(stats),
	}
}

// ConversionToResponse converts a conversion result. A nil result maps to a
// failed response with no message.
func ConversionToResponse(c *domain.Conversion) responses.ConvertResponse {
	if c == nil {
		return responses.ConvertResponse{}
	}
	return responses.ConvertResponse{
		Success:  c.Success,
		Markdown: c.Markdown,
		FileName: c.FileName,
		Error:    c.Error,
	}
}

// ViewToResponse converts the view of session id
func ViewToResponse(id string, out view.Output) responses.ViewResponse {
	return responses.ViewResponse{
		SessionID: id,
		HTML:      out.HTML,
		Mode:      string(out.Mode),
		Stats:     StatsToResponse(out.Stats),
		FileName:  out.FileName,
		Loaded:    out.Loaded,
	}
}

// SessionToResponse converts a freshly created session and its view
func SessionToResponse(sess *domain.Session, out view.Output) responses.ViewResponse {
	resp := ViewToResponse(sess.ID, out)
	resp.ExpiresAt = sess.ExpiresAt
	return resp
}
