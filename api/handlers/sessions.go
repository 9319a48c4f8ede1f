// ABOUTME: Session handlers for the Huma API
// ABOUTME: Exposes load, upload, mode switching, reset and download of a preview session

package handlers

import (
	"context"
	"mime"
	"mime/multipart"
	"net/http"

	"mdpreview-api/api/dto/mappers"
	"mdpreview-api/api/dto/requests"
	"mdpreview-api/api/dto/responses"
	"mdpreview-api/core/domain"
	"mdpreview-api/core/session"
	"mdpreview-api/core/view"

	"github.com/danielgtaylor/huma/v2"
)

// SessionService interface defines the methods needed from the session service
type SessionService interface {
	Create(ctx context.Context) (*domain.Session, view.Output, error)
	View(ctx context.Context, id string) (view.Output, error)
	Load(ctx context.Context, id, md, fileName string) (view.Output, error)
	SetMode(ctx context.Context, id, mode string) (view.Output, error)
	Reset(ctx context.Context, id string) error
	Upload(ctx context.Context, id, fileName string, data []byte) (view.Output, error)
	Export(ctx context.Context, id string) (*session.Export, error)
}

// SessionHandler handles session requests
type SessionHandler struct {
	sessions SessionService
	maxBytes int64
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions SessionService, maxBytes int64) *SessionHandler {
	return &SessionHandler{sessions: sessions, maxBytes: maxBytes}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	tags := []string{"Sessions"}

	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/api/sessions",
		Summary:       "Create a preview session",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{id}",
		Summary:     "Get the current view of a session",
		Tags:        tags,
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "loadDocument",
		Method:      http.MethodPut,
		Path:        "/api/sessions/{id}/document",
		Summary:     "Load markdown into a session",
		Description: "Replaces the document, switches to preview and recomputes stats",
		Tags:        tags,
	}, h.LoadDocument)

	huma.Register(api, huma.Operation{
		OperationID:  "uploadDocument",
		Method:       http.MethodPost,
		Path:         "/api/sessions/{id}/upload",
		Summary:      "Upload a file into a session",
		Description:  "Converts the multipart 'file' and loads the result. A failed conversion clears the session document.",
		Tags:         tags,
		MaxBodyBytes: bodyLimit(h.maxBytes),
	}, h.Upload)

	huma.Register(api, huma.Operation{
		OperationID: "setMode",
		Method:      http.MethodPut,
		Path:        "/api/sessions/{id}/mode",
		Summary:     "Switch between preview and raw",
		Tags:        tags,
	}, h.SetMode)

	huma.Register(api, huma.Operation{
		OperationID:   "resetDocument",
		Method:        http.MethodDelete,
		Path:          "/api/sessions/{id}/document",
		Summary:       "Clear the session document",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.Reset)

	huma.Register(api, huma.Operation{
		OperationID: "downloadDocument",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{id}/download",
		Summary:     "Download the session document as markdown",
		Tags:        tags,
	}, h.Download)
}

// SessionIDInput identifies a session
type SessionIDInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// SessionOutput is the current view of a session
type SessionOutput struct {
	Body responses.ViewResponse
}

// LoadDocumentInput defines the input for loading markdown
type LoadDocumentInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body requests.LoadDocumentRequest
}

// UploadInput defines the multipart input for uploads
type UploadInput struct {
	ID      string `path:"id" doc:"Session ID"`
	RawBody multipart.Form
}

// SetModeInput defines the input for switching modes
type SetModeInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body requests.SetModeRequest
}

// DownloadOutput is a markdown attachment
type DownloadOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	sess, out, err := h.sessions.Create(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.SessionToResponse(sess, out)}, nil
}

// Get handles GET /api/sessions/{id}
func (h *SessionHandler) Get(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	out, err := h.sessions.View(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ViewToResponse(input.ID, out)}, nil
}

// LoadDocument handles PUT /api/sessions/{id}/document
func (h *SessionHandler) LoadDocument(ctx context.Context, input *LoadDocumentInput) (*SessionOutput, error) {
	out, err := h.sessions.Load(ctx, input.ID, input.Body.Markdown, input.Body.FileName)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ViewToResponse(input.ID, out)}, nil
}

// Upload handles POST /api/sessions/{id}/upload. An empty file reaches the
// session service like any other failed conversion and clears the document.
func (h *SessionHandler) Upload(ctx context.Context, input *UploadInput) (*SessionOutput, error) {
	name, data, err := readUploadedFile(&input.RawBody, h.maxBytes)
	if err != nil {
		return nil, err
	}

	out, err := h.sessions.Upload(ctx, input.ID, name, data)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ViewToResponse(input.ID, out)}, nil
}

// SetMode handles PUT /api/sessions/{id}/mode
func (h *SessionHandler) SetMode(ctx context.Context, input *SetModeInput) (*SessionOutput, error) {
	out, err := h.sessions.SetMode(ctx, input.ID, input.Body.Mode)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ViewToResponse(input.ID, out)}, nil
}

// Reset handles DELETE /api/sessions/{id}/document
func (h *SessionHandler) Reset(ctx context.Context, input *SessionIDInput) (*struct{}, error) {
	if err := h.sessions.Reset(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

// Download handles GET /api/sessions/{id}/download
func (h *SessionHandler) Download(ctx context.Context, input *SessionIDInput) (*DownloadOutput, error) {
	export, err := h.sessions.Export(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DownloadOutput{
		ContentType:        "text/markdown; charset=utf-8",
		ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}),
		Body:               []byte(export.Content),
	}, nil
}
