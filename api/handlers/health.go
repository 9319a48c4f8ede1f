// ABOUTME: Health check handler
// ABOUTME: Reports that the service is up together with its name and version

package handlers

import (
	"context"
	"net/http"

	"mdpreview-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler serves GET /health
type HealthHandler struct {
	service string
	version string
}

// NewHealthHandler creates a health handler
func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	}}, nil
}
