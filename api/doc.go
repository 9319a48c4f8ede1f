// Package api provides the HTTP API layer for the Markdown Preview service.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation, request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration, CORS and middleware setup
// - handlers/: HTTP request handlers (health, convert, render, sessions)
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging and per-client rate limiting
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma validates bodies against struct tags before a handler runs:
//
//	type ConvertURLRequest struct {
//	    URL string `json:"url" minLength:"1" maxLength:"2048"`
//	}
//
// 3. Middleware Support
//
// - Request logging with a request ID that is forwarded on outgoing calls
// - Token-bucket rate limiting per client IP
// - CORS for browser clients, exposing Content-Disposition for downloads
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewRenderHandler().RegisterRoutes(humaAPI)
//	handlers.NewConvertHandler(converter, maxBytes, flags, logger).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 413,
//	    "title": "Request Entity Too Large",
//	    "detail": "File too large (max 10MB)"
//	}
//
// The one exception is a failed file conversion on /api/convert, which
// answers 500 with {"success": false, "error": "..."} so clients can show the
// message as is.
package api
