// Package core contains the business logic for the Markdown Preview service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - markdown: Block segmenter, inline formatter, HTML escaper, renderer and stats
// - view: The view state controller owning the current document and mode
// - convert: Conversion of uploaded files and web pages to markdown
// - upload: The upload flow that converts a file and loads it into a controller
// - session: Persistence of controller state between HTTP requests
// - domain: Plain models (Document, Conversion, Session)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Rendering never fails: unmatched markdown is emitted as escaped text
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	converter := convert.NewService(deps, convert.Options{CacheTTL: time.Hour})
//	uploads := upload.NewService(converter, converter.MaxBytes(), myLogger)
//
//	ctrl := view.NewController()
//	out, err := uploads.HandleFile(ctx, ctrl, "notes.html", data)
//	if err != nil {
//	    // ctrl is back to "no document" unless the file was too large
//	}
//	fmt.Println(out.HTML, out.Stats.Words)
package core
