// ABOUTME: Root command and shared document loading for mdview
// ABOUTME: Builds the conversion and upload services from flags and environment

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"mdpreview-api/core/convert"
	"mdpreview-api/core/interfaces"
	"mdpreview-api/core/upload"
	"mdpreview-api/core/view"
	stdhttp "mdpreview-api/infrastructure/http/standard"
	stdlogger "mdpreview-api/infrastructure/logger/standard"
	"mdpreview-api/pkg/config"

	"github.com/spf13/cobra"
)

// options holds collaborators injected by main and tests
type options struct {
	clipboard interfaces.Clipboard
}

// app is the per-invocation state shared by subcommands
type app struct {
	converter *convert.Service
	uploads   *upload.Service
	clipboard interfaces.Clipboard
	logger    interfaces.Logger
}

func newRootCmd(opts options) *cobra.Command {
	var (
		converterURL string
		maxBytes     int64
		timeout      time.Duration
		logLevel     string
	)
	a := &app{clipboard: opts.clipboard}

	root := &cobra.Command{
		Use:           "mdview",
		Short:         "Convert documents to markdown and preview them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = stdlogger.NewStandardLogger(stdlogger.Options{
				Level:  logLevel,
				Output: cmd.ErrOrStderr(),
			})
			a.converter = convert.NewService(interfaces.Dependencies{
				HTTPClient: stdhttp.NewStandardHTTPClient(timeout),
				Logger:     a.logger,
			}, convert.Options{
				MaxBytes:    maxBytes,
				UpstreamURL: converterURL,
			})
			a.uploads = upload.NewService(a.converter, a.converter.MaxBytes(), a.logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&converterURL, "converter-url", os.Getenv("CONVERTER_URL"), "upstream convert endpoint for formats without a local converter")
	flags.Int64Var(&maxBytes, "max-bytes", config.DefaultMaxUploadBytes, "largest accepted input in bytes")
	flags.DurationVar(&timeout, "timeout", 30*time.Second, "timeout for page fetches and upstream conversion")
	flags.StringVar(&logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newRenderCmd(a),
		newStatsCmd(a),
		newViewCmd(a),
		newExportCmd(a),
		newCopyCmd(a),
		newFetchCmd(a),
	)
	return root
}

// load converts the file at path ("-" for stdin) and loads it into a new controller
func (a *app) load(cmd *cobra.Command, path string) (*view.Controller, error) {
	name, data, err := a.read(cmd, path)
	if err != nil {
		return nil, err
	}

	ctrl := view.NewController()
	if _, err := a.uploads.HandleFile(cmd.Context(), ctrl, name, data); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (a *app) read(cmd *cobra.Command, path string) (string, []byte, error) {
	var (
		r    io.Reader
		name string
	)
	if path == "-" {
		r, name = cmd.InOrStdin(), "stdin.md"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		r, name = f, filepath.Base(path)
	}

	// One byte over the bound is enough for the upload service to reject it
	data, err := io.ReadAll(io.LimitReader(r, a.converter.MaxBytes()+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return name, data, nil
}
