// ABOUTME: mdview subcommands
// ABOUTME: render, stats, view, export, copy and fetch over the shared view controller

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"mdpreview-api/core/domain"
	"mdpreview-api/core/errors"
	"mdpreview-api/core/markdown"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var mode, output string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a document as an HTML fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := markdown.ParseMode(mode)
			if !ok {
				return fmt.Errorf("invalid mode %q: must be 'preview' or 'raw'", mode)
			}

			ctrl, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := ctrl.SetMode(m)
			if err != nil {
				return err
			}

			if output != "" {
				return os.WriteFile(output, []byte(out.HTML), 0o644)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.HTML)
			return err
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(markdown.ModePreview), "preview or raw")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the HTML to this file")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Count characters, words and lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			s := ctrl.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d characters | %d words | %d lines\n", s.Characters, s.Words, s.Lines)
			return err
		},
	}
}

func newViewCmd(a *app) *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Preview a document in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			styleOpt := glamour.WithAutoStyle()
			if style != "auto" {
				styleOpt = glamour.WithStandardStyle(style)
			}
			renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
			if err != nil {
				return fmt.Errorf("failed to create terminal renderer: %w", err)
			}

			doc := ctrl.Document()
			rendered, err := renderer.Render(doc.Markdown)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", doc.FileName, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert a document and save it as markdown",
		Long:  "Converts the document and writes the markdown next to it as <name>.md, or into --dir.\nA markdown source is never overwritten; export it with --dir instead.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			doc := ctrl.Document()
			target := dir
			if target == "" {
				target = filepath.Dir(args[0])
				if args[0] == "-" {
					target = "."
				}
			}
			path := filepath.Join(target, doc.ExportName())
			if args[0] != "-" && sameFile(args[0], path) {
				return fmt.Errorf("export would overwrite %s, choose another directory with --dir", args[0])
			}
			if err := os.WriteFile(path, []byte(doc.Markdown), 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to write the markdown to")
	return cmd
}

// sameFile reports whether both paths name an existing file and it is the same one
func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <file>",
		Short: "Convert a document and copy the markdown to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			if a.clipboard == nil {
				return &errors.ClipboardUnavailableError{}
			}

			doc := ctrl.Document()
			if err := a.clipboard.WriteAll(doc.Markdown); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to clipboard\n", describe(doc))
			return err
		},
	}
}

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Convert the main article of a web page to markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter.ConvertURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), conv.Markdown)
			return err
		},
	}
}

func describe(doc domain.Document) string {
	if doc.FileName == "" {
		return "document"
	}
	return doc.FileName
}
