package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/ang-cai/dinner/pkg/errors"
	dinnerio "github.com/ang-cai/dinner/pkg/io"
	"github.com/ang-cai/dinner/pkg/pipeline"
	"github.com/ang-cai/dinner/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format   string // output format: dot or svg (inferred from -o extension if empty)
	output   string // output file path (stdout for dot if empty)
	detailed bool   // include dislike degrees in node labels
	plain    bool   // skip solving; render the graph without highlighting
	noCache  bool
	cacheDir string
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{cacheDir: defaultCacheDir()}

	cmd := &cobra.Command{
		Use:   "render <guest-file>",
		Short: "Render the dislike graph as DOT or SVG",
		Long: `Render the dislike graph as a node-link diagram.

Isolated guests are drawn dashed and grey; unless --plain is given, the
computed invite list is highlighted in green:

  dinner render guests.toml -o graph.svg
  dinner render guests.toml --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot or svg (default from output extension)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout for dot if empty)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include dislike counts in node labels")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "do not solve and highlight the invite list")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", opts.cacheDir, "result cache directory")

	return cmd
}

// resolveFormat picks the render format from the flag or the output
// file extension, defaulting to DOT.
func (o *renderOpts) resolveFormat() string {
	if o.format != "" {
		return strings.ToLower(o.format)
	}
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(o.output)), "."); ext != "" {
		return ext
	}
	return pipeline.FormatDOT
}

// runRender produces the requested artifact and writes it out.
func runRender(ctx context.Context, opts *renderOpts, path string) error {
	logger := loggerFromContext(ctx)
	format := opts.resolveFormat()
	if err := apperrors.ValidateFormat(format, pipeline.ValidFormats); err != nil {
		printError("%v", err)
		return err
	}

	var data []byte
	var err error
	if opts.plain {
		data, err = renderPlain(path, format, opts.detailed)
	} else {
		data, err = renderSolved(ctx, opts, path, format)
	}
	if err != nil {
		printError("%v", err)
		return err
	}

	if opts.output == "" {
		if format != pipeline.FormatDOT {
			err := fmt.Errorf("format %q needs an output file (-o)", format)
			printError("%v", err)
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Wrote %s (%d bytes)", opts.output, len(data))
	logger.Debug("rendered dislike graph", "format", format, "bytes", len(data))
	return nil
}

// renderPlain renders the graph without running the solver.
func renderPlain(path, format string, detailed bool) ([]byte, error) {
	g, err := dinnerio.Import(path)
	if err != nil {
		return nil, err
	}
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: detailed})
	if format == pipeline.FormatSVG {
		return nodelink.RenderSVG(dot)
	}
	return []byte(dot), nil
}

// renderSolved runs the full pipeline so the invite list is highlighted.
func renderSolved(ctx context.Context, opts *renderOpts, path, format string) ([]byte, error) {
	logger := loggerFromContext(ctx)

	runner := pipeline.NewRunner(openCache(opts.noCache, opts.cacheDir, logger), nil, logger)
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:    path,
		Formats:  []string{format},
		Detailed: opts.detailed,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return result.Artifacts[format], nil
}
