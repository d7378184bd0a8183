package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshtools/wireview/pkg/pipeline"
	"github.com/meshtools/wireview/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "json"
	steps   []string // transformation step specs, applied in order
	width   float64  // viewport width in pixels
	height  float64  // viewport height in pixels
	stroke  float64  // edge stroke width
	refresh bool     // bypass the cache
}

// newRenderCmd creates the render command for generating artifacts.
//
// Default settings come from the config file: width 800px, height 600px,
// stroke 1.0. Transformations are applied with --step in the order given,
// e.g. --step rotate:z:45 --step scale:2.
func newRenderCmd(configPath *string) *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file.obj]",
		Short: "Render a wireframe model to SVG or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runRender(cmd, args[0], &opts, configPath)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringArrayVarP(&opts.steps, "step", "s", nil, "transformation step kind:axis:value (repeatable)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height (default from config)")
	cmd.Flags().Float64Var(&opts.stroke, "stroke", 0, "edge stroke width (default from config)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

func runRender(cmd *cobra.Command, source string, opts *renderOpts, configPath *string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyRenderDefaults(opts, cfg.Render.Width, cfg.Render.Height, cfg.Render.Stroke)

	steps := make([]pipeline.Step, 0, len(opts.steps))
	for _, spec := range opts.steps {
		step, err := pipeline.ParseStep(spec)
		if err != nil {
			return err
		}
		steps = append(steps, step)
	}

	c := openCache(ctx, cfg, logger)
	defer c.Close()

	runner := pipeline.NewRunner(c, nil, logger)

	spinner := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(source))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Source:  source,
		Refresh: opts.refresh,
		Steps:   steps,
		Formats: opts.formats,
		Width:   opts.width,
		Height:  opts.height,
		Stroke:  opts.stroke,
		Logger:  logger,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d vertices, %d edges",
		result.Stats.VertexCount, result.Stats.EdgeCount))

	if result.CacheInfo.RenderHit {
		printDetail("served from cache")
	}

	for _, format := range opts.formats {
		path := outputPath(source, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// applyRenderDefaults fills unset render flags from config values.
func applyRenderDefaults(opts *renderOpts, width, height, stroke float64) {
	if opts.width == 0 {
		opts.width = width
	}
	if opts.height == 0 {
		opts.height = height
	}
	if opts.stroke == 0 {
		opts.stroke = stroke
	}
}

// parseFormats splits a comma-separated format list, defaulting to svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}

// outputPath derives the artifact path for a format. With an explicit output
// and a single format the output is used verbatim; with multiple formats it
// acts as a base path and the extension is swapped per format.
func outputPath(source, output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(source, filepath.Ext(source))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + "." + format
}
