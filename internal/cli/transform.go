package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshtools/wireview/pkg/pipeline"
	"github.com/meshtools/wireview/pkg/render"
)

// newTransformCmd creates the transform command, which applies move, rotate,
// and scale steps to a model and emits the resulting geometry as JSON.
//
// Steps run in the order given on the command line:
//
//	wireview transform cube.obj -s rotate:z:45 -s move:x:2 -o out.json
func newTransformCmd(configPath *string) *cobra.Command {
	var (
		output string
		steps  []string
	)

	cmd := &cobra.Command{
		Use:   "transform [file.obj]",
		Short: "Apply transformations and emit the geometry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if len(steps) == 0 {
				printWarning("no steps given, emitting the model unchanged")
			}

			parsed := make([]pipeline.Step, 0, len(steps))
			for _, spec := range steps {
				step, err := pipeline.ParseStep(spec)
				if err != nil {
					return err
				}
				parsed = append(parsed, step)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			c := openCache(ctx, cfg, logger)
			defer c.Close()

			runner := pipeline.NewRunner(c, nil, logger)
			result, err := runner.Execute(ctx, pipeline.Options{
				Source:  args[0],
				Steps:   parsed,
				Formats: []string{render.FormatJSON},
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			data := result.Artifacts[render.FormatJSON]
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Applied %d steps", len(parsed))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "transformation step kind:axis:value (repeatable)")

	return cmd
}
