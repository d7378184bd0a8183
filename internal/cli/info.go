package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meshtools/wireview/pkg/session"
)

// newInfoCmd creates the info command, which parses a model and prints its
// statistics without producing any artifacts.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file.obj]",
		Short: "Parse a model and print its statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			sess := session.New()
			sess.SetSource(args[0])
			if err := sess.Load(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Parsed %d vertices", sess.VertexCount()))

			snap := sess.Snapshot()
			lo, hi := snap.Bounds()

			fmt.Println(StyleTitle.Render("Model"))
			printKeyValue("source", args[0])
			printKeyValue("vertices", formatCount(snap.VertexCount()))
			printKeyValue("edges", formatCount(snap.EdgeCount()))
			printKeyValue("min", formatPoint(lo))
			printKeyValue("max", formatPoint(hi))
			return nil
		},
	}
}

func formatPoint(p [3]float64) string {
	return "(" + formatCoord(p[0]) + ", " + formatCoord(p[1]) + ", " + formatCoord(p[2]) + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
