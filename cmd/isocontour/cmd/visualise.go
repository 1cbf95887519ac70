package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanrabe/isocontour/fieldio"
	"github.com/yanrabe/isocontour/graphio"
)

// visualiseCmd implements `isocontour visualise NAME {scalar|contour|cycle}`:
// a textual stand-in for the reference tool's on-screen window (out of
// scope, spec.md §1's Non-goals).
var visualiseCmd = &cobra.Command{
	Use:   "visualise NAME {scalar|contour|cycle}",
	Short: "print a textual summary in place of an on-screen view",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, kind := args[0], args[1]

		switch kind {
		case "scalar":
			f, err := fieldio.Load(fmt.Sprintf("data/fields/%s.npy", name))
			if err != nil {
				return err
			}
			fmt.Printf("field %s: %d x %d cells, %d samples\n", name, f.Width-1, f.Height-1, len(f.Values))
		case "contour", "cycle":
			g, err := graphio.Load(fmt.Sprintf("data/np/%s_%s.npz", name, kind))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s: %d edges, %d cycles (%d alive)\n", kind, name, g.EdgeCount(), len(g.Cycles), g.AliveCycles())
		default:
			return fmt.Errorf("visualise: kind must be 'scalar', 'contour', or 'cycle', got %q", kind)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(visualiseCmd)
}
