package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "isocontour",
	Short: "extract and stitch isocontours from a scalar field",
	Long: `isocontour loads a dense scalar field from a .npy file, extracts
its zero-level contour as a directed edge graph, stitches the
resulting cycles into a single closed curve, and can export either
stage to SVG or a textual summary.`,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
