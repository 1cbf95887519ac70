package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanrabe/isocontour/graphio"
	"github.com/yanrabe/isocontour/svgexport"
)

// tosvgCmd implements `isocontour tosvg NAME {contour|cycle}`.
var tosvgCmd = &cobra.Command{
	Use:   "tosvg NAME {contour|cycle}",
	Short: "render a saved archive's cycles to SVG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, kind := args[0], args[1]
		if kind != "contour" && kind != "cycle" {
			return fmt.Errorf("tosvg: kind must be 'contour' or 'cycle', got %q", kind)
		}

		archivePath := fmt.Sprintf("data/np/%s_%s.npz", name, kind)
		g, err := graphio.Load(archivePath)
		if err != nil {
			return err
		}

		outPath := fmt.Sprintf("data/svg_files/%s_%s.svg", name, kind)
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("tosvg: %w", err)
		}
		defer out.Close()

		if err := svgexport.Write(out, g); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tosvgCmd)
}
