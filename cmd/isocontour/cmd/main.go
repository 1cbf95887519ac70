package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yanrabe/isocontour/config"
	"github.com/yanrabe/isocontour/contour"
	"github.com/yanrabe/isocontour/cycle"
	"github.com/yanrabe/isocontour/fieldio"
	"github.com/yanrabe/isocontour/graphio"
	"github.com/yanrabe/isocontour/stitch"
)

var mainCfgPath string

// mainCmd implements `isocontour main NAME`: load data/fields/NAME.npy,
// extract, save NAME_contour, stitch, save NAME_cycle.
var mainCmd = &cobra.Command{
	Use:   "main NAME",
	Short: "extract and stitch the named field",
	Long: `Load data/fields/NAME.npy, extract its contour graph, save it to
data/np/NAME_contour.npz, stitch the cycles into one, and save the
result to data/np/NAME_cycle.npz.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg := config.Default()
		if mainCfgPath != "" {
			loaded, err := config.Load(mainCfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		fieldPath := fmt.Sprintf("data/fields/%s.npy", name)
		f, err := fieldio.Load(fieldPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("the file containing the scalar field does not exist; please put it in data/fields/%s.npy", name)
			}
			return err
		}

		opts := contour.Options{Workers: runtime.GOMAXPROCS(0), NaNTreatedAsPositive: cfg.NaNTreatedAsPositive()}
		g, err := contour.Extract(f, opts)
		if err != nil {
			return err
		}

		cycle.Discover(g, f.Width, f.Height)

		contourPath := fmt.Sprintf("data/np/%s_contour.npz", name)
		if err := graphio.Save(contourPath, g); err != nil {
			return err
		}

		if err := stitch.StitchAll(g, cfg.StitchOptions()); err != nil {
			return err
		}

		cyclePath := fmt.Sprintf("data/np/%s_cycle.npz", name)
		return graphio.Save(cyclePath, g)
	},
}

func init() {
	RootCmd.AddCommand(mainCmd)
	mainCmd.Flags().StringVar(&mainCfgPath, "config", "", "YAML build settings (defaults if unset)")
}
