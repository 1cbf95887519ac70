// Package svgexport renders a stitched graph's cycles as SVG paths,
// one <path> per non-tombstone cycle, straight line segments only
// (spec.md §6).
package svgexport

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/yanrabe/isocontour/graph"
	"github.com/yanrabe/isocontour/polyline"
)

// canvasSize is the side length, in SVG user units, of the square
// canvas the normalized [0,1]²-ish coordinate system is scaled into.
const canvasSize = 512

// Write renders every non-tombstone cycle in g as one <path> element,
// with explicit M/L commands (one line segment per edge), scaled from
// the graph's normalized Cartesian frame (spec.md §3) into a
// canvasSize x canvasSize viewport.
func Write(w io.Writer, g *graph.Graph) error {
	canvas := svg.New(w)
	canvas.Start(canvasSize, canvasSize)
	defer canvas.End()

	for _, line := range polyline.Emit(g) {
		d := pathData(line)
		canvas.Path(d, `fill="none"`, `stroke="black"`, `stroke-width="1"`)
	}

	return nil
}

func pathData(line polyline.Polyline) string {
	d := ""
	for i, p := range line.Points {
		x, y := p.X*canvasSize, p.Y*canvasSize
		if i == 0 {
			d += fmt.Sprintf("M%.4f,%.4f ", x, y)
		} else {
			d += fmt.Sprintf("L%.4f,%.4f ", x, y)
		}
	}
	return d
}
