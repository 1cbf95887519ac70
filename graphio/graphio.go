// Package graphio persists and restores a graph.Graph as a compressed
// multi-array archive — the Go-side equivalent of NumPy's `.npz`
// format, which is itself a zip of named `.npy` entries (spec.md §6,
// R2's round-trip requirement).
package graphio

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio"

	"github.com/yanrabe/isocontour/graph"
)

const (
	entryPoints     = "points.npy"
	entryNextEdge   = "next_edge.npy"
	entryPrevEdge   = "previous_edge.npy"
	entryCycleIndex = "cycle_index.npy"
	entryCycles     = "cycles.npy"
)

// Save writes g to path as a zip archive of named .npy arrays:
// points [E,2]float64, previous_edge/next_edge/cycle_index [E]int64,
// cycles [K,2]int64 (start, length).
func Save(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	points := make([]float64, 0, len(g.Points)*2)
	for _, p := range g.Points {
		points = append(points, p.X, p.Y)
	}
	if err := writeEntry(zw, entryPoints, points); err != nil {
		return err
	}
	if err := writeEntry(zw, entryNextEdge, toInt64(g.Next)); err != nil {
		return err
	}
	if err := writeEntry(zw, entryPrevEdge, toInt64(g.Prev)); err != nil {
		return err
	}
	if err := writeEntry(zw, entryCycleIndex, toInt64(g.CycleIndex)); err != nil {
		return err
	}

	cycles := make([]int64, 0, len(g.Cycles)*2)
	for _, c := range g.Cycles {
		cycles = append(cycles, int64(c.Start), int64(c.Length))
	}
	if err := writeEntry(zw, entryCycles, cycles); err != nil {
		return err
	}

	return zw.Close()
}

// Load reads path and reconstructs the graph.Graph it encodes. The
// archive does not record the originating grid shape, so the returned
// graph's Width and Height are zero.
func Load(path string) (*graph.Graph, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer r.Close()

	var flatPoints []float64
	if err := readEntry(&r.Reader, entryPoints, &flatPoints); err != nil {
		return nil, err
	}
	var next, prev, cycleIndex []int64
	if err := readEntry(&r.Reader, entryNextEdge, &next); err != nil {
		return nil, err
	}
	if err := readEntry(&r.Reader, entryPrevEdge, &prev); err != nil {
		return nil, err
	}
	if err := readEntry(&r.Reader, entryCycleIndex, &cycleIndex); err != nil {
		return nil, err
	}
	var flatCycles []int64
	if err := readEntry(&r.Reader, entryCycles, &flatCycles); err != nil {
		return nil, err
	}

	g := &graph.Graph{
		Points:     make([]graph.Point, len(flatPoints)/2),
		Next:       fromInt64(next),
		Prev:       fromInt64(prev),
		CycleIndex: fromInt64(cycleIndex),
	}
	for i := range g.Points {
		g.Points[i] = graph.Point{X: flatPoints[2*i], Y: flatPoints[2*i+1]}
	}
	g.Cycles = make([]graph.Cycle, len(flatCycles)/2)
	for i := range g.Cycles {
		g.Cycles[i] = graph.Cycle{Start: int(flatCycles[2*i]), Length: int(flatCycles[2*i+1])}
	}

	return g, nil
}

func toInt64(xs []graph.EdgeID) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = int64(x)
	}
	return out
}

func fromInt64(xs []int64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}

func writeEntry(zw *zip.Writer, name string, data interface{}) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("graphio: creating %s: %w", name, err)
	}
	if err := npyio.Write(w, data); err != nil {
		return fmt.Errorf("graphio: encoding %s: %w", name, err)
	}
	return nil
}

func readEntry(zr *zip.Reader, name string, ptr interface{}) error {
	for _, file := range zr.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("graphio: opening %s: %w", name, err)
		}
		defer rc.Close()

		buf, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("graphio: reading %s: %w", name, err)
		}
		reader, err := npyio.NewReader(bytes.NewReader(buf))
		if err != nil {
			return fmt.Errorf("graphio: decoding %s: %w", name, err)
		}
		if err := reader.Read(ptr); err != nil {
			return fmt.Errorf("graphio: decoding %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("graphio: archive missing entry %s", name)
}
