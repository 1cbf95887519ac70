// Package contour implements marching-squares extraction of zero-level
// isocontours from a dense scalar field into a graph.Graph: binary
// mask computation, per-edge zero-crossing points, and the directed
// adjacency (next/prev) that makes the extracted contours a graph of
// closed cycles (spec.md §4.3).
package contour

// Options configures an Extract call.
type Options struct {
	// Workers bounds the number of goroutines used for the read-only
	// binarization and point-interpolation phases. <= 1 runs serially.
	// Cycle adjacency (the marching-squares case table) always runs
	// single-threaded since it writes the graph's Next/Prev arrays,
	// which cycle discovery then reads (spec.md §5).
	Workers int

	// NaNTreatedAsPositive controls how binarization handles NaN
	// samples: true (default) maps NaN to binary=1, matching the
	// "implementation-defined but must be consistent" clause of
	// spec.md §4.3.
	NaNTreatedAsPositive bool
}

// DefaultOptions returns the reference configuration: serial
// extraction, NaN treated as positive.
func DefaultOptions() Options {
	return Options{Workers: 1, NaNTreatedAsPositive: true}
}

// Field is a dense W×H scalar field in row-major (x-major, matching
// the grid's [x][y] addressing used throughout this module) order.
type Field struct {
	Width, Height int
	Values        []float64 // Values[x*Height+y] = f(x, y)
}

// At returns the field's value at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Values[x*f.Height+y]
}

// binaryGrid is the derived sign mask: 0 if strictly negative, 1 if
// zero or positive (spec.md §3).
type binaryGrid struct {
	width, height int
	bits          []uint8
}

func (b *binaryGrid) at(x, y int) uint8 {
	return b.bits[x*b.height+y]
}

func (b *binaryGrid) set(x, y int, v uint8) {
	b.bits[x*b.height+y] = v
}

// cellConfig computes the 4-bit marching-squares configuration of cell
// (x,y): c = b(x,y)·1 + b(x,y+1)·2 + b(x+1,y+1)·4 + b(x+1,y)·8.
func (b *binaryGrid) cellConfig(x, y int) int {
	return int(b.at(x, y))*1 + int(b.at(x, y+1))*2 + int(b.at(x+1, y+1))*4 + int(b.at(x+1, y))*8
}
