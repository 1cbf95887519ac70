// Package fieldio loads the dense scalar grids contour extraction
// operates on from NumPy-format `.npy` files, the interchange format
// spec.md §6 names for field input.
package fieldio

import (
	"errors"
	"fmt"
	"os"

	"github.com/sbinet/npyio"

	"github.com/yanrabe/isocontour/contour"
)

// Sentinel errors for a malformed field file. A missing file is
// reported by Load instead, wrapping os.ErrNotExist so callers can
// match InputNotFound (spec.md §7) with errors.Is.
var (
	// ErrNotNpy indicates the file is not a recognizable NumPy array.
	ErrNotNpy = errors.New("fieldio: not a valid .npy file")

	// ErrUnsupportedDtype indicates the array's element type is not float64.
	ErrUnsupportedDtype = errors.New("fieldio: only float64 arrays are supported")

	// ErrShape indicates the array is not exactly two-dimensional.
	ErrShape = errors.New("fieldio: expected a 2D array")
)

// Load reads path as a `.npy` file and returns a *contour.Field whose
// Width and Height match the array's two dimensions and whose Values
// holds the row-major float64 payload. Missing files are reported by
// wrapping os.ErrNotExist (spec.md §7's InputNotFound).
func Load(path string) (*contour.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fieldio: %w", err)
	}
	defer f.Close()

	width, height, values, err := LoadGrid(f)
	if err != nil {
		return nil, err
	}
	return &contour.Field{Width: width, Height: height, Values: values}, nil
}

// LoadGrid reads a 2D float64 `.npy` payload from r and returns its
// dimensions and flat row-major values, for callers that want the raw
// grid without constructing a contour.Field.
func LoadGrid(r interface {
	Read([]byte) (int, error)
	Seek(int64, int) (int64, error)
}) (width, height int, values []float64, err error) {
	reader, err := npyio.NewReader(r)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %v", ErrNotNpy, err)
	}

	shape := reader.Header.Descr.Shape
	if len(shape) != 2 {
		return 0, 0, nil, ErrShape
	}
	if reader.Header.Descr.Type != "<f8" && reader.Header.Descr.Type != "f8" {
		return 0, 0, nil, ErrUnsupportedDtype
	}

	width, height = shape[0], shape[1]
	flat := make([]float64, width*height)
	if err := reader.Read(&flat); err != nil {
		return 0, 0, nil, fmt.Errorf("fieldio: reading array: %w", err)
	}

	return width, height, flat, nil
}
