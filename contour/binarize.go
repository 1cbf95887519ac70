package contour

import (
	"math"
	"sync"
)

// binarize computes binary[x,y] = 0 if grid[x,y] < 0, else 1 (spec.md
// §4.3(a)). Zero is positive by convention; NaN maps to positive when
// opts.NaNTreatedAsPositive is true.
//
// Each column x writes only its own binary[x,·] slots, so splitting the
// work by column range is safe to parallelize across opts.Workers
// goroutines with no synchronization beyond the final Wait — spec.md
// §5 permits this because output slots are disjoint and reads of grid
// are read-only.
func binarize(f *Field, opts Options) *binaryGrid {
	b := &binaryGrid{
		width:  f.Width,
		height: f.Height,
		bits:   make([]uint8, f.Width*f.Height),
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > f.Width {
		workers = f.Width
	}

	var wg sync.WaitGroup
	chunk := (f.Width + workers - 1) / workers
	for start := 0; start < f.Width; start += chunk {
		end := start + chunk
		if end > f.Width {
			end = f.Width
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for x := start; x < end; x++ {
				for y := 0; y < f.Height; y++ {
					v := f.At(x, y)
					var bit uint8 = 1
					if math.IsNaN(v) {
						if !opts.NaNTreatedAsPositive {
							bit = 0
						}
					} else if v < 0 {
						bit = 0
					}
					b.set(x, y, bit)
				}
			}
		}(start, end)
	}
	wg.Wait()

	return b
}
