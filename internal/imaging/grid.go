package imaging

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when grid rows do not all have the same length.
	ErrShapeMismatch = errors.New("grid rows have unequal length")

	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position outside grid bounds")
)

// Grid is a rectangular, row-major grid of samples representing one image.
//
// Row 0 is the top of the image. A Grid owns its samples: constructors copy
// their input and accessors return copies, so two grids never share storage.
// An empty grid has both dimensions zero.
type Grid struct {
	height int
	width  int
	pix    []Sample
}

// NewGrid builds a grid from rows of samples.
//
// Every row must have the same length, otherwise an error wrapping
// ErrShapeMismatch is returned. A nil or empty slice, or rows of length zero,
// yield the empty grid.
func NewGrid(rows [][]Sample) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		for i, row := range rows {
			if len(row) != 0 {
				return nil, fmt.Errorf("row %d has %d samples, want 0: %w", i, len(row), ErrShapeMismatch)
			}
		}
		return &Grid{}, nil
	}

	width := len(rows[0])
	pix := make([]Sample, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d samples, want %d: %w", i, len(row), width, ErrShapeMismatch)
		}
		pix = append(pix, row...)
	}

	return &Grid{height: len(rows), width: width, pix: pix}, nil
}

// MustGrid is like NewGrid but panics on a malformed shape. It is intended for
// fixtures whose shape is known to be valid.
func MustGrid(rows [][]Sample) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// newUniformGrid returns a height x width grid filled with s.
func newUniformGrid(height, width int, s Sample) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("negative dimensions %dx%d: %w", width, height, ErrShapeMismatch)
	}
	if height == 0 || width == 0 {
		return &Grid{}, nil
	}
	pix := make([]Sample, height*width)
	for i := range pix {
		pix[i] = s
	}
	return &Grid{height: height, width: width, pix: pix}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Len returns the number of samples, Height() * Width().
func (g *Grid) Len() int { return len(g.pix) }

// Empty reports whether the grid holds no samples.
func (g *Grid) Empty() bool { return len(g.pix) == 0 }

// At returns the sample at (row, col).
//
// Coordinates are 0-based with (0, 0) at the top-left. Positions outside
// the grid return an error wrapping ErrOutOfBounds.
func (g *Grid) At(row, col int) (Sample, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Sample{}, fmt.Errorf("(%d,%d) in %dx%d grid: %w", row, col, g.height, g.width, ErrOutOfBounds)
	}
	return g.pix[row*g.width+col], nil
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Sample {
	rows := make([][]Sample, g.height)
	for y := range rows {
		rows[y] = make([]Sample, g.width)
		copy(rows[y], g.pix[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]Sample, len(g.pix))
	copy(pix, g.pix)
	return &Grid{height: g.height, width: g.width, pix: pix}
}

// Equal reports whether both grids have the same shape and samples.
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// at reads without bounds checking; callers stay inside the grid.
func (g *Grid) at(y, x int) Sample {
	return g.pix[y*g.width+x]
}

func (g *Grid) set(y, x int, s Sample) {
	g.pix[y*g.width+x] = s
}
