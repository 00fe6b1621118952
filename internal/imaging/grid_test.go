package imaging

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// s is shorthand for NewSample in grid fixtures.
func s(r, g, b uint8) Sample {
	return NewSample(r, g, b)
}

func TestNewGrid(t *testing.T) {
	rows := [][]Sample{
		{s(1, 1, 1), s(2, 2, 2), s(3, 3, 3)},
		{s(4, 4, 4), s(5, 5, 5), s(6, 6, 6)},
	}

	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if g.Height() != 2 || g.Width() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x2", g.Width(), g.Height())
	}
	if g.Len() != 6 {
		t.Errorf("Len: got %d, want 6", g.Len())
	}
	if g.Empty() {
		t.Error("Empty: got true, want false")
	}

	if diff := cmp.Diff(rows, g.Rows()); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGrid_Empty(t *testing.T) {
	tests := []struct {
		name string
		rows [][]Sample
	}{
		{"nil", nil},
		{"no rows", [][]Sample{}},
		{"zero-width rows", [][]Sample{{}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows)
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			if !g.Empty() || g.Height() != 0 || g.Width() != 0 {
				t.Errorf("got %dx%d grid, want empty", g.Width(), g.Height())
			}
		})
	}
}

func TestNewGrid_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		rows [][]Sample
	}{
		{"short second row", [][]Sample{{s(1, 1, 1), s(2, 2, 2)}, {s(3, 3, 3)}}},
		{"long third row", [][]Sample{{s(1, 1, 1)}, {s(2, 2, 2)}, {s(3, 3, 3), s(4, 4, 4)}}},
		{"empty first row", [][]Sample{{}, {s(1, 1, 1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows)
			if !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("got %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestNewGrid_CopiesInput(t *testing.T) {
	rows := [][]Sample{{s(1, 1, 1), s(2, 2, 2)}}
	g := MustGrid(rows)

	rows[0][0] = s(9, 9, 9)

	got, _ := g.At(0, 0)
	if got != s(1, 1, 1) {
		t.Errorf("grid aliases caller rows: got %v, want (1,1,1)", got)
	}
}

func TestMustGrid_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGrid should panic on a ragged grid")
		}
	}()
	MustGrid([][]Sample{{s(1, 1, 1)}, {}})
}

func TestUniformGrid(t *testing.T) {
	g, err := newUniformGrid(2, 4, s(7, 8, 9))
	if err != nil {
		t.Fatalf("newUniformGrid failed: %v", err)
	}
	if g.Height() != 2 || g.Width() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x2", g.Width(), g.Height())
	}
	for _, row := range g.Rows() {
		for _, c := range row {
			if c != s(7, 8, 9) {
				t.Fatalf("got %v, want (7,8,9)", c)
			}
		}
	}

	if _, err := newUniformGrid(-1, 3, White); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("negative height: got %v, want ErrShapeMismatch", err)
	}

	empty, err := newUniformGrid(0, 5, White)
	if err != nil || !empty.Empty() {
		t.Errorf("zero height: got %v, %v; want empty grid", empty, err)
	}
}

func TestGrid_At(t *testing.T) {
	g := MustGrid([][]Sample{
		{s(1, 0, 0), s(2, 0, 0)},
		{s(3, 0, 0), s(4, 0, 0)},
		{s(5, 0, 0), s(6, 0, 0)},
	})

	tests := []struct {
		row, col int
		want     Sample
	}{
		{0, 0, s(1, 0, 0)},
		{0, 1, s(2, 0, 0)},
		{1, 0, s(3, 0, 0)},
		{2, 1, s(6, 0, 0)},
	}

	for _, tt := range tests {
		got, err := g.At(tt.row, tt.col)
		if err != nil {
			t.Fatalf("At(%d,%d) failed: %v", tt.row, tt.col, err)
		}
		if got != tt.want {
			t.Errorf("At(%d,%d): got %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestGrid_At_OutOfBounds(t *testing.T) {
	g := MustGrid([][]Sample{{s(1, 1, 1), s(2, 2, 2)}})

	positions := []struct {
		row, col int
	}{
		{-1, 0},
		{0, -1},
		{1, 0},
		{0, 2},
		{5, 5},
	}

	for _, p := range positions {
		if _, err := g.At(p.row, p.col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d,%d): got %v, want ErrOutOfBounds", p.row, p.col, err)
		}
	}

	empty := MustGrid(nil)
	if _, err := empty.At(0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("At on empty grid: got %v, want ErrOutOfBounds", err)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := MustGrid([][]Sample{{s(1, 1, 1), s(2, 2, 2)}})
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}

	c.set(0, 0, White)
	if got, _ := g.At(0, 0); got != s(1, 1, 1) {
		t.Errorf("writing the clone changed the original: got %v", got)
	}
}

func TestGrid_RowsIsACopy(t *testing.T) {
	g := MustGrid([][]Sample{{s(1, 1, 1)}})
	rows := g.Rows()
	rows[0][0] = White

	if got, _ := g.At(0, 0); got != s(1, 1, 1) {
		t.Errorf("Rows aliases grid storage: got %v", got)
	}
}

func TestGrid_Equal(t *testing.T) {
	a := MustGrid([][]Sample{{s(1, 1, 1), s(2, 2, 2)}})
	b := MustGrid([][]Sample{{s(1, 1, 1), s(2, 2, 2)}})
	c := MustGrid([][]Sample{{s(1, 1, 1)}, {s(2, 2, 2)}})
	d := MustGrid([][]Sample{{s(1, 1, 1), s(2, 2, 3)}})

	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}
	if a.Equal(c) {
		t.Error("grids with different shapes should not be equal")
	}
	if a.Equal(d) {
		t.Error("grids with different samples should not be equal")
	}
}
