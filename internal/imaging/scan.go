package imaging

import (
	"github.com/anthonynsimon/bild/parallel"
)

// ScanForMatches returns a new grid in which every cell that equals its
// right-hand or lower neighbor, together with that neighbor, is set to White.
// All other cells keep their color.
//
// The result starts as a copy of g and only the copy is written. Every
// comparison reads g, never the result, so a cell already whitened can still
// match its other neighbors by its original color. Whitening does not
// propagate beyond direct neighbors.
//
// g is not modified. An empty grid yields an empty grid.
func (g *Grid) ScanForMatches() *Grid {
	out := g.Clone()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cur := g.at(y, x)

			// Vertical
			if y+1 < g.height && cur.Equal(g.at(y+1, x)) {
				out.set(y, x, White)
				out.set(y+1, x, White)
			}

			// Horizontal
			if x+1 < g.width && cur.Equal(g.at(y, x+1)) {
				out.set(y, x, White)
				out.set(y, x+1, White)
			}
		}
	}

	return out
}

// ScanForMatchesParallel returns the same grid as ScanForMatches, processing
// bands of rows concurrently.
//
// Each band writes only its own rows of the result. A cell is whitened when it
// equals any of its four direct neighbors in g, which is exactly the set of
// cells ScanForMatches whitens as the upper/left or lower/right member of a
// pair.
func (g *Grid) ScanForMatchesParallel() *Grid {
	out := g.Clone()
	if g.Empty() {
		return out
	}

	parallel.Line(g.height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.width; x++ {
				if g.matched(y, x) {
					out.set(y, x, White)
				}
			}
		}
	})

	return out
}

// MatchCount returns the number of distinct cells that take part in at least
// one horizontal or vertical match.
func (g *Grid) MatchCount() int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.matched(y, x) {
				n++
			}
		}
	}
	return n
}

// matched reports whether (y, x) equals one of its four direct neighbors.
func (g *Grid) matched(y, x int) bool {
	cur := g.at(y, x)
	switch {
	case y > 0 && cur.Equal(g.at(y-1, x)):
		return true
	case y+1 < g.height && cur.Equal(g.at(y+1, x)):
		return true
	case x > 0 && cur.Equal(g.at(y, x-1)):
		return true
	case x+1 < g.width && cur.Equal(g.at(y, x+1)):
		return true
	}
	return false
}
