// Package imaging holds the sample grid and the neighbor-matching scan, plus
// the glue that moves grids in and out of image files.
//
// # Samples and Grids
//
// A Sample is one pixel's 8-bit RGB value. A Grid is a rectangular, row-major
// collection of samples with (0, 0) at the top-left:
//   - row: vertical position (0 = topmost row)
//   - col: horizontal position (0 = leftmost column)
//
// Grids are values in practice. Constructors copy their input, and no
// operation modifies a grid in place.
//
// # Scan
//
// ScanForMatches compares every cell with its right-hand and lower neighbor.
// Each equal pair is whitened in a fresh output grid. Comparisons always read
// the original grid, never the output. ScanForMatchesParallel produces the
// same result using row bands processed concurrently.
//
// # Error Handling
//
// Malformed input is reported with two sentinel errors, wrapped with context:
//   - ErrShapeMismatch: rows of unequal length passed to NewGrid
//   - ErrOutOfBounds: a position outside the grid passed to At
//
// Use errors.Is to test for them. The scan itself cannot fail.
//
// # Image I/O
//
// LoadGrid and GridFromImage turn decoded images into grids, keeping the exact
// 8-bit RGB values and discarding alpha. SaveGrid and EncodeGridPNG write them
// back. ImageCache is safe for concurrent use.
package imaging
