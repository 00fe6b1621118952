package imaging

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one sample in several representations.
type ColorResult struct {
	Hex     string   `json:"hex"`      // Hex format "#RRGGBB"
	RGB     RGBColor `json:"rgb"`      // RGB components
	HSL     HSLColor `json:"hsl"`      // HSL representation
	IsWhite bool     `json:"is_white"` // Whether the sample equals the match color

	// Matches is set by CompareColor: whether the sample equals the expected
	// color exactly. Nil when no comparison was requested.
	Matches *bool `json:"matches,omitempty"`
}

// SampleColor reports the color of the cell at (row, col).
//
// Parameters:
//   - g: The grid to sample from.
//   - row: Row index (0-based, 0 = top row).
//   - col: Column index (0-based, 0 = leftmost column).
//
// Returns:
//   - *ColorResult: The color at (row, col) as hex, RGB and HSL.
//   - error: Non-nil if the position is outside the grid.
//
// # Errors
//
//   - Returns an error wrapping ErrOutOfBounds for any position outside
//     0 <= row < Height(), 0 <= col < Width()
func SampleColor(g *Grid, row, col int) (*ColorResult, error) {
	s, err := g.At(row, col)
	if err != nil {
		return nil, err
	}
	return describe(s), nil
}

// CompareColor samples the cell at (row, col) like SampleColor and also
// reports whether it equals the color given as hex ("#RRGGBB" or "#RGB").
//
// # Errors
//
//   - Returns an error wrapping ErrOutOfBounds for positions outside the grid
//   - Returns error if expected is not a valid hex color
func CompareColor(g *Grid, row, col int, expected string) (*ColorResult, error) {
	want, err := ParseHexSample(expected)
	if err != nil {
		return nil, err
	}
	got, err := g.At(row, col)
	if err != nil {
		return nil, err
	}
	result := describe(got)
	matches := got.Equal(want)
	result.Matches = &matches
	return result, nil
}

// describe builds a ColorResult for s. HSL values are truncated to whole
// degrees and percentages.
func describe(s Sample) *ColorResult {
	h, sat, l := s.toColorful().Hsl()
	return &ColorResult{
		Hex:     s.Hex(),
		RGB:     RGBColor{R: s.r, G: s.g, B: s.b},
		HSL:     HSLColor{H: int(h), S: int(sat * 100), L: int(l * 100)},
		IsWhite: s == White,
	}
}
