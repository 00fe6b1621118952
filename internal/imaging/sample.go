package imaging

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Sample is one pixel's color as three 8-bit channels.
//
// Sample is a plain value: it is copied freely and has no setters. Because the
// struct is comparable, s == t and s.Equal(t) always agree.
type Sample struct {
	r, g, b uint8
}

// White is the color written over every matched cell.
var White = Sample{255, 255, 255}

// NewSample returns the sample with the given channels. No normalization is
// performed.
func NewSample(r, g, b uint8) Sample {
	return Sample{r: r, g: g, b: b}
}

// SampleFromColor converts any color.Color to a Sample using its
// non-premultiplied 8-bit channels. Alpha is discarded.
func SampleFromColor(c color.Color) Sample {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Sample{r: n.R, g: n.G, b: n.B}
}

// ParseHexSample parses "#RRGGBB" (the leading '#' is optional) or the short
// form "#RGB".
func ParseHexSample(hex string) (Sample, error) {
	if len(hex) == 0 {
		return Sample{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) != 7 && len(hex) != 4 {
		return Sample{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Sample{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Sample{r: r, g: g, b: b}, nil
}

// Red returns the red channel.
func (s Sample) Red() uint8 { return s.r }

// Green returns the green channel.
func (s Sample) Green() uint8 { return s.g }

// Blue returns the blue channel.
func (s Sample) Blue() uint8 { return s.b }

// Equal reports whether all three channels match exactly.
func (s Sample) Equal(other Sample) bool {
	return s.r == other.r && s.g == other.g && s.b == other.b
}

// RGBA implements color.Color. The sample is always fully opaque.
func (s Sample) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: s.r, G: s.g, B: s.b, A: 0xff}.RGBA()
}

// Hex returns the sample as "#RRGGBB".
func (s Sample) Hex() string {
	return strings.ToUpper(s.toColorful().Hex())
}

// String formats the sample as "(r,g,b)".
func (s Sample) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.r, s.g, s.b)
}

func (s Sample) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(s.r) / 255.0,
		G: float64(s.g) / 255.0,
		B: float64(s.b) / 255.0,
	}
}
