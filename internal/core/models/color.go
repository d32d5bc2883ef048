package models

import "fmt"

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Blend mixes two colors channel by channel, weighting c by w1 and o by w2.
// Results are truncated toward zero. Both weights zero yields c unchanged.
func (c Color) Blend(o Color, w1, w2 float64) Color {
	total := w1 + w2
	if total == 0 {
		return c
	}
	mix := func(a, b uint8) uint8 {
		return uint8((float64(a)*w1 + float64(b)*w2) / total)
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}
