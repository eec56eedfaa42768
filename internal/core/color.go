package core

import "fmt"

// Color is a 24-bit RGB value for one display cell.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for building a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors for game elements.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
)

// Darken subtracts step from every channel, stopping at zero.
func (c Color) Darken(step uint8) Color {
	return Color{
		R: SatSubU8(c.R, step),
		G: SatSubU8(c.G, step),
		B: SatSubU8(c.B, step),
	}
}

// Hex formats the color as #rrggbb for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SatAddU8 adds b to a, stopping at 255.
func SatAddU8(a, b uint8) uint8 {
	if a > 255-b {
		return 255
	}
	return a + b
}

// SatSubU8 subtracts b from a, stopping at 0.
func SatSubU8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}
