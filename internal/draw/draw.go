// Package draw renders colored half-block graphics and text to ANSI terminals.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is a 24-bit RGB color, 0xRRGGBB.
type Color uint32

// Channels splits the color into red, green and blue.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)
