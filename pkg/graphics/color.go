package graphics

// Color is a 32-bit ARGB color.
type Color struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// Common colors used by the built-in widgets.
var (
	Transparent = Color{}
	Black       = Color{A: 0xff}
	White       = Color{A: 0xff, R: 0xff, G: 0xff, B: 0xff}
	Gray        = Color{A: 0xff, R: 0x88, G: 0x88, B: 0x88}
	LightGray   = Color{A: 0xff, R: 0xdd, G: 0xdd, B: 0xdd}
)

// IsTransparent returns true if the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A == 0
}
