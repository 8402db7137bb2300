package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textFace is the fixed bitmap face used for headless text measurement.
// Real rasterization is out of scope; the face only has to produce stable
// metrics so text-bearing render objects can participate in layout.
var textFace font.Face = basicfont.Face7x13

// MeasureText returns the logical size of a single line of text.
func MeasureText(content string) Size {
	if content == "" {
		return Size{}
	}
	advance := font.MeasureString(textFace, content)
	metrics := textFace.Metrics()
	height := metrics.Ascent + metrics.Descent
	return Size{
		Width:  fixedToFloat(advance),
		Height: fixedToFloat(height),
	}
}

// TextBaseline returns the distance from the top of a measured line to
// its alphabetic baseline.
func TextBaseline() float64 {
	return fixedToFloat(textFace.Metrics().Ascent)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
