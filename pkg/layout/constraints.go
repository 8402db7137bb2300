package layout

import (
	"math"

	"github.com/go-drift/viewproxy/pkg/graphics"
)

// Constraints describe the min/max box a parent allows a child to occupy.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force an exact size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// Unbounded returns constraints with no maximum in either dimension.
func Unbounded() Constraints {
	return Constraints{
		MaxWidth:  math.Inf(1),
		MaxHeight: math.Inf(1),
	}
}

// IsTight returns true if the constraints permit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain clamps a size to the constraint box.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosen returns the constraints with minimums removed.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if max > 0 && value > max {
		return max
	}
	return value
}
