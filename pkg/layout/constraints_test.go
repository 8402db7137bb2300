package layout

import (
	"testing"

	"github.com/go-drift/viewproxy/pkg/graphics"
)

func TestTightConstraints(t *testing.T) {
	c := Tight(graphics.Size{Width: 100, Height: 50})
	if !c.IsTight() {
		t.Error("expected tight constraints")
	}
	got := c.Constrain(graphics.Size{Width: 999, Height: 1})
	if got.Width != 100 || got.Height != 50 {
		t.Errorf("expected 100x50, got %vx%v", got.Width, got.Height)
	}
}

func TestLooseConstraints(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 50})
	if c.IsTight() {
		t.Error("expected loose constraints")
	}
	got := c.Constrain(graphics.Size{Width: 30, Height: 70})
	if got.Width != 30 || got.Height != 50 {
		t.Errorf("expected 30x50, got %vx%v", got.Width, got.Height)
	}
}

func TestLoosenKeepsMaximums(t *testing.T) {
	c := Tight(graphics.Size{Width: 100, Height: 50}).Loosen()
	if c.MinWidth != 0 || c.MinHeight != 0 {
		t.Errorf("expected zero minimums, got %v/%v", c.MinWidth, c.MinHeight)
	}
	if c.MaxWidth != 100 || c.MaxHeight != 50 {
		t.Errorf("expected maximums preserved, got %v/%v", c.MaxWidth, c.MaxHeight)
	}
}

func TestConstrainClampsBelowMinimum(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 20, MaxHeight: 100}
	got := c.Constrain(graphics.Size{Width: 5, Height: 5})
	if got.Width != 10 || got.Height != 20 {
		t.Errorf("expected clamp up to 10x20, got %vx%v", got.Width, got.Height)
	}
}
