package graphics

import "testing"

func TestPaintEq_Solid(t *testing.T) {
	a := SolidPaint(ColorRed)
	b := SolidPaint(ColorRed)
	if !a.Eq(b) {
		t.Error("expected equal solid paints")
	}
	c := SolidPaint(ColorBlue)
	if a.Eq(c) {
		t.Error("expected different solid paints to be unequal")
	}
}

func TestPaintEq_KindMismatch(t *testing.T) {
	solid := SolidPaint(ColorRed)
	gradient := LinearGradientPaint(GradientVertical, ColorRed, ColorRed)
	if solid.Eq(gradient) {
		t.Error("expected solid and gradient paints to be unequal")
	}
}

func TestPaintEq_Gradient(t *testing.T) {
	a := LinearGradientPaint(GradientVertical, ColorWhite, ColorBlack)
	b := LinearGradientPaint(GradientVertical, ColorWhite, ColorBlack)
	if !a.Eq(b) {
		t.Error("expected equal gradient paints")
	}
	if a.Eq(LinearGradientPaint(GradientHorizontal, ColorWhite, ColorBlack)) {
		t.Error("expected mode mismatch to be unequal")
	}
	if a.Eq(LinearGradientPaint(GradientVertical, ColorWhite, ColorGray)) {
		t.Error("expected end color mismatch to be unequal")
	}
	if a.Eq(LinearGradientPaint(GradientVertical, ColorGray, ColorBlack)) {
		t.Error("expected start color mismatch to be unequal")
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	r, g, b, a := c.RGBA()
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Errorf("unexpected channels %02x %02x %02x %02x", r, g, b, a)
	}
	if got := c.WithAlpha8(0xFF); got.AlphaByte() != 0xFF {
		t.Errorf("expected alpha 0xFF, got %02x", got.AlphaByte())
	}
}
