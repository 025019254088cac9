package graphics

import (
	"fmt"
	"strings"
)

// namedColors follows the CSS named-color table for the handful of names
// widget code actually uses. Lookup is case-insensitive.
var namedColors = map[string]Color{
	"black":       ColorBlack,
	"white":       ColorWhite,
	"gray":        ColorGray,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"transparent": ColorTransparent,
	"yellow":      ColorYellow,
}

// ParseColor parses CSS-like color formats:
// #rgb, #rrggbb, rgb(r,g,b), rgba(r,g,b,a),
// rgb(r%,g%,b%), rgba(r%,g%,b%,a%) and named colors.
// Unrecognized input yields transparent rather than an error, so a bad
// color in a theme renders as nothing instead of failing the build.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)

	var r, g, b, a int

	// #rgb is shorthand for #rrggbb
	if len(s) == 4 && s[0] == '#' {
		if n, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err == nil && n == 3 {
			return RGB(uint8(r|r<<4), uint8(g|g<<4), uint8(b|b<<4))
		}
	}
	if len(s) == 7 && s[0] == '#' {
		if n, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b); err == nil && n == 3 {
			return RGB(uint8(r), uint8(g), uint8(b))
		}
	}
	if n, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err == nil && n == 3 {
		return RGB(uint8(r), uint8(g), uint8(b))
	}
	if n, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%d)", &r, &g, &b, &a); err == nil && n == 4 {
		return RGBA8(uint8(r), uint8(g), uint8(b), uint8(a))
	}
	var fr, fg, fb float64
	fa := 100.0
	if n, err := fmt.Sscanf(s, "rgb(%f%%,%f%%,%f%%)", &fr, &fg, &fb); err == nil && n == 3 {
		return RGBA8(uint8(fr*2.55), uint8(fg*2.55), uint8(fb*2.55), uint8(fa*2.55))
	}
	if n, err := fmt.Sscanf(s, "rgba(%f%%,%f%%,%f%%,%f%%)", &fr, &fg, &fb, &fa); err == nil && n == 4 {
		return RGBA8(uint8(fr*2.55), uint8(fg*2.55), uint8(fb*2.55), uint8(fa*2.55))
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	return ColorTransparent
}
