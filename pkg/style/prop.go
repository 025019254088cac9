package style

import (
	"fmt"

	"github.com/go-mural/mural/pkg/fonts"
	"github.com/go-mural/mural/pkg/graphics"
)

// Kind identifies a property within the closed set of visual attributes
// the engine knows about.
type Kind int

const (
	KindFontFamily Kind = iota
	KindFontSize
	KindFontWeight
	KindPadding
	KindBorderTopWidth
	KindBorderRightWidth
	KindBorderBottomWidth
	KindBorderLeftWidth
	KindColor
	KindBackground
	KindBorderTopColor
	KindBorderRightColor
	KindBorderBottomColor
	KindBorderLeftColor
)

var kindNames = map[Kind]string{
	KindFontFamily:        "font_family",
	KindFontSize:          "font_size",
	KindFontWeight:        "font_weight",
	KindPadding:           "padding",
	KindBorderTopWidth:    "border_top_width",
	KindBorderRightWidth:  "border_right_width",
	KindBorderBottomWidth: "border_bottom_width",
	KindBorderLeftWidth:   "border_left_width",
	KindColor:             "color",
	KindBackground:        "background",
	KindBorderTopColor:    "border_top_color",
	KindBorderRightColor:  "border_right_color",
	KindBorderBottomColor: "border_bottom_color",
	KindBorderLeftColor:   "border_left_color",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsWidth reports whether the kind carries a border width payload.
func (k Kind) IsWidth() bool {
	return k == KindBorderTopWidth || k == KindBorderRightWidth ||
		k == KindBorderBottomWidth || k == KindBorderLeftWidth
}

// IsColor reports whether the kind carries a paint payload.
func (k Kind) IsColor() bool {
	switch k {
	case KindColor, KindBackground, KindBorderTopColor, KindBorderRightColor,
		KindBorderBottomColor, KindBorderLeftColor:
		return true
	}
	return false
}

// Insets is a top/right/bottom/left padding quadruple in logical pixels.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Prop is an immutable, interned property value. Props are only created
// through a Registry's constructors, which guarantee that equal values
// collapse to a single shared instance. That makes pointer comparison a
// valid value-equality check everywhere downstream.
type Prop struct {
	kind       Kind
	fontFamily string
	fontSize   float64
	fontWeight fonts.Weight
	padding    Insets
	width      float64
	paint      graphics.Paint
}

// Kind returns the property kind.
func (p *Prop) Kind() Kind { return p.kind }

// FontFamily returns the family name of a KindFontFamily prop.
func (p *Prop) FontFamily() string { return p.fontFamily }

// FontSize returns the point size of a KindFontSize prop.
func (p *Prop) FontSize() float64 { return p.fontSize }

// FontWeight returns the weight of a KindFontWeight prop.
func (p *Prop) FontWeight() fonts.Weight { return p.fontWeight }

// Padding returns the insets of a KindPadding prop.
func (p *Prop) Padding() Insets { return p.padding }

// Width returns the width of a border-width prop.
func (p *Prop) Width() float64 { return p.width }

// Paint returns the paint of a color-kind prop.
func (p *Prop) Paint() graphics.Paint { return p.paint }

// eq reports whether two props carry the same kind and payload.
func (p *Prop) eq(other *Prop) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case KindFontFamily:
		return p.fontFamily == other.fontFamily
	case KindFontSize:
		return p.fontSize == other.fontSize
	case KindFontWeight:
		return p.fontWeight == other.fontWeight
	case KindPadding:
		return p.padding == other.padding
	}
	if p.kind.IsColor() {
		return p.paint.Eq(other.paint)
	}
	if p.kind.IsWidth() {
		return p.width == other.width
	}
	panic("style: unhandled property kind " + p.kind.String())
}

// String returns the kind and payload, mostly for inspection tooling.
func (p *Prop) String() string {
	switch {
	case p.kind == KindFontFamily:
		return fmt.Sprintf("%s=%q", p.kind, p.fontFamily)
	case p.kind == KindFontSize:
		return fmt.Sprintf("%s=%v", p.kind, p.fontSize)
	case p.kind == KindFontWeight:
		return fmt.Sprintf("%s=%s", p.kind, p.fontWeight)
	case p.kind == KindPadding:
		return fmt.Sprintf("%s=%d,%d,%d,%d", p.kind,
			p.padding.Top, p.padding.Right, p.padding.Bottom, p.padding.Left)
	case p.kind.IsWidth():
		return fmt.Sprintf("%s=%v", p.kind, p.width)
	case p.kind.IsColor():
		return fmt.Sprintf("%s=%s", p.kind, p.paint)
	}
	return p.kind.String()
}
