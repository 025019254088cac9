package style

import "github.com/go-mural/mural/pkg/graphics"

// Style is an ordered group of properties with at most one property per
// kind, optionally inheriting from a parent style. A widget typically has
// one style per visual state (normal, hover, pressed) chained onto a
// shared default.
type Style struct {
	// InheritsFrom is the parent style consulted when this style does not
	// define a requested kind. It is a non-owning reference: the parent
	// must outlive every style that points at it, and the chain must be
	// acyclic.
	InheritsFrom *Style

	props []*Prop
}

// NewStyle creates an empty style inheriting from parent (which may be nil).
func NewStyle(parent *Style) *Style {
	return &Style{InheritsFrom: parent}
}

// Set adds a property to the style, replacing in place any property of
// the same kind.
func (s *Style) Set(p *Prop) {
	for i, existing := range s.props {
		if existing.kind == p.kind {
			s.props[i] = p
			return
		}
	}
	s.props = append(s.props, p)
}

// SetBorderWidth applies the same width to all four border sides.
func (s *Style) SetBorderWidth(reg *Registry, width float64) {
	s.Set(reg.BorderWidth(KindBorderTopWidth, width))
	s.Set(reg.BorderWidth(KindBorderRightWidth, width))
	s.Set(reg.BorderWidth(KindBorderBottomWidth, width))
	s.Set(reg.BorderWidth(KindBorderLeftWidth, width))
}

// SetBorderColor applies the same solid color to all four border sides.
func (s *Style) SetBorderColor(reg *Registry, c graphics.Color) {
	s.Set(reg.SolidColor(KindBorderTopColor, c))
	s.Set(reg.SolidColor(KindBorderRightColor, c))
	s.Set(reg.SolidColor(KindBorderBottomColor, c))
	s.Set(reg.SolidColor(KindBorderLeftColor, c))
}

// Props returns the style's own properties in insertion order, not
// including anything inherited.
func (s *Style) Props() []*Prop {
	return s.props
}
