package graphics

import "fmt"

// PaintKind describes the paint variant.
type PaintKind int

const (
	// PaintSolid is a single flat color.
	PaintSolid PaintKind = iota
	// PaintLinearGradient is a two-stop directional gradient.
	PaintLinearGradient
)

// String returns a human-readable representation of the paint kind.
func (k PaintKind) String() string {
	switch k {
	case PaintSolid:
		return "solid"
	case PaintLinearGradient:
		return "linear_gradient"
	default:
		return fmt.Sprintf("PaintKind(%d)", int(k))
	}
}

// GradientMode describes the direction of a linear gradient.
type GradientMode int

const (
	GradientHorizontal GradientMode = iota
	GradientVertical
	GradientForwardDiagonal
	GradientBackwardDiagonal
)

// String returns a human-readable representation of the gradient mode.
func (m GradientMode) String() string {
	switch m {
	case GradientHorizontal:
		return "horizontal"
	case GradientVertical:
		return "vertical"
	case GradientForwardDiagonal:
		return "forward_diagonal"
	case GradientBackwardDiagonal:
		return "backward_diagonal"
	default:
		return fmt.Sprintf("GradientMode(%d)", int(m))
	}
}

// Paint is a solid color or a two-stop linear gradient. For solid paints
// only Solid is meaningful; for gradients, Mode, Start and End.
type Paint struct {
	Kind  PaintKind
	Solid Color
	Mode  GradientMode
	Start Color
	End   Color
}

// SolidPaint constructs a flat color paint.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintSolid, Solid: c}
}

// LinearGradientPaint constructs a two-stop gradient paint.
func LinearGradientPaint(mode GradientMode, start, end Color) Paint {
	return Paint{Kind: PaintLinearGradient, Mode: mode, Start: start, End: end}
}

// Eq reports whether two paints describe the same visual. Kinds must
// match; only the fields relevant to the kind are compared.
func (p Paint) Eq(other Paint) bool {
	if p.Kind != other.Kind {
		return false
	}
	switch p.Kind {
	case PaintSolid:
		return p.Solid == other.Solid
	case PaintLinearGradient:
		return p.Mode == other.Mode && p.Start == other.Start && p.End == other.End
	}
	panic("graphics: unhandled paint kind " + p.Kind.String())
}

// String returns a human-readable representation of the paint.
func (p Paint) String() string {
	switch p.Kind {
	case PaintSolid:
		return p.Solid.String()
	case PaintLinearGradient:
		return fmt.Sprintf("%s(%s, %s -> %s)", p.Kind, p.Mode, p.Start, p.End)
	default:
		return p.Kind.String()
	}
}
