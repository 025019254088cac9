// Package style implements a CSS-like property system for GUI widgets.
//
// Visual attributes (colors, fonts, borders, padding) are expressed as
// immutable Prop values grouped into named Styles that inherit from one
// another. All props are interned through a Registry: constructing the
// same value twice returns the same instance, so resolved properties can
// be compared by pointer. The Registry also owns the default style trio
// every widget falls back to and a cache of constructed font faces.
//
// The engine assumes a single-threaded UI: nothing here locks, and the
// Registry must not be shared across goroutines.
package style

import (
	"fmt"
	"os"

	"github.com/go-mural/mural/pkg/errors"
	"github.com/go-mural/mural/pkg/fonts"
	"github.com/go-mural/mural/pkg/graphics"
)

// Registry is the process-wide catalog of interned properties, the
// default styles, and the font face cache. Create one at UI startup with
// NewRegistry and release it with Close after all widgets are gone.
type Registry struct {
	fontMgr *fonts.Manager
	props   []*Prop
	faces   []fontCacheEntry
	closed  bool

	// Default is the base style every chain should bottom out at. It
	// defines a complete set of font, color, border and padding values.
	Default *Style
	// ButtonDefault inherits Default and overrides padding and font.
	ButtonDefault *Style
	// ButtonHover inherits ButtonDefault and darkens three border sides
	// to simulate a hover highlight.
	ButtonHover *Style
}

// NewRegistry creates a registry with the built-in default styles and the
// bundled fonts. It panics if the bundled fonts cannot be parsed, which
// indicates a corrupted build rather than a runtime condition.
func NewRegistry() *Registry {
	reg, err := NewRegistryWithOptions(Options{})
	if err != nil {
		panic(fmt.Sprintf("style: registry initialization failed: %v", err))
	}
	return reg
}

// NewRegistryWithOptions creates a registry and applies theme options on
// top of the built-in defaults. Extra font files are registered before
// the default styles are built so overrides can reference them.
func NewRegistryWithOptions(opts Options) (*Registry, error) {
	mgr, err := fonts.NewManager()
	if err != nil {
		errors.Report(&errors.MuralError{
			Op:   "style.NewRegistry",
			Kind: errors.KindInit,
			Err:  err,
		})
		return nil, err
	}
	reg := &Registry{fontMgr: mgr}
	for _, ff := range opts.Fonts {
		data, err := os.ReadFile(ff.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %q: %w", ff.Path, err)
		}
		weight := fonts.Weight(ff.Weight)
		if ff.Weight == 0 {
			weight = fonts.WeightNormal
		}
		if err := mgr.Register(ff.Family, weight, data); err != nil {
			return nil, err
		}
	}
	reg.buildDefaults(opts)
	return reg, nil
}

// buildDefaults wires the three singleton styles and applies overrides.
func (r *Registry) buildDefaults(opts Options) {
	d := NewStyle(nil)
	d.Set(r.FontFamily(fonts.DefaultFamily))
	d.Set(r.FontSize(14))
	d.Set(r.FontWeight(fonts.WeightBold))
	d.Set(r.SolidColorString(KindColor, "black"))
	d.Set(r.LinearGradient(KindBackground, graphics.GradientVertical,
		graphics.RGB(0xf5, 0xf6, 0xf6), graphics.RGB(0xe4, 0xe4, 0xe3)))
	d.SetBorderWidth(r, 1)
	d.SetBorderColor(r, graphics.RGB(0x99, 0x99, 0x99))
	d.Set(r.SolidColorString(KindBorderBottomColor, "#888"))
	d.Set(r.Padding(0, 0, 0, 0))
	r.applyOverrides(d, opts.Default)

	b := NewStyle(d)
	b.Set(r.Padding(4, 8, 4, 8))
	b.Set(r.FontFamily(fonts.DefaultFamily))
	b.Set(r.FontSize(8))
	b.Set(r.FontWeight(fonts.WeightBold))
	r.applyOverrides(b, opts.Button)

	h := NewStyle(b)
	h.Set(r.SolidColorString(KindBorderTopColor, "#777"))
	h.Set(r.SolidColorString(KindBorderRightColor, "#777"))
	h.Set(r.SolidColorString(KindBorderBottomColor, "#666"))
	r.applyOverrides(h, opts.ButtonHover)

	r.Default, r.ButtonDefault, r.ButtonHover = d, b, h
}

// Close releases every cached font face exactly once and drops all
// interned properties and default styles. The registry must not be used
// afterwards. Close is idempotent.
func (r *Registry) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for i := range r.faces {
		if r.faces[i].face != nil {
			if err := r.faces[i].face.Close(); err != nil {
				errors.Report(&errors.MuralError{
					Op:   "style.Registry.Close",
					Kind: errors.KindFont,
					Err:  err,
				})
			}
			r.faces[i].face = nil
		}
	}
	r.faces = nil
	r.props = nil
	r.Default, r.ButtonDefault, r.ButtonHover = nil, nil, nil
}

// NumProps returns the count of distinct interned properties.
func (r *Registry) NumProps() int { return len(r.props) }

// NumFaces returns the count of cached font faces.
func (r *Registry) NumFaces() int { return len(r.faces) }

// intern returns the shared instance equal to candidate, registering a
// new one if none exists. Linear scan: the distinct property count of a
// UI is tens, not thousands, and allocation is off the hot path.
func (r *Registry) intern(candidate Prop) *Prop {
	for _, p := range r.props {
		if p.eq(&candidate) {
			return p
		}
	}
	p := new(Prop)
	*p = candidate
	r.props = append(r.props, p)
	return p
}

// FontFamily interns a font family name property.
func (r *Registry) FontFamily(name string) *Prop {
	return r.intern(Prop{kind: KindFontFamily, fontFamily: name})
}

// FontSize interns a font point size property.
func (r *Registry) FontSize(size float64) *Prop {
	return r.intern(Prop{kind: KindFontSize, fontSize: size})
}

// FontWeight interns a font weight property.
func (r *Registry) FontWeight(w fonts.Weight) *Prop {
	return r.intern(Prop{kind: KindFontWeight, fontWeight: w})
}

// BorderWidth interns a border width property for one side. The kind must
// be one of the four border-width kinds.
func (r *Registry) BorderWidth(kind Kind, width float64) *Prop {
	if !kind.IsWidth() {
		panic("style: BorderWidth called with non-width kind " + kind.String())
	}
	return r.intern(Prop{kind: kind, width: width})
}

// Padding interns a padding property.
func (r *Registry) Padding(top, right, bottom, left int) *Prop {
	return r.intern(Prop{kind: KindPadding, padding: Insets{top, right, bottom, left}})
}

// SolidColor interns a solid color property. The kind must be a color kind.
func (r *Registry) SolidColor(kind Kind, c graphics.Color) *Prop {
	if !kind.IsColor() {
		panic("style: SolidColor called with non-color kind " + kind.String())
	}
	return r.intern(Prop{kind: kind, paint: graphics.SolidPaint(c)})
}

// SolidColorString interns a solid color property from a CSS color
// string. Unparseable strings follow graphics.ParseColor's transparent
// fallback.
func (r *Registry) SolidColorString(kind Kind, css string) *Prop {
	return r.SolidColor(kind, graphics.ParseColor(css))
}

// LinearGradient interns a two-stop gradient property. The kind must be a
// color kind.
func (r *Registry) LinearGradient(kind Kind, mode graphics.GradientMode, start, end graphics.Color) *Prop {
	if !kind.IsColor() {
		panic("style: LinearGradient called with non-color kind " + kind.String())
	}
	return r.intern(Prop{kind: kind, paint: graphics.LinearGradientPaint(mode, start, end)})
}

// LinearGradientString is LinearGradient with CSS color strings.
func (r *Registry) LinearGradientString(kind Kind, mode graphics.GradientMode, start, end string) *Prop {
	return r.LinearGradient(kind, mode, graphics.ParseColor(start), graphics.ParseColor(end))
}
