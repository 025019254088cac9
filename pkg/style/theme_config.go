package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-mural/mural/pkg/fonts"
	"github.com/go-mural/mural/pkg/graphics"
)

import stderrors "errors"

// FontFile names a font to register before the default styles are built.
type FontFile struct {
	Family string `yaml:"family"`
	Weight int    `yaml:"weight,omitempty"`
	Path   string `yaml:"path"`
}

// StyleOptions overrides pieces of one built-in style. Zero fields are
// left at their built-in value. Colors are CSS color strings and follow
// the usual transparent fallback when unparseable.
type StyleOptions struct {
	FontFamily  string   `yaml:"fontFamily,omitempty"`
	FontSize    float64  `yaml:"fontSize,omitempty"`
	FontWeight  int      `yaml:"fontWeight,omitempty"`
	Color       string   `yaml:"color,omitempty"`
	Background  string   `yaml:"background,omitempty"`
	BorderColor string   `yaml:"borderColor,omitempty"`
	BorderWidth *float64 `yaml:"borderWidth,omitempty"`
	// Padding is top, right, bottom, left. Anything but four values is
	// rejected at load time.
	Padding []int `yaml:"padding,omitempty"`
}

// Options is the optional theme configuration applied on top of the
// built-in defaults by NewRegistryWithOptions.
type Options struct {
	Fonts       []FontFile   `yaml:"fonts,omitempty"`
	Default     StyleOptions `yaml:"default,omitempty"`
	Button      StyleOptions `yaml:"button,omitempty"`
	ButtonHover StyleOptions `yaml:"buttonHover,omitempty"`
}

// LoadOptions reads a yaml theme file if present. A missing file is not
// an error; it yields zero Options, i.e. the built-in defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	for _, so := range []StyleOptions{opts.Default, opts.Button, opts.ButtonHover} {
		if len(so.Padding) != 0 && len(so.Padding) != 4 {
			return Options{}, fmt.Errorf("padding must have four values (top, right, bottom, left), got %d", len(so.Padding))
		}
	}
	return opts, nil
}

// applyOverrides sets every non-zero option field on the style.
func (r *Registry) applyOverrides(s *Style, so StyleOptions) {
	if so.FontFamily != "" {
		s.Set(r.FontFamily(so.FontFamily))
	}
	if so.FontSize > 0 {
		s.Set(r.FontSize(so.FontSize))
	}
	if so.FontWeight > 0 {
		s.Set(r.FontWeight(fonts.Weight(so.FontWeight)))
	}
	if so.Color != "" {
		s.Set(r.SolidColorString(KindColor, so.Color))
	}
	if so.Background != "" {
		s.Set(r.SolidColorString(KindBackground, so.Background))
	}
	if so.BorderColor != "" {
		s.SetBorderColor(r, graphics.ParseColor(so.BorderColor))
	}
	if so.BorderWidth != nil {
		s.SetBorderWidth(r, *so.BorderWidth)
	}
	if len(so.Padding) == 4 {
		s.Set(r.Padding(so.Padding[0], so.Padding[1], so.Padding[2], so.Padding[3]))
	}
}
