// Package fonts manages parsed font data and constructs font faces for
// the styling engine. Families are registered as TrueType/OpenType data
// per weight; faces are built on demand for a (family, size, weight)
// request. The bundled Go fonts are always available under the family
// name "Go".
package fonts

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/go-mural/mural/pkg/errors"
)

import stderrors "errors"

// faceDPI is the resolution faces are rasterized at. Widget code works in
// logical points, so the engine fixes 72 DPI and leaves display scaling
// to the renderer.
const faceDPI = 72

// Weight is a numeric font weight.
type Weight int

const (
	WeightNormal   Weight = 400
	WeightMedium   Weight = 500
	WeightSemibold Weight = 600
	WeightBold     Weight = 700
)

// String returns a human-readable representation of the font weight.
func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// DefaultFamily is the font family every Manager provides out of the box.
const DefaultFamily = "Go"

type fontKey struct {
	family string
	weight Weight
}

// Manager holds parsed fonts keyed by family and weight.
type Manager struct {
	mu    sync.RWMutex
	fonts map[fontKey]*sfnt.Font
}

var (
	defaultManager     *Manager
	defaultManagerErr  error
	defaultManagerOnce sync.Once
)

// NewManager creates a font manager with the bundled Go fonts registered
// under the "Go" family at weights 400, 500 and 700.
func NewManager() (*Manager, error) {
	m := &Manager{fonts: make(map[fontKey]*sfnt.Font)}
	bundled := []struct {
		weight Weight
		data   []byte
	}{
		{WeightNormal, goregular.TTF},
		{WeightMedium, gomedium.TTF},
		{WeightBold, gobold.TTF},
	}
	for _, b := range bundled {
		if err := m.Register(DefaultFamily, b.weight, b.data); err != nil {
			return nil, fmt.Errorf("failed to register bundled font %s %s: %w", DefaultFamily, b.weight, err)
		}
	}
	return m, nil
}

// DefaultManagerErr returns a shared manager with the bundled fonts.
// It returns both the manager and any error that occurred during
// initialization.
func DefaultManagerErr() (*Manager, error) {
	defaultManagerOnce.Do(func() {
		m, err := NewManager()
		if err != nil {
			defaultManagerErr = err
			errors.Report(&errors.MuralError{
				Op:   "fonts.DefaultManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultManager = m
	})
	return defaultManager, defaultManagerErr
}

// DefaultManager returns a shared manager with the bundled fonts.
// Returns nil on initialization error.
func DefaultManager() *Manager {
	m, _ := DefaultManagerErr()
	return m
}

// Register parses TrueType/OpenType data and registers it for the given
// family and weight, replacing any previous registration.
func (m *Manager) Register(family string, weight Weight, data []byte) error {
	if family == "" {
		return stderrors.New("font family required")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font data for %q: %w", family, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[fontKey{family, weight}] = f
	return nil
}

// NewFace constructs a font face for the family at the given point size
// and weight. When the exact weight is not registered, the nearest
// registered weight within the family substitutes (heavier wins a tie).
// The caller owns the returned face and must close it.
func (m *Manager) NewFace(family string, size float64, weight Weight) (font.Face, error) {
	f, err := m.lookup(family, weight)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build face %s %v %s: %w", family, size, weight, err)
	}
	return face, nil
}

// lookup finds the registered font closest in weight within a family.
func (m *Manager) lookup(family string, weight Weight) (*sfnt.Font, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.fonts[fontKey{family, weight}]; ok {
		return f, nil
	}
	var candidates []Weight
	for k := range m.fonts {
		if k.family == family {
			candidates = append(candidates, k.weight)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("unknown font family %q", family)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] > candidates[j] })
	best := candidates[0]
	for _, w := range candidates[1:] {
		if abs(int(w)-int(weight)) < abs(int(best)-int(weight)) {
			best = w
		}
	}
	return m.fonts[fontKey{family, best}], nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
