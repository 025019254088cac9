package style

import (
	"testing"

	"github.com/go-mural/mural/pkg/fonts"
	"github.com/go-mural/mural/pkg/graphics"
)

func TestIntern_EqualValuesShareOneInstance(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	before := reg.NumProps()
	a := reg.FontSize(15)
	after := reg.NumProps()
	b := reg.FontSize(15)

	if a != b {
		t.Error("expected equal font sizes to intern to the same instance")
	}
	if reg.NumProps() != after {
		t.Errorf("expected prop count to stay %d, got %d", after, reg.NumProps())
	}
	if after != before+1 {
		t.Errorf("expected exactly one new prop, got %d", after-before)
	}
}

func TestIntern_DistinctValuesStayDistinct(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	if reg.FontSize(15) == reg.FontSize(16) {
		t.Error("expected different sizes to intern to different instances")
	}
	if reg.FontFamily("Go") == reg.FontFamily("Go Mono") {
		t.Error("expected different families to intern to different instances")
	}
	// Same payload under a different kind is a different prop.
	if reg.BorderWidth(KindBorderTopWidth, 2) == reg.BorderWidth(KindBorderLeftWidth, 2) {
		t.Error("expected different kinds to intern to different instances")
	}
}

func TestIntern_StringConstructorsShareInstances(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	byValue := reg.SolidColor(KindColor, graphics.ColorRed)
	byString := reg.SolidColorString(KindColor, "#ff0000")
	if byValue != byString {
		t.Error("expected value and string constructors to intern to the same instance")
	}
}

func TestIntern_GradientEquality(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	a := reg.LinearGradient(KindBackground, graphics.GradientVertical, graphics.ColorWhite, graphics.ColorBlack)
	b := reg.LinearGradientString(KindBackground, graphics.GradientVertical, "white", "black")
	if a != b {
		t.Error("expected equal gradients to intern to the same instance")
	}
	c := reg.LinearGradient(KindBackground, graphics.GradientHorizontal, graphics.ColorWhite, graphics.ColorBlack)
	if a == c {
		t.Error("expected different gradient modes to intern differently")
	}
}

func TestPadding_FieldwiseEquality(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	a := reg.Padding(1, 2, 3, 4)
	if b := reg.Padding(1, 2, 3, 4); a != b {
		t.Error("expected identical paddings to intern to the same instance")
	}
	variants := []*Prop{
		reg.Padding(9, 2, 3, 4),
		reg.Padding(1, 9, 3, 4),
		reg.Padding(1, 2, 9, 4),
		reg.Padding(1, 2, 3, 9),
	}
	for i, v := range variants {
		if v == a {
			t.Errorf("variant %d differing in one field interned to the same instance", i)
		}
	}
}

func TestSolidColor_PanicsOnNonColorKind(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for color constructor on non-color kind")
		}
	}()
	reg.SolidColor(KindFontSize, graphics.ColorRed)
}

func TestBorderWidth_PanicsOnNonWidthKind(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for width constructor on non-width kind")
		}
	}()
	reg.BorderWidth(KindColor, 1)
}

func TestDefaultStyles_AreComplete(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	// Every kind must resolve from the base default alone.
	for kind := KindFontFamily; kind <= KindBorderLeftColor; kind++ {
		if FindProp(reg.Default, nil, kind) == nil {
			t.Errorf("default style does not resolve %s", kind)
		}
	}

	// Button chain overrides.
	if got := FindProp(reg.ButtonDefault, nil, KindFontSize); got.FontSize() != 8 {
		t.Errorf("expected button font size 8, got %v", got.FontSize())
	}
	if got := FindProp(reg.ButtonDefault, nil, KindPadding); got.Padding() != (Insets{4, 8, 4, 8}) {
		t.Errorf("unexpected button padding %+v", got.Padding())
	}
	// Inherited from the base default.
	if got := FindProp(reg.ButtonDefault, nil, KindColor); got.Paint() != graphics.SolidPaint(graphics.ColorBlack) {
		t.Errorf("expected inherited black text color, got %s", got.Paint())
	}

	// Hover overrides three border sides and inherits the fourth.
	if got := FindProp(reg.ButtonHover, nil, KindBorderTopColor); got.Paint() != graphics.SolidPaint(graphics.RGB(0x77, 0x77, 0x77)) {
		t.Errorf("unexpected hover top border %s", got.Paint())
	}
	if got := FindProp(reg.ButtonHover, nil, KindBorderLeftColor); got.Paint() != graphics.SolidPaint(graphics.RGB(0x99, 0x99, 0x99)) {
		t.Errorf("expected hover left border inherited from default, got %s", got.Paint())
	}
}

func TestDefaultStyles_FontWeightIsBold(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	got := FindProp(reg.ButtonHover, nil, KindFontWeight)
	if got == nil || got.FontWeight() != fonts.WeightBold {
		t.Errorf("expected bold weight through the hover chain, got %v", got)
	}
}
