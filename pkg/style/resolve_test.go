package style

import "testing"

func TestFindProp_ChildShadowsParent(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	parent := NewStyle(nil)
	parent.Set(reg.FontSize(14))
	child := NewStyle(parent)
	child.Set(reg.FontSize(20))

	got := FindProp(child, nil, KindFontSize)
	if got == nil || got.FontSize() != 20 {
		t.Errorf("expected child value 20, got %v", got)
	}
}

func TestFindProp_FallsBackToParent(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	parent := NewStyle(nil)
	parent.Set(reg.FontFamily("Go Mono"))
	child := NewStyle(parent)

	got := FindProp(child, nil, KindFontFamily)
	if got == nil || got.FontFamily() != "Go Mono" {
		t.Errorf("expected inherited family, got %v", got)
	}
}

func TestFindProp_SecondChainIsFallback(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	first := NewStyle(nil)
	first.Set(reg.FontSize(9))
	second := NewStyle(nil)
	second.Set(reg.FontSize(14))
	second.Set(reg.FontFamily("Go"))

	// Present only in the second chain.
	if got := FindProp(first, second, KindFontFamily); got == nil || got.FontFamily() != "Go" {
		t.Errorf("expected family from second chain, got %v", got)
	}
	// Present in both: the first chain wins.
	if got := FindProp(first, second, KindFontSize); got == nil || got.FontSize() != 9 {
		t.Errorf("expected size from first chain, got %v", got)
	}
}

func TestFindProp_UnresolvedIsNil(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	s := NewStyle(nil)
	s.Set(reg.FontSize(9))

	if got := FindProp(s, nil, KindPadding); got != nil {
		t.Errorf("expected nil for undefined kind, got %v", got)
	}
	if got := FindProp(nil, nil, KindPadding); got != nil {
		t.Errorf("expected nil for nil chains, got %v", got)
	}
}

func TestFindProps_FillsOnlyWantedKinds(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	want := []Lookup{
		{Kind: KindFontFamily},
		{Kind: KindFontSize},
		{Kind: KindFontWeight},
	}
	FindProps(reg.ButtonHover, nil, want)

	if want[0].Prop == nil || want[0].Prop.FontFamily() != "Go" {
		t.Errorf("unexpected family %v", want[0].Prop)
	}
	if want[1].Prop == nil || want[1].Prop.FontSize() != 8 {
		t.Errorf("expected button size 8, got %v", want[1].Prop)
	}
	if want[2].Prop == nil {
		t.Error("expected weight to resolve")
	}
}

func TestFindProps_CyclePanics(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	a := NewStyle(nil)
	b := NewStyle(a)
	a.InheritsFrom = b

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cyclic inheritance chain")
		}
	}()
	FindProp(a, nil, KindPadding)
}
