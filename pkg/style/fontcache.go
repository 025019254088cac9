package style

import (
	"fmt"

	"golang.org/x/image/font"
)

// fontCacheEntry keys a constructed face by the identities of the three
// props that produced it. Props are interned, so pointer equality implies
// value equality.
type fontCacheEntry struct {
	family *Prop
	size   *Prop
	weight *Prop
	face   font.Face
}

func (e *fontCacheEntry) eq(other *fontCacheEntry) bool {
	return e.family == other.family &&
		e.size == other.size &&
		e.weight == other.weight
}

// CachedFace resolves font family, size and weight across the two style
// chains and returns a shared face for them, constructing and caching one
// on first use. The returned face is owned by the registry: callers must
// not close it, it is released in Close.
//
// Every chain is expected to bottom out at a default style supplying all
// three font properties; a chain that does not is a configuration bug and
// panics.
func (r *Registry) CachedFace(first, second *Style) font.Face {
	if r.closed {
		panic("style: CachedFace called on closed registry")
	}
	want := []Lookup{
		{Kind: KindFontFamily},
		{Kind: KindFontSize},
		{Kind: KindFontWeight},
	}
	FindProps(first, second, want)
	family, size, weight := want[0].Prop, want[1].Prop, want[2].Prop
	if family == nil || size == nil || weight == nil {
		panic("style: font family, size and weight must all resolve; style chains must bottom out at a complete default")
	}
	entry := fontCacheEntry{family: family, size: size, weight: weight}
	for i := range r.faces {
		if r.faces[i].eq(&entry) {
			if r.faces[i].face == nil {
				panic("style: cached font entry without face")
			}
			return r.faces[i].face
		}
	}
	face, err := r.fontMgr.NewFace(family.FontFamily(), size.FontSize(), weight.FontWeight())
	if err != nil {
		panic(fmt.Sprintf("style: failed to construct font face: %v", err))
	}
	entry.face = face
	r.faces = append(r.faces, entry)
	return face
}
