package style

// maxChainDepth bounds inheritance-chain walks. Real widget trees chain a
// handful of styles; anything deeper means a cycle was created.
const maxChainDepth = 64

// Lookup pairs a wanted kind with its resolution slot. FindProps fills
// Prop for every kind it can resolve and leaves the rest nil.
type Lookup struct {
	Kind Kind
	Prop *Prop
}

// FindProps resolves the wanted kinds across up to two style chains.
// The first chain is walked from the given style up through InheritsFrom
// links, then the second; within each style the own properties are
// scanned in order. The first value found for a kind wins, so a child
// style shadows its ancestors and the first chain shadows the second.
// Passing two chains is equivalent to hanging the second chain below the
// root of the first, without mutating either.
func FindProps(first, second *Style, want []Lookup) {
	if findInChain(first, want) {
		return
	}
	findInChain(second, want)
}

// FindProp is the single-kind form of FindProps. It returns nil when the
// kind is defined nowhere in either chain; the caller decides whether
// that is fatal.
func FindProp(first, second *Style, kind Kind) *Prop {
	want := [1]Lookup{{Kind: kind}}
	FindProps(first, second, want[:])
	return want[0].Prop
}

// findInChain walks one inheritance chain, filling want slots. It returns
// true once every slot is filled so the caller can stop early.
func findInChain(s *Style, want []Lookup) bool {
	depth := 0
	for curr := s; curr != nil; curr = curr.InheritsFrom {
		depth++
		if depth > maxChainDepth {
			panic("style: inheritance chain exceeds max depth, likely a cycle")
		}
		for _, p := range curr.props {
			if fill(p, want) && allFound(want) {
				return true
			}
		}
	}
	return allFound(want)
}

// fill records p in its slot if that kind is wanted and still unresolved.
func fill(p *Prop, want []Lookup) bool {
	for i := range want {
		if want[i].Kind != p.kind {
			continue
		}
		if want[i].Prop == nil {
			want[i].Prop = p
			return true
		}
		return false
	}
	return false
}

func allFound(want []Lookup) bool {
	for i := range want {
		if want[i].Prop == nil {
			return false
		}
	}
	return true
}
