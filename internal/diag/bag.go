package diag

import "sort"

// Bag accumulates diagnostics up to a fixed capacity, for tools that check
// many files in one invocation without stopping at the first error.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag returns an empty Bag with room for max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, max), max: uint16(max)}
}

// Add appends d, unless the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any diagnostic is at SevError or above.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the accumulated diagnostics. The caller must not mutate the
// returned slice; it aliases the bag's backing array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by file, then start offset, then end offset, for a
// stable, deterministic report across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return di.Primary.End < dj.Primary.End
	})
}
