package tharwa

import (
	"slices"
	"sync"
)

// Portfolio holds the ordered collection of assets tracked by the
// running process. It is explicitly constructed and passed to whoever
// needs it; there is no package-level instance.
//
// The reference flow is single-threaded, but the store is guarded by a
// mutex anyway so that list-then-mutate sequences stay consistent if it
// is ever shared: Assets always reflects a state that existed at one
// specific point in time.
type Portfolio struct {
	mu     sync.Mutex
	assets []Asset
}

// NewPortfolio returns a new empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Add appends the asset at the end of the portfolio, preserving
// insertion order. Validation belongs to the caller (see NewAsset);
// Add always succeeds. Names are not unique: adding a second lot with
// the same name is allowed.
func (p *Portfolio) Add(a Asset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.assets = append(p.assets, a)
}

// Remove deletes the first asset, in insertion order, whose name equals
// name exactly (case-sensitive). It reports whether an asset was
// removed; a miss is an expected outcome, not an error. When several
// lots share the name, one call removes one lot.
func (p *Portfolio) Remove(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, a := range p.assets {
		if a.Name == name {
			p.assets = slices.Delete(p.assets, i, i+1)
			return true
		}
	}
	return false
}

// Assets returns an independent snapshot of the portfolio in insertion
// order. Mutating the returned slice does not affect the store.
func (p *Portfolio) Assets() []Asset {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.assets)
}

// Len returns the number of assets currently held.
func (p *Portfolio) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.assets)
}
