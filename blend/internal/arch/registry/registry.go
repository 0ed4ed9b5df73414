// Package registry stores the blending kernel implementations available for
// the current build. Architecture packages register themselves from init();
// package blend picks the highest-priority entry the CPU supports.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-pose/pose"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// BlendFn blends in into out with one weight vector per block.
// out, in and w must have equal length.
type BlendFn func(out, in []pose.SoaTransform, w []pose.SoaFloat4)

// NormalizeFn scales translation and scale of every block of out by the
// matching ratio and renormalizes rotations.
// out and ratio must have equal length.
type NormalizeFn func(out []pose.SoaTransform, ratio []pose.SoaFloat4)

// OpEntry is one registered blending kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// BlendFirst assigns out = in * w.
	BlendFirst BlendFn

	// BlendNext accumulates out += in * w after flipping each in rotation
	// into the hemisphere of the matching out rotation.
	BlendNext BlendFn

	// Normalize rescales accumulated blocks to unit weight.
	Normalize NormalizeFn

	// Add composes an additive layer onto out with weights w >= 0.
	Add BlendFn

	// Sub removes an additive layer from out; w holds the absolute weights.
	Sub BlendFn
}

// OpRegistry stores available implementations, highest priority first.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default blending kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry. Entries of equal priority keep
// their registration order.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := len(r.entries)
	for i > 0 && r.entries[i-1].Priority < entry.Priority {
		i--
	}
	r.entries = slices.Insert(r.entries, i, entry)
}

// Lookup returns the highest-priority implementation supported by features,
// or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			return &r.entries[i]
		}
	}
	return nil
}

// ListEntries returns a copy of entries in lookup order, for tests and
// debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
