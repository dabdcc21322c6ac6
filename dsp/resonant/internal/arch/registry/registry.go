// Package registry stores the available filter-channel kernel
// implementations and selects the best one for the host CPU.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are resonant biquad transfer coefficients (leading
// denominator coefficient normalized to 1). A0..A2 are feedforward,
// B1, B2 feedback.
type Coefficients struct {
	A0, A1, A2 float64
	B1, B2     float64
}

// ChannelState is one channel's Direct Form I delay history.
type ChannelState struct {
	X1, X2 float64 // last two inputs
	Y1, Y2 float64 // last two outputs
}

// FilterChannelFn filters one channel of an interleaved buffer in
// place. It processes frames samples at the given stride starting at
// offset and returns the updated history.
type FilterChannelFn func(c Coefficients, st ChannelState, buf []float64, frames, stride, offset int) ChannelState

// OpEntry is one registered filter kernel implementation.
type OpEntry struct {
	Name          string
	SIMDLevel     cpu.SIMDLevel
	Priority      int
	FilterChannel FilterChannelFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default filter kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
