//go:build !memmap
// +build !memmap

package exec

import "github.com/fluentlabs-xyz/rwasm/isa"

// Memory is a paged linear memory backed by a plain byte slice that is
// reallocated on growth.
type Memory struct {
	maxPages uint32
	bytes    []byte
}

// NewMemory creates an empty linear memory that may grow up to maxPages.
func NewMemory(maxPages uint32) *Memory {
	return &Memory{maxPages: maxPages}
}

func (m *Memory) data() []byte {
	return m.bytes
}

// Grow grows the memory by delta pages. It returns the page count before the
// operation, or TrapGrowthOperationLimited if the result would exceed the
// configured maximum.
func (m *Memory) Grow(delta uint32) (uint32, error) {
	current := m.Pages()
	if delta == 0 {
		return current, nil
	}
	desired := uint64(current) + uint64(delta)
	if desired > uint64(m.maxPages) {
		return current, isa.TrapGrowthOperationLimited
	}
	grown := make([]byte, desired*PageSize)
	copy(grown, m.bytes)
	m.bytes = grown
	return current, nil
}
