//go:build memmap && linux
// +build memmap,linux

package exec

import (
	"golang.org/x/sys/unix"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

// Memory is a paged linear memory backed by an anonymous mapping. The whole
// maximum is reserved up front with PROT_NONE; growth flips page protection
// instead of reallocating, so the backing slice never moves.
type Memory struct {
	maxPages uint32
	reserved []byte
	length   int
}

// NewMemory creates an empty linear memory that may grow up to maxPages.
func NewMemory(maxPages uint32) *Memory {
	reserved, err := unix.Mmap(-1, 0, int(maxPages)*PageSize,
		unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(err)
	}
	return &Memory{maxPages: maxPages, reserved: reserved}
}

func (m *Memory) data() []byte {
	return m.reserved[:m.length]
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
	end := int(desired) * PageSize
	if err := unix.Mprotect(m.reserved[m.length:end], unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return current, isa.TrapGrowthOperationLimited
	}
	m.length = end
	return current, nil
}
