package exec

import (
	"github.com/willf/bitset"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

// SegmentState tracks the unified data and element segments of a module
// instance together with their drop flags. Segment 0 is the reserved empty
// sentinel; source segments are numbered from 1.
//
// All data segment payloads live concatenated in the module's memory
// section, and all element funcrefs in its element section; dropping a
// segment only flips a bit. A dropped segment reads as empty, so any
// nonzero-length init from it goes out of bounds and traps.
type SegmentState struct {
	data     []byte
	elements []isa.UntypedValue

	droppedData     *bitset.BitSet
	droppedElements *bitset.BitSet
}

// NewSegmentState creates segment state over the module's unified data bytes
// and element indices. Element funcrefs are biased at construction so that
// table initialization copies them verbatim.
func NewSegmentState(data []byte, elementFuncs []uint32) *SegmentState {
	elements := make([]isa.UntypedValue, len(elementFuncs))
	for i, funcIdx := range elementFuncs {
		elements[i] = FuncRefFromIndex(funcIdx)
	}
	return &SegmentState{
		data:            data,
		elements:        elements,
		droppedData:     bitset.New(64),
		droppedElements: bitset.New(64),
	}
}

// Data returns the unified data bytes as seen through the given segment
// index: the empty slice for the sentinel segment 0 and once the segment has
// been dropped.
func (s *SegmentState) Data(segment uint32) []byte {
	if segment == 0 || s.droppedData.Test(uint(segment)) {
		return nil
	}
	return s.data
}

// Elements returns the unified element funcrefs as seen through the given
// segment index.
func (s *SegmentState) Elements(segment uint32) []isa.UntypedValue {
	if segment == 0 || s.droppedElements.Test(uint(segment)) {
		return nil
	}
	return s.elements
}

// DropData marks a data segment as dropped. Dropping is idempotent.
func (s *SegmentState) DropData(segment uint32) {
	s.droppedData.Set(uint(segment))
}

// DropElements marks an element segment as dropped.
func (s *SegmentState) DropElements(segment uint32) {
	s.droppedElements.Set(uint(segment))
}

// DataDropped reports whether the data segment has been dropped.
func (s *SegmentState) DataDropped(segment uint32) bool {
	return s.droppedData.Test(uint(segment))
}

// ElementsDropped reports whether the element segment has been dropped.
func (s *SegmentState) ElementsDropped(segment uint32) bool {
	return s.droppedElements.Test(uint(segment))
}
