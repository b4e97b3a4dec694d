package translate

import "github.com/fluentlabs-xyz/rwasm/wasm"

// segmentSpan records where a source segment landed in its unified section.
type segmentSpan struct {
	offset uint32
	length uint32
}

// A segmentBuilder concatenates every data segment payload into one memory
// section and every element segment into one element section, remembering
// per-segment spans so that memory.init/table.init sites can be rebased.
// Segment index 0 is the reserved empty sentinel; source segments become
// 1..N.
type segmentBuilder struct {
	memorySection  []byte
	dataSpans      map[uint32]segmentSpan
	elementSection []uint32
	elementSpans   map[uint32]segmentSpan
}

func newSegmentBuilder() *segmentBuilder {
	return &segmentBuilder{
		dataSpans:    map[uint32]segmentSpan{},
		elementSpans: map[uint32]segmentSpan{},
	}
}

// addData appends a data segment's payload and returns its span.
func (s *segmentBuilder) addData(segIdx uint32, data []byte) segmentSpan {
	span := segmentSpan{
		offset: uint32(len(s.memorySection)),
		length: uint32(len(data)),
	}
	s.memorySection = append(s.memorySection, data...)
	s.dataSpans[segIdx] = span
	return span
}

// addElements appends an element segment's internal function indices and
// returns its span.
func (s *segmentBuilder) addElements(segIdx uint32, funcs []uint32) segmentSpan {
	span := segmentSpan{
		offset: uint32(len(s.elementSection)),
		length: uint32(len(funcs)),
	}
	s.elementSection = append(s.elementSection, funcs...)
	s.elementSpans[segIdx] = span
	return span
}

func (s *segmentBuilder) dataSpan(segIdx uint32) (segmentSpan, bool) {
	span, ok := s.dataSpans[segIdx]
	return span, ok
}

func (s *segmentBuilder) elementSpan(segIdx uint32) (segmentSpan, bool) {
	span, ok := s.elementSpans[segIdx]
	return span, ok
}

// internalFuncs rebases source function indices to internal indices,
// rejecting references to imported functions: those cannot live in tables.
func internalFuncs(mod *wasm.Module, funcs []uint32) ([]uint32, error) {
	imports := mod.NumImportedFuncs()
	out := make([]uint32, len(funcs))
	for i, funcIdx := range funcs {
		if funcIdx < imports {
			return nil, errorf(ErrUnsupportedFeature,
				"imported function %d cannot be referenced from a table", funcIdx)
		}
		out[i] = funcIdx - imports
	}
	return out, nil
}
