package rwasm

import (
	"encoding/binary"
	"fmt"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

// EIP-3540 style framing: magic, version, a header table of contents, then
// section bodies in header order.
const (
	magicByte0 = 0xef
	magicByte1 = 0x52
	version1   = 0x01

	sectionCode     = 0x01
	sectionMemory   = 0x02
	sectionFunction = 0x03
	sectionElement  = 0x04
	headerEnd       = 0x00
)

// InvalidFormatError reports a malformed rWASM binary.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return "invalid rwasm binary: " + e.Reason
}

func invalidFormat(format string, args ...interface{}) error {
	return &InvalidFormatError{Reason: fmt.Sprintf(format, args...)}
}

// Encode serializes the module into its canonical binary form. The section
// order is fixed (code, memory, function, element) so that translating the
// same module twice yields byte-identical output.
func (m *Module) Encode() []byte {
	code := make([]byte, 0, len(m.Code)*isa.SlotSize)
	for _, instr := range m.Code {
		code = isa.EncodeSlot(code, instr)
	}

	function := make([]byte, 0, len(m.FuncLengths)*4)
	for _, length := range m.FuncLengths {
		function = binary.LittleEndian.AppendUint32(function, length)
	}

	element := make([]byte, 0, len(m.ElementSection)*4)
	for _, funcIdx := range m.ElementSection {
		element = binary.LittleEndian.AppendUint32(element, funcIdx)
	}

	out := []byte{magicByte0, magicByte1, version1}
	sections := []struct {
		id   byte
		body []byte
	}{
		{sectionCode, code},
		{sectionMemory, m.MemorySection},
		{sectionFunction, function},
		{sectionElement, element},
	}
	for _, s := range sections {
		out = append(out, s.id)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(s.body)))
	}
	out = append(out, headerEnd)
	for _, s := range sections {
		out = append(out, s.body...)
	}
	return out
}

// Decode parses a binary produced by Encode. It fails with
// InvalidFormatError on a wrong magic or version, an unknown or repeated
// section id, a length overrun, nonzero operand padding, or a truncated
// final section.
func Decode(data []byte) (*Module, error) {
	if len(data) < 3 || data[0] != magicByte0 || data[1] != magicByte1 {
		return nil, invalidFormat("bad magic bytes")
	}
	if data[2] != version1 {
		return nil, invalidFormat("unsupported version %#02x", data[2])
	}

	// Header TOC: [id:u8][length:u32-LE]... terminated by 0x00.
	pos := 3
	type section struct {
		id     byte
		length uint32
	}
	var toc []section
	seen := [5]bool{}
	for {
		if pos >= len(data) {
			return nil, invalidFormat("unterminated section header")
		}
		id := data[pos]
		pos++
		if id == headerEnd {
			break
		}
		if id > sectionElement {
			return nil, invalidFormat("unknown section id %#02x", id)
		}
		if seen[id] {
			return nil, invalidFormat("repeated section id %#02x", id)
		}
		seen[id] = true
		if pos+4 > len(data) {
			return nil, invalidFormat("truncated section header")
		}
		toc = append(toc, section{id: id, length: binary.LittleEndian.Uint32(data[pos:])})
		pos += 4
	}

	m := &Module{}
	for _, s := range toc {
		if uint64(pos)+uint64(s.length) > uint64(len(data)) {
			return nil, invalidFormat("section %#02x overruns the binary", s.id)
		}
		body := data[pos : pos+int(s.length)]
		pos += int(s.length)
		switch s.id {
		case sectionCode:
			if s.length%isa.SlotSize != 0 {
				return nil, invalidFormat("code section length %d is not a multiple of %d",
					s.length, isa.SlotSize)
			}
			m.Code = make([]isa.Instruction, 0, s.length/isa.SlotSize)
			for off := 0; off < len(body); off += isa.SlotSize {
				instr, err := isa.DecodeSlot(body[off:])
				if err != nil {
					return nil, invalidFormat("instruction %d: %v", off/isa.SlotSize, err)
				}
				m.Code = append(m.Code, instr)
			}
		case sectionMemory:
			m.MemorySection = append([]byte(nil), body...)
		case sectionFunction:
			if s.length%4 != 0 {
				return nil, invalidFormat("function section length %d is not a multiple of 4", s.length)
			}
			m.FuncLengths = make([]uint32, 0, s.length/4)
			for off := 0; off < len(body); off += 4 {
				m.FuncLengths = append(m.FuncLengths, binary.LittleEndian.Uint32(body[off:]))
			}
		case sectionElement:
			if s.length%4 != 0 {
				return nil, invalidFormat("element section length %d is not a multiple of 4", s.length)
			}
			m.ElementSection = make([]uint32, 0, s.length/4)
			for off := 0; off < len(body); off += 4 {
				m.ElementSection = append(m.ElementSection, binary.LittleEndian.Uint32(body[off:]))
			}
		}
	}
	if pos != len(data) {
		return nil, invalidFormat("%d trailing bytes after final section", len(data)-pos)
	}
	if err := m.Validate(); err != nil {
		return nil, invalidFormat("%v", err)
	}
	return m, nil
}
