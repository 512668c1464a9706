package elfit

import (
	"fmt"
	"strings"
)

type SegmentType uint32

const (
	SegNull SegmentType = iota
	SegLoad
	SegDynamic
	SegInterp
	SegNote
	SegShLib
	SegPhdr
	SegTLS
)

const (
	SegGnuEhFrame  SegmentType = 0x6474E550
	SegGnuStack    SegmentType = 0x6474E551
	SegGnuRelro    SegmentType = 0x6474E552
	SegGnuProperty SegmentType = 0x6474E553
)

// Known reports whether the type is part of the documented set, base
// types and GNU extensions included. Vendor codes outside of it keep
// their raw value.
func (s SegmentType) Known() bool {
	switch s {
	case SegNull, SegLoad, SegDynamic, SegInterp, SegNote, SegShLib, SegPhdr, SegTLS:
		return true
	case SegGnuEhFrame, SegGnuStack, SegGnuRelro, SegGnuProperty:
		return true
	default:
		return false
	}
}

func (s SegmentType) String() string {
	switch s {
	case SegNull:
		return "NULL"
	case SegLoad:
		return "LOAD"
	case SegDynamic:
		return "DYNAMIC"
	case SegInterp:
		return "INTERP"
	case SegNote:
		return "NOTE"
	case SegShLib:
		return "SHLIB"
	case SegPhdr:
		return "PHDR"
	case SegTLS:
		return "TLS"
	case SegGnuEhFrame:
		return "GNU_EH_FRAME"
	case SegGnuStack:
		return "GNU_STACK"
	case SegGnuRelro:
		return "GNU_RELRO"
	case SegGnuProperty:
		return "GNU_PROPERTY"
	default:
		return fmt.Sprintf("UNKNOWN(%#08x)", uint32(s))
	}
}

type SegmentFlags uint32

const (
	SegmentExecutable SegmentFlags = 0x1
	SegmentWritable   SegmentFlags = 0x2
	SegmentReadable   SegmentFlags = 0x4
)

func (f SegmentFlags) Has(bits SegmentFlags) bool {
	return f&bits == bits
}

// Other gives back the bits that carry no documented meaning. They are
// kept as read, never masked away.
func (f SegmentFlags) Other() SegmentFlags {
	return f &^ (SegmentExecutable | SegmentWritable | SegmentReadable)
}

func (f SegmentFlags) String() string {
	var buf strings.Builder
	if f.Has(SegmentReadable) {
		buf.WriteByte('R')
	}
	if f.Has(SegmentWritable) {
		buf.WriteByte('W')
	}
	if f.Has(SegmentExecutable) {
		buf.WriteByte('E')
	}
	if other := f.Other(); other != 0 {
		fmt.Fprintf(&buf, "+%#x", uint32(other))
	}
	return buf.String()
}

type ProgramHeader struct {
	Type         SegmentType
	Flags        SegmentFlags
	Offset       uint64
	VirtualAddr  uint64
	PhysicalAddr uint64
	FileSize     uint64
	MemSize      uint64
	Alignment    uint64
}

// decodeProgramHeader decodes the table entry starting at offset. The
// position of the flags word depends on the class: 64-bit files keep it
// right after the type, 32-bit files between memory size and alignment.
func decodeProgramHeader(id Ident, data []byte, offset int) (ProgramHeader, error) {
	var (
		ph = ProgramHeader{}
		rs = NewReader(data, id.Order)
	)
	rs.Seek(offset)

	ph.Type = SegmentType(rs.Uint32())
	if id.Class == Class64 {
		ph.Flags = SegmentFlags(rs.Uint32())
	}
	ph.Offset = rs.Addr(id.Class)
	ph.VirtualAddr = rs.Addr(id.Class)
	ph.PhysicalAddr = rs.Addr(id.Class)
	ph.FileSize = rs.Addr(id.Class)
	ph.MemSize = rs.Addr(id.Class)
	if id.Class == Class32 {
		ph.Flags = SegmentFlags(rs.Uint32())
	}
	ph.Alignment = rs.Addr(id.Class)

	return ph, rs.Err()
}
