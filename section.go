package elfit

import (
	"fmt"
	"strings"
)

type SectionType uint32

const (
	SectNull SectionType = iota
	SectProgBits
	SectSymTab
	SectStrTab
	SectRela
	SectHash
	SectDynamic
	SectNote
	SectNoBits
	SectRel
	SectShLib
	SectDynSym
)

const (
	SectInitArray    SectionType = 14
	SectFiniArray    SectionType = 15
	SectPreInitArray SectionType = 16
	SectGroup        SectionType = 17
	SectSymTabIndex  SectionType = 81
)

func (s SectionType) Known() bool {
	switch {
	case s <= SectDynSym:
		return true
	case s >= SectInitArray && s <= SectGroup:
		return true
	case s == SectSymTabIndex:
		return true
	default:
		return false
	}
}

func (s SectionType) String() string {
	switch s {
	case SectNull:
		return "NULL"
	case SectProgBits:
		return "PROGBITS"
	case SectSymTab:
		return "SYMTAB"
	case SectStrTab:
		return "STRTAB"
	case SectRela:
		return "RELA"
	case SectHash:
		return "HASH"
	case SectDynamic:
		return "DYNAMIC"
	case SectNote:
		return "NOTE"
	case SectNoBits:
		return "NOBITS"
	case SectRel:
		return "REL"
	case SectShLib:
		return "SHLIB"
	case SectDynSym:
		return "DYNSYM"
	case SectInitArray:
		return "INIT_ARRAY"
	case SectFiniArray:
		return "FINI_ARRAY"
	case SectPreInitArray:
		return "PREINIT_ARRAY"
	case SectGroup:
		return "GROUP"
	case SectSymTabIndex:
		return "SYMTAB_SHNDX"
	default:
		return fmt.Sprintf("UNKNOWN(%#08x)", uint32(s))
	}
}

type SectionFlags uint64

const (
	SectionWrite           SectionFlags = 0x1
	SectionAlloc           SectionFlags = 0x2
	SectionInstructions    SectionFlags = 0x4
	SectionMerge           SectionFlags = 0x10
	SectionStrings         SectionFlags = 0x20
	SectionInfoLink        SectionFlags = 0x40
	SectionLinkOrder       SectionFlags = 0x80
	SectionOsNonconforming SectionFlags = 0x100
	SectionGroup           SectionFlags = 0x200
	SectionTLS             SectionFlags = 0x400
	SectionCompressed      SectionFlags = 0x800
)

func (f SectionFlags) Has(bits SectionFlags) bool {
	return f&bits == bits
}

func (f SectionFlags) Other() SectionFlags {
	all := SectionWrite | SectionAlloc | SectionInstructions | SectionMerge |
		SectionStrings | SectionInfoLink | SectionLinkOrder |
		SectionOsNonconforming | SectionGroup | SectionTLS | SectionCompressed
	return f &^ all
}

func (f SectionFlags) String() string {
	names := []struct {
		bit  SectionFlags
		code byte
	}{
		{SectionWrite, 'W'},
		{SectionAlloc, 'A'},
		{SectionInstructions, 'X'},
		{SectionMerge, 'M'},
		{SectionStrings, 'S'},
		{SectionInfoLink, 'I'},
		{SectionLinkOrder, 'L'},
		{SectionOsNonconforming, 'O'},
		{SectionGroup, 'G'},
		{SectionTLS, 'T'},
		{SectionCompressed, 'C'},
	}
	var buf strings.Builder
	for _, n := range names {
		if f.Has(n.bit) {
			buf.WriteByte(n.code)
		}
	}
	if other := f.Other(); other != 0 {
		fmt.Fprintf(&buf, "+%#x", uint64(other))
	}
	return buf.String()
}

type SectionHeader struct {
	Name      uint32
	Type      SectionType
	Flags     SectionFlags
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	AddrAlign uint64
	EntSize   uint64
}

// decodeSectionHeader decodes the table entry starting at offset. The
// flags field is 4 or 8 bytes wide on disk depending on the class but
// always carries the 64-bit named bit set.
func decodeSectionHeader(id Ident, data []byte, offset int) (SectionHeader, error) {
	var (
		sh = SectionHeader{}
		rs = NewReader(data, id.Order)
	)
	rs.Seek(offset)

	sh.Name = rs.Uint32()
	sh.Type = SectionType(rs.Uint32())
	sh.Flags = SectionFlags(rs.Addr(id.Class))
	sh.Addr = rs.Addr(id.Class)
	sh.Offset = rs.Addr(id.Class)
	sh.Size = rs.Addr(id.Class)
	sh.Link = rs.Uint32()
	sh.Info = rs.Uint32()
	sh.AddrAlign = rs.Addr(id.Class)
	sh.EntSize = rs.Addr(id.Class)

	return sh, rs.Err()
}
