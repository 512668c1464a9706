package elfit

import (
	"encoding/binary"
)

// builder assembles synthetic ELF buffers for tests, honoring the
// declared class and byte order for every field it appends.
type builder struct {
	buf   []byte
	order binary.AppendByteOrder
	class Class
}

func newBuilder(class Class, order binary.AppendByteOrder) *builder {
	return &builder{order: order, class: class}
}

func (b *builder) raw(bs ...byte) *builder {
	b.buf = append(b.buf, bs...)
	return b
}

func (b *builder) u16(v uint16) *builder {
	b.buf = b.order.AppendUint16(b.buf, v)
	return b
}

func (b *builder) u32(v uint32) *builder {
	b.buf = b.order.AppendUint32(b.buf, v)
	return b
}

func (b *builder) u64(v uint64) *builder {
	b.buf = b.order.AppendUint64(b.buf, v)
	return b
}

func (b *builder) addr(v uint64) *builder {
	if b.class == Class32 {
		return b.u32(uint32(v))
	}
	return b.u64(v)
}

func (b *builder) ident() *builder {
	var order byte = 1
	if b.order == binary.BigEndian {
		order = 2
	}
	b.raw(0x7F, 'E', 'L', 'F')
	b.raw(byte(b.class), order, 1, 0, 0)
	return b.raw(0, 0, 0, 0, 0, 0, 0)
}

func (b *builder) headerSize() int {
	if b.class == Class32 {
		return 52
	}
	return 64
}

func (b *builder) phEntrySize() int {
	if b.class == Class32 {
		return 32
	}
	return 56
}

func (b *builder) shEntrySize() int {
	if b.class == Class32 {
		return 40
	}
	return 64
}

type headerSpec struct {
	Type    uint16
	Machine uint16
	Entry   uint64
	Flags   uint32
	PhCount uint16
	ShCount uint16
	Names   uint16
}

// fileHeader appends the main header with the program header table
// placed right after it and the section header table right after the
// program headers.
func (b *builder) fileHeader(h headerSpec) *builder {
	var (
		phOff uint64
		shOff uint64
	)
	if h.PhCount > 0 {
		phOff = uint64(b.headerSize())
	}
	if h.ShCount > 0 {
		shOff = uint64(b.headerSize()) + uint64(int(h.PhCount)*b.phEntrySize())
	}
	b.u16(h.Type)
	b.u16(h.Machine)
	b.u32(1)
	b.addr(h.Entry)
	b.addr(phOff)
	b.addr(shOff)
	b.u32(h.Flags)
	b.u16(uint16(b.headerSize()))
	b.u16(uint16(b.phEntrySize()))
	b.u16(h.PhCount)
	b.u16(uint16(b.shEntrySize()))
	b.u16(h.ShCount)
	return b.u16(h.Names)
}

func (b *builder) program(typ uint32, flags uint32, offset, vaddr, paddr, fsize, msize, align uint64) *builder {
	b.u32(typ)
	if b.class == Class64 {
		b.u32(flags)
	}
	b.addr(offset)
	b.addr(vaddr)
	b.addr(paddr)
	b.addr(fsize)
	b.addr(msize)
	if b.class == Class32 {
		b.u32(flags)
	}
	return b.addr(align)
}

func (b *builder) section(name, typ uint32, flags, addr, offset, size uint64, link, info uint32, align, entsize uint64) *builder {
	b.u32(name)
	b.u32(typ)
	b.addr(flags)
	b.addr(addr)
	b.addr(offset)
	b.addr(size)
	b.u32(link)
	b.u32(info)
	b.addr(align)
	return b.addr(entsize)
}

func (b *builder) bytes() []byte {
	return b.buf
}
