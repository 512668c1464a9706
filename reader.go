package elfit

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrMagic  = errors.New("elf: magic bytes not found")
	ErrClass  = errors.New("elf: invalid class")
	ErrEndian = errors.New("elf: invalid endianness")
)

// TooShortError reports a buffer too small for the structure being
// decoded, carrying the number of bytes that were left.
type TooShortError struct {
	Remain int
}

func (e TooShortError) Error() string {
	return fmt.Sprintf("elf: %d byte(s) remaining, not enough to decode", e.Remain)
}

// Reader decodes fixed-width integers from a byte slice, advancing an
// internal cursor and latching the first error it meets. Subsequent
// reads after an error return zero and keep the error untouched, so a
// run of reads can be checked once via Err.
type Reader struct {
	data  []byte
	pos   int
	order Endianness
	err   error
}

func NewReader(data []byte, order Endianness) *Reader {
	return &Reader{data: data, order: order}
}

func (r *Reader) Seek(pos int) {
	if r.err != nil {
		return
	}
	if pos < 0 || pos > len(r.data) {
		r.err = TooShortError{Remain: len(r.data) - pos}
		return
	}
	r.pos = pos
}

func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Uint16() uint16 {
	bs := r.take(2)
	if bs == nil {
		return 0
	}
	if r.order == BigEndian {
		return binary.BigEndian.Uint16(bs)
	}
	return binary.LittleEndian.Uint16(bs)
}

func (r *Reader) Uint32() uint32 {
	bs := r.take(4)
	if bs == nil {
		return 0
	}
	if r.order == BigEndian {
		return binary.BigEndian.Uint32(bs)
	}
	return binary.LittleEndian.Uint32(bs)
}

func (r *Reader) Uint64() uint64 {
	bs := r.take(8)
	if bs == nil {
		return 0
	}
	if r.order == BigEndian {
		return binary.BigEndian.Uint64(bs)
	}
	return binary.LittleEndian.Uint64(bs)
}

// Addr reads an address-or-offset field whose on-disk width is fixed by
// the class, widened to 64 bits. An invalid class consumes no input.
func (r *Reader) Addr(class Class) uint64 {
	switch class {
	case Class32:
		return uint64(r.Uint32())
	case Class64:
		return r.Uint64()
	default:
		if r.err == nil {
			r.err = ErrClass
		}
		return 0
	}
}

// take validates the byte order and the remaining length before every
// read; neither is checked once and trusted after.
func (r *Reader) take(width int) []byte {
	if r.err != nil {
		return nil
	}
	if r.order != LittleEndian && r.order != BigEndian {
		r.err = ErrEndian
		return nil
	}
	if len(r.data)-r.pos < width {
		r.err = TooShortError{Remain: len(r.data) - r.pos}
		return nil
	}
	bs := r.data[r.pos : r.pos+width]
	r.pos += width
	return bs
}
