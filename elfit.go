// Package elfit decodes the binary layout of ELF object files: the
// identification block, the file header and the program and section
// header tables, for both 32 and 64 bit files in either byte order.
// Symbol tables, relocations and dynamic linking information are left
// to other tools.
package elfit

import (
	"bytes"
	"os"
)

var Magic = []byte{0x7F, 'E', 'L', 'F'}

const magicLen = 4

// IsELF reports whether the buffer starts with the ELF magic bytes.
func IsELF(data []byte) bool {
	return bytes.HasPrefix(data, Magic)
}

// Image is a decoded view over a raw ELF buffer. It keeps a reference
// to the buffer given to Parse instead of copying it; the buffer must
// not be modified while the image is in use.
type Image struct {
	data []byte
	base int

	header   FileHeader
	programs []ProgramHeader
	sections []SectionHeader
}

// Parse locates the magic bytes in data and decodes the file header and
// both header tables. The first failure aborts the whole decode; a
// partial image is never returned.
func Parse(data []byte) (*Image, error) {
	ix := bytes.Index(data, Magic)
	if ix < 0 {
		return nil, ErrMagic
	}
	base := ix + magicLen
	if len(data)-base < minSize {
		return nil, TooShortError{Remain: len(data) - base}
	}
	hdr, err := decodeFileHeader(data, base)
	if err != nil {
		return nil, err
	}
	img := Image{
		data:   data,
		base:   base,
		header: hdr,
	}
	for i := 0; i < int(hdr.PhCount); i++ {
		offset := img.at(hdr.PhOffset) + i*int(hdr.PhSize)
		ph, err := decodeProgramHeader(hdr.Ident, data, offset)
		if err != nil {
			return nil, err
		}
		img.programs = append(img.programs, ph)
	}
	for i := 0; i < int(hdr.ShCount); i++ {
		offset := img.at(hdr.ShOffset) + i*int(hdr.ShSize)
		sh, err := decodeSectionHeader(hdr.Ident, data, offset)
		if err != nil {
			return nil, err
		}
		img.sections = append(img.sections, sh)
	}
	return &img, nil
}

// Open reads the whole file in memory and parses it.
func Open(file string) (*Image, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(data) < identSize {
		return nil, TooShortError{Remain: len(data)}
	}
	return Parse(data)
}

func (i *Image) Header() FileHeader {
	return i.header
}

func (i *Image) Programs() []ProgramHeader {
	return i.programs
}

func (i *Image) Sections() []SectionHeader {
	return i.sections
}

// SectionName resolves the name of section ix from the string table
// section named by the file header. It gives an empty string when the
// name can not be resolved, never an error.
func (i *Image) SectionName(ix int) string {
	if ix < 0 || ix >= len(i.sections) {
		return ""
	}
	names := int(i.header.NamesIndex)
	if names >= len(i.sections) {
		return ""
	}
	var (
		table = i.sections[names]
		start = i.at(table.Offset)
		end   = start + int(table.Size)
	)
	if start < 0 || end > len(i.data) || start > end {
		return ""
	}
	var (
		strs = i.data[start:end]
		name = int(i.sections[ix].Name)
	)
	if name >= len(strs) {
		return ""
	}
	if x := bytes.IndexByte(strs[name:], 0); x >= 0 {
		return string(strs[name : name+x])
	}
	return string(strs[name:])
}

// at converts a file offset found in a header into an index in the
// buffer. Offsets are relative to the start of the magic, which is not
// always the start of the buffer.
func (i *Image) at(offset uint64) int {
	return i.base - magicLen + int(offset)
}
