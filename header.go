package elfit

type FileType uint16

const (
	TypeNone FileType = iota
	TypeRelocatable
	TypeExecutable
	TypeSharedObject
	TypeCore
)

func (t FileType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRelocatable:
		return "relocatable file"
	case TypeExecutable:
		return "executable file"
	case TypeSharedObject:
		return "shared object"
	case TypeCore:
		return "core file"
	default:
		return "none"
	}
}

func (t FileType) Known() bool {
	return t <= TypeCore
}

type Machine uint16

const (
	MachineNone   Machine = 0
	MachineArm    Machine = 40
	MachineX86_64 Machine = 62
	MachineArm64  Machine = 183
	MachineRiscV  Machine = 243
)

func (m Machine) String() string {
	switch m {
	case MachineArm:
		return "arm"
	case MachineX86_64:
		return "x86_64"
	case MachineArm64:
		return "aarch64"
	case MachineRiscV:
		return "risc-v"
	default:
		return "none"
	}
}

// FileHeader is the main ELF file header. Sizes, counts and the string
// table index are kept exactly as found on disk; nothing is checked
// against the length of the underlying buffer.
type FileHeader struct {
	Ident      Ident
	Type       FileType
	Machine    Machine
	Version    uint32
	Entry      uint64
	PhOffset   uint64
	ShOffset   uint64
	Flags      uint32
	Size       uint16
	PhSize     uint16
	PhCount    uint16
	ShSize     uint16
	ShCount    uint16
	NamesIndex uint16
}

// EntryAddress reports the entrypoint of the file. A raw value of zero
// means the file has none.
func (h FileHeader) EntryAddress() (uint64, bool) {
	return h.Entry, h.Entry != 0
}

// decodeFileHeader decodes the header located at base, the first byte
// past the magic. Fields start after the identification block, which is
// 16 bytes from the start of the magic.
func decodeFileHeader(data []byte, base int) (FileHeader, error) {
	var hdr FileHeader

	id, err := decodeIdent(data, base)
	if err != nil {
		return hdr, err
	}
	hdr.Ident = id

	rs := NewReader(data, id.Order)
	rs.Seek(base + identSize - magicLen)

	hdr.Type = FileType(rs.Uint16())
	hdr.Machine = Machine(rs.Uint16())
	hdr.Version = rs.Uint32()

	hdr.Entry = rs.Addr(id.Class)
	hdr.PhOffset = rs.Addr(id.Class)
	hdr.ShOffset = rs.Addr(id.Class)

	hdr.Flags = rs.Uint32()
	hdr.Size = rs.Uint16()
	hdr.PhSize = rs.Uint16()
	hdr.PhCount = rs.Uint16()
	hdr.ShSize = rs.Uint16()
	hdr.ShCount = rs.Uint16()
	hdr.NamesIndex = rs.Uint16()

	if err := rs.Err(); err != nil {
		return hdr, err
	}
	if !hdr.Type.Known() {
		hdr.Type = TypeNone
	}
	switch hdr.Machine {
	case MachineArm, MachineX86_64, MachineArm64, MachineRiscV:
	default:
		hdr.Machine = MachineNone
	}
	return hdr, nil
}
