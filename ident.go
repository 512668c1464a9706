package elfit

const (
	identSize = 16
	minSize   = identSize - magicLen
)

type Class byte

const (
	ClassInvalid Class = iota
	Class32
	Class64
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return "invalid"
	}
}

// Width gives the on-disk size in bytes of an address or offset field.
func (c Class) Width() int {
	switch c {
	case Class32:
		return 4
	case Class64:
		return 8
	default:
		return 0
	}
}

type Endianness byte

const (
	EndianInvalid Endianness = iota
	LittleEndian
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little endian"
	case BigEndian:
		return "big endian"
	default:
		return "invalid"
	}
}

type Version byte

const (
	VersionInvalid Version = iota
	VersionCurrent
)

func (v Version) String() string {
	if v == VersionCurrent {
		return "current"
	}
	return "invalid"
}

type OsABI byte

const (
	ABIUnspecified OsABI = 0x00
	ABIHpUX        OsABI = 0x01
	ABINetBSD      OsABI = 0x02
	ABIGnu         OsABI = 0x03
	ABISolaris     OsABI = 0x06
	ABIAix         OsABI = 0x07
	ABIIrix        OsABI = 0x08
	ABIFreeBSD     OsABI = 0x09
	ABITru64       OsABI = 0x0A
	ABIModesto     OsABI = 0x0B
	ABIOpenBSD     OsABI = 0x0C
	ABIOpenVMS     OsABI = 0x0D
	ABINsk         OsABI = 0x0E
	ABIAros        OsABI = 0x0F
	ABIFenixOS     OsABI = 0x10
	ABICloudABI    OsABI = 0x11
	ABIOpenVOS     OsABI = 0x12
)

func (a OsABI) String() string {
	switch a {
	case ABIUnspecified:
		return "unspecified"
	case ABIHpUX:
		return "hp-ux"
	case ABINetBSD:
		return "netbsd"
	case ABIGnu:
		return "gnu/linux"
	case ABISolaris:
		return "solaris"
	case ABIAix:
		return "aix"
	case ABIIrix:
		return "irix"
	case ABIFreeBSD:
		return "freebsd"
	case ABITru64:
		return "tru64"
	case ABIModesto:
		return "modesto"
	case ABIOpenBSD:
		return "openbsd"
	case ABIOpenVMS:
		return "openvms"
	case ABINsk:
		return "nsk"
	case ABIAros:
		return "aros"
	case ABIFenixOS:
		return "fenixos"
	case ABICloudABI:
		return "cloudabi"
	case ABIOpenVOS:
		return "openvos"
	default:
		return "unspecified"
	}
}

// Ident holds the decoded identification block of an ELF file, magic
// bytes excluded. It is decoded byte by byte: trusting a bulk copy of
// the raw block would let invalid class or endianness values through.
type Ident struct {
	Class      Class
	Order      Endianness
	Version    Version
	ABI        OsABI
	ABIVersion byte
}

func decodeIdent(data []byte, offset int) (Ident, error) {
	var id Ident
	if len(data)-offset < minSize {
		return id, TooShortError{Remain: len(data) - offset}
	}
	switch c := Class(data[offset]); c {
	case Class32, Class64:
		id.Class = c
	default:
		return id, ErrClass
	}
	switch e := Endianness(data[offset+1]); e {
	case LittleEndian, BigEndian:
		id.Order = e
	default:
		return id, ErrEndian
	}
	if data[offset+2] == byte(VersionCurrent) {
		id.Version = VersionCurrent
	}
	switch a := OsABI(data[offset+3]); a {
	case ABIHpUX, ABINetBSD, ABIGnu, ABISolaris, ABIAix, ABIIrix,
		ABIFreeBSD, ABITru64, ABIModesto, ABIOpenBSD, ABIOpenVMS,
		ABINsk, ABIAros, ABIFenixOS, ABICloudABI, ABIOpenVOS:
		id.ABI = a
	default:
		id.ABI = ABIUnspecified
	}
	id.ABIVersion = data[offset+4]
	return id, nil
}
