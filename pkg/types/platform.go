package types

import "fmt"

// -----------------------------------------------------------------------------
// Platform families
// -----------------------------------------------------------------------------

// OsFamily enumerates the operating system families the profiler recognises.
type OsFamily int

const (
	UnknownOS OsFamily = iota
	Windows
	Linux
	MacOS
	Solaris
	FreeBSD
	OpenBSD
	NetBSD
	DragonFlyBSD
)

// String implements the Stringer interface for OsFamily.
func (o OsFamily) String() string {
	switch o {
	case UnknownOS:
		return "unknown"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case Solaris:
		return "solaris"
	case FreeBSD:
		return "freebsd"
	case OpenBSD:
		return "openbsd"
	case NetBSD:
		return "netbsd"
	case DragonFlyBSD:
		return "dragonflybsd"
	default:
		return fmt.Sprintf("OsFamily(%d)", int(o))
	}
}

// ArchFamily enumerates CPU architecture families.
type ArchFamily int

const (
	UnknownArch ArchFamily = iota
	X86
	X86_64
	ARM
	AARCH64
	PowerPC
	PowerPC64
	MIPS
	MIPS64
	S390X
	SPARC64
)

// String implements the Stringer interface for ArchFamily.
func (a ArchFamily) String() string {
	switch a {
	case UnknownArch:
		return "unknown"
	case X86:
		return "x86"
	case X86_64:
		return "x86_64"
	case ARM:
		return "arm"
	case AARCH64:
		return "aarch64"
	case PowerPC:
		return "powerpc"
	case PowerPC64:
		return "powerpc64"
	case MIPS:
		return "mips"
	case MIPS64:
		return "mips64"
	case S390X:
		return "s390x"
	case SPARC64:
		return "sparc64"
	default:
		return fmt.Sprintf("ArchFamily(%d)", int(a))
	}
}

// Profile is the immutable (OS, architecture) pair describing the host.
type Profile struct {
	OS   OsFamily   `json:"os"`
	Arch ArchFamily `json:"arch"`
}

func (p Profile) String() string {
	return p.OS.String() + "/" + p.Arch.String()
}
