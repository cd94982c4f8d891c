// Completion: 100% - Architecture identification complete
package nocrt

import (
	"fmt"
	"strings"
)

// Arch identifies one of the supported Linux architectures.
type Arch int

const (
	ArchUnknown Arch = iota
	ArchARM32
	ArchARM64
	ArchRiscv64
	ArchX86
	ArchX86_64
)

func (a Arch) String() string {
	switch a {
	case ArchARM32:
		return "arm"
	case ArchARM64:
		return "aarch64"
	case ArchRiscv64:
		return "riscv64"
	case ArchX86:
		return "x86"
	case ArchX86_64:
		return "x86_64"
	default:
		return "unknown"
	}
}

// Arches lists every supported architecture.
func Arches() []Arch {
	return []Arch{ArchARM32, ArchARM64, ArchRiscv64, ArchX86, ArchX86_64}
}

// ParseArch parses an architecture string (GOARCH values and the common GNU
// spellings are both accepted).
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "arm", "arm32", "armv7", "eabi":
		return ArchARM32, nil
	case "arm64", "aarch64":
		return ArchARM64, nil
	case "riscv64", "riscv", "rv64":
		return ArchRiscv64, nil
	case "386", "x86", "i386", "i686":
		return ArchX86, nil
	case "amd64", "x86_64", "x86-64":
		return ArchX86_64, nil
	default:
		return ArchUnknown, fmt.Errorf("unsupported architecture: %s (supported: arm, arm64, riscv64, 386, amd64)", s)
	}
}

// PointerBits returns the width of a machine word on the architecture.
func (a Arch) PointerBits() int {
	switch a {
	case ArchARM32, ArchX86:
		return 32
	default:
		return 64
	}
}
