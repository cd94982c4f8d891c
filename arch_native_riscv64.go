//go:build riscv64

package nocrt

// NativeArch is the architecture of the compilation target.
const NativeArch = ArchRiscv64
