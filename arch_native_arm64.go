//go:build arm64

package nocrt

// NativeArch is the architecture of the compilation target.
const NativeArch = ArchARM64
