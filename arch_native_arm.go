//go:build arm

package nocrt

// NativeArch is the architecture of the compilation target.
const NativeArch = ArchARM32
