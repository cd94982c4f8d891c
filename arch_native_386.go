//go:build 386

package nocrt

// NativeArch is the architecture of the compilation target.
const NativeArch = ArchX86
