//go:build !amd64 && !386 && !arm && !arm64 && !riscv64

package nocrt

// NativeArch is the architecture of the compilation target. Foreign targets
// can still generate stubs for every supported architecture; only the native
// alias is unavailable.
const NativeArch = ArchUnknown
