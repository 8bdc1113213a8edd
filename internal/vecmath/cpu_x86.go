//go:build 386 || amd64

package vecmath

import "golang.org/x/sys/cpu"

func capabilities() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.X86.HasSSE41:
		return "sse4.1"
	case cpu.X86.HasSSE2:
		return "sse2"
	default:
		return "scalar"
	}
}
