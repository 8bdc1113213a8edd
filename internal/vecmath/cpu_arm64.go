//go:build arm64

package vecmath

import "golang.org/x/sys/cpu"

func capabilities() string {
	if cpu.ARM64.HasASIMD {
		return "neon"
	}
	return "scalar"
}
