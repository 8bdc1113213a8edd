//go:build !386 && !amd64 && !arm64

package vecmath

func capabilities() string {
	return "scalar"
}
