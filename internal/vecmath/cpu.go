package vecmath

// Capabilities names the widest vector extension the running CPU offers.
// The engine is written against fixed eight-lane types that the compiler
// lowers to whatever this reports; the value is informational.
func Capabilities() string {
	return capabilities()
}
