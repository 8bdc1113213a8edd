package wide

import "golang.org/x/exp/constraints"

// Element is the set of scalar types stored in wide lanes.
type Element interface {
	constraints.Integer | constraints.Float
}

// Splat returns a wide value of type V with every lane set to n.
//
//	limbs := wide.Splat[wide.U32x8](uint32(1) << 30)
func Splat[V ~[Lanes]E, E Element](n E) V {
	var result V
	for i := range result {
		result[i] = n
	}
	return result
}
