// Package weighted implements cumulative-threshold weighted selection,
// shared by room resolution, the fishing tables and the wishing well.
package weighted

// Threshold pairs a candidate with its cumulative upper bound in [0,1]
type Threshold[T any] struct {
	Value T
	Bound float64
}

// Pick returns the first candidate whose cumulative upper bound exceeds
// the draw r. Bounds above 1 are treated as 1. When the draw falls past
// every threshold it lands in the caller's residual case, signalled by
// ok == false. Pure: deterministic given r and the thresholds.
func Pick[T any](r float64, thresholds []Threshold[T]) (value T, ok bool) {
	for _, t := range thresholds {
		bound := t.Bound
		if bound > 1 {
			bound = 1
		}
		if r < bound {
			return t.Value, true
		}
	}

	var zero T
	return zero, false
}
