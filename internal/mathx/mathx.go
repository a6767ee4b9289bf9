// Package mathx holds the floating-point comparison used throughout the
// measure computations. Entropies and correlations come out of log2 sums,
// so equality checks must tolerate accumulated rounding.
package mathx

import "math"

// Tolerances for Close. Absolute dominates near zero (where independence
// checks happen), relative covers larger entropy values.
const (
	absTol = 1e-9
	relTol = 1e-7
)

// Close reports whether a and b are equal within a fixed tolerance.
func Close(a, b float64) bool {
	return math.Abs(a-b) <= absTol+relTol*math.Abs(b)
}
