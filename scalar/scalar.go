// Package scalar provides stateless numeric helpers shared by the camera
// and view code.
package scalar

import (
	"golang.org/x/exp/constraints"
)

// Clamp limits value to [min, max]. max is checked first, so inverted
// bounds return max.
func Clamp[T constraints.Ordered](value, min, max T) T {
	if value >= max {
		return max
	} else if value <= min {
		return min
	}
	return value
}

// Lerp interpolates linearly between min and max. d is not clamped.
func Lerp[T constraints.Float](min, max, d T) T {
	return min + (max-min)*d
}

// InverseLerp returns the d for which Lerp(min, max, d) == l.
// min == max gives NaN or Inf.
func InverseLerp[T constraints.Float](min, max, l T) T {
	return (l - min) / (max - min)
}
