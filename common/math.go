package common

import (
	"cmp"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Next returns the index after i in a ring of n.
func Next[T IT](i, n T) T {
	if i+1 < n {
		return i + 1
	}
	return 0
}

func Sqr[T IT](a T) T {
	return a * a
}

// Clamp returns value limited to [minInclusive, maxInclusive].
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	d := float32(math.Mod(float64(deg), 360))
	if d < 0 {
		d += 360
	}
	// a tiny negative angle rounds up to 360 in float32
	if d >= 360 {
		d = 0
	}
	return d
}

func IsFinite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}

// Project maps a world position to window coordinates with y growing
// downwards, the convention touch and text use.
func Project(obj Vec3, modelview, projection Mat4, width, height int) Vec3 {
	res := mgl32.Project(obj, modelview, projection, 0, 0, width, height)
	res[1] = float32(height) - res[1]
	return res
}
