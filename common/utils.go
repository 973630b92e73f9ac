package common

import "github.com/go-gl/mathgl/mgl32"

type Vec3 = mgl32.Vec3
type Vec4 = mgl32.Vec4
type Mat4 = mgl32.Mat4

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AssertTrue panics when an internal invariant does not hold.
func AssertTrue(ok bool, msg ...string) {
	if !ok {
		if len(msg) > 0 {
			panic(msg[0])
		}
		panic("assertion failed")
	}
}
