package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWrapDegrees(t *testing.T) {
	assert.Equal(t, float32(30), WrapDegrees(390))
	assert.Equal(t, float32(270), WrapDegrees(-90))
	assert.Equal(t, float32(0), WrapDegrees(360))
	for _, deg := range []float32{-1e-6, -1e-9, -360.00001} {
		d := WrapDegrees(deg)
		assert.GreaterOrEqual(t, d, float32(0))
		assert.Less(t, d, float32(360), "%v", deg)
	}
}

func TestClampAndNext(t *testing.T) {
	assert.Equal(t, 3, Clamp(7, 0, 3))
	assert.Equal(t, float32(-1), Clamp(float32(-2), -1, 1))
	assert.Equal(t, 0, Next(6, 7))
	assert.Equal(t, 4, Next(3, 7))
}

func TestColorb(t *testing.T) {
	c := RGBA(255, 0, 51, 255)
	assert.Equal(t, [4]float32{1, 0, 0.2, 1}, c.Floats())
}

func TestProject(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	center := Project(Vec3{0, 0, 0}, view, proj, 200, 100)
	assert.InDelta(t, 100, center.X(), 1e-3)
	assert.InDelta(t, 50, center.Y(), 1e-3)

	above := Project(Vec3{0, 1, 0}, view, proj, 200, 100)
	assert.Less(t, above.Y(), center.Y(), "y grows downwards")
}

func TestAssertTrue(t *testing.T) {
	assert.NotPanics(t, func() { AssertTrue(true) })
	assert.PanicsWithValue(t, "boom", func() { AssertTrue(false, "boom") })
}
