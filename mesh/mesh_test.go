package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec3(verts []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{verts[i*3], verts[i*3+1], verts[i*3+2]}
}

func TestSphereAllocSizes(t *testing.T) {
	var s Sphere
	require.NoError(t, s.Alloc(50))
	assert.Equal(t, 51*51*3*4, s.SizeV())
	assert.Equal(t, 51*51*3*4, s.SizeN())
	assert.Equal(t, 51*51*2*4, s.SizeT())
	assert.Equal(t, 50*50*6*2, s.SizeI())
	assert.Zero(t, s.SizeC())
	assert.Equal(t, 50, s.Tessellation())
}

func TestSphereTessellationRange(t *testing.T) {
	var s Sphere
	assert.True(t, errors.Is(s.Alloc(0), ErrTessellation))
	assert.True(t, errors.Is(s.Alloc(256), ErrTessellation))
	assert.False(t, s.Allocated())
	require.NoError(t, s.Alloc(MaxTessellation))
	require.NoError(t, s.Generate(1))
	for _, i := range s.Indices {
		assert.Less(t, int(i), 256*256)
	}
}

func TestSphereGenerate(t *testing.T) {
	var s Sphere
	require.NoError(t, s.Alloc(8))
	require.NoError(t, s.Generate(2))
	assert.Equal(t, float32(2), s.Radius())

	nverts := len(s.Vertices) / 3
	for i := 0; i < nverts; i++ {
		assert.InDelta(t, 2, vec3(s.Vertices, i).Len(), 1e-5)
		assert.InDelta(t, 1, vec3(s.Normals, i).Len(), 1e-5)
		u, v := s.Textures[i*2], s.Textures[i*2+1]
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
	// north pole first, south pole last
	assert.InDelta(t, 2, s.Vertices[1], 1e-6)
	assert.InDelta(t, -2, s.Vertices[len(s.Vertices)-2], 1e-6)
	for _, i := range s.Indices {
		assert.Less(t, int(i), nverts)
	}
}

func TestSphereGenerateNeedsAlloc(t *testing.T) {
	var s Sphere
	assert.Error(t, s.Generate(1))
}

func TestSphereFreeIsIdempotent(t *testing.T) {
	var s Sphere
	s.Free()
	require.NoError(t, s.Alloc(4))
	s.Free()
	s.Free()
	assert.False(t, s.Allocated())
	assert.Zero(t, s.SizeV())
	assert.Zero(t, s.SizeI())
}

func TestSphereReusesStorage(t *testing.T) {
	var s Sphere
	require.NoError(t, s.Alloc(10))
	first := &s.Vertices[0]
	s.Free()
	require.NoError(t, s.Alloc(10))
	assert.Same(t, first, &s.Vertices[0])

	s.Release()
	require.NoError(t, s.Alloc(10))
	assert.NotSame(t, first, &s.Vertices[0])
}

func TestGround(t *testing.T) {
	g := Ground(10, 2)
	assert.Len(t, g.Vertices, 9*3)
	assert.Len(t, g.Normals, 9*3)
	assert.Len(t, g.Textures, 9*2)
	assert.Len(t, g.Indices, 2*2*6)
	assert.Equal(t, []float32{-5, 0, -5}, g.Vertices[:3])
	assert.Equal(t, []float32{5, 0, 5}, g.Vertices[len(g.Vertices)-3:])

	assert.Len(t, Ground(1, 0).Indices, 6)
}

func TestCube(t *testing.T) {
	c := Cube(0.5)
	assert.Len(t, c.Vertices, 24*3)
	assert.Len(t, c.Colors, 24*4)
	assert.Len(t, c.Indices, 36)
	for i := 0; i < 24; i++ {
		for _, x := range vec3(c.Vertices, i) {
			assert.Equal(t, 0.5, math.Abs(float64(x)))
		}
	}
}

func TestQuad(t *testing.T) {
	q := Quad(0, 0, 2, 1)
	assert.Len(t, q, 24)
	assert.Equal(t, []float32{2, 1, 1, 0}, q[8:12])
}
