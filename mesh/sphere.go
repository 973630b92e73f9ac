package mesh

import (
	"errors"
	"fmt"
	"math"

	"glscene/common"
)

const (
	MinTessellation = 1
	// MaxTessellation keeps (p+1)^2 vertices addressable by uint16 indices.
	MaxTessellation = 255

	floatSize  = 4
	ushortSize = 2
)

var ErrTessellation = errors.New("tessellation out of range")

// Sphere holds the host-side buffers of a latitude/longitude sphere. The
// buffers are sized by Alloc, filled by Generate and released by Free; the
// backing arrays are kept between Free and the next Alloc of the same size
// so a sphere drawn every frame does not allocate every frame.
type Sphere struct {
	Vertices []float32
	Normals  []float32
	Textures []float32
	Colors   []float32
	Indices  []uint16

	p      int
	radius float32

	spare struct {
		vertices, normals, textures []float32
		indices                     []uint16
	}
}

// Alloc sizes the buffers for tessellation p: (p+1)^2 vertices with a
// normal and a texture coordinate each, and p*p*6 indices. Colors are
// left empty. Calling Alloc twice without Free keeps the existing buffers
// when p is unchanged.
func (s *Sphere) Alloc(p int) error {
	if p < MinTessellation || p > MaxTessellation {
		return fmt.Errorf("%w: p=%d not in [%d,%d]", ErrTessellation, p, MinTessellation, MaxTessellation)
	}
	if s.Allocated() && s.p == p {
		return nil
	}
	n := (p + 1) * (p + 1)
	s.Vertices = reuse(s.spare.vertices, n*3)
	s.Normals = reuse(s.spare.normals, n*3)
	s.Textures = reuse(s.spare.textures, n*2)
	s.Indices = reuse(s.spare.indices, p*p*6)
	s.Colors = nil
	s.p = p
	return nil
}

func reuse[T float32 | uint16](buf []T, n int) []T {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Allocated reports whether Alloc was called since the last Free.
func (s *Sphere) Allocated() bool {
	return s.Vertices != nil
}

// Generate fills the allocated buffers for a sphere of the given radius
// centred at the origin. Texture u runs with longitude, v from the north
// pole (0) to the south pole (1).
func (s *Sphere) Generate(radius float32) error {
	if !s.Allocated() {
		return errors.New("sphere buffers not allocated")
	}
	p := s.p
	s.radius = radius
	v, n, t := 0, 0, 0
	for i := 0; i <= p; i++ {
		theta := float64(i) * math.Pi / float64(p)
		sinT, cosT := math.Sincos(theta)
		for j := 0; j <= p; j++ {
			phi := float64(j) * 2 * math.Pi / float64(p)
			sinP, cosP := math.Sincos(phi)
			nx := float32(cosP * sinT)
			ny := float32(cosT)
			nz := float32(sinP * sinT)
			s.Normals[n], s.Normals[n+1], s.Normals[n+2] = nx, ny, nz
			s.Vertices[v], s.Vertices[v+1], s.Vertices[v+2] = radius*nx, radius*ny, radius*nz
			s.Textures[t] = float32(j) / float32(p)
			s.Textures[t+1] = float32(i) / float32(p)
			v, n, t = v+3, n+3, t+2
		}
	}
	k := 0
	row := p + 1
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			first := uint16(i*row + j)
			second := uint16((i+1)*row + j)
			s.Indices[k] = first
			s.Indices[k+1] = second
			s.Indices[k+2] = first + 1
			s.Indices[k+3] = second
			s.Indices[k+4] = second + 1
			s.Indices[k+5] = first + 1
			k += 6
		}
	}
	common.AssertTrue(k == len(s.Indices), "sphere index count")
	return nil
}

// Free releases the buffers. It may be called on a sphere that was never
// allocated or was already freed.
func (s *Sphere) Free() {
	if !s.Allocated() {
		return
	}
	s.spare.vertices = s.Vertices[:0]
	s.spare.normals = s.Normals[:0]
	s.spare.textures = s.Textures[:0]
	s.spare.indices = s.Indices[:0]
	s.Vertices, s.Normals, s.Textures, s.Colors, s.Indices = nil, nil, nil, nil, nil
	s.p = 0
}

// Release drops the buffers together with the retained backing arrays.
func (s *Sphere) Release() {
	s.Free()
	s.spare.vertices, s.spare.normals, s.spare.textures, s.spare.indices = nil, nil, nil, nil
}

func (s *Sphere) Tessellation() int { return s.p }

func (s *Sphere) Radius() float32 { return s.radius }

func (s *Sphere) SizeV() int { return len(s.Vertices) * floatSize }
func (s *Sphere) SizeN() int { return len(s.Normals) * floatSize }
func (s *Sphere) SizeT() int { return len(s.Textures) * floatSize }
func (s *Sphere) SizeC() int { return len(s.Colors) * floatSize }
func (s *Sphere) SizeI() int { return len(s.Indices) * ushortSize }
