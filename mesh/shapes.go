package mesh

// Static is geometry built once and uploaded once.
type Static struct {
	Vertices []float32
	Colors   []float32
	Normals  []float32
	Textures []float32
	Indices  []uint16
}

// Ground returns a size x size plane at y=0 facing up, split into cells
// quads so per-vertex lighting has something to interpolate. Texture
// coordinates repeat once per cell.
func Ground(size float32, cells int) *Static {
	if cells < 1 {
		cells = 1
	}
	g := &Static{}
	half := size / 2
	step := size / float32(cells)
	for i := 0; i <= cells; i++ {
		for j := 0; j <= cells; j++ {
			x := -half + float32(j)*step
			z := -half + float32(i)*step
			g.Vertices = append(g.Vertices, x, 0, z)
			g.Normals = append(g.Normals, 0, 1, 0)
			g.Textures = append(g.Textures, float32(j), float32(i))
		}
	}
	row := cells + 1
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			a := uint16(i*row + j)
			b := uint16((i+1)*row + j)
			g.Indices = append(g.Indices, a, b, a+1, b, b+1, a+1)
		}
	}
	return g
}

var cubeFaces = []struct {
	normal [3]float32
	color  [4]float32
	corner [4][3]float32
}{
	{[3]float32{0, 0, 1}, [4]float32{1, 0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4]float32{0, 1, 0, 1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{[3]float32{-1, 0, 0}, [4]float32{0, 0, 1, 1}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{1, 0, 0}, [4]float32{1, 1, 0, 1}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{[3]float32{0, 1, 0}, [4]float32{0, 1, 1, 1}, [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4]float32{1, 0, 1, 1}, [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
}

// Cube returns a cube of half extent `half` with per-face normals, colors
// and texture coordinates.
func Cube(half float32) *Static {
	c := &Static{}
	uv := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	for f, face := range cubeFaces {
		for k, p := range face.corner {
			c.Vertices = append(c.Vertices, p[0]*half, p[1]*half, p[2]*half)
			c.Normals = append(c.Normals, face.normal[:]...)
			c.Colors = append(c.Colors, face.color[:]...)
			c.Textures = append(c.Textures, uv[k][:]...)
		}
		base := uint16(f * 4)
		c.Indices = append(c.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return c
}

// Quad returns a unit quad in the xy plane, interleaved as x, y, u, v, for
// DrawArrays with TRIANGLES.
func Quad(x0, y0, x1, y1 float32) []float32 {
	return []float32{
		x0, y0, 0, 1,
		x1, y0, 1, 1,
		x1, y1, 1, 0,
		x0, y0, 0, 1,
		x1, y1, 1, 0,
		x0, y1, 0, 0,
	}
}
