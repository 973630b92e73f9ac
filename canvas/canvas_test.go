package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/glapi"
	"glscene/glapi/glapitest"
	"glscene/mesh"
)

const (
	vs = "attribute vec4 a_Position; void main() { gl_Position = a_Position; }"
	fs = "precision mediump float; void main() { gl_FragColor = vec4(1.0); }"
)

func TestCreateShader(t *testing.T) {
	ctx := glapitest.NewRecorder()
	s, err := CreateShader(ctx, glapi.VERTEX_SHADER, vs)
	require.NoError(t, err)
	assert.NotZero(t, s)
	assert.True(t, ctx.Shaders[s])
}

func TestCreateShaderCompileError(t *testing.T) {
	ctx := glapitest.NewRecorder()
	ctx.FailCompile = "gl_Position"
	s, err := CreateShader(ctx, glapi.VERTEX_SHADER, vs)
	assert.Zero(t, s)
	assert.True(t, errors.Is(err, ErrCompile))
	assert.Contains(t, err.Error(), "failed to compile")
	assert.Empty(t, ctx.Shaders, "failed shader must be deleted")
}

func TestCreateShaderNoObject(t *testing.T) {
	ctx := glapitest.NewRecorder()
	ctx.NoCreate = true
	s, err := CreateShader(ctx, glapi.FRAGMENT_SHADER, fs)
	assert.Zero(t, s)
	assert.Equal(t, ErrCreateShader, err)
	assert.Zero(t, ctx.Count("CompileShader"))
}

func TestNewProgramReleasesShaders(t *testing.T) {
	ctx := glapitest.NewRecorder()
	p, err := NewProgram(ctx, vs, fs)
	require.NoError(t, err)
	assert.True(t, ctx.Programs[p])
	assert.Empty(t, ctx.Shaders)
	assert.Equal(t, 2, ctx.Count("AttachShader"))
	assert.Equal(t, 1, ctx.Count("LinkProgram"))
}

func TestNewProgramFragmentFailure(t *testing.T) {
	ctx := glapitest.NewRecorder()
	ctx.FailCompile = "gl_FragColor"
	p, err := NewProgram(ctx, vs, fs)
	assert.Zero(t, p)
	assert.True(t, errors.Is(err, ErrCompile))
	assert.Empty(t, ctx.Shaders, "vertex shader must not leak")
	assert.Zero(t, ctx.Count("CreateProgram"))
}

func TestNewProgramLinkFailure(t *testing.T) {
	ctx := glapitest.NewRecorder()
	ctx.FailLink = true
	p, err := NewProgram(ctx, vs, fs)
	assert.Zero(t, p)
	assert.True(t, errors.Is(err, ErrLink))
	assert.Empty(t, ctx.Programs)
	assert.Empty(t, ctx.Shaders)
}

func TestVBOLayout(t *testing.T) {
	ctx := glapitest.NewRecorder()
	v := NewVBO()
	vertices := make([]float32, 9)
	normals := make([]float32, 9)
	textures := make([]float32, 6)
	indices := []uint16{0, 1, 2}
	v.Upload(ctx, vertices, nil, normals, textures, indices)

	assert.Equal(t, 0, v.Offset(BlockVertex))
	assert.Equal(t, 36, v.Offset(BlockColor))
	assert.Equal(t, 0, v.Size(BlockColor))
	assert.Equal(t, 36, v.Offset(BlockNormal))
	assert.Equal(t, 72, v.Offset(BlockTexture))
	assert.Equal(t, 6, v.SizeI())
	assert.Equal(t, 3, v.IndexCount())

	assert.Equal(t, 96, ctx.BufferSizes[v.VertexBuffer])
	assert.Equal(t, 6, ctx.BufferSizes[v.IndexBuffer])
	// the empty color block is not uploaded
	assert.Equal(t, 3, ctx.Count("BufferSubData"))
}

func TestVBOUploadSphere(t *testing.T) {
	var s mesh.Sphere
	require.NoError(t, s.Alloc(6))
	require.NoError(t, s.Generate(1.5))
	ctx := glapitest.NewRecorder()
	v := NewVBO()
	v.Upload(ctx, s.Vertices, s.Colors, s.Normals, s.Textures, s.Indices)

	assert.Equal(t, s.SizeV(), v.Offset(BlockNormal))
	assert.Equal(t, s.SizeV()+s.SizeN(), v.Offset(BlockTexture))
	assert.Equal(t, s.SizeV()+s.SizeN()+s.SizeT(), ctx.BufferSizes[v.VertexBuffer])
	assert.Equal(t, s.Vertices, ctx.Float32s(v.VertexBuffer, v.Offset(BlockVertex), len(s.Vertices)))
	assert.Equal(t, s.Normals, ctx.Float32s(v.VertexBuffer, v.Offset(BlockNormal), len(s.Normals)))
	assert.Equal(t, s.Textures, ctx.Float32s(v.VertexBuffer, v.Offset(BlockTexture), len(s.Textures)))
	assert.Equal(t, 6*6*6, v.IndexCount())
	assert.Equal(t, s.Indices, ctx.Uint16s(v.IndexBuffer, 0, v.IndexCount()))

	// a smaller sphere overwrites the same names with the new layout
	require.NoError(t, s.Alloc(2))
	require.NoError(t, s.Generate(1))
	v.Upload(ctx, s.Vertices, s.Colors, s.Normals, s.Textures, s.Indices)
	assert.Equal(t, s.Normals, ctx.Float32s(v.VertexBuffer, v.Offset(BlockNormal), len(s.Normals)))
	assert.Equal(t, s.Indices, ctx.Uint16s(v.IndexBuffer, 0, v.IndexCount()))
}

func TestVBOReuploadDoesNotLeak(t *testing.T) {
	ctx := glapitest.NewRecorder()
	v := NewVBO()
	for frame := 0; frame < 5; frame++ {
		v.Upload(ctx, make([]float32, 3*(frame+1)), nil, nil, nil, make([]uint16, frame+1))
	}
	assert.Equal(t, 2, ctx.Count("CreateBuffer"))
	assert.Len(t, ctx.Buffers, 2)
	assert.Equal(t, 60, ctx.BufferSizes[v.VertexBuffer])

	v.Delete(ctx)
	v.Delete(ctx)
	assert.Empty(t, ctx.Buffers)
	assert.Equal(t, 2, ctx.Count("DeleteBuffer"))
	assert.Zero(t, v.IndexCount())
}

func TestVBOPointerAndDraw(t *testing.T) {
	ctx := glapitest.NewRecorder()
	v := NewVBO()
	v.Upload(ctx, make([]float32, 6), nil, make([]float32, 6), make([]float32, 4), []uint16{0, 1, 1, 0})
	ctx.Reset()

	v.Pointer(ctx, 2, BlockNormal, 3)
	v.Pointer(ctx, -1, BlockTexture, 2)
	v.DrawElements(ctx, glapi.LINES)

	ptr := ctx.Find("VertexAttribPointer")
	require.Len(t, ptr, 1)
	assert.Equal(t, []any{glapi.Attrib(2), 3, glapi.FLOAT, false, 0, 24}, ptr[0].Args)
	draw := ctx.Find("DrawElements")
	require.Len(t, draw, 1)
	assert.Equal(t, []any{glapi.LINES, 4, glapi.UNSIGNED_SHORT, 0}, draw[0].Args)
}

func TestArrayBuffer(t *testing.T) {
	ctx := glapitest.NewRecorder()
	ab := NewArrayBuffer(4, glapi.DYNAMIC_DRAW)
	ab.Draw(ctx, glapi.TRIANGLES)
	assert.Zero(t, ctx.Count("DrawArrays"))

	ab.Upload(ctx, make([]float32, 24))
	ab.Attrib(ctx, 1, 2, 2)
	ab.Draw(ctx, glapi.TRIANGLES)
	assert.Equal(t, 6, ab.Count())
	assert.Equal(t, []any{glapi.Attrib(1), 2, glapi.FLOAT, false, 16, 8}, ctx.Find("VertexAttribPointer")[0].Args)
	assert.Equal(t, []any{glapi.TRIANGLES, 0, 6}, ctx.Find("DrawArrays")[0].Args)

	ab.DrawRange(ctx, glapi.TRIANGLES, 3, 3)
	ab.DrawRange(ctx, glapi.TRIANGLES, 3, 4)
	require.Len(t, ctx.Find("DrawArrays"), 2, "out of range draws are dropped")
	assert.Equal(t, []any{glapi.TRIANGLES, 3, 3}, ctx.Find("DrawArrays")[1].Args)

	ab.Upload(ctx, make([]float32, 8))
	assert.Equal(t, 1, ctx.Count("CreateBuffer"))
	ab.Delete(ctx)
	assert.Empty(t, ctx.Buffers)
}

func TestToRGBAScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	same := ToRGBA(src, 0, 0)
	assert.Equal(t, image.Rect(0, 0, 4, 2), same.Bounds())
	scaled := ToRGBA(src, 8, 8)
	assert.Equal(t, image.Rect(0, 0, 8, 8), scaled.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, scaled.RGBAAt(4, 4))
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	require.NoError(t, f.Close())

	ctx := glapitest.NewRecorder()
	tex, err := LoadTexture(ctx, 0, path, 16, 16)
	require.NoError(t, err)
	assert.True(t, ctx.Textures[tex])
	img := ctx.Find("TexImage2D")
	require.Len(t, img, 1)
	assert.Equal(t, []any{glapi.TEXTURE_2D, 0, 16, 16, glapi.RGBA, glapi.UNSIGNED_BYTE, 16 * 16 * 4}, img[0].Args)

	again, err := LoadTexture(ctx, tex, path, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, tex, again)
	assert.Equal(t, 1, ctx.Count("CreateTexture"))

	_, err = LoadTexture(ctx, tex, filepath.Join(t.TempDir(), "missing.png"), 16, 16)
	assert.Error(t, err)
}
