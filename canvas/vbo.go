package canvas

import (
	"glscene/common/rw"
	"glscene/glapi"
)

const (
	GL_FLOAT32_SIZE = 4
	GL_USHORT_SIZE  = 2
)

// Block names one attribute array stored in a VBO.
type Block int

const (
	BlockVertex Block = iota
	BlockColor
	BlockNormal
	BlockTexture
	blockCount
)

// VBO holds one array buffer with the attribute blocks laid out back to
// back (vertices, colors, normals, texture coordinates) and one element
// buffer of uint16 indices.
type VBO struct {
	VertexBuffer glapi.Buffer
	IndexBuffer  glapi.Buffer

	sizes   [blockCount]int
	offsets [blockCount]int
	sizeI   int

	pack *rw.ReaderWriter
}

func NewVBO() *VBO {
	return &VBO{pack: rw.NewBufferWriter()}
}

// Size returns the byte size of a block as of the last upload.
func (v *VBO) Size(b Block) int { return v.sizes[b] }

// Offset returns the byte offset of a block in the array buffer.
func (v *VBO) Offset(b Block) int { return v.offsets[b] }

// SizeI returns the byte size of the index buffer.
func (v *VBO) SizeI() int { return v.sizeI }

// IndexCount is the number of uint16 indices uploaded.
func (v *VBO) IndexCount() int { return v.sizeI / GL_USHORT_SIZE }

// Upload stores the given blocks and indices in GPU memory. Empty blocks
// take no space. The buffer objects are created on the first call and reused
// afterwards, so calling Upload every frame does not leak GPU names.
func (v *VBO) Upload(ctx glapi.Context, vertices, colors, normals, textures []float32, indices []uint16) {
	if v.pack == nil {
		v.pack = rw.NewBufferWriter()
	}
	blocks := [blockCount][]float32{vertices, colors, normals, textures}
	total := 0
	for i, data := range blocks {
		v.sizes[i] = len(data) * GL_FLOAT32_SIZE
		v.offsets[i] = total
		total += v.sizes[i]
	}
	v.sizeI = len(indices) * GL_USHORT_SIZE

	if v.VertexBuffer == 0 {
		v.VertexBuffer = ctx.CreateBuffer()
	}
	ctx.BindBuffer(glapi.ARRAY_BUFFER, v.VertexBuffer)
	ctx.BufferInit(glapi.ARRAY_BUFFER, total, glapi.STATIC_DRAW)
	for i, data := range blocks {
		if v.sizes[i] == 0 {
			continue
		}
		v.pack.Reset()
		v.pack.WriteFloat32s(data)
		ctx.BufferSubData(glapi.ARRAY_BUFFER, v.offsets[i], v.pack.Bytes())
	}

	if v.IndexBuffer == 0 {
		v.IndexBuffer = ctx.CreateBuffer()
	}
	v.pack.Reset()
	v.pack.WriteUInt16s(indices)
	ctx.BindBuffer(glapi.ELEMENT_ARRAY_BUFFER, v.IndexBuffer)
	ctx.BufferData(glapi.ELEMENT_ARRAY_BUFFER, v.pack.Bytes(), glapi.STATIC_DRAW)
}

// Bind makes the VBO current for attribute setup and indexed draws.
func (v *VBO) Bind(ctx glapi.Context) {
	ctx.BindBuffer(glapi.ARRAY_BUFFER, v.VertexBuffer)
	ctx.BindBuffer(glapi.ELEMENT_ARRAY_BUFFER, v.IndexBuffer)
}

// Pointer points attribute a at block b with the given component count.
// Missing attributes are ignored.
func (v *VBO) Pointer(ctx glapi.Context, a glapi.Attrib, b Block, components int) {
	if !a.Valid() {
		return
	}
	ctx.EnableVertexAttribArray(a)
	ctx.VertexAttribPointer(a, components, glapi.FLOAT, false, 0, v.offsets[b])
}

// DrawElements issues an indexed draw of every uploaded index.
func (v *VBO) DrawElements(ctx glapi.Context, mode glapi.Enum) {
	if v.sizeI == 0 {
		return
	}
	ctx.DrawElements(mode, v.IndexCount(), glapi.UNSIGNED_SHORT, 0)
}

// Delete releases both buffer objects. It is safe to call more than once.
func (v *VBO) Delete(ctx glapi.Context) {
	if v.VertexBuffer != 0 {
		ctx.DeleteBuffer(v.VertexBuffer)
		v.VertexBuffer = 0
	}
	if v.IndexBuffer != 0 {
		ctx.DeleteBuffer(v.IndexBuffer)
		v.IndexBuffer = 0
	}
	v.sizes = [blockCount]int{}
	v.offsets = [blockCount]int{}
	v.sizeI = 0
}
