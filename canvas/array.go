package canvas

import (
	"glscene/common/rw"
	"glscene/glapi"
)

// ArrayBuffer is a single interleaved attribute buffer drawn with
// DrawArrays: panes, text quads, light points and stars.
type ArrayBuffer struct {
	vbo    glapi.Buffer
	stride int // floats per vertex
	count  int
	usage  glapi.Enum
	pack   *rw.ReaderWriter
}

// NewArrayBuffer returns a buffer for vertices of stride floats. Use
// DYNAMIC_DRAW for data rewritten every frame.
func NewArrayBuffer(stride int, usage glapi.Enum) *ArrayBuffer {
	return &ArrayBuffer{stride: stride, usage: usage, pack: rw.NewBufferWriter()}
}

func (ab *ArrayBuffer) Count() int { return ab.count }

// Upload replaces the buffer content. The GL buffer is created lazily.
func (ab *ArrayBuffer) Upload(ctx glapi.Context, points []float32) {
	if ab.vbo == 0 {
		ab.vbo = ctx.CreateBuffer()
	}
	ab.count = len(points) / ab.stride
	ab.pack.Reset()
	ab.pack.WriteFloat32s(points)
	ctx.BindBuffer(glapi.ARRAY_BUFFER, ab.vbo)
	ctx.BufferData(glapi.ARRAY_BUFFER, ab.pack.Bytes(), ab.usage)
}

// Attrib points a at components floats starting at float offset first
// inside each vertex. Missing attributes are ignored.
func (ab *ArrayBuffer) Attrib(ctx glapi.Context, a glapi.Attrib, components, first int) {
	if !a.Valid() {
		return
	}
	ctx.BindBuffer(glapi.ARRAY_BUFFER, ab.vbo)
	ctx.EnableVertexAttribArray(a)
	ctx.VertexAttribPointer(a, components, glapi.FLOAT, false, ab.stride*GL_FLOAT32_SIZE, first*GL_FLOAT32_SIZE)
}

func (ab *ArrayBuffer) Draw(ctx glapi.Context, mode glapi.Enum) {
	if ab.count == 0 {
		return
	}
	ctx.DrawArrays(mode, 0, ab.count)
}

// DrawRange draws count vertices starting at vertex first.
func (ab *ArrayBuffer) DrawRange(ctx glapi.Context, mode glapi.Enum, first, count int) {
	if first < 0 || count <= 0 || first+count > ab.count {
		return
	}
	ctx.DrawArrays(mode, first, count)
}

// Disable turns the given attribute arrays off after a draw.
func Disable(ctx glapi.Context, attribs ...glapi.Attrib) {
	for _, a := range attribs {
		if a.Valid() {
			ctx.DisableVertexAttribArray(a)
		}
	}
}

func (ab *ArrayBuffer) Delete(ctx glapi.Context) {
	if ab.vbo != 0 {
		ctx.DeleteBuffer(ab.vbo)
		ab.vbo = 0
	}
	ab.count = 0
}
