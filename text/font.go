package text

import (
	"fmt"

	"glscene/canvas"
	"glscene/glapi"
	"glscene/shaders"
)

// Font draws strings from an Atlas. Coordinates are window pixels with the
// origin at the top left.
type Font struct {
	atlas   *Atlas
	texture glapi.Texture
	prog    shaders.Font
	quads   *canvas.ArrayBuffer
	verts   []float32

	width, height int
	color         [4]float32
}

// NewFont uploads the atlas as a texture.
func NewFont(ctx glapi.Context, atlas *Atlas, prog shaders.Font, width, height int) *Font {
	f := &Font{
		atlas:  atlas,
		prog:   prog,
		quads:  canvas.NewArrayBuffer(4, glapi.DYNAMIC_DRAW),
		color:  [4]float32{1, 1, 1, 1},
		width:  width,
		height: height,
	}
	f.texture = canvas.UploadTexture(ctx, 0, atlas.Image, 0, 0)
	return f
}

func (f *Font) Atlas() *Atlas { return f.atlas }

// ResizeWindow updates the pixel to clip space mapping.
func (f *Font) ResizeWindow(width, height int) {
	f.width, f.height = width, height
}

func (f *Font) SetColor(r, g, b, a float32) {
	f.color = [4]float32{r, g, b, a}
}

func (f *Font) clip(x, y float32) (float32, float32) {
	return x/float32(f.width)*2 - 1, 1 - y/float32(f.height)*2
}

// Layout builds the x, y, u, v triangles of s with its top left corner at
// (x, y), in clip space.
func (f *Font) Layout(x, y, scale float32, s string) []float32 {
	f.verts = f.verts[:0]
	cw := float32(f.atlas.CellWidth) * scale
	ch := float32(f.atlas.CellHeight) * scale
	pen := x
	for _, r := range s {
		if r == '\n' {
			pen = x
			y += ch
			continue
		}
		g, ok := f.atlas.Glyph(r)
		if !ok {
			continue
		}
		if r != ' ' {
			x0, y0 := f.clip(pen, y)
			x1, y1 := f.clip(pen+cw, y+ch)
			f.verts = append(f.verts,
				x0, y0, g.U0, g.V0,
				x1, y0, g.U1, g.V0,
				x1, y1, g.U1, g.V1,
				x0, y0, g.U0, g.V0,
				x1, y1, g.U1, g.V1,
				x0, y1, g.U0, g.V1,
			)
		}
		pen += g.Advance * scale
	}
	return f.verts
}

// Printf draws the formatted string. Nothing is drawn when the font
// program failed to build.
func (f *Font) Printf(ctx glapi.Context, x, y, scale float32, format string, args ...any) {
	if f.prog.Program == 0 || f.width == 0 || f.height == 0 {
		return
	}
	verts := f.Layout(x, y, scale, fmt.Sprintf(format, args...))
	if len(verts) == 0 {
		return
	}
	f.quads.Upload(ctx, verts)

	ctx.Disable(glapi.DEPTH_TEST)
	ctx.Enable(glapi.BLEND)
	ctx.BlendFunc(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)

	ctx.UseProgram(f.prog.Program)
	ctx.ActiveTexture(glapi.TEXTURE0)
	ctx.BindTexture(glapi.TEXTURE_2D, f.texture)
	ctx.Uniform1i(f.prog.Texture, 0)
	ctx.Uniform4f(f.prog.UColor, f.color[0], f.color[1], f.color[2], f.color[3])
	f.quads.Attrib(ctx, f.prog.Pos, 2, 0)
	f.quads.Attrib(ctx, f.prog.TexCoord, 2, 2)
	f.quads.Draw(ctx, glapi.TRIANGLES)
	canvas.Disable(ctx, f.prog.Pos, f.prog.TexCoord)

	ctx.Disable(glapi.BLEND)
	ctx.Enable(glapi.DEPTH_TEST)
}

// Delete releases the atlas texture and the quad buffer.
func (f *Font) Delete(ctx glapi.Context) {
	if f.texture != 0 {
		ctx.DeleteTexture(f.texture)
		f.texture = 0
	}
	f.quads.Delete(ctx)
}
