package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"glscene/canvas"
	"glscene/common"
	"glscene/glapi"
	"glscene/mesh"
)

func (e *Engine) lightUniforms(pos, pos2 glapi.Uniform) {
	l1, l2 := e.LightPosInEyeSpace, e.Light2PosInEyeSpace
	e.ctx.Uniform3f(pos, l1.X(), l1.Y(), l1.Z())
	if pos2.Valid() {
		e.ctx.Uniform3f(pos2, l2.X(), l2.Y(), l2.Z())
	}
}

// shapeModel places shape j: translate to its start, rotate about y, then
// scale uniformly.
func (e *Engine) shapeModel(j int, scale float32) {
	s := &e.State.Shapes[j]
	e.M4.Model = e.M4.Model.Mul4(mgl32.Translate3D(s.Start[0], s.Start[1], s.Start[2]))
	e.M4.Model = e.M4.Model.Mul4(mgl32.HomogRotate3DY(common.DegToRad(s.Angle[1])))
	if scale != 1 {
		e.M4.Model = e.M4.Model.Mul4(mgl32.Scale3D(scale, scale, scale))
	}
	e.M4.MV = e.M4.View.Mul4(e.M4.Model)
	e.M4.MVP = e.M4.Projection.Mul4(e.M4.MV)
}

// DrawSphere builds, uploads and draws the sphere of shape j, then frees
// its host buffers. The GPU buffers are reused by the next sphere.
func (e *Engine) DrawSphere(j int) {
	s := &e.State.Shapes[j]
	if !s.Visible {
		return
	}
	if s.Blend {
		e.ctx.Enable(glapi.BLEND)
		e.ctx.BlendFunc(glapi.ONE, glapi.SRC_COLOR)
	}
	e.M4.Model = mgl32.Ident4()
	e.RotateShape(j)
	if err := e.sphere.Alloc(e.cfg.Render.Tessellation); err != nil {
		e.log.Errorw("allocMemorySpheresVBO failed", "shape", j, "err", err)
		if s.Blend {
			e.ctx.Disable(glapi.BLEND)
		}
		return
	}
	radius := e.MotionSphere(j)
	if err := e.sphere.Generate(radius); err != nil {
		e.log.Errorw("renderSphere failed", "shape", j, "err", err)
	}
	e.vbo.Upload(e.ctx, e.sphere.Vertices, e.sphere.Colors, e.sphere.Normals, e.sphere.Textures, e.sphere.Indices)
	e.ChangeShapesTexture(j)

	e.ctx.ActiveTexture(glapi.TEXTURE0)
	e.ctx.BindTexture(glapi.TEXTURE_2D, e.texture[j])
	g := e.Shaders.Ground
	if g.Program != 0 {
		e.ctx.UseProgram(g.Program)
		e.ctx.Uniform1i(g.Texture, 0)
		e.shapeModel(j, 1)
		e.ctx.UniformMatrix4fv(g.MatrixMVP, e.M4.MVP[:])
		e.lightUniforms(g.LightPos, g.Light2Pos)
		e.ctx.Uniform1i(g.ULight, s.LightF)
		e.ctx.Uniform1i(g.UDifF, s.DiffuseF)
		e.ctx.Uniform1i(g.UTexF, s.TextureF)

		e.vbo.Bind(e.ctx)
		e.vbo.Pointer(e.ctx, g.Pos, canvas.BlockVertex, 3)
		e.vbo.Pointer(e.ctx, g.Normal, canvas.BlockNormal, 3)
		e.vbo.Pointer(e.ctx, g.TexCoord, canvas.BlockTexture, 2)
		if s.Grid {
			e.vbo.DrawElements(e.ctx, glapi.LINES)
		} else {
			e.vbo.DrawElements(e.ctx, glapi.TRIANGLES)
		}
		canvas.Disable(e.ctx, g.Pos, g.Normal, g.TexCoord)
	}

	e.sphere.Free()
	if s.Blend {
		e.ctx.Disable(glapi.BLEND)
	}
}

// DrawCube draws shape j as a colored cube with the shape program.
func (e *Engine) DrawCube(j int) {
	s := &e.State.Shapes[j]
	sh := e.Shaders.Shape
	if !s.Visible || sh.Program == 0 {
		return
	}
	if s.Blend {
		e.ctx.Enable(glapi.BLEND)
		e.ctx.BlendFunc(glapi.ONE, glapi.SRC_COLOR)
	}
	e.M4.Model = mgl32.Ident4()
	e.RotateShape(j)
	e.ChangeShapesTexture(j)
	e.shapeModel(j, s.Radius)

	e.ctx.ActiveTexture(glapi.TEXTURE0)
	e.ctx.BindTexture(glapi.TEXTURE_2D, e.texture[j])
	e.ctx.UseProgram(sh.Program)
	e.ctx.Uniform1i(sh.Texture, 0)
	e.ctx.UniformMatrix4fv(sh.MatrixMV, e.M4.MV[:])
	e.ctx.UniformMatrix4fv(sh.MatrixMVP, e.M4.MVP[:])
	e.lightUniforms(sh.LightPos, -1)
	e.ctx.Uniform1i(sh.ULight, s.LightF)

	e.cube.Bind(e.ctx)
	e.cube.Pointer(e.ctx, sh.Pos, canvas.BlockVertex, 3)
	e.cube.Pointer(e.ctx, sh.Color, canvas.BlockColor, 4)
	e.cube.Pointer(e.ctx, sh.Normal, canvas.BlockNormal, 3)
	e.cube.Pointer(e.ctx, sh.TexCoord, canvas.BlockTexture, 2)
	if s.Grid {
		e.cube.DrawElements(e.ctx, glapi.LINES)
	} else {
		e.cube.DrawElements(e.ctx, glapi.TRIANGLES)
	}
	canvas.Disable(e.ctx, sh.Pos, sh.Color, sh.Normal, sh.TexCoord)
	if s.Blend {
		e.ctx.Disable(glapi.BLEND)
	}
}

// DrawGround draws the lit floor plane at y=0.
func (e *Engine) DrawGround() {
	g := e.Shaders.Ground
	if g.Program == 0 {
		return
	}
	e.M4.Model = mgl32.Ident4()
	e.M4.MV = e.M4.View
	e.M4.MVP = e.M4.Projection.Mul4(e.M4.MV)

	e.ctx.ActiveTexture(glapi.TEXTURE0)
	e.ctx.BindTexture(glapi.TEXTURE_2D, e.white)
	e.ctx.UseProgram(g.Program)
	e.ctx.Uniform1i(g.Texture, 0)
	e.ctx.UniformMatrix4fv(g.MatrixMVP, e.M4.MVP[:])
	e.lightUniforms(g.LightPos, g.Light2Pos)
	e.ctx.Uniform1i(g.ULight, 1)
	e.ctx.Uniform1i(g.UDifF, 1)
	e.ctx.Uniform1i(g.UTexF, 0)

	e.ground.Bind(e.ctx)
	e.ground.Pointer(e.ctx, g.Pos, canvas.BlockVertex, 3)
	e.ground.Pointer(e.ctx, g.Normal, canvas.BlockNormal, 3)
	e.ground.Pointer(e.ctx, g.TexCoord, canvas.BlockTexture, 2)
	e.ground.DrawElements(e.ctx, glapi.TRIANGLES)
	canvas.Disable(e.ctx, g.Pos, g.Normal, g.TexCoord)
}

// DrawLights draws both light sources as points.
func (e *Engine) DrawLights() {
	l := e.Shaders.Light
	if l.Program == 0 {
		return
	}
	l1, l2 := e.cfg.Render.Light, e.cfg.Render.Light2
	e.lights.Upload(e.ctx, []float32{l1[0], l1[1], l1[2], l2[0], l2[1], l2[2]})
	mvp := e.M4.Projection.Mul4(e.M4.View)

	e.ctx.UseProgram(l.Program)
	e.ctx.UniformMatrix4fv(l.MatrixMVP, mvp[:])
	e.ctx.Uniform4f(l.UColor, 1, 1, 0.8, 1)
	e.ctx.Uniform1i(l.ULight, 1)
	e.lights.Attrib(e.ctx, l.Pos, 3, 0)
	e.lights.Draw(e.ctx, glapi.POINTS)
	canvas.Disable(e.ctx, l.Pos)
}

func backgroundQuad() []float32 {
	const z = 0.999
	top := [4]float32{0.02, 0.02, 0.12, 1}
	bottom := [4]float32{0.15, 0.1, 0.25, 1}
	v := func(x, y float32, c [4]float32, u, w float32) []float32 {
		return []float32{x, y, z, c[0], c[1], c[2], c[3], u, w}
	}
	var q []float32
	q = append(q, v(-1, -1, bottom, 0, 1)...)
	q = append(q, v(1, -1, bottom, 1, 1)...)
	q = append(q, v(1, 1, top, 1, 0)...)
	q = append(q, v(-1, -1, bottom, 0, 1)...)
	q = append(q, v(1, 1, top, 1, 0)...)
	q = append(q, v(-1, 1, top, 0, 0)...)
	return q
}

// DrawBackground fills the screen with a gradient behind everything else.
func (e *Engine) DrawBackground() {
	sc := e.Shaders.Scene
	if sc.Program == 0 {
		return
	}
	ident := mgl32.Ident4()
	e.ctx.Disable(glapi.DEPTH_TEST)
	e.ctx.ActiveTexture(glapi.TEXTURE0)
	e.ctx.BindTexture(glapi.TEXTURE_2D, e.white)
	e.ctx.UseProgram(sc.Program)
	e.ctx.Uniform1i(sc.Texture, 0)
	e.ctx.UniformMatrix4fv(sc.MatrixMVP, ident[:])
	e.background.Attrib(e.ctx, sc.Pos, 3, 0)
	e.background.Attrib(e.ctx, sc.Color, 4, 3)
	e.background.Attrib(e.ctx, sc.TexCoord, 2, 7)
	e.background.Draw(e.ctx, glapi.TRIANGLES)
	canvas.Disable(e.ctx, sc.Pos, sc.Color, sc.TexCoord)
	e.ctx.Enable(glapi.DEPTH_TEST)
}

// starField scatters n points on a sphere around the scene.
func (e *Engine) starField(n int) []float32 {
	const r = 40
	pts := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		z := e.rng.Float64()*2 - 1
		phi := e.rng.Float64() * 2 * math.Pi
		rho := math.Sqrt(1 - common.Sqr(z))
		pts = append(pts, float32(r*rho*math.Cos(phi)), float32(r*z), float32(r*rho*math.Sin(phi)))
	}
	return pts
}

// DrawRandom draws the slowly drifting, twinkling star field.
func (e *Engine) DrawRandom() {
	rp := e.Shaders.Random
	if rp.Program == 0 || e.stars.Count() == 0 {
		return
	}
	mvp := e.M4.Projection.Mul4(e.M4.View)
	t := float64(e.elapsed)
	e.ctx.UseProgram(rp.Program)
	e.ctx.UniformMatrix4fv(rp.MatrixMVP, mvp[:])
	e.ctx.Uniform3f(rp.UPos, 0, float32(0.5*math.Sin(t*0.1)), 0)
	e.ctx.Uniform4f(rp.UColor, 1, 1, 1, float32(0.6+0.4*math.Sin(t*3)))
	e.stars.Attrib(e.ctx, rp.Pos, 3, 0)
	e.stars.Draw(e.ctx, glapi.POINTS)
	canvas.Disable(e.ctx, rp.Pos)
}

// shownPanes returns the panes drawn this frame: all of them in edit
// mode, otherwise only the edit pane.
func (e *Engine) shownPanes() []int {
	if e.State.EditOn {
		idx := make([]int, PaneCount)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	return []int{PaneEdit - 1}
}

// DrawPanes draws the touch panes as translucent quads in window pixels.
func (e *Engine) DrawPanes() {
	sq := e.Shaders.Square
	if sq.Program == 0 {
		return
	}
	shown := e.shownPanes()
	verts := make([]float32, 0, len(shown)*24)
	for _, i := range shown {
		p := &e.Panes[i]
		verts = append(verts, mesh.Quad(p.X, p.Y, p.X1, p.Y1)...)
	}
	e.panes.Upload(e.ctx, verts)

	e.ctx.Disable(glapi.DEPTH_TEST)
	e.ctx.Enable(glapi.BLEND)
	e.ctx.BlendFunc(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)
	e.ctx.ActiveTexture(glapi.TEXTURE0)
	e.ctx.BindTexture(glapi.TEXTURE_2D, e.white)
	e.ctx.UseProgram(sq.Program)
	e.ctx.Uniform1i(sq.Texture, 0)
	e.ctx.UniformMatrix4fv(sq.MatrixMVP, e.M4.Ortho[:])
	e.panes.Attrib(e.ctx, sq.Pos, 2, 0)
	e.panes.Attrib(e.ctx, sq.TexCoord, 2, 2)
	for k, i := range shown {
		c := e.Panes[i].Color
		e.ctx.Uniform4f(sq.UColor, c[0], c[1], c[2], c[3])
		e.panes.DrawRange(e.ctx, glapi.TRIANGLES, k*6, 6)
	}
	canvas.Disable(e.ctx, sq.Pos, sq.TexCoord)
	e.ctx.Disable(glapi.BLEND)
	e.ctx.Enable(glapi.DEPTH_TEST)
}

// DrawText prints the frame rate, the pane labels, the selected shape in
// edit mode and the latest log message.
func (e *Engine) DrawText() {
	if e.font == nil {
		return
	}
	w, h := float32(e.width), float32(e.height)
	e.font.SetColor(1, 1, 1, 1)
	e.font.Printf(e.ctx, w/2-40, 4, 1, "fps %.0f", e.fps)
	pad := float32(e.height) / 100
	for _, i := range e.shownPanes() {
		p := &e.Panes[i]
		e.font.Printf(e.ctx, p.X+pad, p.Y+pad, 1, "%s", p.Label)
	}
	if e.State.EditOn {
		s := &e.State.Shapes[e.State.Selected]
		e.font.SetColor(0.6, 1, 0.6, 1)
		e.font.Printf(e.ctx, w/2-120, 28, 1, "shape %d %s speed %.0f", e.State.Selected+1, s.Kind, s.Speed)
		if s.Visible {
			at := common.Project(s.Start, e.M4.View, e.M4.Projection, e.width, e.height)
			e.font.Printf(e.ctx, at.X(), at.Y(), 1, "%d", e.State.Selected+1)
		}
	}
	if n := e.log.Count(); n > 0 {
		e.font.SetColor(1, 0.8, 0.4, 1)
		e.font.Printf(e.ctx, 4, h-float32(e.font.Atlas().CellHeight)-4, 1, "%s", e.log.Text(n-1))
	}
}
