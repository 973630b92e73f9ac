//go:build android

package glapi

import (
	"golang.org/x/mobile/gl"
)

type mobile struct {
	ctx gl.Context
}

// NewMobile adapts the context handed out by golang.org/x/mobile/app on a
// lifecycle.StageVisible event.
func NewMobile(ctx gl.Context) Context {
	return mobile{ctx: ctx}
}

func (m mobile) CreateShader(ty Enum) Shader {
	return Shader(m.ctx.CreateShader(gl.Enum(ty)).Value)
}

func (m mobile) ShaderSource(s Shader, src string) {
	m.ctx.ShaderSource(gl.Shader{Value: uint32(s)}, src)
}

func (m mobile) CompileShader(s Shader) { m.ctx.CompileShader(gl.Shader{Value: uint32(s)}) }

func (m mobile) GetShaderi(s Shader, pname Enum) int {
	return m.ctx.GetShaderi(gl.Shader{Value: uint32(s)}, gl.Enum(pname))
}

func (m mobile) GetShaderInfoLog(s Shader) string {
	return m.ctx.GetShaderInfoLog(gl.Shader{Value: uint32(s)})
}

func (m mobile) DeleteShader(s Shader) { m.ctx.DeleteShader(gl.Shader{Value: uint32(s)}) }

func program(p Program) gl.Program { return gl.Program{Init: true, Value: uint32(p)} }

func (m mobile) CreateProgram() Program { return Program(m.ctx.CreateProgram().Value) }

func (m mobile) AttachShader(p Program, s Shader) {
	m.ctx.AttachShader(program(p), gl.Shader{Value: uint32(s)})
}

func (m mobile) LinkProgram(p Program) { m.ctx.LinkProgram(program(p)) }

func (m mobile) GetProgrami(p Program, pname Enum) int {
	return m.ctx.GetProgrami(program(p), gl.Enum(pname))
}

func (m mobile) GetProgramInfoLog(p Program) string { return m.ctx.GetProgramInfoLog(program(p)) }

func (m mobile) DeleteProgram(p Program) { m.ctx.DeleteProgram(program(p)) }

func (m mobile) UseProgram(p Program) { m.ctx.UseProgram(program(p)) }

func (m mobile) GetUniformLocation(p Program, name string) Uniform {
	return Uniform(m.ctx.GetUniformLocation(program(p), name).Value)
}

func (m mobile) GetAttribLocation(p Program, name string) Attrib {
	a := m.ctx.GetAttribLocation(program(p), name)
	return Attrib(int32(a.Value))
}

func uniform(u Uniform) gl.Uniform { return gl.Uniform{Value: int32(u)} }

func attrib(a Attrib) gl.Attrib { return gl.Attrib{Value: uint(a)} }

func (m mobile) Uniform1i(dst Uniform, v int) { m.ctx.Uniform1i(uniform(dst), v) }

func (m mobile) Uniform1f(dst Uniform, v float32) { m.ctx.Uniform1f(uniform(dst), v) }

func (m mobile) Uniform2f(dst Uniform, v0, v1 float32) { m.ctx.Uniform2f(uniform(dst), v0, v1) }

func (m mobile) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	m.ctx.Uniform3f(uniform(dst), v0, v1, v2)
}

func (m mobile) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	m.ctx.Uniform4f(uniform(dst), v0, v1, v2, v3)
}

func (m mobile) UniformMatrix4fv(dst Uniform, src []float32) {
	m.ctx.UniformMatrix4fv(uniform(dst), src)
}

func (m mobile) CreateBuffer() Buffer { return Buffer(m.ctx.CreateBuffer().Value) }

func (m mobile) DeleteBuffer(b Buffer) { m.ctx.DeleteBuffer(gl.Buffer{Value: uint32(b)}) }

func (m mobile) BindBuffer(target Enum, b Buffer) {
	m.ctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: uint32(b)})
}

func (m mobile) BufferInit(target Enum, size int, usage Enum) {
	m.ctx.BufferInit(gl.Enum(target), size, gl.Enum(usage))
}

func (m mobile) BufferData(target Enum, src []byte, usage Enum) {
	m.ctx.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (m mobile) BufferSubData(target Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	m.ctx.BufferSubData(gl.Enum(target), offset, data)
}

func (m mobile) EnableVertexAttribArray(a Attrib) { m.ctx.EnableVertexAttribArray(attrib(a)) }

func (m mobile) DisableVertexAttribArray(a Attrib) { m.ctx.DisableVertexAttribArray(attrib(a)) }

func (m mobile) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	m.ctx.VertexAttribPointer(attrib(dst), size, gl.Enum(ty), normalized, stride, offset)
}

func (m mobile) DrawArrays(mode Enum, first, count int) {
	m.ctx.DrawArrays(gl.Enum(mode), first, count)
}

func (m mobile) DrawElements(mode Enum, count int, ty Enum, offset int) {
	m.ctx.DrawElements(gl.Enum(mode), count, gl.Enum(ty), offset)
}

func (m mobile) CreateTexture() Texture { return Texture(m.ctx.CreateTexture().Value) }

func (m mobile) DeleteTexture(t Texture) { m.ctx.DeleteTexture(gl.Texture{Value: uint32(t)}) }

func (m mobile) ActiveTexture(unit Enum) { m.ctx.ActiveTexture(gl.Enum(unit)) }

func (m mobile) BindTexture(target Enum, t Texture) {
	m.ctx.BindTexture(gl.Enum(target), gl.Texture{Value: uint32(t)})
}

func (m mobile) TexImage2D(target Enum, level int, width, height int, format Enum, ty Enum, data []byte) {
	m.ctx.TexImage2D(gl.Enum(target), level, int(format), width, height, gl.Enum(format), gl.Enum(ty), data)
}

func (m mobile) TexParameteri(target, pname Enum, param int) {
	m.ctx.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

func (m mobile) PixelStorei(pname Enum, param int32) { m.ctx.PixelStorei(gl.Enum(pname), param) }

func (m mobile) Enable(capability Enum) { m.ctx.Enable(gl.Enum(capability)) }

func (m mobile) Disable(capability Enum) { m.ctx.Disable(gl.Enum(capability)) }

func (m mobile) BlendFunc(sfactor, dfactor Enum) {
	m.ctx.BlendFunc(gl.Enum(sfactor), gl.Enum(dfactor))
}

func (m mobile) DepthFunc(fn Enum) { m.ctx.DepthFunc(gl.Enum(fn)) }

func (m mobile) Clear(mask Enum) { m.ctx.Clear(gl.Enum(mask)) }

func (m mobile) ClearColor(r, g, b, a float32) { m.ctx.ClearColor(r, g, b, a) }

func (m mobile) Viewport(x, y, width, height int) { m.ctx.Viewport(x, y, width, height) }

func (m mobile) GetError() Enum { return Enum(m.ctx.GetError()) }
