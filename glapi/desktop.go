//go:build !android

package glapi

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.1/gles2"
)

type desktop struct{}

// NewDesktop loads the GL ES 2.0 entry points of the current context and
// returns a Context over them. A context must be current on the calling
// thread.
func NewDesktop() (Context, error) {
	if err := gles2.Init(); err != nil {
		return nil, fmt.Errorf("init gles2: %w", err)
	}
	return desktop{}, nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gles2.GoStr(gles2.GetString(gles2.VERSION))
}

func cstr(s string) *uint8 {
	return gles2.Str(s + "\x00")
}

func infoLog(n int32, read func(int32, *uint8)) string {
	if n <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	read(n, gles2.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (desktop) CreateShader(ty Enum) Shader { return Shader(gles2.CreateShader(uint32(ty))) }

func (desktop) ShaderSource(s Shader, src string) {
	csources, free := gles2.Strs(src + "\x00")
	gles2.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (desktop) CompileShader(s Shader) { gles2.CompileShader(uint32(s)) }

func (desktop) GetShaderi(s Shader, pname Enum) int {
	var v int32
	gles2.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (d desktop) GetShaderInfoLog(s Shader) string {
	return infoLog(int32(d.GetShaderi(s, INFO_LOG_LENGTH)), func(n int32, buf *uint8) {
		gles2.GetShaderInfoLog(uint32(s), n, nil, buf)
	})
}

func (desktop) DeleteShader(s Shader) { gles2.DeleteShader(uint32(s)) }

func (desktop) CreateProgram() Program { return Program(gles2.CreateProgram()) }

func (desktop) AttachShader(p Program, s Shader) { gles2.AttachShader(uint32(p), uint32(s)) }

func (desktop) LinkProgram(p Program) { gles2.LinkProgram(uint32(p)) }

func (desktop) GetProgrami(p Program, pname Enum) int {
	var v int32
	gles2.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (d desktop) GetProgramInfoLog(p Program) string {
	return infoLog(int32(d.GetProgrami(p, INFO_LOG_LENGTH)), func(n int32, buf *uint8) {
		gles2.GetProgramInfoLog(uint32(p), n, nil, buf)
	})
}

func (desktop) DeleteProgram(p Program) { gles2.DeleteProgram(uint32(p)) }

func (desktop) UseProgram(p Program) { gles2.UseProgram(uint32(p)) }

func (desktop) GetUniformLocation(p Program, name string) Uniform {
	return Uniform(gles2.GetUniformLocation(uint32(p), cstr(name)))
}

func (desktop) GetAttribLocation(p Program, name string) Attrib {
	return Attrib(gles2.GetAttribLocation(uint32(p), cstr(name)))
}

func (desktop) Uniform1i(dst Uniform, v int) { gles2.Uniform1i(int32(dst), int32(v)) }

func (desktop) Uniform1f(dst Uniform, v float32) { gles2.Uniform1f(int32(dst), v) }

func (desktop) Uniform2f(dst Uniform, v0, v1 float32) { gles2.Uniform2f(int32(dst), v0, v1) }

func (desktop) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	gles2.Uniform3f(int32(dst), v0, v1, v2)
}

func (desktop) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	gles2.Uniform4f(int32(dst), v0, v1, v2, v3)
}

func (desktop) UniformMatrix4fv(dst Uniform, src []float32) {
	gles2.UniformMatrix4fv(int32(dst), int32(len(src)/16), false, &src[0])
}

func (desktop) CreateBuffer() Buffer {
	var b uint32
	gles2.GenBuffers(1, &b)
	return Buffer(b)
}

func (desktop) DeleteBuffer(b Buffer) {
	v := uint32(b)
	gles2.DeleteBuffers(1, &v)
}

func (desktop) BindBuffer(target Enum, b Buffer) { gles2.BindBuffer(uint32(target), uint32(b)) }

func (desktop) BufferInit(target Enum, size int, usage Enum) {
	gles2.BufferData(uint32(target), size, nil, uint32(usage))
}

func (desktop) BufferData(target Enum, src []byte, usage Enum) {
	if len(src) == 0 {
		gles2.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gles2.BufferData(uint32(target), len(src), gles2.Ptr(&src[0]), uint32(usage))
}

func (desktop) BufferSubData(target Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gles2.BufferSubData(uint32(target), offset, len(data), gles2.Ptr(&data[0]))
}

func (desktop) EnableVertexAttribArray(a Attrib) { gles2.EnableVertexAttribArray(uint32(a)) }

func (desktop) DisableVertexAttribArray(a Attrib) { gles2.DisableVertexAttribArray(uint32(a)) }

func (desktop) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	gles2.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gles2.PtrOffset(offset))
}

func (desktop) DrawArrays(mode Enum, first, count int) {
	gles2.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (desktop) DrawElements(mode Enum, count int, ty Enum, offset int) {
	gles2.DrawElements(uint32(mode), int32(count), uint32(ty), gles2.PtrOffset(offset))
}

func (desktop) CreateTexture() Texture {
	var t uint32
	gles2.GenTextures(1, &t)
	return Texture(t)
}

func (desktop) DeleteTexture(t Texture) {
	v := uint32(t)
	gles2.DeleteTextures(1, &v)
}

func (desktop) ActiveTexture(unit Enum) { gles2.ActiveTexture(uint32(unit)) }

func (desktop) BindTexture(target Enum, t Texture) { gles2.BindTexture(uint32(target), uint32(t)) }

func (desktop) TexImage2D(target Enum, level int, width, height int, format Enum, ty Enum, data []byte) {
	if len(data) == 0 {
		gles2.TexImage2D(uint32(target), int32(level), int32(format), int32(width), int32(height), 0, uint32(format), uint32(ty), nil)
		return
	}
	gles2.TexImage2D(uint32(target), int32(level), int32(format), int32(width), int32(height), 0, uint32(format), uint32(ty), gles2.Ptr(&data[0]))
}

func (desktop) TexParameteri(target, pname Enum, param int) {
	gles2.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (desktop) PixelStorei(pname Enum, param int32) { gles2.PixelStorei(uint32(pname), param) }

func (desktop) Enable(capability Enum) { gles2.Enable(uint32(capability)) }

func (desktop) Disable(capability Enum) { gles2.Disable(uint32(capability)) }

func (desktop) BlendFunc(sfactor, dfactor Enum) { gles2.BlendFunc(uint32(sfactor), uint32(dfactor)) }

func (desktop) DepthFunc(fn Enum) { gles2.DepthFunc(uint32(fn)) }

func (desktop) Clear(mask Enum) { gles2.Clear(uint32(mask)) }

func (desktop) ClearColor(r, g, b, a float32) { gles2.ClearColor(r, g, b, a) }

func (desktop) Viewport(x, y, width, height int) {
	gles2.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (desktop) GetError() Enum { return Enum(gles2.GetError()) }
