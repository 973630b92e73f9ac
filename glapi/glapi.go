// Package glapi is the OpenGL ES 2.0 surface the renderer draws through.
//
// Desktop builds bind it to go-gl's gles2 package and android builds to
// golang.org/x/mobile/gl, so everything above this package is the same on
// both platforms and can be driven by glapitest.Recorder in tests.
package glapi

type (
	Enum    uint32
	Shader  uint32
	Program uint32
	Buffer  uint32
	Texture uint32
	Uniform int32
	Attrib  int32
)

// Valid reports whether the location was found in the linked program.
func (u Uniform) Valid() bool { return u >= 0 }

// Valid reports whether the location was found in the linked program.
func (a Attrib) Valid() bool { return a >= 0 }

const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR = 0x0000

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	ZERO                Enum = 0
	ONE                 Enum = 1
	SRC_COLOR           Enum = 0x0300
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303

	DEPTH_BUFFER_BIT Enum = 0x00000100
	COLOR_BUFFER_BIT Enum = 0x00004000

	CULL_FACE  Enum = 0x0B44
	DEPTH_TEST Enum = 0x0B71
	BLEND      Enum = 0x0BE2

	LESS   Enum = 0x0201
	LEQUAL Enum = 0x0203

	UNSIGNED_BYTE  Enum = 0x1401
	UNSIGNED_SHORT Enum = 0x1403
	FLOAT          Enum = 0x1406

	RGBA Enum = 0x1908

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE0           Enum = 0x84C0
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	LINEAR             Enum = 0x2601
	REPEAT             Enum = 0x2901
	CLAMP_TO_EDGE      Enum = 0x812F
	UNPACK_ALIGNMENT   Enum = 0x0CF5
)

// Context is the subset of OpenGL ES 2.0 used by the renderer. Calls must be
// made from the goroutine that owns the GL context.
type Context interface {
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	GetUniformLocation(p Program, name string) Uniform
	GetAttribLocation(p Program, name string) Attrib
	Uniform1i(dst Uniform, v int)
	Uniform1f(dst Uniform, v float32)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UniformMatrix4fv(dst Uniform, src []float32)

	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	// BufferInit allocates size bytes of uninitialized storage.
	BufferInit(target Enum, size int, usage Enum)
	BufferData(target Enum, src []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	EnableVertexAttribArray(a Attrib)
	DisableVertexAttribArray(a Attrib)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)

	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)

	CreateTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexImage2D(target Enum, level int, width, height int, format Enum, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	PixelStorei(pname Enum, param int32)

	Enable(capability Enum)
	Disable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	Clear(mask Enum)
	ClearColor(r, g, b, a float32)
	Viewport(x, y, width, height int)
	GetError() Enum
}
