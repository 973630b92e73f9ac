// Package glapitest provides an in-memory glapi.Context for tests.
package glapitest

import (
	"fmt"
	"strings"

	"glscene/common/rw"
	"glscene/glapi"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Recorder implements glapi.Context. It hands out increasing object names,
// tracks which objects are alive and records every call.
type Recorder struct {
	Calls []Call

	// FailCompile makes compilation fail for sources containing the string.
	FailCompile string
	// FailLink makes linking fail for every program.
	FailLink bool
	// NoCreate makes CreateShader and CreateProgram return 0.
	NoCreate bool

	next     uint32
	sources  map[glapi.Shader]string
	compiled map[glapi.Shader]bool
	attached map[glapi.Program][]glapi.Shader
	linked   map[glapi.Program]bool

	Shaders  map[glapi.Shader]bool
	Programs map[glapi.Program]bool
	Buffers  map[glapi.Buffer]bool
	Textures map[glapi.Texture]bool

	// BufferSizes holds the current storage size of every buffer.
	BufferSizes map[glapi.Buffer]int
	// BufferBytes holds the current content of every buffer.
	BufferBytes map[glapi.Buffer][]byte
	// Bound is the buffer bound to each target.
	Bound   map[glapi.Enum]glapi.Buffer
	Enabled map[glapi.Enum]bool
	Program glapi.Program
}

func NewRecorder() *Recorder {
	return &Recorder{
		next:        0,
		sources:     map[glapi.Shader]string{},
		compiled:    map[glapi.Shader]bool{},
		attached:    map[glapi.Program][]glapi.Shader{},
		linked:      map[glapi.Program]bool{},
		Shaders:     map[glapi.Shader]bool{},
		Programs:    map[glapi.Program]bool{},
		Buffers:     map[glapi.Buffer]bool{},
		Textures:    map[glapi.Texture]bool{},
		BufferSizes: map[glapi.Buffer]int{},
		BufferBytes: map[glapi.Buffer][]byte{},
		Bound:       map[glapi.Enum]glapi.Buffer{},
		Enabled:     map[glapi.Enum]bool{},
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) name() uint32 {
	r.next++
	return r.next
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls with the given name.
func (r *Recorder) Find(name string) []Call {
	var res []Call
	for _, c := range r.Calls {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Reset forgets the recorded calls, keeping object state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Live returns the number of GL objects not yet deleted.
func (r *Recorder) Live() int {
	return len(r.Shaders) + len(r.Programs) + len(r.Buffers) + len(r.Textures)
}

func (r *Recorder) CreateShader(ty glapi.Enum) glapi.Shader {
	r.record("CreateShader", ty)
	if r.NoCreate {
		return 0
	}
	s := glapi.Shader(r.name())
	r.Shaders[s] = true
	return s
}

func (r *Recorder) ShaderSource(s glapi.Shader, src string) {
	r.record("ShaderSource", s)
	r.sources[s] = src
}

func (r *Recorder) CompileShader(s glapi.Shader) {
	r.record("CompileShader", s)
	r.compiled[s] = r.FailCompile == "" || !strings.Contains(r.sources[s], r.FailCompile)
}

func (r *Recorder) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	switch pname {
	case glapi.COMPILE_STATUS:
		if r.compiled[s] {
			return glapi.TRUE
		}
		return glapi.FALSE
	case glapi.INFO_LOG_LENGTH:
		return len(r.GetShaderInfoLog(s)) + 1
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s glapi.Shader) string {
	if r.compiled[s] {
		return ""
	}
	return fmt.Sprintf("ERROR: 0:1: shader %d failed to compile", s)
}

func (r *Recorder) DeleteShader(s glapi.Shader) {
	r.record("DeleteShader", s)
	if s == 0 {
		return
	}
	if !r.Shaders[s] {
		panic(fmt.Sprintf("glapitest: delete of dead shader %d", s))
	}
	delete(r.Shaders, s)
}

func (r *Recorder) CreateProgram() glapi.Program {
	r.record("CreateProgram")
	if r.NoCreate {
		return 0
	}
	p := glapi.Program(r.name())
	r.Programs[p] = true
	return p
}

func (r *Recorder) AttachShader(p glapi.Program, s glapi.Shader) {
	r.record("AttachShader", p, s)
	r.attached[p] = append(r.attached[p], s)
}

func (r *Recorder) LinkProgram(p glapi.Program) {
	r.record("LinkProgram", p)
	ok := !r.FailLink
	for _, s := range r.attached[p] {
		ok = ok && r.compiled[s]
	}
	r.linked[p] = ok
}

func (r *Recorder) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	switch pname {
	case glapi.LINK_STATUS:
		if r.linked[p] {
			return glapi.TRUE
		}
		return glapi.FALSE
	case glapi.INFO_LOG_LENGTH:
		return len(r.GetProgramInfoLog(p)) + 1
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p glapi.Program) string {
	if r.linked[p] {
		return ""
	}
	return fmt.Sprintf("ERROR: program %d failed to link", p)
}

func (r *Recorder) DeleteProgram(p glapi.Program) {
	r.record("DeleteProgram", p)
	if p == 0 {
		return
	}
	if !r.Programs[p] {
		panic(fmt.Sprintf("glapitest: delete of dead program %d", p))
	}
	delete(r.Programs, p)
}

func (r *Recorder) UseProgram(p glapi.Program) {
	r.record("UseProgram", p)
	r.Program = p
}

// GetUniformLocation hands out a stable location per (program, name). Names
// starting with "missing" are reported as absent.
func (r *Recorder) GetUniformLocation(p glapi.Program, name string) glapi.Uniform {
	r.record("GetUniformLocation", p, name)
	if p == 0 || strings.HasPrefix(name, "missing") {
		return -1
	}
	return glapi.Uniform(locationOf(p, name))
}

func (r *Recorder) GetAttribLocation(p glapi.Program, name string) glapi.Attrib {
	r.record("GetAttribLocation", p, name)
	if p == 0 || strings.HasPrefix(name, "missing") {
		return -1
	}
	return glapi.Attrib(locationOf(p, name) % 16)
}

func locationOf(p glapi.Program, name string) int32 {
	h := int32(p) * 31
	for _, c := range name {
		h = (h*31 + c) & 0x7fff
	}
	return h
}

func (r *Recorder) Uniform1i(dst glapi.Uniform, v int) { r.record("Uniform1i", dst, v) }

func (r *Recorder) Uniform1f(dst glapi.Uniform, v float32) { r.record("Uniform1f", dst, v) }

func (r *Recorder) Uniform2f(dst glapi.Uniform, v0, v1 float32) {
	r.record("Uniform2f", dst, v0, v1)
}

func (r *Recorder) Uniform3f(dst glapi.Uniform, v0, v1, v2 float32) {
	r.record("Uniform3f", dst, v0, v1, v2)
}

func (r *Recorder) Uniform4f(dst glapi.Uniform, v0, v1, v2, v3 float32) {
	r.record("Uniform4f", dst, v0, v1, v2, v3)
}

func (r *Recorder) UniformMatrix4fv(dst glapi.Uniform, src []float32) {
	r.record("UniformMatrix4fv", dst, append([]float32(nil), src...))
}

func (r *Recorder) CreateBuffer() glapi.Buffer {
	r.record("CreateBuffer")
	b := glapi.Buffer(r.name())
	r.Buffers[b] = true
	return b
}

func (r *Recorder) DeleteBuffer(b glapi.Buffer) {
	r.record("DeleteBuffer", b)
	if b == 0 {
		return
	}
	if !r.Buffers[b] {
		panic(fmt.Sprintf("glapitest: delete of dead buffer %d", b))
	}
	delete(r.Buffers, b)
	delete(r.BufferSizes, b)
	delete(r.BufferBytes, b)
	for target, bound := range r.Bound {
		if bound == b {
			delete(r.Bound, target)
		}
	}
}

func (r *Recorder) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	r.record("BindBuffer", target, b)
	r.Bound[target] = b
}

func (r *Recorder) BufferInit(target glapi.Enum, size int, usage glapi.Enum) {
	r.record("BufferInit", target, size, usage)
	r.BufferSizes[r.Bound[target]] = size
	r.BufferBytes[r.Bound[target]] = make([]byte, size)
}

func (r *Recorder) BufferData(target glapi.Enum, src []byte, usage glapi.Enum) {
	r.record("BufferData", target, len(src), usage)
	r.BufferSizes[r.Bound[target]] = len(src)
	r.BufferBytes[r.Bound[target]] = append([]byte(nil), src...)
}

func (r *Recorder) BufferSubData(target glapi.Enum, offset int, data []byte) {
	r.record("BufferSubData", target, offset, len(data))
	if size := r.BufferSizes[r.Bound[target]]; offset+len(data) > size {
		panic(fmt.Sprintf("glapitest: sub data [%d,%d) outside buffer of %d bytes", offset, offset+len(data), size))
	}
	copy(r.BufferBytes[r.Bound[target]][offset:], data)
}

// Float32s decodes n floats stored at byte offset of buffer b.
func (r *Recorder) Float32s(b glapi.Buffer, offset, n int) []float32 {
	res := make([]float32, n)
	rw.NewBufferReader(r.BufferBytes[b][offset:]).ReadFloat32s(res)
	return res
}

// Uint16s decodes n indices stored at byte offset of buffer b.
func (r *Recorder) Uint16s(b glapi.Buffer, offset, n int) []uint16 {
	res := make([]uint16, n)
	rw.NewBufferReader(r.BufferBytes[b][offset:]).ReadUInt16s(res)
	return res
}

func (r *Recorder) EnableVertexAttribArray(a glapi.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) DisableVertexAttribArray(a glapi.Attrib) {
	r.record("DisableVertexAttribArray", a)
}

func (r *Recorder) VertexAttribPointer(dst glapi.Attrib, size int, ty glapi.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (r *Recorder) DrawArrays(mode glapi.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode glapi.Enum, count int, ty glapi.Enum, offset int) {
	r.record("DrawElements", mode, count, ty, offset)
}

func (r *Recorder) CreateTexture() glapi.Texture {
	r.record("CreateTexture")
	t := glapi.Texture(r.name())
	r.Textures[t] = true
	return t
}

func (r *Recorder) DeleteTexture(t glapi.Texture) {
	r.record("DeleteTexture", t)
	if t == 0 {
		return
	}
	if !r.Textures[t] {
		panic(fmt.Sprintf("glapitest: delete of dead texture %d", t))
	}
	delete(r.Textures, t)
}

func (r *Recorder) ActiveTexture(unit glapi.Enum) { r.record("ActiveTexture", unit) }

func (r *Recorder) BindTexture(target glapi.Enum, t glapi.Texture) {
	r.record("BindTexture", target, t)
}

func (r *Recorder) TexImage2D(target glapi.Enum, level int, width, height int, format glapi.Enum, ty glapi.Enum, data []byte) {
	r.record("TexImage2D", target, level, width, height, format, ty, len(data))
}

func (r *Recorder) TexParameteri(target, pname glapi.Enum, param int) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) PixelStorei(pname glapi.Enum, param int32) { r.record("PixelStorei", pname, param) }

func (r *Recorder) Enable(capability glapi.Enum) {
	r.record("Enable", capability)
	r.Enabled[capability] = true
}

func (r *Recorder) Disable(capability glapi.Enum) {
	r.record("Disable", capability)
	delete(r.Enabled, capability)
}

func (r *Recorder) BlendFunc(sfactor, dfactor glapi.Enum) { r.record("BlendFunc", sfactor, dfactor) }

func (r *Recorder) DepthFunc(fn glapi.Enum) { r.record("DepthFunc", fn) }

func (r *Recorder) Clear(mask glapi.Enum) { r.record("Clear", mask) }

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Viewport(x, y, width, height int) { r.record("Viewport", x, y, width, height) }

func (r *Recorder) GetError() glapi.Enum { return glapi.NO_ERROR }

var _ glapi.Context = (*Recorder)(nil)
