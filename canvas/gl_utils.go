package canvas

import (
	"errors"
	"fmt"

	"glscene/glapi"
)

var (
	ErrCreateShader  = errors.New("could not create the shader")
	ErrCompile       = errors.New("could not compile the shader")
	ErrCreateProgram = errors.New("could not create the program object")
	ErrLink          = errors.New("could not link the program object")
)

// CreateShader creates a shader object, loads the source and compiles it.
// On failure the shader is deleted and 0 is returned together with an error
// carrying the info log.
func CreateShader(ctx glapi.Context, shaderType glapi.Enum, source string) (glapi.Shader, error) {
	shader := ctx.CreateShader(shaderType)
	if shader == 0 {
		return 0, ErrCreateShader
	}
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if ctx.GetShaderi(shader, glapi.COMPILE_STATUS) == glapi.FALSE {
		log := ctx.GetShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrCompile, log)
	}
	return shader, nil
}

// NewProgram compiles both shaders and links them. The shader objects are
// released once linking has been attempted; a program that fails to link is
// deleted.
func NewProgram(ctx glapi.Context, vertexShaderSource, fragmentShaderSource string) (glapi.Program, error) {
	vertexShader, err := CreateShader(ctx, glapi.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}

	fragmentShader, err := CreateShader(ctx, glapi.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer func() {
		ctx.DeleteShader(vertexShader)
		ctx.DeleteShader(fragmentShader)
	}()

	program := ctx.CreateProgram()
	if program == 0 {
		return 0, ErrCreateProgram
	}
	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)

	if ctx.GetProgrami(program, glapi.LINK_STATUS) == glapi.FALSE {
		log := ctx.GetProgramInfoLog(program)
		ctx.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, log)
	}
	return program, nil
}
