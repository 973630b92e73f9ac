// Package shaders builds the seven GL programs of the scene and looks up
// their uniform and attribute handles.
package shaders

import (
	"go.uber.org/zap"

	"glscene/canvas"
	"glscene/glapi"
)

// Shape draws lit, textured, per-vertex colored shapes.
type Shape struct {
	Program   glapi.Program
	MatrixMV  glapi.Uniform
	MatrixMVP glapi.Uniform
	Texture   glapi.Uniform
	LightPos  glapi.Uniform
	ULight    glapi.Uniform
	Pos       glapi.Attrib
	Color     glapi.Attrib
	TexCoord  glapi.Attrib
	Normal    glapi.Attrib
}

// Light draws the light sources as points.
type Light struct {
	Program   glapi.Program
	MatrixMVP glapi.Uniform
	UColor    glapi.Uniform
	ULight    glapi.Uniform
	Pos       glapi.Attrib
	Normal    glapi.Attrib
}

// Ground draws the ground plane and the spheres with two point lights.
type Ground struct {
	Program   glapi.Program
	MatrixMVP glapi.Uniform
	LightPos  glapi.Uniform
	Light2Pos glapi.Uniform
	ULight    glapi.Uniform
	UDifF     glapi.Uniform
	UTexF     glapi.Uniform
	Texture   glapi.Uniform
	Pos       glapi.Attrib
	Normal    glapi.Attrib
	TexCoord  glapi.Attrib
}

// Scene draws the textured background.
type Scene struct {
	Program   glapi.Program
	MatrixMVP glapi.Uniform
	Texture   glapi.Uniform
	Pos       glapi.Attrib
	Color     glapi.Attrib
	TexCoord  glapi.Attrib
}

// Square draws the UI panes.
type Square struct {
	Program   glapi.Program
	MatrixMVP glapi.Uniform
	UColor    glapi.Uniform
	Texture   glapi.Uniform
	Pos       glapi.Attrib
	TexCoord  glapi.Attrib
}

// Font draws glyph quads given in clip space.
type Font struct {
	Program  glapi.Program
	UColor   glapi.Uniform
	Texture  glapi.Uniform
	Pos      glapi.Attrib
	TexCoord glapi.Attrib
}

// Random draws the star field.
type Random struct {
	Program   glapi.Program
	MatrixMVP glapi.Uniform
	UColor    glapi.Uniform
	UPos      glapi.Uniform
	Pos       glapi.Attrib
}

type Data struct {
	Shape  Shape
	Light  Light
	Ground Ground
	Scene  Scene
	Square Square
	Font   Font
	Random Random
}

type lookup struct {
	ctx  glapi.Context
	prog glapi.Program
}

func (l lookup) uniform(name string) glapi.Uniform {
	if l.prog == 0 {
		return -1
	}
	return l.ctx.GetUniformLocation(l.prog, name)
}

func (l lookup) attrib(name string) glapi.Attrib {
	if l.prog == 0 {
		return -1
	}
	return l.ctx.GetAttribLocation(l.prog, name)
}

func build(ctx glapi.Context, log *zap.SugaredLogger, name, vs, fs string) lookup {
	prog, err := canvas.NewProgram(ctx, vs, fs)
	if err != nil {
		log.Errorw("createProgram failed", "program", name, "err", err)
		return lookup{ctx: ctx}
	}
	log.Debugw("program ready", "program", name, "id", prog)
	return lookup{ctx: ctx, prog: prog}
}

// Init compiles and links every program and resolves its handles. A program
// that fails is logged and left as 0 with all of its handles at -1; the
// draws using it are skipped.
func Init(ctx glapi.Context, log *zap.SugaredLogger) *Data {
	d := &Data{}

	l := build(ctx, log, "shape", vShaderShape, fShaderShape)
	d.Shape = Shape{
		Program:   l.prog,
		MatrixMV:  l.uniform("u_MVMatrix"),
		MatrixMVP: l.uniform("u_MVPMatrix"),
		Pos:       l.attrib("a_Position"),
		Color:     l.attrib("a_Color"),
		TexCoord:  l.attrib("TexCoordIn"),
		Texture:   l.uniform("Texture"),
		Normal:    l.attrib("a_Normal"),
		LightPos:  l.uniform("u_LightPos"),
		ULight:    l.uniform("u_Light"),
	}

	l = build(ctx, log, "light", vShaderPoint, fShaderPoint)
	d.Light = Light{
		Program:   l.prog,
		MatrixMVP: l.uniform("u_MVPMatrix"),
		Pos:       l.attrib("a_Position"),
		UColor:    l.uniform("u_Color"),
		Normal:    l.attrib("a_Normal"),
		ULight:    l.uniform("u_Light"),
	}

	l = build(ctx, log, "ground", vShaderGround, fShaderGround)
	d.Ground = Ground{
		Program:   l.prog,
		MatrixMVP: l.uniform("u_MVPMatrix"),
		Pos:       l.attrib("a_Position"),
		Normal:    l.attrib("a_Normal"),
		LightPos:  l.uniform("u_LightPos"),
		Light2Pos: l.uniform("u_Light2Pos"),
		ULight:    l.uniform("u_LightF"),
		UDifF:     l.uniform("u_DifF"),
		UTexF:     l.uniform("u_TexF"),
		TexCoord:  l.attrib("TexCoordIn"),
		Texture:   l.uniform("Texture"),
	}

	l = build(ctx, log, "scene", vShaderScene, fShaderScene)
	d.Scene = Scene{
		Program:   l.prog,
		MatrixMVP: l.uniform("u_MVPMatrix"),
		Pos:       l.attrib("a_Position"),
		Color:     l.attrib("a_Color"),
		TexCoord:  l.attrib("TexCoordIn"),
		Texture:   l.uniform("Texture"),
	}

	l = build(ctx, log, "square", vShaderSquare, fShaderSquare)
	d.Square = Square{
		Program:   l.prog,
		MatrixMVP: l.uniform("u_MVPMatrix"),
		Pos:       l.attrib("a_Position"),
		UColor:    l.uniform("u_Color"),
		TexCoord:  l.attrib("TexCoordIn"),
		Texture:   l.uniform("Texture"),
	}

	l = build(ctx, log, "font", vShaderFont, fShaderFont)
	d.Font = Font{
		Program:  l.prog,
		UColor:   l.uniform("u_Color"),
		TexCoord: l.attrib("TexCoordIn"),
		Texture:  l.uniform("Texture"),
		Pos:      l.attrib("a_Position"),
	}

	l = build(ctx, log, "random", vShaderRandom, fShaderRandom)
	d.Random = Random{
		Program:   l.prog,
		UColor:    l.uniform("u_Color"),
		UPos:      l.uniform("u_Position"),
		MatrixMVP: l.uniform("u_MVPMatrix"),
		Pos:       l.attrib("a_Position"),
	}
	return d
}

// Programs lists every program, failed ones included as 0.
func (d *Data) Programs() []glapi.Program {
	return []glapi.Program{
		d.Shape.Program, d.Light.Program, d.Ground.Program, d.Scene.Program,
		d.Square.Program, d.Font.Program, d.Random.Program,
	}
}

// Delete releases every program and clears the handles.
func (d *Data) Delete(ctx glapi.Context) {
	for _, p := range d.Programs() {
		if p != 0 {
			ctx.DeleteProgram(p)
		}
	}
	*d = Data{}
}
