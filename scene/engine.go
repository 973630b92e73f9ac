package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"glscene/assets"
	"glscene/canvas"
	"glscene/common"
	"glscene/common/logger"
	"glscene/config"
	"glscene/glapi"
	"glscene/mesh"
	"glscene/shaders"
	"glscene/text"
)

// Matrices are the transforms of the draw in progress.
type Matrices struct {
	Projection common.Mat4
	View       common.Mat4
	Model      common.Mat4
	MV         common.Mat4
	MVP        common.Mat4
	// Ortho maps window pixels (origin top left) to clip space.
	Ortho common.Mat4
}

// Engine owns every GL object of the scene. All methods must be called on
// the thread that owns the GL context.
type Engine struct {
	ctx     glapi.Context
	cfg     *config.Config
	log     *logger.Logger
	catalog *assets.Catalog

	State   State
	Shaders *shaders.Data
	Panes   [PaneCount]Pane
	M4      Matrices

	LightPosInEyeSpace  common.Vec4
	Light2PosInEyeSpace common.Vec4

	texture [ShapeCount]glapi.Texture
	white   glapi.Texture

	sphere mesh.Sphere
	vbo    *canvas.VBO
	ground *canvas.VBO
	cube   *canvas.VBO

	lights     *canvas.ArrayBuffer
	stars      *canvas.ArrayBuffer
	panes      *canvas.ArrayBuffer
	background *canvas.ArrayBuffer
	font       *text.Font

	width, height int
	ratio         float32
	dt            float32
	elapsed       float32
	fps           float32
	rng           *rand.Rand
	ready         bool
}

// New returns an engine with no GL objects yet. catalog may be nil, shapes
// then get generated textures.
func New(ctx glapi.Context, cfg *config.Config, log *logger.Logger, catalog *assets.Catalog) *Engine {
	e := &Engine{
		ctx:     ctx,
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		State:   NewState(cfg.Shapes),
		Shaders: &shaders.Data{},
		vbo:     canvas.NewVBO(),
		ground:  canvas.NewVBO(),
		cube:    canvas.NewVBO(),
		rng:     rand.New(rand.NewSource(1)),
		ratio:   1,
	}
	e.M4.Model = mgl32.Ident4()
	e.Resize(cfg.Window.Width, cfg.Window.Height)
	return e
}

func (e *Engine) Ready() bool { return e.ready }

// InitGraphicObjects builds the programs and loads textures, static
// geometry and the font. Calling it again first deletes the previous
// objects.
func (e *Engine) InitGraphicObjects() error {
	if e.ready {
		e.DeleteGraphicObjects()
	}
	e.Shaders = shaders.Init(e.ctx, e.log.SugaredLogger)

	for j := range e.texture {
		e.loadShapeTexture(j)
		e.State.Shapes[j].TextureChanged = false
	}
	e.white = whiteTexture(e.ctx)

	g := mesh.Ground(20, 20)
	e.ground.Upload(e.ctx, g.Vertices, g.Colors, g.Normals, g.Textures, g.Indices)
	c := mesh.Cube(1)
	e.cube.Upload(e.ctx, c.Vertices, c.Colors, c.Normals, c.Textures, c.Indices)

	e.lights = canvas.NewArrayBuffer(3, glapi.DYNAMIC_DRAW)
	e.stars = canvas.NewArrayBuffer(3, glapi.STATIC_DRAW)
	e.stars.Upload(e.ctx, e.starField(e.cfg.Render.Stars))
	e.panes = canvas.NewArrayBuffer(4, glapi.DYNAMIC_DRAW)
	e.background = canvas.NewArrayBuffer(9, glapi.STATIC_DRAW)
	e.background.Upload(e.ctx, backgroundQuad())

	if err := e.initFont(); err != nil {
		e.ready = true
		e.DeleteGraphicObjects()
		return err
	}
	e.paneColors()
	e.ready = true
	e.log.Infow("graphic objects ready", "textures", len(e.texture), "tessellation", e.cfg.Render.Tessellation)
	return nil
}

func (e *Engine) initFont() error {
	ttf, err := text.LoadTTF(e.cfg.Text.Font)
	if err != nil {
		return err
	}
	atlas, err := text.NewAtlas(ttf, e.cfg.Text.Size)
	if err != nil {
		return err
	}
	e.font = text.NewFont(e.ctx, atlas, e.Shaders.Font, e.width, e.height)
	e.font.SetColor(1, 1, 1, 1)
	return nil
}

// DeleteGraphicObjects releases every GL object the engine created. It is
// safe to call more than once.
func (e *Engine) DeleteGraphicObjects() {
	if !e.ready {
		return
	}
	e.vbo.Delete(e.ctx)
	for j := range e.texture {
		if e.texture[j] != 0 {
			e.ctx.DeleteTexture(e.texture[j])
			e.texture[j] = 0
		}
	}
	if e.white != 0 {
		e.ctx.DeleteTexture(e.white)
		e.white = 0
	}
	e.ground.Delete(e.ctx)
	e.cube.Delete(e.ctx)
	for _, ab := range []*canvas.ArrayBuffer{e.lights, e.stars, e.panes, e.background} {
		if ab != nil {
			ab.Delete(e.ctx)
		}
	}
	if e.font != nil {
		e.font.Delete(e.ctx)
		e.font = nil
	}
	e.Shaders.Delete(e.ctx)
	e.sphere.Release()
	e.ready = false
}

// Resize sets the viewport and everything derived from the window size.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.width, e.height = width, height
	e.ratio = float32(width) / float32(height)
	e.ctx.Viewport(0, 0, width, height)
	r := e.cfg.Render
	e.M4.Projection = mgl32.Perspective(common.DegToRad(r.FovY), e.ratio, r.Near, r.Far)
	e.M4.Ortho = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	layoutPanes(&e.Panes, width, height)
	if e.font != nil {
		e.font.ResizeWindow(width, height)
	}
}

func (e *Engine) Ratio() float32 { return e.ratio }

func (e *Engine) Texture(j int) glapi.Texture { return e.texture[j] }

// setView recomputes the view matrix and the lights in eye space.
func (e *Engine) setView() {
	eye := e.cfg.Render.Eye
	e.M4.View = mgl32.LookAtV(mgl32.Vec3(eye), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	l1, l2 := e.cfg.Render.Light, e.cfg.Render.Light2
	e.LightPosInEyeSpace = e.M4.View.Mul4x1(mgl32.Vec3(l1).Vec4(1))
	e.Light2PosInEyeSpace = e.M4.View.Mul4x1(mgl32.Vec3(l2).Vec4(1))
}

// DrawFrame advances the animation by dt seconds and draws the scene.
func (e *Engine) DrawFrame(dt float32) {
	if !e.ready {
		return
	}
	if dt < 0 || !common.IsFinite(dt) {
		dt = 0
	}
	e.dt = dt
	e.elapsed += dt
	if dt > 0 {
		e.fps = 0.9*e.fps + 0.1/dt
	}
	c := e.cfg.Render.ClearColor
	e.ctx.ClearColor(c[0], c[1], c[2], c[3])
	e.ctx.Clear(glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT)
	e.ctx.Enable(glapi.DEPTH_TEST)
	e.ctx.DepthFunc(glapi.LEQUAL)
	e.setView()

	e.DrawBackground()
	e.DrawRandom()
	e.DrawGround()
	for j := range e.State.Shapes {
		if e.State.Shapes[j].Kind == KindCube {
			e.DrawCube(j)
		} else {
			e.DrawSphere(j)
		}
	}
	e.DrawLights()
	e.DrawPanes()
	e.DrawText()
}
