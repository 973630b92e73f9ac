package scene

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/assets"
	"glscene/common/logger"
	"glscene/config"
	"glscene/glapi"
	"glscene/glapi/glapitest"
	"glscene/mesh"
)

func newEngine(t *testing.T, catalog *assets.Catalog) (*Engine, *glapitest.Recorder, *logger.Logger) {
	ctx := glapitest.NewRecorder()
	cfg := config.Default()
	cfg.Render.Tessellation = 4
	cfg.Render.TextureSize = 8
	log := logger.NewNop()
	e := New(ctx, cfg, log, catalog)
	require.NoError(t, e.InitGraphicObjects())
	return e, ctx, log
}

func names(ctx *glapitest.Recorder) []string {
	var res []string
	for _, c := range ctx.Calls {
		res = append(res, c.Name)
	}
	return res
}

func indexOf(calls []string, name string) int {
	for i, c := range calls {
		if c == name {
			return i
		}
	}
	return -1
}

func TestDrawSphere(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	e.setView()
	s := &e.State.Shapes[0]
	s.Visible, s.Blend, s.Grid = true, true, false
	ctx.Reset()

	e.DrawSphere(0)
	calls := names(ctx)
	assert.Equal(t, "Enable", calls[0])
	assert.Equal(t, []any{glapi.BLEND}, ctx.Calls[0].Args)
	assert.Equal(t, []any{glapi.ONE, glapi.SRC_COLOR}, ctx.Find("BlendFunc")[0].Args)

	draws := ctx.Find("DrawElements")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{glapi.TRIANGLES, 4 * 4 * 6, glapi.UNSIGNED_SHORT, 0}, draws[0].Args)
	assert.Equal(t, []any{glapi.ARRAY_BUFFER, (25*3 + 25*3 + 25*2) * 4, glapi.STATIC_DRAW}, ctx.Find("BufferInit")[0].Args)
	assert.Less(t, indexOf(calls, "BufferInit"), indexOf(calls, "UseProgram"))
	assert.Less(t, indexOf(calls, "UseProgram"), indexOf(calls, "DrawElements"))
	assert.Less(t, indexOf(calls, "DrawElements"), indexOf(calls, "DisableVertexAttribArray"))
	assert.Equal(t, "Disable", calls[len(calls)-1])
	assert.Equal(t, []any{glapi.BLEND}, ctx.Calls[len(calls)-1].Args)
	assert.False(t, ctx.Enabled[glapi.BLEND])

	assert.Equal(t, e.Shaders.Ground.Program, ctx.Program)
	assert.Equal(t, []any{e.Shaders.Ground.MatrixMVP, e.M4.MVP[:]}, ctx.Find("UniformMatrix4fv")[0].Args)
	assert.Equal(t, 3, ctx.Count("EnableVertexAttribArray"))
	assert.Equal(t, 3, ctx.Count("DisableVertexAttribArray"))
	assert.False(t, e.sphere.Allocated(), "host buffers are freed after the draw")

	// p=4: 25 vertices, position then normal then texture blocks
	sizeV, sizeN := 25*3*4, 25*3*4
	ptr := ctx.Find("VertexAttribPointer")
	require.Len(t, ptr, 3)
	g := e.Shaders.Ground
	assert.Equal(t, []any{g.Pos, 3, glapi.FLOAT, false, 0, 0}, ptr[0].Args)
	assert.Equal(t, []any{g.Normal, 3, glapi.FLOAT, false, 0, sizeV}, ptr[1].Args)
	assert.Equal(t, []any{g.TexCoord, 2, glapi.FLOAT, false, 0, sizeV + sizeN}, ptr[2].Args)

	var want mesh.Sphere
	require.NoError(t, want.Alloc(4))
	require.NoError(t, want.Generate(1))
	assert.Equal(t, want.Indices, ctx.Uint16s(e.vbo.IndexBuffer, 0, 4*4*6))
	normals := ctx.Float32s(e.vbo.VertexBuffer, sizeV, 25*3)
	assert.Equal(t, want.Normals, normals)
}

func TestDrawSphereGrid(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	s := &e.State.Shapes[1]
	s.Visible, s.Blend, s.Grid = true, false, true
	ctx.Reset()

	e.DrawSphere(1)
	assert.Equal(t, glapi.LINES, ctx.Find("DrawElements")[0].Args[0])
	assert.Zero(t, ctx.Count("Enable"), "blend stays off")
	assert.Zero(t, ctx.Count("Disable"))
}

func TestDrawSphereInvisible(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	e.State.Shapes[0].Visible = false
	ctx.Reset()
	e.DrawSphere(0)
	assert.Empty(t, ctx.Calls)
}

func TestDrawSphereWithoutProgram(t *testing.T) {
	ctx := glapitest.NewRecorder()
	ctx.FailCompile = "u_Light2Pos"
	cfg := config.Default()
	cfg.Render.Tessellation = 3
	log := logger.NewNop()
	e := New(ctx, cfg, log, nil)
	require.NoError(t, e.InitGraphicObjects())
	assert.Zero(t, e.Shaders.Ground.Program)

	e.State.Shapes[0].Visible = true
	ctx.Reset()
	e.DrawSphere(0)
	assert.Zero(t, ctx.Count("DrawElements"))
	assert.False(t, e.sphere.Allocated())

	failed := 0
	for i := 0; i < log.Count(); i++ {
		if strings.Contains(log.Text(i), "createProgram failed") {
			failed++
		}
	}
	assert.Equal(t, 1, failed)
}

func TestFramesDoNotLeak(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	for j := range e.State.Shapes {
		e.State.Shapes[j].Visible = true
	}
	e.State.EditOn = true
	e.DrawFrame(1.0 / 60)
	live := ctx.Live()
	created := ctx.Count("CreateBuffer")
	for i := 0; i < 100; i++ {
		e.DrawFrame(1.0 / 60)
	}
	assert.Equal(t, live, ctx.Live())
	assert.Equal(t, created, ctx.Count("CreateBuffer"))
	assert.False(t, ctx.Enabled[glapi.BLEND])
	assert.True(t, ctx.Enabled[glapi.DEPTH_TEST])
}

func TestDeleteGraphicObjects(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	e.State.Shapes[0].Visible = true
	e.DrawFrame(1.0 / 60)
	require.NotZero(t, e.Texture(0))

	e.DeleteGraphicObjects()
	assert.Zero(t, ctx.Live(), "every GL object is released")
	for j := 0; j < ShapeCount; j++ {
		assert.Zero(t, e.Texture(j))
	}
	assert.False(t, e.Ready())

	ctx.Reset()
	e.DeleteGraphicObjects()
	assert.Empty(t, ctx.Calls)
	e.DrawFrame(1.0 / 60)
	assert.Empty(t, ctx.Calls, "no drawing after delete")
}

func TestReinit(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	live := ctx.Live()
	require.NoError(t, e.InitGraphicObjects())
	assert.Equal(t, live, ctx.Live())
}

func TestTouchPaneStrictBounds(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	e.Panes = [PaneCount]Pane{}
	e.Panes[2] = Pane{X: 10, Y: 10, X1: 20, Y1: 20}

	for _, tc := range []struct {
		x, y float32
		want int
	}{
		{15, 15, 3},
		{10, 15, 0},
		{20, 15, 0},
		{15, 10, 0},
		{15, 20, 0},
		{0, 0, 0},
	} {
		e.State.X, e.State.Y = tc.x, tc.y
		assert.Equal(t, tc.want, e.TouchPane(), "touch %v,%v", tc.x, tc.y)
	}
}

func center(p Pane) (float32, float32) {
	return (p.X + p.X1) / 2, (p.Y + p.Y1) / 2
}

func TestTouchActions(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	grid := e.Panes[PaneGrid-1]
	edit := e.Panes[PaneEdit-1]
	sel := e.Panes[PaneSelect-1]

	assert.Equal(t, PaneNone, e.Touch(center(grid)), "shape panes are inactive outside edit mode")
	assert.False(t, e.State.Shapes[0].Grid)

	assert.Equal(t, PaneEdit, e.Touch(center(edit)))
	require.True(t, e.State.EditOn)
	assert.Equal(t, paneOn, e.Panes[PaneEdit-1].Color)

	assert.Equal(t, PaneGrid, e.Touch(center(grid)))
	assert.True(t, e.State.Shapes[0].Grid)
	assert.Equal(t, paneOn, e.Panes[PaneGrid-1].Color)

	e.Touch(center(sel))
	assert.Equal(t, 1, e.State.Selected)
	assert.Equal(t, paneOff, e.Panes[PaneGrid-1].Color, "colors follow the selected shape")

	light := e.State.Shapes[1].LightF
	e.Touch(center(e.Panes[PaneLight-1]))
	assert.Equal(t, 1-light, e.State.Shapes[1].LightF)

	speed := e.State.Shapes[1].Speed
	e.Touch(center(e.Panes[PaneFaster-1]))
	assert.Equal(t, speed+speedStep, e.State.Shapes[1].Speed)

	e.Touch(center(e.Panes[PaneNextTexture-1]))
	assert.True(t, e.State.Shapes[1].TextureChanged)
}

func TestResize(t *testing.T) {
	e, ctx, _ := newEngine(t, nil)
	ctx.Reset()
	e.Resize(800, 400)
	assert.Equal(t, []any{0, 0, 800, 400}, ctx.Find("Viewport")[0].Args)
	assert.Equal(t, float32(2), e.Ratio())
	assert.Less(t, e.Panes[PaneCount-1].X1, float32(800))
	assert.Greater(t, e.Panes[PaneCount-1].X, e.Panes[0].X1)

	ctx.Reset()
	e.Resize(0, 400)
	assert.Empty(t, ctx.Calls)
}

func TestRotateShape(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	s := &e.State.Shapes[0]
	s.Angle[1], s.Speed = 300, 90
	e.dt = 1
	e.RotateShape(0)
	assert.InDelta(t, 30, s.Angle[1], 1e-4)

	s.Speed = -90
	e.RotateShape(0)
	assert.InDelta(t, 300, s.Angle[1], 1e-4)
}

func TestMotionSphere(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	s := &e.State.Shapes[0]
	s.Radius, s.PulseAmp, s.PulseSpeed = 2, 0.5, math.Pi/2
	e.dt = 1
	assert.InDelta(t, 3, e.MotionSphere(0), 1e-4)
	assert.InDelta(t, 2, e.MotionSphere(0), 1e-4)

	s.PulseAmp = 0
	assert.Equal(t, float32(2), e.MotionSphere(0))
}

func writePNG(t *testing.T, path string, c color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 16; i++ {
		img.SetRGBA(i%4, i/4, c)
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestChangeShapesTextureWraps(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), color.RGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "b.png"), color.RGBA{G: 255, A: 255})
	catalog, err := assets.NewCatalog(dir, logger.NewNop().SugaredLogger)
	require.NoError(t, err)

	e, ctx, _ := newEngine(t, catalog)
	tex := e.Texture(0)
	s := &e.State.Shapes[0]
	s.Asset = 1
	ctx.Reset()

	e.ChangeShapesTexture(0)
	assert.Empty(t, ctx.Calls, "unchanged textures are not reloaded")

	e.NextTexture(0)
	e.ChangeShapesTexture(0)
	assert.Equal(t, 0, s.Asset, "past the last image wraps to the first")
	assert.False(t, s.TextureChanged)
	assert.Equal(t, tex, e.Texture(0), "the texture name is reused")
	assert.Equal(t, 1, ctx.Count("TexImage2D"))
	assert.Zero(t, ctx.Count("CreateTexture"))
}

func TestMissingTextureFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
	catalog, err := assets.NewCatalog(dir, logger.NewNop().SugaredLogger)
	require.NoError(t, err)

	e, _, log := newEngine(t, catalog)
	assert.NotZero(t, e.Texture(0))
	warned := false
	for i := 0; i < log.Count(); i++ {
		warned = warned || strings.Contains(log.Text(i), "loadTextureFromPNG failed")
	}
	assert.True(t, warned)
}

func TestSnapshot(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	s := &e.State.Shapes[2]
	s.Visible, s.Grid, s.LightF = true, true, 0
	s.Angle[1] = 45
	s.Asset = 5
	e.State.EditOn = true
	e.State.Selected = 2

	file := filepath.Join(t.TempDir(), "state")
	require.NoError(t, e.State.Save(file))

	st := NewState(config.Default().Shapes)
	require.NoError(t, st.Load(file))
	assert.True(t, st.EditOn)
	assert.Equal(t, 2, st.Selected)
	got := st.Shapes[2]
	assert.True(t, got.Visible)
	assert.True(t, got.Grid)
	assert.Equal(t, 0, got.LightF)
	assert.Equal(t, float32(45), got.Angle[1])
	assert.Equal(t, 5, got.Asset)
	assert.True(t, got.TextureChanged)
	assert.Equal(t, KindCube, st.Shapes[ShapeCount-1].Kind, "kind comes from the config")

	assert.Error(t, st.Load(filepath.Join(t.TempDir(), "none")))
}

func TestNewStateFromConfig(t *testing.T) {
	st := NewState([]config.Shape{{Kind: "cube", Visible: true, Light: true, Radius: 2}})
	assert.Equal(t, KindCube, st.Shapes[0].Kind)
	assert.Equal(t, 1, st.Shapes[0].LightF)
	assert.Equal(t, 0, st.Shapes[0].DiffuseF)
	assert.False(t, st.Shapes[1].Visible)
	assert.Equal(t, float32(1), st.Shapes[1].Radius)
}

func TestPressAndSelect(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	require.False(t, e.State.EditOn)
	e.Press(PaneBlend)
	assert.True(t, e.State.Shapes[0].Blend, "keys act outside edit mode")
	e.Press(0)
	e.Press(PaneCount + 1)

	e.Select(3)
	assert.Equal(t, 3, e.State.Selected)
	e.Select(ShapeCount)
	assert.Equal(t, 3, e.State.Selected)
}
