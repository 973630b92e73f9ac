package scene

import (
	"image"
	"image/color"
	"math"

	"glscene/canvas"
	"glscene/common"
	"glscene/glapi"
)

const (
	speedStep = 15
	maxSpeed  = 360
)

// RotateShape advances the y rotation of shape j by its speed over the
// last frame time.
func (e *Engine) RotateShape(j int) {
	s := &e.State.Shapes[j]
	s.Angle[1] = common.WrapDegrees(s.Angle[1] + s.Speed*e.dt)
}

// MotionSphere advances the pulse of shape j and returns its radius for
// this frame.
func (e *Engine) MotionSphere(j int) float32 {
	s := &e.State.Shapes[j]
	s.phase = float32(math.Mod(float64(s.phase+s.PulseSpeed*e.dt), 2*math.Pi))
	return s.Radius * (1 + s.PulseAmp*float32(math.Sin(float64(s.phase))))
}

// NextTexture moves shape j to the next catalog image. The texture is
// reloaded on the next draw.
func (e *Engine) NextTexture(j int) {
	s := &e.State.Shapes[j]
	s.Asset++
	s.TextureChanged = true
}

// ChangeShapesTexture reloads the texture of shape j if it was marked
// changed. An asset index past the end of the catalog wraps to the first
// image.
func (e *Engine) ChangeShapesTexture(j int) {
	s := &e.State.Shapes[j]
	if !s.TextureChanged {
		return
	}
	if e.catalog != nil && e.catalog.Len() > 0 && s.Asset >= e.catalog.Len() {
		s.Asset = 0
	}
	e.loadShapeTexture(j)
	s.TextureChanged = false
}

// loadShapeTexture uploads the catalog image of shape j into its texture,
// or a checker pattern when there is none.
func (e *Engine) loadShapeTexture(j int) {
	size := e.cfg.Render.TextureSize
	path := ""
	if e.catalog != nil {
		path = e.catalog.Path(e.State.Shapes[j].Asset)
	}
	if path != "" {
		tex, err := canvas.LoadTexture(e.ctx, e.texture[j], path, size, size)
		if err == nil {
			e.texture[j] = tex
			return
		}
		e.log.Warnw("loadTextureFromPNG failed", "shape", j, "err", err)
	}
	e.texture[j] = canvas.UploadTexture(e.ctx, e.texture[j], checker(j), size, size)
}

func checker(j int) image.Image {
	const n = 8
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	hue := color.RGBA{R: uint8(60 + 30*j), G: uint8(200 - 25*j), B: 180, A: 255}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, hue)
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
			}
		}
	}
	return img
}

// whiteTexture is the 1x1 texture used by untextured draws.
func whiteTexture(ctx glapi.Context) glapi.Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return canvas.UploadTexture(ctx, 0, img, 0, 0)
}
