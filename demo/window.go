//go:build !android

package main

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"glscene/glapi"
	"glscene/scene"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func initGui() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.DepthBits, 24)
	return nil
}

func createWindow(v *viewer) (*glfw.Window, glapi.Context, error) {
	w := v.cfg.Window
	window, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	window.MakeContextCurrent()
	if w.VSync {
		glfw.SwapInterval(1)
	}
	ctx, err := glapi.NewDesktop()
	if err != nil {
		window.Destroy()
		return nil, nil, err
	}
	v.log.Infow("OpenGL version", "version", glapi.Version())
	return window, ctx, nil
}

// toggleKeys maps keys to the pane they press.
var toggleKeys = map[glfw.Key]int{
	glfw.KeyTab:  scene.PaneSelect,
	glfw.KeyV:    scene.PaneVisible,
	glfw.KeyG:    scene.PaneGrid,
	glfw.KeyB:    scene.PaneBlend,
	glfw.KeyL:    scene.PaneLight,
	glfw.KeyD:    scene.PaneDiffuse,
	glfw.KeyT:    scene.PaneTexture,
	glfw.KeyN:    scene.PaneNextTexture,
	glfw.KeyUp:   scene.PaneFaster,
	glfw.KeyDown: scene.PaneSlower,
	glfw.KeyE:    scene.PaneEdit,
}

func registerEvent(window *glfw.Window, e *scene.Engine, v *viewer) {
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		e.Resize(width, height)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || action != glfw.Press {
			return
		}
		// cursor positions are in screen coordinates, panes in pixels
		x, y := w.GetCursorPos()
		ww, _ := w.GetSize()
		fw, _ := w.GetFramebufferSize()
		scale := 1.0
		if ww > 0 {
			scale = float64(fw) / float64(ww)
		}
		e.Touch(float32(x*scale), float32(y*scale))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch {
		case key == glfw.KeyEscape:
			w.SetShouldClose(true)
		case key >= glfw.Key1 && key <= glfw.Key7:
			e.Select(int(key - glfw.Key1))
		default:
			if pane, ok := toggleKeys[key]; ok {
				e.Press(pane)
			}
		}
	})
	window.SetCloseCallback(func(w *glfw.Window) {
		v.log.Infow("shutdown")
	})
}

func run(v *viewer) error {
	if err := initGui(); err != nil {
		v.close(nil)
		return err
	}
	defer glfw.Terminate()
	window, ctx, err := createWindow(v)
	if err != nil {
		v.close(nil)
		return err
	}
	defer window.Destroy()

	e := scene.New(ctx, v.cfg, v.log, v.catalog)
	v.restore(e)
	if err := e.InitGraphicObjects(); err != nil {
		v.close(nil)
		return err
	}
	fw, fh := window.GetFramebufferSize()
	e.Resize(fw, fh)
	registerEvent(window, e, v)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		v.reloadTextures(e)
		e.DrawFrame(float32(now - last))
		last = now
		window.SwapBuffers()
		glfw.PollEvents()
	}
	e.DeleteGraphicObjects()
	v.close(e)
	return nil
}
