//go:build android

package main

import (
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"glscene/glapi"
	"glscene/scene"
)

func run(v *viewer) error {
	app.Main(func(a app.App) {
		var (
			e    *scene.Engine
			prev *scene.State
			last time.Time
			sz   size.Event
		)
		for ev := range a.Events() {
			switch ev := a.Filter(ev).(type) {
			case lifecycle.Event:
				switch ev.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := ev.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					e = scene.New(glapi.NewMobile(glctx), v.cfg, v.log, v.catalog)
					v.resume(e, prev)
					if err := e.InitGraphicObjects(); err != nil {
						v.log.Errorw("initGraphicObjects failed", "err", err)
						e = nil
						continue
					}
					e.Resize(sz.WidthPx, sz.HeightPx)
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if e != nil {
						prev = v.suspend(e)
						e = nil
					}
				}
				if ev.To == lifecycle.StageDead {
					v.close(nil)
					return
				}
			case size.Event:
				sz = ev
				if e != nil {
					e.Resize(sz.WidthPx, sz.HeightPx)
				}
			case touch.Event:
				if e != nil && ev.Type == touch.TypeBegin {
					e.Touch(ev.X, ev.Y)
				}
			case paint.Event:
				if e == nil || ev.External {
					continue
				}
				now := time.Now()
				v.reloadTextures(e)
				e.DrawFrame(float32(now.Sub(last).Seconds()))
				last = now
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
	return nil
}
