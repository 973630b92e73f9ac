package scene

import "glscene/common"

const PaneCount = 11

// Pane actions, by 1-based pane index as returned by TouchPane.
const (
	PaneNone = iota
	PaneSelect
	PaneVisible
	PaneGrid
	PaneBlend
	PaneLight
	PaneDiffuse
	PaneTexture
	PaneNextTexture
	PaneFaster
	PaneSlower
	PaneEdit
)

var paneLabels = [PaneCount]string{
	"shape", "visible", "grid", "blend", "light", "diffuse", "texture", "next tex", "faster", "slower", "edit",
}

// Pane is a touch rectangle in window pixels, origin top left.
type Pane struct {
	X, Y   float32
	X1, Y1 float32
	Color  [4]float32
	Label  string
}

// Contains reports whether (x, y) is strictly inside the pane.
func (p *Pane) Contains(x, y float32) bool {
	return x < p.X1 && x > p.X && y < p.Y1 && y > p.Y
}

// layoutPanes stacks the shape panes down the left edge and puts the edit
// pane in the top right corner.
func layoutPanes(panes *[PaneCount]Pane, width, height int) {
	w, h := float32(width), float32(height)
	margin := h / 100
	ph := h / 12
	pw := w / 6
	for i := 0; i < PaneCount-1; i++ {
		y := margin + float32(i)*ph
		panes[i].X, panes[i].Y = margin, y
		panes[i].X1, panes[i].Y1 = margin+pw, y+ph-margin
		panes[i].Label = paneLabels[i]
	}
	e := &panes[PaneCount-1]
	e.X, e.Y = w-pw-margin, margin
	e.X1, e.Y1 = w-margin, ph
	e.Label = paneLabels[PaneCount-1]
}

// TouchPane returns the 1-based index of the pane strictly containing the
// last touch point, or 0.
func (e *Engine) TouchPane() int {
	for i := range e.Panes {
		if e.Panes[i].Contains(e.State.X, e.State.Y) {
			return i + 1
		}
	}
	return 0
}

var (
	paneOff = common.RGBA(77, 77, 77, 153).Floats()
	paneOn  = common.RGBA(26, 153, 51, 178).Floats()
)

// paneColors highlights the panes whose switch is on for the selected
// shape.
func (e *Engine) paneColors() {
	s := &e.State.Shapes[e.State.Selected]
	on := [PaneCount]bool{
		PaneVisible - 1: s.Visible,
		PaneGrid - 1:    s.Grid,
		PaneBlend - 1:   s.Blend,
		PaneLight - 1:   s.LightF != 0,
		PaneDiffuse - 1: s.DiffuseF != 0,
		PaneTexture - 1: s.TextureF != 0,
		PaneEdit - 1:    e.State.EditOn,
	}
	for i := range e.Panes {
		if on[i] {
			e.Panes[i].Color = paneOn
		} else {
			e.Panes[i].Color = paneOff
		}
	}
}

func toggle(f *int) {
	*f = 1 - *f
}

// Touch records a touch at window pixel (x, y) and runs the action of the
// pane under it. Only the edit pane reacts while edit mode is off.
func (e *Engine) Touch(x, y float32) int {
	e.State.X, e.State.Y = x, y
	pane := e.TouchPane()
	if pane == PaneNone || (!e.State.EditOn && pane != PaneEdit) {
		return PaneNone
	}
	e.Press(pane)
	return pane
}

// Press runs the action of pane whether or not edit mode is on.
func (e *Engine) Press(pane int) {
	if pane < 1 || pane > PaneCount {
		return
	}
	s := &e.State.Shapes[e.State.Selected]
	switch pane {
	case PaneSelect:
		e.State.Selected = common.Next(e.State.Selected, ShapeCount)
	case PaneVisible:
		s.Visible = !s.Visible
	case PaneGrid:
		s.Grid = !s.Grid
	case PaneBlend:
		s.Blend = !s.Blend
	case PaneLight:
		toggle(&s.LightF)
	case PaneDiffuse:
		toggle(&s.DiffuseF)
	case PaneTexture:
		toggle(&s.TextureF)
	case PaneNextTexture:
		e.NextTexture(e.State.Selected)
	case PaneFaster:
		s.Speed = common.Clamp(s.Speed+speedStep, -maxSpeed, maxSpeed)
	case PaneSlower:
		s.Speed = common.Clamp(s.Speed-speedStep, -maxSpeed, maxSpeed)
	case PaneEdit:
		e.State.EditOn = !e.State.EditOn
	}
	e.paneColors()
	e.log.Debugw("pane", "index", pane, "label", paneLabels[pane-1], "shape", e.State.Selected)
}

// Select makes shape j the target of the pane actions.
func (e *Engine) Select(j int) {
	if j < 0 || j >= ShapeCount {
		return
	}
	e.State.Selected = j
	e.paneColors()
}
