// Package scene holds the engine that owns the GL objects of the scene and
// draws one frame of it.
package scene

import (
	"fmt"
	"os"

	"glscene/common"
	"glscene/common/message"
	"glscene/config"
)

const ShapeCount = config.ShapeCount

type Kind int

const (
	KindSphere Kind = iota
	KindCube
)

func (k Kind) String() string {
	if k == KindCube {
		return "cube"
	}
	return "sphere"
}

// Shape is the per-slot state of one drawn shape.
type Shape struct {
	Kind           Kind
	Visible        bool
	Blend          bool
	Grid           bool
	TextureChanged bool

	// Lighting switches passed to the shaders as ints.
	LightF   int
	DiffuseF int
	TextureF int

	Start common.Vec3
	Angle common.Vec3
	// Speed is the rotation about y in degrees per second.
	Speed float32

	Radius     float32
	PulseAmp   float32
	PulseSpeed float32
	phase      float32

	// Asset is the catalog index of the shape texture.
	Asset int
}

// State is everything the user can change; it is what a snapshot saves.
type State struct {
	Shapes   [ShapeCount]Shape
	EditOn   bool
	Selected int
	// X, Y is the last touch in window pixels, origin top left.
	X, Y float32
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// NewState builds the initial state from the configured shapes. Slots not
// configured stay hidden.
func NewState(shapes []config.Shape) State {
	var st State
	for i := range st.Shapes {
		st.Shapes[i] = Shape{Radius: 1, PulseSpeed: 1, Asset: i}
	}
	for i, c := range shapes {
		if i >= ShapeCount {
			break
		}
		s := &st.Shapes[i]
		if c.Kind == "cube" {
			s.Kind = KindCube
		}
		s.Visible = c.Visible
		s.Blend = c.Blend
		s.Grid = c.Grid
		s.LightF = b2i(c.Light)
		s.DiffuseF = b2i(c.Diffuse)
		s.TextureF = b2i(c.Texture)
		s.Start = common.Vec3(c.Start)
		s.Speed = c.Speed
		s.Radius = c.Radius
		s.PulseAmp = c.PulseAmp
		s.PulseSpeed = c.PulseSpeed
		s.Asset = c.Asset
	}
	return st
}

// Snapshot converts the state to its wire form.
func (st *State) Snapshot() *message.Snapshot {
	snap := &message.Snapshot{EditOn: st.EditOn, Selected: int32(st.Selected)}
	for _, s := range st.Shapes {
		snap.Shapes = append(snap.Shapes, message.Shape{
			Visible:  s.Visible,
			Blend:    s.Blend,
			Grid:     s.Grid,
			LightF:   int32(s.LightF),
			DiffuseF: int32(s.DiffuseF),
			TextureF: int32(s.TextureF),
			Start:    s.Start,
			Angle:    s.Angle,
			Asset:    int32(s.Asset),
			Radius:   s.Radius,
		})
	}
	return snap
}

// Restore applies a snapshot. Kind, speeds and pulse settings are not
// part of a snapshot and are kept. Every restored shape reloads its
// texture on the next draw.
func (st *State) Restore(snap *message.Snapshot) error {
	if len(snap.Shapes) > ShapeCount {
		return fmt.Errorf("snapshot has %d shapes, at most %d", len(snap.Shapes), ShapeCount)
	}
	if snap.Selected < 0 || int(snap.Selected) >= ShapeCount {
		return fmt.Errorf("snapshot selects shape %d", snap.Selected)
	}
	st.EditOn = snap.EditOn
	st.Selected = int(snap.Selected)
	for i, m := range snap.Shapes {
		s := &st.Shapes[i]
		s.Visible = m.Visible
		s.Blend = m.Blend
		s.Grid = m.Grid
		s.LightF = int(m.LightF)
		s.DiffuseF = int(m.DiffuseF)
		s.TextureF = int(m.TextureF)
		s.Start = m.Start
		s.Angle = m.Angle
		s.Asset = int(m.Asset)
		if s.Asset < 0 {
			s.Asset = 0
		}
		s.Radius = m.Radius
		s.TextureChanged = true
	}
	return nil
}

// Save writes the state snapshot to file.
func (st *State) Save(file string) error {
	return os.WriteFile(file, message.Encode(st.Snapshot()), 0o644)
}

// Load reads a snapshot written by Save.
func (st *State) Load(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	snap, err := message.Decode(data)
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", file, err)
	}
	return st.Restore(snap)
}
