// Package text rasterizes a TrueType face into a glyph atlas and draws
// strings with the font program.
package text

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	firstRune     = 32
	lastRune      = 126
	glyphsPerLine = 16
)

// Glyph is the atlas cell of one rune, texture coordinates in [0,1].
type Glyph struct {
	U0, V0, U1, V1 float32
	Advance        float32
}

// Atlas holds the rasterized printable ASCII range of one face.
type Atlas struct {
	Image      *image.RGBA
	CellWidth  int
	CellHeight int
	Ascent     int
	glyphs     map[rune]Glyph
}

// LoadTTF reads a TrueType file; an empty path returns Go Regular.
func LoadTTF(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	return data, nil
}

// NewAtlas rasterizes runes 32..126 of ttf at size points (72 DPI, so
// points are pixels) into a white-on-transparent RGBA image.
func NewAtlas(ttf []byte, size float64) (*Atlas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", size)
	}
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	m := face.Metrics()
	a := &Atlas{
		Ascent:     m.Ascent.Ceil(),
		CellHeight: (m.Ascent + m.Descent).Ceil(),
		glyphs:     make(map[rune]Glyph, lastRune-firstRune+1),
	}
	for r := rune(firstRune); r <= lastRune; r++ {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		w := adv.Ceil()
		if bw := (bounds.Max.X - bounds.Min.X).Ceil(); bw > w {
			w = bw
		}
		if w > a.CellWidth {
			a.CellWidth = w
		}
	}
	if a.CellWidth == 0 || a.CellHeight == 0 {
		return nil, fmt.Errorf("font has no printable glyphs")
	}

	lines := (lastRune - firstRune + glyphsPerLine) / glyphsPerLine
	width := a.CellWidth * glyphsPerLine
	height := a.CellHeight * lines
	a.Image = image.NewRGBA(image.Rect(0, 0, width, height))

	d := &font.Drawer{Dst: a.Image, Src: image.White, Face: face}
	for r := rune(firstRune); r <= lastRune; r++ {
		i := int(r - firstRune)
		x := (i % glyphsPerLine) * a.CellWidth
		y := (i / glyphsPerLine) * a.CellHeight
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		d.Dot = fixed.P(x, y+a.Ascent)
		d.DrawString(string(r))
		a.glyphs[r] = Glyph{
			U0:      float32(x) / float32(width),
			V0:      float32(y) / float32(height),
			U1:      float32(x+a.CellWidth) / float32(width),
			V1:      float32(y+a.CellHeight) / float32(height),
			Advance: float32(adv) / 64,
		}
	}
	return a, nil
}

// Glyph returns the cell of r, falling back to '?' for runes outside the
// atlas.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	if !ok {
		g, ok = a.glyphs['?']
	}
	return g, ok
}

// Width returns the advance of s in pixels at scale 1.
func (a *Atlas) Width(s string) float32 {
	var w float32
	for _, r := range s {
		if g, ok := a.Glyph(r); ok {
			w += g.Advance
		}
	}
	return w
}
