package sand

import "image/color"

var sandPalette = [MaterialCount]color.NRGBA{
	Empty:     {R: 0, G: 0, B: 0, A: 0},
	Sand:      {R: 237, G: 201, B: 175, A: 255},
	Water:     {R: 0, G: 119, B: 190, A: 255},
	Stone:     {R: 128, G: 128, B: 128, A: 255},
	Wood:      {R: 139, G: 69, B: 19, A: 255},
	Fire:      {R: 255, G: 69, B: 0, A: 255},
	Steam:     {R: 220, G: 220, B: 220, A: 255},
	Oil:       {R: 50, G: 50, B: 50, A: 255},
	Acid:      {R: 173, G: 255, B: 47, A: 255},
	Lava:      {R: 207, G: 16, B: 32, A: 255},
	Plant:     {R: 34, G: 139, B: 34, A: 255},
	Ice:       {R: 173, G: 216, B: 230, A: 255},
	Smoke:     {R: 50, G: 50, B: 50, A: 150},
	Glass:     {R: 200, G: 220, B: 255, A: 180},
	Obsidian:  {R: 40, G: 0, B: 60, A: 255},
	Gunpowder: {R: 64, G: 64, B: 64, A: 255},
}

// Palette returns one premultiplied color per material code, indexed by the
// cell byte.
func Palette() []color.RGBA {
	out := make([]color.RGBA, MaterialCount)
	for i, c := range sandPalette {
		out[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return out
}

// Palette exposes the color palette used for rendering the universe.
func (u *Universe) Palette() []color.RGBA { return Palette() }

// Color returns the non-premultiplied display color of m.
func (m Material) Color() color.NRGBA {
	if !m.Valid() {
		return sandPalette[Empty]
	}
	return sandPalette[m]
}
