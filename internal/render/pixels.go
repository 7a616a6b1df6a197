package render

import "image/color"

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. Codes
// past the end of the palette use the last entry. When the palette is empty
// the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

const (
	coldSpan  = 40
	warmSpan  = 780
	whiteSpan = 29200
	heatAlpha = 200
)

// HeatColor maps a temperature onto a translucent premultiplied overlay
// colour. Ambient is fully transparent, colder cells tint blue and hotter
// cells ramp from dull red through yellow to white.
func HeatColor(t, ambient int16) color.RGBA {
	switch {
	case t == ambient:
		return color.RGBA{}
	case t < ambient:
		v := clamp01(float64(int(ambient)-int(t)) / coldSpan)
		a := uint8(heatAlpha * v)
		return color.RGBA{G: a / 3, B: a, A: a}
	}
	delta := float64(int(t) - int(ambient))
	v := clamp01(delta / warmSpan)
	a := uint8(heatAlpha * v)
	if a == 0 {
		a = 1
	}
	white := clamp01((delta - warmSpan) / whiteSpan)
	return color.RGBA{
		R: a,
		G: uint8(float64(a) * v),
		B: uint8(float64(a) * white),
		A: a,
	}
}

// FillHeatRGBA writes the heat overlay for temps into buf.
func FillHeatRGBA(buf []byte, temps []int16, ambient int16) {
	for i, t := range temps {
		col := HeatColor(t, ambient)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
