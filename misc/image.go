package misc

import "image/color"

// ReverseChannels turns a (c0, c1, c2) triple into an opaque RGBA color with c2 as red and c0 as blue.
func ReverseChannels(c0 uint8, c1 uint8, c2 uint8) color.RGBA {
	return color.RGBA{R: c2, G: c1, B: c0, A: 255}
}
