package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit sprite tint
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// HexRGB unpacks 0xRRGGBB
func HexRGB(hex uint32) RGB {
	return RGB{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

// Hex packs the color as 0xRRGGBB
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend mixes c toward dst by t in Lab space, t is clamped to [0, 1]
func Blend(c, dst RGB, t float64) RGB {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return dst
	}
	r, g, b := c.colorful().BlendLab(dst.colorful(), t).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Fade blends a tint toward the background by the sprite's missing alpha
func Fade(c, background RGB, alpha float64) RGB {
	return Blend(c, background, 1-alpha)
}
