package core

import (
	"image/color"
	"math"
)

// intensity is the display range a channel is clamped to before quantization
var intensity = NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2 correction, mapping non-positive values to 0
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// QuantizeChannel converts a linear channel value to an 8-bit display value
func QuantizeChannel(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}

// ToRGBA converts a linear color to gamma-corrected 8-bit RGBA
func (v Vec3) ToRGBA() color.RGBA {
	return color.RGBA{
		R: QuantizeChannel(v.X),
		G: QuantizeChannel(v.Y),
		B: QuantizeChannel(v.Z),
		A: 255,
	}
}

// NewColorFromRGBA converts an 8-bit color to a linear Vec3 in [0,1], ignoring alpha
func NewColorFromRGBA(c color.RGBA) Vec3 {
	return NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
