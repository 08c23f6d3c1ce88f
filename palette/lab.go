package palette

import "math"

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

const (
	labEpsilon = 216.0 / 24389.0
	labSlope   = 841.0 / 108.0
	labOffset  = 4.0 / 29.0
)

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// ToLab converts c from sRGB to CIE Lab under the D65 illuminant.
func ToLab(c Color) Lab {
	r := linearize(float64(c>>16&0xff) / 255)
	g := linearize(float64(c>>8&0xff) / 255)
	b := linearize(float64(c&0xff) / 255)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Chroma returns the distance of the color from the neutral axis.
func (l Lab) Chroma() float64 {
	return math.Sqrt(l.A*l.A + l.B*l.B)
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labSlope*t + labOffset
}
