package palette

import (
	"math/rand"
	"testing"

	"github.com/jkl1337/go-chromath"
	"github.com/stretchr/testify/assert"
)

var (
	refRGB2Xyz = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		&chromath.IlluminantRefD65,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	refLab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

func TestToLab_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		c := Color(rng.Intn(0x1000000))
		assert.Equal(t, ToLab(c), ToLab(c))
	}
}

func TestToLab_Extremes(t *testing.T) {
	black := ToLab(0x000000)
	assert.InDelta(t, 0, black.L, 1e-9)
	assert.InDelta(t, 0, black.A, 1e-9)
	assert.InDelta(t, 0, black.B, 1e-9)

	white := ToLab(0xffffff)
	assert.InDelta(t, 100, white.L, 1e-3)
	assert.InDelta(t, 0, white.A, 1e-3)
	assert.InDelta(t, 0, white.B, 1e-3)
}

func TestToLab_GrayIsNeutral(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		c := FromRGB(RGB{uint8(v), uint8(v), uint8(v)})
		lab := ToLab(c)
		assert.InDelta(t, 0, lab.A, 1e-3, "a of %s", c)
		assert.InDelta(t, 0, lab.B, 1e-3, "b of %s", c)
	}
}

func TestToLab_LightnessIncreasesWithGray(t *testing.T) {
	prev := -1.0
	for v := 0; v <= 0xff; v++ {
		l := ToLab(FromRGB(RGB{uint8(v), uint8(v), uint8(v)})).L
		assert.Greater(t, l, prev)
		prev = l
	}
}

func TestToLab_MatchesChromath(t *testing.T) {
	colors := []Color{0xff0000, 0x00ff00, 0x0000ff, 0xffff00, 0x336699, 0x808080, 0xc0ffee, 0x123456}
	for _, c := range colors {
		rgb := c.RGB()
		xyz := refRGB2Xyz.Convert(chromath.RGB{float64(rgb.R), float64(rgb.G), float64(rgb.B)})
		ref := refLab2Xyz.Invert(xyz)

		lab := ToLab(c)
		assert.InDelta(t, ref[0], lab.L, 0.5, "L of %s", c)
		assert.InDelta(t, ref[1], lab.A, 0.5, "a of %s", c)
		assert.InDelta(t, ref[2], lab.B, 0.5, "b of %s", c)
	}
}

func TestToLab_KnownValues(t *testing.T) {
	red := ToLab(0xff0000)
	assert.InDelta(t, 53.24, red.L, 0.05)
	assert.InDelta(t, 80.09, red.A, 0.05)
	assert.InDelta(t, 67.20, red.B, 0.05)
}
