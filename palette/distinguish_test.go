package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedLab serves hand-placed Lab coordinates.
func fixedLab(m map[Color]Lab) func(Color) Lab {
	return func(c Color) Lab { return m[c] }
}

func TestDelta(t *testing.T) {
	assert.InDelta(t, 5, Delta(Lab{10, 0, 0}, Lab{10, 3, 4}), 1e-9)
	assert.InDelta(t, 50, Delta(Lab{0, 0, 0}, Lab{50, 0, 0}), 1e-9)

	// Past the lightness cutoff the distance is fixed, whatever a and b are.
	assert.Equal(t, 100.0, Delta(Lab{0, 0, 0}, Lab{50.5, 0, 0}))
	assert.Equal(t, 100.0, Delta(Lab{90, 100, 100}, Lab{10, 100, 100}))
}

func TestBucketOf(t *testing.T) {
	assert.Equal(t, bucket{2, 6, 6}, bucketOf(Lab{L: 50, A: 0, B: 0}))
	assert.Equal(t, bucket{0, 0, 0}, bucketOf(Lab{L: 0, A: -128, B: -128}))
	assert.Equal(t, bucket{5, 12, 12}, bucketOf(Lab{L: 100, A: 127, B: 127}))
	assert.Equal(t, bucket{-1, -1, 6}, bucketOf(Lab{L: -0.5, A: -130, B: 0}))
}

func TestDistinguish_Threshold(t *testing.T) {
	// limit 10 gives a threshold of 10.
	limit := 10
	maxDelta := MaxDelta(limit)
	assert.Equal(t, 10.0, maxDelta)

	below := fixedLab(map[Color]Lab{
		1: {L: 50, A: 0, B: 0},
		2: {L: 50, A: 9.99, B: 0},
	})
	assert.Equal(t, []Color{1}, Distinguish([]Color{1, 2}, limit, maxDelta, below))

	at := fixedLab(map[Color]Lab{
		1: {L: 50, A: 0, B: 0},
		2: {L: 50, A: 10, B: 0},
	})
	assert.Equal(t, []Color{1, 2}, Distinguish([]Color{1, 2}, limit, maxDelta, at))

	above := fixedLab(map[Color]Lab{
		1: {L: 50, A: 0, B: 0},
		2: {L: 50, A: 6, B: 8.5},
	})
	assert.Equal(t, []Color{1, 2}, Distinguish([]Color{1, 2}, limit, maxDelta, above))
}

func TestDistinguish_OnlySameBucketIsChecked(t *testing.T) {
	// 0.2 apart but on either side of the a = -8 bucket edge.
	labs := fixedLab(map[Color]Lab{
		1: {L: 50, A: -8.1, B: 0},
		2: {L: 50, A: -7.9, B: 0},
	})
	assert.Equal(t, []Color{1, 2}, Distinguish([]Color{1, 2}, 10, 10, labs))
}

func TestDistinguish_LightnessCutoffNeverMerges(t *testing.T) {
	labs := fixedLab(map[Color]Lab{
		1: {L: 0, A: 0, B: 0},
		2: {L: 51, A: 0, B: 0},
	})
	// Different L buckets anyway; a huge threshold still can't merge them.
	assert.Equal(t, []Color{1, 2}, Distinguish([]Color{1, 2}, 2, 1000, labs))
}

func TestDistinguish_StopsAtLimit(t *testing.T) {
	ranked := []Color{0xff0000, 0x00ff00, 0x0000ff, 0xffff00}
	assert.Equal(t, []Color{0xff0000, 0x00ff00, 0x0000ff}, Distinguish(ranked, 3, MaxDelta(3), ToLab))
}

func TestDistinguish_DegenerateLimits(t *testing.T) {
	ranked := []Color{0x010101, 0x020202, 0x030303}

	assert.Empty(t, Distinguish(ranked, 0, 0, ToLab))
	assert.Empty(t, Distinguish(ranked, -1, 0, ToLab))
	assert.Equal(t, []Color{0x010101}, Distinguish(ranked, 1, MaxDelta(1), ToLab))
	assert.Empty(t, Distinguish(nil, 1, MaxDelta(1), ToLab))
	assert.Empty(t, Distinguish(nil, 5, MaxDelta(5), ToLab))
}

func TestDistinguish_LimitLargerThanInput(t *testing.T) {
	ranked := []Color{0xff0000, 0x00ff00}
	got := Distinguish(ranked, 1<<40, MaxDelta(1<<40), ToLab)
	assert.Equal(t, ranked, got)
}

func TestDistinguish_KeepsRankOrder(t *testing.T) {
	ranked := []Color{0x0000ff, 0xff0000, 0xff0101, 0x00ff00}
	got := Distinguish(ranked, 4, MaxDelta(4), ToLab)
	assert.Equal(t, []Color{0x0000ff, 0xff0000, 0x00ff00}, got)
}
