package palette

import "math"

const (
	// GridSize is the edge length of a Lab grid bucket.
	GridSize = 20.0

	// lightnessCutoff is the lightness gap past which two colors are never merged.
	lightnessCutoff = 50.0
	farDelta        = 100.0
)

type bucket struct {
	l, a, b int
}

func bucketOf(lab Lab) bucket {
	return bucket{
		l: int(math.Floor(lab.L / GridSize)),
		a: int(math.Floor((lab.A + 128) / GridSize)),
		b: int(math.Floor((lab.B + 128) / GridSize)),
	}
}

// Delta is the Euclidean distance between two Lab colors, except that colors whose
// lightness differs by more than 50 are reported as 100 apart.
func Delta(x, y Lab) float64 {
	dl := x.L - y.L
	if math.Abs(dl) > lightnessCutoff {
		return farDelta
	}
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// MaxDelta returns the merge threshold used when limit colors are requested.
func MaxDelta(limit int) float64 {
	return 100 / float64(limit)
}

// Distinguish walks ranked in order and keeps a color only if no color kept before it
// in the same grid bucket is closer than maxDelta. It stops after limit colors.
//
// Colors in neighbouring buckets are never compared, so two kept colors can be closer
// than maxDelta when they straddle a bucket edge.
func Distinguish(ranked []Color, limit int, maxDelta float64, lab func(Color) Lab) []Color {
	if limit <= 1 {
		if limit <= 0 || len(ranked) == 0 {
			return []Color{}
		}
		return []Color{ranked[0]}
	}

	n := min(limit, len(ranked))
	kept := make([]Color, 0, n)
	labs := make([]Lab, 0, n)
	grid := make(map[bucket][]int)

	for _, c := range ranked {
		if len(kept) >= limit {
			break
		}

		l := lab(c)
		k := bucketOf(l)

		dup := false
		for _, i := range grid[k] {
			if Delta(l, labs[i]) < maxDelta {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		grid[k] = append(grid[k], len(kept))
		kept = append(kept, c)
		labs = append(labs, l)
	}

	return kept
}
