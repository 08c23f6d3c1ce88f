package palette

import (
	"context"
	"math"
	"runtime"
	"sort"
)

type priority struct {
	color Color
	score float64
}

type byPriority []priority

func (ps byPriority) Len() int           { return len(ps) }
func (ps byPriority) Less(i, j int) bool { return ps[i].score > ps[j].score }
func (ps byPriority) Swap(i, j int)      { ps[i], ps[j] = ps[j], ps[i] }

// Salience scores a color by how chromatic and how frequent it is. Gray colors are
// treated as having a chroma of 1 so their frequency still counts.
func Salience(lab Lab, count int) float64 {
	chroma := lab.Chroma()
	if chroma == 0 {
		chroma = 1
	}
	lightness := 1 - lab.L*0.005
	return chroma * lightness * math.Sqrt(float64(count))
}

// Rank orders the colors of src by salience, most salient first. Ties keep the
// iteration order of src.
//
// When batch is positive, Rank yields the processor after every batch entries and
// returns ctx.Err() if the context was cancelled in the meantime.
func Rank(ctx context.Context, src Source, lab func(Color) Lab, batch int) ([]Color, error) {
	ps := make([]priority, 0, src.Len())

	var e error
	src.Each(func(c Color, count int) {
		if e != nil {
			return
		}
		ps = append(ps, priority{c, Salience(lab(c), count)})

		if batch > 0 && len(ps)%batch == 0 {
			runtime.Gosched()
			e = ctx.Err()
		}
	})
	if e != nil {
		return nil, e
	}

	sort.Stable(byPriority(ps))

	ranked := make([]Color, len(ps))
	for i, p := range ps {
		ranked[i] = p.color
	}
	return ranked, nil
}
