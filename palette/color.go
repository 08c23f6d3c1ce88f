// Package palette picks a few salient, perceptually distinct colors out of the
// unique colors of an image.
package palette

// Color is a packed 24-bit RGB value, red in the highest byte and blue in the lowest.
type Color uint32

// Entry is a unique color and the number of pixels it occupies.
type Entry struct {
	Color Color
	Count int
}

// Source is a read-only snapshot of an image's unique colors.
type Source interface {
	// Len returns the number of unique colors.
	Len() int
	// Each calls fn for every entry in a stable order.
	Each(fn func(c Color, count int))
}

// Entries is a Source backed by a slice; iteration follows slice order.
type Entries []Entry

func (es Entries) Len() int { return len(es) }

func (es Entries) Each(fn func(c Color, count int)) {
	for _, e := range es {
		fn(e.Color, e.Count)
	}
}
