package image

import (
	"sort"

	"github.com/mmuldo/huepick/palette"
)

// ColorCountList sorts entries by pixel count, most used first.
type ColorCountList []palette.Entry

func (ccl ColorCountList) Len() int           { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool { return ccl[i].Count > ccl[j].Count }
func (ccl ColorCountList) Swap(i, j int)      { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Palette is the set of unique colors of a bitmap with their pixel counts, in the
// order each color was first seen.
type Palette struct {
	entries []palette.Entry
	index   map[palette.Color]int
}

// BuildPalette counts the colors of b.
//
// Without a background, fully transparent pixels are skipped and every other pixel
// counts as its RGB value. With a background, every pixel is alpha-blended over it.
func BuildPalette(b *Bitmap, background *palette.Color) *Palette {
	p := &Palette{index: make(map[palette.Color]int)}

	var bg palette.RGB
	if background != nil {
		bg = background.RGB()
	}

	for i := 0; i+3 < len(b.Pix); i += 4 {
		r, g, bl, a := b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]

		var c palette.Color
		switch {
		case background != nil:
			c = palette.FromRGB(palette.RGB{
				R: blend(r, bg.R, a),
				G: blend(g, bg.G, a),
				B: blend(bl, bg.B, a),
			})
		case a == 0:
			continue
		default:
			c = palette.FromRGB(palette.RGB{R: r, G: g, B: bl})
		}

		p.add(c)
	}

	return p
}

func blend(fg, bg, a uint8) uint8 {
	return uint8((uint32(fg)*uint32(a) + uint32(bg)*uint32(255-a) + 127) / 255)
}

func (p *Palette) add(c palette.Color) {
	if i, ok := p.index[c]; ok {
		p.entries[i].Count++
		return
	}
	p.index[c] = len(p.entries)
	p.entries = append(p.entries, palette.Entry{Color: c, Count: 1})
}

// Len returns the number of unique colors.
func (p *Palette) Len() int { return len(p.entries) }

// Count returns how many pixels have color c.
func (p *Palette) Count(c palette.Color) (int, bool) {
	i, ok := p.index[c]
	if !ok {
		return 0, false
	}
	return p.entries[i].Count, true
}

// Each calls fn for every unique color in first-seen order.
func (p *Palette) Each(fn func(c palette.Color, count int)) {
	for _, e := range p.entries {
		fn(e.Color, e.Count)
	}
}

// Entries returns a copy of the palette's entries in first-seen order.
func (p *Palette) Entries() []palette.Entry {
	return append([]palette.Entry(nil), p.entries...)
}

// MostUsed returns the k most frequent colors. Equal counts keep first-seen order.
func (p *Palette) MostUsed(k int) []palette.Entry {
	ccl := ColorCountList(p.Entries())
	sort.Stable(ccl)

	if k < 0 {
		k = 0
	}
	if k > len(ccl) {
		k = len(ccl)
	}
	return ccl[:k]
}
