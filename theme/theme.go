package theme

import (
	"errors"
	"os"
	"sort"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/huepick/palette"
)

// ErrNotEnoughColors is returned when there is nothing to build a theme from.
var ErrNotEnoughColors = errors.New("not enough colors to build a theme")

// Palette represents a set of colors and their associated 'roles' (e.g. color0, color1, etc.).
type Palette map[int]ColorVol

// Theme represents a desktop theme.
type Theme map[string]interface{}

// ColorVol represents a color, its Lab equivalent, and the number of pixels it takes up in a given image.
type ColorVol struct {
	Color palette.Color
	Lab   palette.Lab
	Count int
}

type counter interface {
	Count(c palette.Color) (int, bool)
}

type byCount []ColorVol

func (cvs byCount) Len() int           { return len(cvs) }
func (cvs byCount) Less(i, j int) bool { return cvs[i].Count > cvs[j].Count }
func (cvs byCount) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

type byDarkness []ColorVol

func (cvs byDarkness) Len() int           { return len(cvs) }
func (cvs byDarkness) Less(i, j int) bool { return cvs[i].Lab.L < cvs[j].Lab.L }
func (cvs byDarkness) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

//**exported functions**//
// NewVols pairs extracted colors with their Lab coordinates and their pixel counts in src.
func NewVols(src counter, colors []palette.Color) []ColorVol {
	cvs := make([]ColorVol, 0, len(colors))
	for _, c := range colors {
		n, _ := src.Count(c)
		cvs = append(cvs, ColorVol{c, palette.ToLab(c), n})
	}
	return cvs
}

// Delegate converts a ColorVol slice to a Palette.
func Delegate(cvs []ColorVol) (Palette, error) {
	if len(cvs) == 0 {
		return nil, ErrNotEnoughColors
	}
	p := make(Palette) // Palette to return

	// group colors into darks and lights
	sorted := append([]ColorVol(nil), cvs...)
	sort.Stable(byDarkness(sorted))
	d := sorted[:len(sorted)/2]
	l := sorted[len(sorted)/2:]

	// assign roles by prevalence
	sort.Stable(byCount(d))
	sort.Stable(byCount(l))
	for i, c := range d {
		p[i] = c
	}
	for i, c := range l {
		p[len(d)+i] = c
	}

	return p, nil
}

// Create creates a new desktop theme based a provided palette and other options
func Create(p Palette, opts map[string]interface{}) Theme {
	var keys []int
	t := make(Theme)

	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		t["color"+strconv.Itoa(k)] = p[k].Color.Hex()
	}

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, len(keys))

	return t
}

// Render executes a pongo2 template with the theme as context.
func Render(t Theme, tpl string) (string, error) {
	tmpl, e := pongo2.FromString(tpl)
	if e != nil {
		return "", e
	}
	return tmpl.Execute(pongo2.Context(t))
}

// RenderFile executes the pongo2 template at path and writes the result to dest.
func RenderFile(t Theme, path, dest string) error {
	tmpl, e := pongo2.FromFile(path)
	if e != nil {
		return e
	}

	o, e := tmpl.Execute(pongo2.Context(t))
	if e != nil {
		return e
	}

	return os.WriteFile(dest, []byte(o), 0644)
}

//**helper functions**//
func setDefaults(t Theme, n int) {
	if _, ok := t["background"]; !ok && n > 0 {
		t["background"] = t["color0"]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok && n > 0 {
		fg := "color8"
		if n <= 8 {
			fg = "color" + strconv.Itoa(n-1)
		}
		t["foreground"] = t[fg]
	}
}
