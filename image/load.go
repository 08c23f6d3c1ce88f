package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/esimov/colorquant"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrMalformed is wrapped by MalformedError.
var ErrMalformed = errors.New("malformed input")

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode error: %v", e.Err)
	}
	return fmt.Sprintf("decode error: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedError reports a raw pixel buffer whose length does not match its dimensions.
type MalformedError struct {
	Width, Height int
	Len           int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: %dx%d image needs %d bytes, got %d",
		ErrMalformed, e.Width, e.Height, e.Width*e.Height*4, e.Len)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Bitmap is a decoded image: non-premultiplied RGBA bytes in row-major order.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// Load loads an image for use given a file path
func Load(path string) (*Bitmap, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, &DecodeError{Path: path, Err: e}
	}
	defer f.Close()

	b, e := Decode(f)
	if e != nil {
		var de *DecodeError
		if errors.As(e, &de) {
			de.Path = path
		}
		return nil, e
	}
	return b, nil
}

// Decode decodes any registered image format (PNG, JPEG, GIF, WebP) from r.
func Decode(r io.Reader) (*Bitmap, error) {
	i, _, e := image.Decode(r)
	if e != nil {
		return nil, &DecodeError{Err: e}
	}
	return FromImage(i), nil
}

// FromRGBA wraps a raw RGBA buffer of width*height*4 bytes.
func FromRGBA(pix []byte, width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, &MalformedError{Width: width, Height: height, Len: len(pix)}
	}
	return &Bitmap{Width: width, Height: height, Pix: pix}, nil
}

// FromImage copies i into a Bitmap.
func FromImage(i image.Image) *Bitmap {
	b := i.Bounds()
	o := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(o, o.Bounds(), i, b.Min, draw.Src)
	return &Bitmap{Width: b.Dx(), Height: b.Dy(), Pix: o.Pix}
}

// Image exposes the bitmap as an image.Image sharing the same pixels.
func (b *Bitmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Downscale shrinks b so neither side exceeds maxDim. Nearest-neighbour sampling
// keeps every output pixel byte-identical to a source pixel, alpha included.
func Downscale(b *Bitmap, maxDim int) *Bitmap {
	if maxDim <= 0 || (b.Width <= maxDim && b.Height <= maxDim) {
		return b
	}

	w, h := b.Width, b.Height
	if w >= h {
		h = max(1, h*maxDim/w)
		w = maxDim
	} else {
		w = max(1, w*maxDim/h)
		h = maxDim
	}

	// The bytes are viewed as image.RGBA on both sides: RGBA -> RGBA64 -> RGBA
	// round-trips exactly, whereas NRGBA goes through premultiplication.
	src := &image.RGBA{Pix: b.Pix, Stride: b.Width * 4, Rect: image.Rect(0, 0, b.Width, b.Height)}
	o := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(o, o.Bounds(), src, src.Rect, xdraw.Src, nil)
	return &Bitmap{Width: w, Height: h, Pix: o.Pix}
}

// Quantize reduces b to at most n colors without dithering.
func Quantize(b *Bitmap, n int) *Bitmap {
	if n <= 0 {
		return b
	}

	o := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	colorquant.NoDither.Quantize(b.Image(), o, n, false, true)
	return &Bitmap{Width: b.Width, Height: b.Height, Pix: o.Pix}
}
