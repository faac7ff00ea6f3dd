// Package raster lays a packed pixel sequence out on a near-square canvas
// and encodes the result as PNG.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/RichieStacker/FileToImage/internal/pixel"
	"github.com/RichieStacker/FileToImage/internal/progress"
)

// Dimensions computes a canvas as square as possible that holds n pixels:
// width = round(sqrt(n)), height = ceil(n/width), so width*height >= n.
// n = 0 defines a 0x0 canvas; callers are expected to reject empty input
// before sizing.
func Dimensions(n int) (width, height int) {
	if n <= 0 {
		return 0, 0
	}
	width = int(math.Round(math.Sqrt(float64(n))))
	height = (n + width - 1) / width
	return width, height
}

// Render draws colours onto a width x height canvas in row-major order,
// placing colours[i] at (i mod width, i / width). Positions past the end of
// the sequence are filled with opaque black. Each cell drawn is reported to
// report when it is non-nil.
func Render(colours []pixel.Color, width, height int, report progress.Func) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	total := width * height
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{A: 255}
			if i < len(colours) {
				c.R = colours[i].R
				c.G = colours[i].G
				c.B = colours[i].B
			}
			img.SetRGBA(x, y, c)
			if report != nil {
				report(i+1, i, total)
			}
			i++
		}
	}
	return img
}

// Scale magnifies the canvas by a whole factor with nearest-neighbour
// sampling, keeping every source pixel an exact factor-by-factor block.
// Factors below two return the canvas unchanged.
func Scale(img *image.RGBA, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}

// EncodePNG serializes the canvas to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}
