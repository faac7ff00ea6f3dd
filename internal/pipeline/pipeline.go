package pipeline

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/RichieStacker/FileToImage/internal/pixel"
	"github.com/RichieStacker/FileToImage/internal/progress"
	"github.com/RichieStacker/FileToImage/internal/raster"
)

// ErrEmptyInput is returned when the input holds no bytes. An empty file
// packs to zero pixels and would otherwise size a degenerate 0x0 canvas, so
// it is reported as a failure instead.
var ErrEmptyInput = errors.New("input is empty, nothing to draw")

// Options controls the file-to-image conversion pipeline.
type Options struct {
	Scale    int       // whole-number magnification of the finished canvas (<2 disables)
	Status   io.Writer // stage announcements; nil discards
	Progress io.Writer // progress bar redraws; nil discards
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded PNG
	Width  int    // canvas width before scaling
	Height int    // canvas height before scaling
	Pixels int    // number of packed pixels
}

// Run executes the full conversion pipeline: pack → size → draw → encode.
func Run(data []byte, opts Options) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	status := opts.Status
	if status == nil {
		status = io.Discard
	}
	bar := progress.NewBar(opts.Progress)

	// 1. Pack byte triples into pixel colours
	fmt.Fprintln(status, "Assembling pixel colour list...")
	colours := pixel.Pack(data, bar.Update)
	fmt.Fprintln(status)

	// 2. Size a near-square canvas for the pixel count
	fmt.Fprintln(status, "Creating image...")
	width, height := raster.Dimensions(len(colours))

	// 3. Draw the colours row-major, black-filling the unused tail
	fmt.Fprintln(status, "Drawing pixel data to image...")
	img := raster.Render(colours, width, height, bar.Update)
	fmt.Fprintln(status)

	// 4. Encode to PNG, magnified if requested
	fmt.Fprintln(status, "Saving image...")
	encoded, err := raster.EncodePNG(raster.Scale(img, opts.Scale))
	if err != nil {
		return nil, errors.Wrap(err, "saving image")
	}

	return &Result{
		Data:   encoded,
		Width:  width,
		Height: height,
		Pixels: len(colours),
	}, nil
}
