// Package progress renders the throttled console progress bar shown while
// packing bytes and drawing pixels. The bar is redrawn only when the
// displayed percentage moves into a new 10% bucket, so a phase produces at
// most eleven redraws no matter how many work units it reports.
package progress

import (
	"fmt"
	"io"
)

const segments = 10

// Func receives one event per unit of work: the value just completed, the
// value before it, and the total for the phase.
type Func func(current, previous, target int)

// Percent scales value against target to a whole percentage. A target of
// zero or less yields 0 rather than dividing.
func Percent(value, target int) int {
	if target <= 0 {
		return 0
	}
	return int(float64(value) / float64(target) * 100)
}

// Crossed reports whether moving from previousPct to currentPct entered a
// new 10% bucket, the only time the bar is redrawn.
func Crossed(previousPct, currentPct int) bool {
	return previousPct/10 != currentPct/10
}

// Bar draws a ten-segment progress bar on a single console line.
type Bar struct {
	w io.Writer
}

// NewBar returns a bar writing to w. A nil writer discards all output.
func NewBar(w io.Writer) *Bar {
	if w == nil {
		w = io.Discard
	}
	return &Bar{w: w}
}

// Update is called once per unit of work and redraws the bar when the
// percentage crosses a bucket boundary. A target of zero is a no-op.
func (b *Bar) Update(current, previous, target int) {
	if target <= 0 {
		return
	}
	cur := Percent(current, target)
	if !Crossed(Percent(previous, target), cur) {
		return
	}
	fmt.Fprint(b.w, render(cur))
}

func render(pct int) string {
	bar := make([]byte, 0, segments+2)
	bar = append(bar, '[')
	for i := 0; i < segments; i++ {
		if i*10 < pct {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '-')
		}
	}
	bar = append(bar, ']')
	return fmt.Sprintf("%s %3d%%\r", bar, pct)
}
