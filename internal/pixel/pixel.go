package pixel

import "github.com/RichieStacker/FileToImage/internal/progress"

// Color is the intermediate representation passed between the packer and the
// renderer: one RGB pixel built from three consecutive input bytes.
type Color struct {
	R, G, B uint8
}

// Pack groups data into colours three bytes at a time, in R,G,B channel
// order. A trailing partial triple is padded with zeroes, so the result
// always holds ceil(len(data)/3) colours; empty input yields nil. Each byte
// processed is reported to report when it is non-nil.
func Pack(data []byte, report progress.Func) []Color {
	if len(data) == 0 {
		return nil
	}

	colours := make([]Color, 0, (len(data)+2)/3)
	var triple [3]byte
	filled := 0

	for i, b := range data {
		triple[filled] = b
		filled++
		if filled == len(triple) {
			colours = append(colours, Color{triple[0], triple[1], triple[2]})
			triple = [3]byte{}
			filled = 0
		}
		if report != nil {
			report(i+1, i, len(data))
		}
	}

	if filled > 0 {
		colours = append(colours, Color{triple[0], triple[1], triple[2]})
	}

	return colours
}
