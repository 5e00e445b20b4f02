package export

import "fmt"

// sliceColor represents an RGB color for a slice.
type sliceColor struct {
	R, G, B int
}

// sliceColors mirrors the color scheme used in the UI pizza canvas widget.
var sliceColors = []sliceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func colorFor(i int) sliceColor {
	return sliceColors[i%len(sliceColors)]
}

func (c sliceColor) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
