package swish

import "github.com/fatih/color"

// Color is the display color of a log line.
type Color int

const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorRed
	ColorYellow
)

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	}
	return "default"
}

// ColorFor maps an HTTP method to its line color. Methods are matched
// case-sensitively; anything unlisted gets ColorDefault.
func ColorFor(method string) Color {
	switch method {
	case "GET":
		return ColorBlue
	case "POST":
		return ColorGreen
	case "DELETE":
		return ColorRed
	case "PUT":
		return ColorYellow
	}
	return ColorDefault
}

// painters always emit escape codes: whether to color is decided by
// Config.Colors, not by terminal detection.
var painters = map[Color]*color.Color{
	ColorDefault: newPainter(color.FgWhite),
	ColorBlue:    newPainter(color.FgBlue),
	ColorGreen:   newPainter(color.FgGreen),
	ColorRed:     newPainter(color.FgRed),
	ColorYellow:  newPainter(color.FgYellow),
}

func newPainter(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// Paint wraps s in the ANSI escape sequence for c.
func Paint(c Color, s string) string {
	p, ok := painters[c]
	if !ok {
		p = painters[ColorDefault]
	}
	return p.Sprint(s)
}
