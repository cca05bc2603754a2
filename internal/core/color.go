package core

// Color is a terminal color for a screen cell, mapped to ANSI 256-color
// codes by the platform layer.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorTan
	ColorBrown
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"black":         ColorBlack,
	"bright_red":    ColorBrightRed,
	"bright_yellow": ColorBrightYellow,
	"bright_blue":   ColorBrightBlue,
	"bright_white":  ColorBrightWhite,
	"orange":        ColorOrange,
	"gray":          ColorGray,
	"dark_gray":     ColorDarkGray,
	"tan":           ColorTan,
	"brown":         ColorBrown,
}

// ParseColor looks up a color by its config name ("tan", "bright_blue").
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
