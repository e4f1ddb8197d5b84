package termfx

import "strings"

// Color is a named palette entry. The palette covers the sixteen standard
// terminal colors plus orange, which is only expressible as a truecolor
// sequence.
type Color string

const (
	Black        Color = "black"
	Red          Color = "red"
	Green        Color = "green"
	Yellow       Color = "yellow"
	Blue         Color = "blue"
	Purple       Color = "purple"
	Teal         Color = "teal"
	White        Color = "white"
	BrightBlack  Color = "bright_black"
	BrightRed    Color = "bright_red"
	BrightGreen  Color = "bright_green"
	BrightYellow Color = "bright_yellow"
	BrightBlue   Color = "bright_blue"
	BrightPurple Color = "bright_purple"
	BrightTeal   Color = "bright_teal"
	BrightWhite  Color = "bright_white"
	Orange       Color = "orange"
)

type paletteEntry struct {
	fg  string
	bg  string
	rgb RGB
}

// Standard colors carry the muted 205-level RGB used for effect
// interpolation; bright variants use full 255 levels.
var palette = map[Color]paletteEntry{
	Black:        {"30", "40", RGB{0, 0, 0}},
	Red:          {"31", "41", RGB{205, 0, 0}},
	Green:        {"32", "42", RGB{0, 205, 0}},
	Yellow:       {"33", "43", RGB{205, 205, 0}},
	Blue:         {"34", "44", RGB{0, 0, 205}},
	Purple:       {"35", "45", RGB{205, 0, 205}},
	Teal:         {"36", "46", RGB{0, 205, 205}},
	White:        {"37", "47", RGB{205, 205, 205}},
	BrightBlack:  {"90", "100", RGB{127, 127, 127}},
	BrightRed:    {"91", "101", RGB{255, 0, 0}},
	BrightGreen:  {"92", "102", RGB{0, 255, 0}},
	BrightYellow: {"93", "103", RGB{255, 255, 0}},
	BrightBlue:   {"94", "104", RGB{0, 0, 255}},
	BrightPurple: {"95", "105", RGB{255, 0, 255}},
	BrightTeal:   {"96", "106", RGB{0, 255, 255}},
	BrightWhite:  {"97", "107", RGB{255, 255, 255}},
	Orange:       {"38;2;255;165;0", "48;2;255;165;0", RGB{255, 165, 0}},
}

// RGB is a 24-bit color used by truecolor sequences and the multicolor
// effects.
type RGB struct {
	R, G, B uint8
}

// RGBOf returns the palette RGB value for a named color.
func RGBOf(c Color) (RGB, bool) {
	entry, ok := palette[c]
	if !ok {
		return RGB{}, false
	}
	return entry.rgb, true
}

// Lookup resolves a loosely written color name ("Bright Red", "bright-red")
// to its palette entry.
func Lookup(name string) (Color, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	c := Color(normalized)
	if _, ok := palette[c]; !ok {
		return "", false
	}
	return c, true
}

func fgCode(c Color) (string, bool) {
	entry, ok := palette[c]
	if !ok {
		return "", false
	}
	return entry.fg, true
}

func bgCode(c Color) (string, bool) {
	entry, ok := palette[c]
	if !ok {
		return "", false
	}
	return entry.bg, true
}
