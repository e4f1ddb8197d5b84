package termfx

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Gradient colors text character by character, fading from start to end.
func Gradient(text string, start, end RGB, bold bool) string {
	return perChar(text, bold, func(t float64) RGB {
		return interpolate(start, end, t)
	})
}

// Fade colors text from start to end and back, so the first and last
// characters share the start color.
func Fade(text string, start, end RGB, bold bool) string {
	return perChar(text, bold, func(t float64) RGB {
		return interpolate(start, end, 1-math.Abs(2*t-1))
	})
}

// Rainbow sweeps the hue wheel across the text, red through purple.
func Rainbow(text string, bold bool) string {
	return perChar(text, bold, func(t float64) RGB {
		return hsvToRGB(t*300, 1, 1)
	})
}

// Cycle repeats the supplied colors across the text, one per character. An
// empty color list returns the text unchanged.
func Cycle(text string, colors []RGB, bold bool) string {
	if len(colors) == 0 || !Enabled() {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		writeTruecolor(&b, colors[i%len(colors)], bold)
		b.WriteRune(r)
	}
	b.WriteString(reset)
	return b.String()
}

// Pulse animates text in place on w, fading between two colors. It rewrites
// the current line with carriage returns, so it only makes sense on a
// terminal; with colors disabled it writes the plain text once. A cycles
// value of zero is treated as one full cycle.
func Pulse(w io.Writer, text string, start, end RGB, cycles int, speed time.Duration, bold bool) {
	if !Enabled() {
		fmt.Fprintln(w, text)
		return
	}
	if cycles <= 0 {
		cycles = 1
	}
	const steps = 20

	frames := make([]string, 0, steps*2)
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		frames = append(frames, frame(text, interpolate(start, end, t), bold))
	}
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		frames = append(frames, frame(text, interpolate(end, start, t), bold))
	}

	for c := 0; c < cycles; c++ {
		for _, fr := range frames {
			fmt.Fprintf(w, "\r%s", fr)
			time.Sleep(speed)
		}
	}
	fmt.Fprintf(w, "\r%s\n", frame(text, start, bold))
}

func frame(text string, c RGB, bold bool) string {
	var b strings.Builder
	writeTruecolor(&b, c, bold)
	b.WriteString(text)
	b.WriteString(reset)
	return b.String()
}

func perChar(text string, bold bool, colorAt func(t float64) RGB) string {
	if !Enabled() {
		return text
	}
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}
	span := float64(n - 1)
	if span < 1 {
		span = 1
	}

	var b strings.Builder
	b.Grow(n * 24)
	for i, r := range runes {
		writeTruecolor(&b, colorAt(float64(i)/span), bold)
		b.WriteRune(r)
	}
	b.WriteString(reset)
	return b.String()
}

func writeTruecolor(b *strings.Builder, c RGB, bold bool) {
	b.WriteString(esc)
	if bold {
		b.WriteString("1;")
	}
	fmt.Fprintf(b, "38;2;%d;%d;%d", c.R, c.G, c.B)
	b.WriteByte('m')
}

func interpolate(a, b RGB, t float64) RGB {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}

// hsvToRGB converts hue (degrees), saturation and value in [0,1] to RGB.
func hsvToRGB(h, s, v float64) RGB {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}
}
