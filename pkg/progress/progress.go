// Package progress renders a single-line console progress bar that rewrites
// itself in place with carriage returns.
package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Option configures a Bar.
type Option func(*Bar)

// WithWidth sets the bar width in characters.
func WithWidth(width int) Option {
	return func(b *Bar) {
		if width > 0 {
			b.width = width
		}
	}
}

// WithLabel sets the text printed before the bar.
func WithLabel(label string) Option {
	return func(b *Bar) {
		if label != "" {
			b.label = label
		}
	}
}

// WithPlainOutput disables in-place rewriting; every update prints a full
// line. This is also the automatic behavior when the writer is a file that is
// not a terminal.
func WithPlainOutput() Option {
	return func(b *Bar) {
		b.plain = true
	}
}

// Bar is a console progress bar. It is not safe for concurrent use.
type Bar struct {
	w     io.Writer
	width int
	label string
	plain bool
}

// New creates a bar writing to w. Defaults: width 50, label "Progress",
// in-place rewriting when w looks like a terminal.
func New(w io.Writer, options ...Option) *Bar {
	bar := &Bar{
		w:     w,
		width: 50,
		label: "Progress",
	}
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		bar.plain = true
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(bar)
	}
	return bar
}

// Update draws the bar at the given completion ratio. Values below zero draw
// an empty bar with a halt marker; values of one or more draw a full bar with
// a done marker. Both terminal states finish the current line.
func (b *Bar) Update(progress float64) {
	status := ""
	terminal := false
	switch {
	case progress < 0:
		progress = 0
		status = "Halt..."
		terminal = true
	case progress >= 1:
		progress = 1
		status = "Done..."
		terminal = true
	}

	filled := int(math.Round(float64(b.width) * progress))
	line := fmt.Sprintf("%s: [%s%s] %d%%",
		b.label,
		strings.Repeat("#", filled),
		strings.Repeat("-", b.width-filled),
		int(math.Round(progress*100)),
	)
	if status != "" {
		line += "  " + status
	}

	if b.plain {
		fmt.Fprintln(b.w, line)
		return
	}
	fmt.Fprintf(b.w, "\r%s", line)
	if terminal {
		fmt.Fprintln(b.w)
	}
}
