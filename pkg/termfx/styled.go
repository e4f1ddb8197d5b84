// Package termfx styles terminal output with ANSI escape sequences. Styles
// are immutable string wrappers: each method returns a new value, and the
// final String call renders the text with an auto-appended reset. Sequences
// are suppressed entirely when output is not a terminal or NO_COLOR is set.
package termfx

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	esc   = "\x1b["
	reset = "\x1b[0m"
)

var (
	enabledOnce sync.Once
	enabled     bool
	forced      *bool
)

// Enabled reports whether escape sequences will be emitted. The default is
// true only when stdout is a terminal and NO_COLOR is unset; SetEnabled
// overrides the detection in either direction.
func Enabled() bool {
	if forced != nil {
		return *forced
	}
	enabledOnce.Do(func() {
		if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
			return
		}
		fd := os.Stdout.Fd()
		enabled = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
	return enabled
}

// SetEnabled forces colors on or off regardless of terminal detection.
func SetEnabled(on bool) {
	forced = &on
}

// Styled is an immutable string carrying pending ANSI codes. Build one with
// Str, chain style methods, and render with String.
type Styled struct {
	text  string
	codes []string
}

// Str wraps text for styling.
func Str(text string) Styled {
	return Styled{text: text}
}

// Value returns the unstyled text.
func (s Styled) Value() string {
	return s.text
}

// String renders the text with all accumulated codes and a trailing reset.
// With no codes, or with colors disabled, the text passes through untouched.
func (s Styled) String() string {
	if len(s.codes) == 0 || !Enabled() {
		return s.text
	}
	return esc + strings.Join(s.codes, ";") + "m" + s.text + reset
}

func (s Styled) with(code string) Styled {
	codes := make([]string, len(s.codes), len(s.codes)+1)
	copy(codes, s.codes)
	return Styled{text: s.text, codes: append(codes, code)}
}

// Fg applies a named foreground color. Unknown names are ignored.
func (s Styled) Fg(c Color) Styled {
	code, ok := fgCode(c)
	if !ok {
		return s
	}
	return s.with(code)
}

// Bg applies a named background color. Unknown names are ignored.
func (s Styled) Bg(c Color) Styled {
	code, ok := bgCode(c)
	if !ok {
		return s
	}
	return s.with(code)
}

// FgRGB applies a truecolor foreground.
func (s Styled) FgRGB(c RGB) Styled {
	return s.with(fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
}

// BgRGB applies a truecolor background.
func (s Styled) BgRGB(c RGB) Styled {
	return s.with(fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B))
}

func (s Styled) Black() Styled  { return s.Fg(Black) }
func (s Styled) Red() Styled    { return s.Fg(Red) }
func (s Styled) Green() Styled  { return s.Fg(Green) }
func (s Styled) Yellow() Styled { return s.Fg(Yellow) }
func (s Styled) Blue() Styled   { return s.Fg(Blue) }
func (s Styled) Purple() Styled { return s.Fg(Purple) }
func (s Styled) Teal() Styled   { return s.Fg(Teal) }
func (s Styled) White() Styled  { return s.Fg(White) }
func (s Styled) Orange() Styled { return s.Fg(Orange) }

// Attribute is a text attribute flag for Colorize.
type Attribute string

const (
	Bold          Attribute = "1"
	Dim           Attribute = "2"
	Italic        Attribute = "3"
	Underline     Attribute = "4"
	Reverse       Attribute = "7"
	Strikethrough Attribute = "9"
)

func (s Styled) Bold() Styled          { return s.with(string(Bold)) }
func (s Styled) Dim() Styled           { return s.with(string(Dim)) }
func (s Styled) Italic() Styled        { return s.with(string(Italic)) }
func (s Styled) Underline() Styled     { return s.with(string(Underline)) }
func (s Styled) Reverse() Styled       { return s.with(string(Reverse)) }
func (s Styled) Strikethrough() Styled { return s.with(string(Strikethrough)) }

// Colorize styles text in a single call: foreground and background are
// loosely written color names resolved through Lookup, followed by any
// attribute flags, with the reset appended. Empty names leave that channel
// unstyled; unknown names are ignored like the Styled setters.
func Colorize(text, fg, bg string, attrs ...Attribute) string {
	s := Str(text)
	if c, ok := Lookup(fg); ok {
		s = s.Fg(c)
	}
	if c, ok := Lookup(bg); ok {
		s = s.Bg(c)
	}
	for _, attr := range attrs {
		s = s.with(string(attr))
	}
	return s.String()
}
