package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lixenwraith/cellgrid/style"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeNone      ColorMode = iota // attributes only
	ColorMode16                         // SGR 30-37 / 90-97
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeNone:
		return "none"
	case ColorMode16:
		return "16"
	case ColorMode256:
		return "256"
	default:
		return "truecolor"
	}
}

// ParseColorMode reads a mode name; "auto" and "" report ok=false so callers detect instead
func ParseColorMode(s string) (mode ColorMode, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "ascii", "mono":
		return ColorModeNone, true
	case "16", "ansi":
		return ColorMode16, true
	case "256", "ansi256":
		return ColorMode256, true
	case "truecolor", "24bit", "rgb":
		return ColorModeTrueColor, true
	}
	return ColorMode256, false
}

// DetectColorMode determines color capability of out from the environment.
// termenv reads TERM, COLORTERM, NO_COLOR and friends; terminals known to
// support 24-bit color but not advertising it are upgraded
func DetectColorMode(out io.Writer) ColorMode {
	mode := fromProfile(termenv.NewOutput(out).EnvColorProfile())
	if mode == ColorMode256 && knownTrueColorTerminal() {
		return ColorModeTrueColor
	}
	return mode
}

func fromProfile(p termenv.Profile) ColorMode {
	switch p {
	case termenv.TrueColor:
		return ColorModeTrueColor
	case termenv.ANSI256:
		return ColorMode256
	case termenv.ANSI:
		return ColorMode16
	default:
		return ColorModeNone
	}
}

func knownTrueColorTerminal() bool {
	for _, env := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	term := os.Getenv("TERM")
	return strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct")
}

// to16 maps any non-default color onto the 16 base palette entries
func to16(c style.Color) uint8 {
	if n, ok := c.Index(); ok && n < 16 {
		return n
	}
	var tc termenv.Color
	if c.IsRGB() {
		tc = termenv.RGBColor(c.Hex())
	} else {
		tc = termenv.ANSI256Color(c.To256())
	}
	if ac, ok := termenv.ANSI.Convert(tc).(termenv.ANSIColor); ok {
		return uint8(ac)
	}
	return 7
}
