package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color: the terminal default, a palette index, or 24-bit RGB
// The zero value is ColorDefault
type Color uint32

const (
	kindIndex Color = 1 << 24
	kindRGB   Color = 2 << 24
	kindMask  Color = 3 << 24
)

// ColorDefault leaves the terminal's own foreground/background in effect
const ColorDefault Color = 0

// Named palette colors (indices 0-15)
const (
	Black Color = kindIndex + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Gray is an alias for BrightBlack
const Gray = BrightBlack

var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

var colorAliases = map[string]Color{
	"gray":          BrightBlack,
	"grey":          BrightBlack,
	"dark_gray":     BrightBlack,
	"dark_grey":     BrightBlack,
	"light_gray":    White,
	"light_grey":    White,
	"light_red":     BrightRed,
	"light_green":   BrightGreen,
	"light_yellow":  BrightYellow,
	"light_blue":    BrightBlue,
	"light_magenta": BrightMagenta,
	"light_cyan":    BrightCyan,
}

// xterm default values for the 16 base colors
var basePalette = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Color cube levels for palette indices 16-231
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// Index returns the palette color n
func Index(n uint8) Color {
	return kindIndex | Color(n)
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return kindRGB | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Hex parses "#rrggbb" or "#rgb", the leading '#' is optional
func Hex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// ParseColor accepts a color name, "default", a hex string or a palette number
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")

	switch {
	case name == "" || name == "default" || name == "reset":
		return ColorDefault, nil
	case strings.HasPrefix(name, "#"):
		return Hex(name)
	}

	for i, n := range colorNames {
		if n == name {
			return Index(uint8(i)), nil
		}
	}
	if c, ok := colorAliases[name]; ok {
		return c, nil
	}

	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return ColorDefault, fmt.Errorf("palette index %d out of range", n)
		}
		return Index(uint8(n)), nil
	}

	return ColorDefault, fmt.Errorf("unknown color %q", s)
}

// IsDefault reports whether c is the terminal default color
func (c Color) IsDefault() bool { return c&kindMask == 0 }

// IsIndexed reports whether c is a palette color
func (c Color) IsIndexed() bool { return c&kindMask == kindIndex }

// IsRGB reports whether c is a 24-bit color
func (c Color) IsRGB() bool { return c&kindMask == kindRGB }

// Index returns the palette index for indexed colors
func (c Color) Index() (uint8, bool) {
	if !c.IsIndexed() {
		return 0, false
	}
	return uint8(c), true
}

// Components returns the RGB value of c; indexed colors resolve through the xterm palette
// ok is false for ColorDefault
func (c Color) Components() (r, g, b uint8, ok bool) {
	switch c & kindMask {
	case kindRGB:
		return uint8(c >> 16), uint8(c >> 8), uint8(c), true
	case kindIndex:
		r, g, b = paletteRGB(uint8(c))
		return r, g, b, true
	}
	return 0, 0, 0, false
}

func paletteRGB(n uint8) (r, g, b uint8) {
	switch {
	case n < 16:
		p := basePalette[n]
		return p[0], p[1], p[2]
	case n < 232:
		n -= 16
		return cubeValues[n/36], cubeValues[(n/6)%6], cubeValues[n%6]
	default:
		v := 8 + (n-232)*10
		return v, v, v
	}
}

// To256 returns the nearest palette index; ColorDefault maps to 0
func (c Color) To256() uint8 {
	switch c & kindMask {
	case kindIndex:
		return uint8(c)
	case kindRGB:
		return rgbTo256(uint8(c>>16), uint8(c>>8), uint8(c))
	}
	return 0
}

func cubeLevel(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := absInt(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// rgbTo256 picks between the 6x6x6 cube and the grayscale ramp
func rgbTo256(r, g, b uint8) uint8 {
	cr, cg, cb := cubeLevel(r), cubeLevel(g), cubeLevel(b)

	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(absInt(int(r)-gray), absInt(int(g)-gray), absInt(int(b)-gray))
	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := min(232+(gray-8)/10, 255)
		level := 8 + (grayIdx-232)*10
		grayDist := absInt(int(r)-level) + absInt(int(g)-level) + absInt(int(b)-level)
		cubeDist := absInt(int(r)-int(cubeValues[cr])) +
			absInt(int(g)-int(cubeValues[cg])) +
			absInt(int(b)-int(cubeValues[cb]))
		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return uint8(16 + 36*cr + 6*cg + cb)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (c Color) toColorful() (colorful.Color, bool) {
	r, g, b, ok := c.Components()
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// Blend mixes c toward other by t in [0,1] in RGB space
// When either side is ColorDefault the nearer endpoint wins
func (c Color) Blend(other Color, t float64) Color {
	t = min(max(t, 0), 1)
	a, okA := c.toColorful()
	b, okB := other.toColorful()
	if !okA || !okB {
		if t < 0.5 {
			return c
		}
		return other
	}
	r, g, bl := a.BlendRgb(b, t).RGB255()
	return RGB(r, g, bl)
}

// Brightness returns perceived luminance in [0,1]; ColorDefault reports 0
func (c Color) Brightness() float64 {
	r, g, b, ok := c.Components()
	if !ok {
		return 0
	}
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// IsLight reports whether the color reads as light
func (c Color) IsLight() bool {
	return c.Brightness() > 0.5
}

// Contrasting returns Black for light colors and White otherwise
func (c Color) Contrasting() Color {
	if c.IsLight() {
		return Black
	}
	return White
}

// Hex formats the RGB value as "#rrggbb"; empty for ColorDefault
func (c Color) Hex() string {
	r, g, b, ok := c.Components()
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String returns a form accepted by ParseColor
func (c Color) String() string {
	switch c & kindMask {
	case kindIndex:
		n := uint8(c)
		if n < 16 {
			return colorNames[n]
		}
		return strconv.Itoa(int(n))
	case kindRGB:
		return c.Hex()
	}
	return "default"
}
