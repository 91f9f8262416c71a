package particles

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects one of the two colour presets.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// ParseMode resolves a theme name. "system" defers to prefersDark, the
// host's view of the visitor's colour-scheme preference.
func ParseMode(theme string, prefersDark bool) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	case "system", "":
		if prefersDark {
			return Dark, nil
		}
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", theme)
}

// HSLA is a colour in CSS terms: hue in degrees, saturation and lightness
// in percent, alpha in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// CSS renders the colour as an hsla() function.
func (c HSLA) CSS() string {
	return fmt.Sprintf("hsla(%.1f, %.0f%%, %.0f%%, %.3f)", c.H, c.S, c.L, c.A)
}

// Hex drops alpha and returns the #rrggbb form.
func (c HSLA) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

// Blend mixes the colour over bg using its alpha and returns #rrggbb. The
// terminal has no alpha channel, so the preview fakes it this way.
func (c HSLA) Blend(bg string) string {
	base, err := colorful.Hex(bg)
	if err != nil {
		return c.Hex()
	}
	fg := colorful.Hsl(c.H, c.S/100, c.L/100)
	return base.BlendRgb(fg, c.A).Clamped().Hex()
}

// preset holds the parameter ranges of one colour mode.
type preset struct {
	hue, hueSpread     float64
	sat, light         float64
	alpha, alphaSpread float64
	lineAlpha          float64
}

var presets = map[Mode]preset{
	Dark:  {hue: 260, hueSpread: 30, sat: 70, light: 50, alpha: 0.1, alphaSpread: 0.3, lineAlpha: 0.2},
	Light: {hue: 280, hueSpread: 30, sat: 60, light: 70, alpha: 0.05, alphaSpread: 0.2, lineAlpha: 0.1},
}

func (p preset) particleColor(rng *rand.Rand) HSLA {
	return HSLA{
		H: p.hue + rng.Float64()*p.hueSpread,
		S: p.sat,
		L: p.light,
		A: p.alpha + rng.Float64()*p.alphaSpread,
	}
}

// lineColor is fixed per mode; strength is 1 - d/linkDistance.
func (p preset) lineColor(strength float64) HSLA {
	return HSLA{H: p.hue, S: p.sat, L: p.light, A: strength * p.lineAlpha}
}
