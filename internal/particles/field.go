// Package particles animates the drifting dot field behind the portfolio
// page: a batch of particles that wrap around the surface edges and are
// joined by faint lines when close together.
package particles

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultCap          = 100
	DefaultDensity      = 9000.0
	DefaultLinkDistance = 150.0

	minRadius   = 1.0
	radiusRange = 5.0
	maxSpeed    = 0.5
)

// Tunables are the knobs a host may override. Zero values fall back to the
// defaults above.
type Tunables struct {
	Cap          int     `yaml:"cap"`
	Density      float64 `yaml:"density"`
	LinkDistance float64 `yaml:"link_distance"`
}

func (t Tunables) withDefaults() Tunables {
	if t.Cap <= 0 {
		t.Cap = DefaultCap
	}
	if t.Density <= 0 {
		t.Density = DefaultDensity
	}
	if t.LinkDistance <= 0 {
		t.LinkDistance = DefaultLinkDistance
	}
	return t
}

// Particle is one dot. Only X and Y change after creation.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Size           float64
	Color          HSLA
}

// Field owns the particle batch and the surface bounds it wraps against.
type Field struct {
	Particles []Particle

	width, height float64
	mode          Mode
	tun           Tunables
	rng           *rand.Rand
}

// Count returns how many particles a surface of the given size holds.
func Count(width, height float64, t Tunables) int {
	t = t.withDefaults()
	area := width * height
	if width <= 0 || height <= 0 || math.IsNaN(area) {
		return 0
	}
	n := math.Floor(area / t.Density)
	if n >= float64(t.Cap) {
		return t.Cap
	}
	return int(n)
}

// New creates a field and its first particle batch. A nil rng is seeded
// from the clock.
func New(width, height float64, mode Mode, rng *rand.Rand, t Tunables) *Field {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	f := &Field{
		width:  width,
		height: height,
		mode:   mode,
		tun:    t.withDefaults(),
		rng:    rng,
	}
	f.populate()
	return f
}

func (f *Field) populate() {
	n := Count(f.width, f.height, f.tun)
	p := presets[f.mode]
	f.Particles = make([]Particle, n)
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:      f.rng.Float64() * f.width,
			Y:      f.rng.Float64() * f.height,
			Size:   minRadius + f.rng.Float64()*radiusRange,
			SpeedX: f.rng.Float64()*2*maxSpeed - maxSpeed,
			SpeedY: f.rng.Float64()*2*maxSpeed - maxSpeed,
			Color:  p.particleColor(f.rng),
		}
	}
}

// Width and Height are the bounds particles wrap against.
func (f *Field) Width() float64  { return f.width }
func (f *Field) Height() float64 { return f.height }

// Mode is the active colour preset.
func (f *Field) Mode() Mode { return f.mode }

// Advance moves every particle by its velocity. An axis that leaves the
// surface is reset to the opposite edge; the axes wrap independently.
func (f *Field) Advance() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X = wrap(p.X+p.SpeedX, f.width)
		p.Y = wrap(p.Y+p.SpeedY, f.height)
	}
}

// wrap keeps v in [0, limit). Leaving through the low edge lands on the
// largest value below limit rather than limit itself.
func wrap(v, limit float64) float64 {
	switch {
	case v >= limit:
		return 0
	case v < 0:
		return math.Max(0, math.Nextafter(limit, 0))
	}
	return v
}

// Resize records new bounds. Existing particles keep their positions and
// wrap against the new bounds from the next Advance on.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// SetMode discards the current batch and creates a new one in the given
// colour mode, even when the mode is unchanged.
func (f *Field) SetMode(mode Mode) {
	f.mode = mode
	f.populate()
}
