package particles

import (
	"context"
	"math"
	"time"
)

// Surface is the 2D immediate-mode drawing target the field renders into.
type Surface interface {
	Clear(width, height float64)
	FillCircle(x, y, r float64, c HSLA)
	StrokeLine(x0, y0, x1, y1, width float64, c HSLA)
}

const lineWidth = 1.0

// Render clears s and draws the particles followed by the links between
// every pair closer than the link distance. A nil surface draws nothing.
func (f *Field) Render(s Surface) {
	if s == nil {
		return
	}
	s.Clear(f.width, f.height)
	for _, p := range f.Particles {
		s.FillCircle(p.X, p.Y, p.Size, p.Color)
	}

	pre := presets[f.mode]
	limit := f.tun.LinkDistance
	for a := 0; a < len(f.Particles); a++ {
		for b := a + 1; b < len(f.Particles); b++ {
			pa, pb := f.Particles[a], f.Particles[b]
			d := math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
			if d >= limit {
				continue
			}
			s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, lineWidth, pre.lineColor(1-d/limit))
		}
	}
}

// Animator binds a field to the surface it is drawn on. Present, if set,
// runs after every frame is drawn.
type Animator struct {
	Field   *Field
	Surface Surface
	Present func()
}

// Tick advances the field one step and redraws it.
func (a *Animator) Tick() {
	if a.Field == nil || a.Surface == nil {
		return
	}
	a.Field.Advance()
	a.Field.Render(a.Surface)
	if a.Present != nil {
		a.Present()
	}
}

// Run ticks once per value received on frames until ctx is cancelled or
// frames is closed. The caller owns the frame source and must stop it after
// Run returns. Without a surface Run returns immediately.
func (a *Animator) Run(ctx context.Context, frames <-chan time.Time) error {
	if a.Field == nil || a.Surface == nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			a.Tick()
		}
	}
}
