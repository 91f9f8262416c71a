// Package counter animates the project statistics counting up from zero.
package counter

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const DefaultDuration = 2 * time.Second

// Counter counts linearly from 0 to Target over Duration.
type Counter struct {
	Target   float64
	Decimals int
	Prefix   string
	Suffix   string
	Duration time.Duration
}

func (c Counter) duration() time.Duration {
	if c.Duration <= 0 {
		return DefaultDuration
	}
	return c.Duration
}

// Value is the number shown after elapsed, floored to the counter's
// decimals. It is exactly Target once Done.
func (c Counter) Value(elapsed time.Duration) float64 {
	if c.Done(elapsed) {
		return c.Target
	}
	if elapsed <= 0 {
		return 0
	}
	v := c.Target * float64(elapsed) / float64(c.duration())
	scale := math.Pow10(c.Decimals)
	// The epsilon absorbs products like 2.4*10 landing just under 24.
	return math.Floor(v*scale+1e-9) / scale
}

func (c Counter) Done(elapsed time.Duration) bool {
	return elapsed >= c.duration() || c.Target <= 0
}

// Format renders v with thousands separators, the counter's decimals and
// its prefix and suffix.
func (c Counter) Format(v float64) string {
	pattern := "#,###."
	if c.Decimals > 0 {
		pattern += strings.Repeat("#", c.Decimals)
	}
	return c.Prefix + humanize.FormatFloat(pattern, v) + c.Suffix
}

// Render formats the value shown after elapsed.
func (c Counter) Render(elapsed time.Duration) string {
	return c.Format(c.Value(elapsed))
}
