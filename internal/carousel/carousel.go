// Package carousel tracks which image of a project's screenshot sequence is
// in focus, the direction of the last move and a pausable autoplay clock.
//
// A Carousel is a plain value owned by one goroutine. Hosts drive autoplay
// by calling Elapse with the time that passed since the previous call, or
// hand the carousel to a Runner which does that from a ticker.
package carousel

import (
	"errors"
	"fmt"
	"time"
)

const DefaultInterval = 5 * time.Second

var ErrIndexOutOfRange = errors.New("carousel: index out of range")

// Image is one slide: where to load it from and how to describe it.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Direction of the last move, used by hosts to pick a transition.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// State is a snapshot for rendering.
type State struct {
	Index     int       `json:"index"`
	Len       int       `json:"len"`
	Direction Direction `json:"direction"`
	Paused    bool      `json:"paused"`
	Empty     bool      `json:"empty"`
	Image     Image     `json:"image"`
}

type Option func(*Carousel)

// WithInterval sets the autoplay period. Non-positive values keep the
// default.
func WithInterval(d time.Duration) Option {
	return func(c *Carousel) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithAutoplay(enabled bool) Option {
	return func(c *Carousel) { c.autoplay = enabled }
}

// OnSelect registers fn to receive the focused image whenever the index
// changes, by hand or by autoplay.
func OnSelect(fn func(index int, img Image)) Option {
	return func(c *Carousel) { c.onSelect = fn }
}

type Carousel struct {
	images    []Image
	index     int
	direction Direction
	paused    bool
	autoplay  bool
	interval  time.Duration
	elapsed   time.Duration
	onSelect  func(int, Image)
}

// New returns a carousel focused on the first image with autoplay on.
func New(images []Image, opts ...Option) *Carousel {
	c := &Carousel{
		images:    append([]Image(nil), images...),
		direction: Forward,
		autoplay:  true,
		interval:  DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len, Empty, Index, Direction, Paused and Interval report the current
// state. Images returns the backing slice, which callers must not modify.
func (c *Carousel) Len() int                { return len(c.images) }
func (c *Carousel) Empty() bool             { return len(c.images) == 0 }
func (c *Carousel) Index() int              { return c.index }
func (c *Carousel) Direction() Direction    { return c.direction }
func (c *Carousel) Paused() bool            { return c.paused }
func (c *Carousel) Interval() time.Duration { return c.interval }
func (c *Carousel) Images() []Image         { return c.images }

// Current returns the focused image; ok is false for an empty carousel.
func (c *Carousel) Current() (img Image, ok bool) {
	if c.Empty() {
		return Image{}, false
	}
	return c.images[c.index], true
}

// State snapshots the carousel for rendering.
func (c *Carousel) State() State {
	img, _ := c.Current()
	return State{
		Index:     c.index,
		Len:       len(c.images),
		Direction: c.direction,
		Paused:    c.paused,
		Empty:     c.Empty(),
		Image:     img,
	}
}

// Next focuses the following image, wrapping from the last to the first.
func (c *Carousel) Next() {
	if c.Empty() {
		return
	}
	c.direction = Forward
	c.move((c.index + 1) % len(c.images))
}

// Previous focuses the preceding image, wrapping from the first to the last.
func (c *Carousel) Previous() {
	if c.Empty() {
		return
	}
	c.direction = Backward
	c.move((c.index - 1 + len(c.images)) % len(c.images))
}

// JumpTo focuses image i. An index outside the sequence is rejected with
// ErrIndexOutOfRange and leaves the state untouched.
func (c *Carousel) JumpTo(i int) error {
	if c.Empty() {
		return nil
	}
	if i < 0 || i >= len(c.images) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.images))
	}
	if i > c.index {
		c.direction = Forward
	} else {
		c.direction = Backward
	}
	c.move(i)
	return nil
}

func (c *Carousel) move(i int) {
	if i == c.index {
		return
	}
	c.index = i
	if c.onSelect != nil {
		c.onSelect(i, c.images[i])
	}
}

// Pause stops autoplay. Resume restarts it with a full interval to go.
func (c *Carousel) Pause()  { c.setPaused(true) }
func (c *Carousel) Resume() { c.setPaused(false) }

func (c *Carousel) setPaused(p bool) {
	if c.paused == p {
		return
	}
	c.paused = p
	c.elapsed = 0
}

// Autoplaying reports whether Elapse can advance the carousel.
func (c *Carousel) Autoplaying() bool {
	return c.autoplay && !c.paused && len(c.images) > 1
}

// Elapse feeds d of wall time to the autoplay clock and performs one Next
// per full interval accumulated. It returns the number of advances. Manual
// navigation does not reset the clock.
func (c *Carousel) Elapse(d time.Duration) int {
	if !c.Autoplaying() || d <= 0 {
		return 0
	}
	c.elapsed += d
	n := 0
	for c.elapsed >= c.interval {
		c.elapsed -= c.interval
		c.Next()
		n++
	}
	return n
}

// Remaining is the time until the next automatic advance, or zero when
// autoplay is off.
func (c *Carousel) Remaining() time.Duration {
	if !c.Autoplaying() {
		return 0
	}
	return c.interval - c.elapsed
}
