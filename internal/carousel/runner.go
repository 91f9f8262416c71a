package carousel

import (
	"context"
	"time"
)

// DefaultResolution is how often a Runner feeds its carousel's clock.
const DefaultResolution = 100 * time.Millisecond

// Ticker abstracts time.Ticker so tests can drive the clock.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

func newStdTicker(d time.Duration) Ticker { return stdTicker{time.NewTicker(d)} }

type RunnerOption func(*Runner)

// WithTicker replaces the ticker factory.
func WithTicker(fn func(time.Duration) Ticker) RunnerOption {
	return func(r *Runner) { r.newTicker = fn }
}

func WithResolution(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.resolution = d
		}
	}
}

// Runner confines a Carousel to a single goroutine. Navigation calls are
// queued to that goroutine and applied in order with the ticks, so a tick
// never sees a half-applied command. publish receives a snapshot after
// every change and runs on the runner goroutine.
type Runner struct {
	c          *Carousel
	publish    func(State)
	cmds       chan func(*Carousel)
	cancel     context.CancelFunc
	stopped    chan struct{}
	resolution time.Duration
	newTicker  func(time.Duration) Ticker
}

// Run starts a runner for c. Call Close, or cancel ctx, to stop it.
func Run(ctx context.Context, c *Carousel, publish func(State), opts ...RunnerOption) *Runner {
	ctx, cancel := context.WithCancel(ctx)
	r := &Runner{
		c:          c,
		publish:    publish,
		cmds:       make(chan func(*Carousel)),
		cancel:     cancel,
		stopped:    make(chan struct{}),
		resolution: DefaultResolution,
		newTicker:  newStdTicker,
	}
	for _, opt := range opts {
		opt(r)
	}
	ticker := r.newTicker(r.resolution)
	go r.loop(ctx, ticker)
	return r
}

func (r *Runner) loop(ctx context.Context, ticker Ticker) {
	defer close(r.stopped)
	defer ticker.Stop()

	var last time.Time
	// rebase makes the next tick a fresh reference point with no time
	// credited, so a resume never counts time spent paused.
	rebase := false
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-r.cmds:
			before := r.c.State()
			cmd(r.c)
			after := r.c.State()
			if after.Paused != before.Paused {
				rebase = true
			}
			if after != before {
				r.emit(after)
			}
		case now := <-ticker.C():
			delta := r.resolution
			switch {
			case rebase:
				delta, rebase = 0, false
			case !last.IsZero():
				delta = now.Sub(last)
			}
			last = now
			if r.c.Elapse(delta) > 0 {
				r.emit(r.c.State())
			}
		}
	}
}

func (r *Runner) emit(s State) {
	if r.publish != nil {
		r.publish(s)
	}
}

// do runs fn on the runner goroutine and waits for it. It reports false
// once the runner has stopped.
func (r *Runner) do(fn func(*Carousel)) bool {
	done := make(chan struct{})
	select {
	case r.cmds <- func(c *Carousel) { fn(c); close(done) }:
		<-done
		return true
	case <-r.stopped:
		return false
	}
}

// Next, Previous, Pause and Resume run on the runner goroutine and return
// once applied. After Close they do nothing.
func (r *Runner) Next()     { r.do((*Carousel).Next) }
func (r *Runner) Previous() { r.do((*Carousel).Previous) }
func (r *Runner) Pause()    { r.do((*Carousel).Pause) }
func (r *Runner) Resume()   { r.do((*Carousel).Resume) }

// JumpTo is Carousel.JumpTo applied on the runner goroutine.
func (r *Runner) JumpTo(i int) error {
	var err error
	r.do(func(c *Carousel) { err = c.JumpTo(i) })
	return err
}

// State returns the current snapshot, or the zero State after Close.
func (r *Runner) State() State {
	var s State
	r.do(func(c *Carousel) { s = c.State() })
	return s
}

// Close stops the ticker and waits for the runner goroutine to exit.
func (r *Runner) Close() {
	r.cancel()
	<-r.stopped
}
