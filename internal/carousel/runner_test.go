package carousel_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Zachkp/folio/internal/carousel"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { close(f.stopped) }

var _ = Describe("Runner", func() {
	var (
		ticker    *fakeTicker
		published chan carousel.State
		r         *carousel.Runner
		start     time.Time
	)

	BeforeEach(func() {
		ticker = newFakeTicker()
		published = make(chan carousel.State, 32)
		start = time.Unix(1700000000, 0)

		c := carousel.New(images(3), carousel.WithInterval(5*time.Second))
		r = carousel.Run(context.Background(), c, func(s carousel.State) { published <- s },
			carousel.WithResolution(time.Second),
			carousel.WithTicker(func(time.Duration) carousel.Ticker { return ticker }),
		)
	})

	AfterEach(func() {
		r.Close()
	})

	tick := func(n int) {
		for i := 1; i <= n; i++ {
			start = start.Add(time.Second)
			ticker.ch <- start
		}
	}

	It("advances from ticks once per interval", func() {
		tick(4)
		Expect(r.State().Index).To(Equal(0))
		Consistently(published).ShouldNot(Receive())

		tick(1)
		Expect(r.State().Index).To(Equal(1))
		Eventually(published).Should(Receive(HaveField("Index", 1)))

		tick(5)
		Expect(r.State().Index).To(Equal(2))
	})

	It("applies manual commands between ticks", func() {
		r.Previous()
		Expect(r.State().Index).To(Equal(2))
		Expect(r.State().Direction).To(Equal(carousel.Backward))
		Expect(r.JumpTo(7)).To(MatchError(carousel.ErrIndexOutOfRange))
		Expect(r.JumpTo(1)).To(Succeed())
		Expect(r.State().Index).To(Equal(1))
	})

	It("does not advance while paused", func() {
		r.Pause()
		tick(12)
		Expect(r.State().Index).To(Equal(0))
		Expect(r.State().Paused).To(BeTrue())

		r.Resume()
		tick(5)
		Expect(r.State().Index).To(Equal(0))
		tick(1)
		Expect(r.State().Index).To(Equal(1))
	})

	It("credits no paused time to the first tick after resume", func() {
		tick(3)
		r.Pause()
		r.Resume()

		// The first tick after resume only sets the reference point, so a
		// full interval of ticks has to follow it.
		tick(5)
		Expect(r.State().Index).To(Equal(0))
		tick(1)
		Expect(r.State().Index).To(Equal(1))
	})

	It("keeps crediting ticks across manual navigation", func() {
		tick(3)
		r.Next()
		tick(2)
		Expect(r.State().Index).To(Equal(2))
	})

	It("stops its ticker on close", func() {
		r.Close()
		Expect(ticker.stopped).To(BeClosed())
		Expect(r.State()).To(Equal(carousel.State{}))
		r.Next()
	})
})
