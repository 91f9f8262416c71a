package carousel_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Zachkp/folio/internal/carousel"
)

func images(n int) []carousel.Image {
	out := make([]carousel.Image, n)
	for i := range out {
		out[i] = carousel.Image{Src: fmt.Sprintf("/images/shot-%d.png", i), Alt: fmt.Sprintf("shot %d", i)}
	}
	return out
}

var _ = Describe("Carousel", func() {
	var c *carousel.Carousel

	Describe("manual navigation", func() {
		BeforeEach(func() {
			c = carousel.New(images(4))
		})

		It("starts on the first image", func() {
			Expect(c.Index()).To(Equal(0))
			img, ok := c.Current()
			Expect(ok).To(BeTrue())
			Expect(img.Src).To(Equal("/images/shot-0.png"))
		})

		It("walks forward and wraps to the start", func() {
			var seen []int
			for i := 0; i < 4; i++ {
				c.Next()
				seen = append(seen, c.Index())
			}
			Expect(seen).To(Equal([]int{1, 2, 3, 0}))
			Expect(c.Direction()).To(Equal(carousel.Forward))
		})

		It("steps back from the first image to the last", func() {
			c.Previous()
			Expect(c.Index()).To(Equal(3))
			Expect(c.Direction()).To(Equal(carousel.Backward))
		})

		It("picks the direction of a jump from the target index", func() {
			Expect(c.JumpTo(2)).To(Succeed())
			Expect(c.Index()).To(Equal(2))
			Expect(c.Direction()).To(Equal(carousel.Forward))

			Expect(c.JumpTo(0)).To(Succeed())
			Expect(c.Index()).To(Equal(0))
			Expect(c.Direction()).To(Equal(carousel.Backward))
		})

		It("rejects jumps outside the sequence without moving", func() {
			Expect(c.JumpTo(1)).To(Succeed())
			Expect(c.JumpTo(4)).To(MatchError(carousel.ErrIndexOutOfRange))
			Expect(c.JumpTo(-1)).To(MatchError(carousel.ErrIndexOutOfRange))
			Expect(c.Index()).To(Equal(1))
			Expect(c.Direction()).To(Equal(carousel.Forward))
		})
	})

	Describe("selection", func() {
		It("reports every index change with the focused image", func() {
			var got []string
			c = carousel.New(images(3), carousel.OnSelect(func(i int, img carousel.Image) {
				got = append(got, fmt.Sprintf("%d:%s", i, img.Alt))
			}))

			c.Next()
			c.Previous()
			Expect(c.JumpTo(2)).To(Succeed())
			Expect(c.JumpTo(2)).To(Succeed())
			c.Elapse(carousel.DefaultInterval)

			Expect(got).To(Equal([]string{"1:shot 1", "0:shot 0", "2:shot 2", "0:shot 0"}))
		})
	})

	Describe("empty sequence", func() {
		BeforeEach(func() {
			c = carousel.New(nil)
		})

		It("reports an empty state and ignores navigation", func() {
			Expect(c.Empty()).To(BeTrue())
			Expect(c.State().Empty).To(BeTrue())

			c.Next()
			c.Previous()
			Expect(c.JumpTo(3)).To(Succeed())
			Expect(c.Elapse(time.Minute)).To(Equal(0))

			_, ok := c.Current()
			Expect(ok).To(BeFalse())
			Expect(c.Index()).To(Equal(0))
		})
	})

	Describe("single image", func() {
		It("never autoplays and stays on index 0", func() {
			c = carousel.New(images(1))
			Expect(c.Autoplaying()).To(BeFalse())
			c.Next()
			c.Previous()
			Expect(c.Elapse(time.Minute)).To(Equal(0))
			Expect(c.Index()).To(Equal(0))
		})
	})

	Describe("autoplay", func() {
		BeforeEach(func() {
			c = carousel.New(images(3), carousel.WithInterval(5000*time.Millisecond))
		})

		It("advances once per full interval", func() {
			Expect(c.Elapse(4999 * time.Millisecond)).To(Equal(0))
			Expect(c.Elapse(time.Millisecond)).To(Equal(1))
			Expect(c.Index()).To(Equal(1))

			for i := 0; i < 10; i++ {
				Expect(c.Elapse(2500 * time.Millisecond)).To(Equal(0))
				Expect(c.Elapse(2500 * time.Millisecond)).To(Equal(1))
			}
			Expect(c.Index()).To(Equal((1 + 10) % 3))
		})

		It("catches up when a long gap covers several intervals", func() {
			Expect(c.Elapse(15 * time.Second)).To(Equal(3))
			Expect(c.Index()).To(Equal(0))
		})

		It("stops while paused", func() {
			c.Pause()
			Expect(c.Paused()).To(BeTrue())
			Expect(c.Autoplaying()).To(BeFalse())
			Expect(c.Elapse(time.Hour)).To(Equal(0))
			Expect(c.Index()).To(Equal(0))
		})

		It("restarts a full interval on resume", func() {
			Expect(c.Elapse(4 * time.Second)).To(Equal(0))
			c.Pause()
			c.Resume()
			Expect(c.Remaining()).To(Equal(5 * time.Second))
			Expect(c.Elapse(4 * time.Second)).To(Equal(0))
			Expect(c.Elapse(time.Second)).To(Equal(1))
		})

		It("keeps its cadence across manual navigation", func() {
			Expect(c.Elapse(3 * time.Second)).To(Equal(0))
			c.Previous()
			Expect(c.Index()).To(Equal(2))
			Expect(c.Elapse(2 * time.Second)).To(Equal(1))
			Expect(c.Index()).To(Equal(0))
			Expect(c.Direction()).To(Equal(carousel.Forward))
		})

		It("is off when disabled", func() {
			c = carousel.New(images(3), carousel.WithAutoplay(false))
			Expect(c.Elapse(time.Minute)).To(Equal(0))
			Expect(c.Remaining()).To(BeZero())
		})
	})
})
