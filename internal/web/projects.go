package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/i18n"
)

type projectView struct {
	ID       string
	Title    string
	Tags     []string
	Carousel carouselView
	Details  detailsView
}

type slideView struct {
	carousel.Image
	Index  int
	Number int
	Active bool
}

// carouselView feeds carousel.html, slide.html and autoplay.html. The
// outer carousel element is rendered once and survives navigation; only
// the slide and the autoplay timer are swapped.
type carouselView struct {
	ProjectID  string
	State      carousel.State
	Slides     []slideView
	Transition string
	Autoplay   bool
	IntervalMS int64
	// Armed renders a live timer; OOB marks the timer as an out-of-band
	// swap riding along with a slide.
	Armed bool
	OOB   bool
	T     i18n.Translator
}

func newCarouselView(p content.Project, car *carousel.Carousel, animate bool, tr i18n.Translator) carouselView {
	st := car.State()
	v := carouselView{
		ProjectID:  p.ID,
		State:      st,
		Autoplay:   car.Autoplaying(),
		IntervalMS: car.Interval().Milliseconds(),
		Armed:      car.Autoplaying(),
		T:          tr,
	}
	for i, img := range car.Images() {
		v.Slides = append(v.Slides, slideView{Image: img, Index: i, Number: i + 1, Active: i == st.Index})
	}
	if animate {
		v.Transition = "slide-in-right"
		if st.Direction == carousel.Backward {
			v.Transition = "slide-in-left"
		}
	}
	return v
}

type detailsView struct {
	ProjectID   string
	Expanded    bool
	Description string
	Features    []string
	Repo        string
	T           i18n.Translator
}

func newDetailsView(p content.Project, expanded bool, tr i18n.Translator) detailsView {
	v := detailsView{ProjectID: p.ID, Expanded: expanded, Repo: p.Repo, T: tr}
	if expanded {
		v.Description = tr.T(p.LongDescriptionKey())
		for _, k := range p.FeatureKeys() {
			v.Features = append(v.Features, tr.T(k))
		}
	} else {
		v.Description = tr.T(p.DescriptionKey())
	}
	return v
}

func (s *Server) newCarousel(p content.Project) *carousel.Carousel {
	return carousel.New(p.Images,
		carousel.WithAutoplay(s.cfg.Carousel.Autoplay),
		carousel.WithInterval(s.cfg.Carousel.Interval),
	)
}

// project resolves :id or writes a 404 fragment.
func project(c *gin.Context) (content.Project, bool) {
	p, err := content.ProjectByID(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return content.Project{}, false
	}
	return p, true
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// carousel recreates the project's carousel at ?index and applies ?op.
// Without an op it renders the whole carousel. With one it renders just
// the new slide, so a manual move leaves the running autoplay timer alone;
// an automatic step (?auto=true) also re-arms the timer for one more
// interval. The browser carries the index between requests; the server
// keeps no carousel state.
func (s *Server) carousel(c *gin.Context) {
	p, ok := project(c)
	if !ok {
		return
	}
	index, err := intQuery(c, "index", 0)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid index")
		return
	}
	car := s.newCarousel(p)
	if err := car.JumpTo(index); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	op := c.Query("op")
	switch op {
	case "":
		c.HTML(http.StatusOK, "carousel.html", newCarouselView(p, car, false, translator(c)))
		return
	case "next":
		car.Next()
	case "prev":
		car.Previous()
	case "jump":
		to, err := intQuery(c, "to", -1)
		if err == nil {
			err = car.JumpTo(to)
		}
		if err != nil {
			c.String(http.StatusBadRequest, "invalid slide: "+c.Query("to"))
			return
		}
	default:
		c.String(http.StatusBadRequest, "unknown op "+strconv.Quote(op))
		return
	}

	v := newCarouselView(p, car, true, translator(c))
	v.OOB = c.Query("auto") == "true"
	c.HTML(http.StatusOK, "slide.html", v)
}

// autoplay renders the timer for ?paused. Pausing (hover) swaps in an inert
// timer; resuming swaps in a fresh one, so the next automatic advance is a
// full interval after the resume.
func (s *Server) autoplay(c *gin.Context) {
	p, ok := project(c)
	if !ok {
		return
	}
	car := s.newCarousel(p)
	if c.Query("paused") == "true" {
		car.Pause()
	}
	c.HTML(http.StatusOK, "autoplay.html", newCarouselView(p, car, false, translator(c)))
}

func (s *Server) imagePreview(c *gin.Context) {
	p, ok := project(c)
	if !ok {
		return
	}
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= len(p.Images) {
		c.String(http.StatusBadRequest, "invalid image index")
		return
	}
	c.HTML(http.StatusOK, "image-modal.html", gin.H{
		"Image": p.Images[i],
		"T":     translator(c),
	})
}

func (s *Server) details(c *gin.Context) {
	p, ok := project(c)
	if !ok {
		return
	}
	expanded := c.Query("expanded") == "true"
	c.HTML(http.StatusOK, "project-details.html", newDetailsView(p, expanded, translator(c)))
}

const (
	statsStep = 100 * time.Millisecond
	statsCap  = time.Hour
)

type statView struct {
	Label string
	Value string
	Icon  string
}

type statsView struct {
	ProjectID string
	Stats     []statView
	Done      bool
	NextMS    int64
	StepMS    int64
	T         i18n.Translator
}

// stats renders the counters as they read ?t milliseconds into the
// count-up. Until every counter is done the fragment polls for the next
// step.
func (s *Server) stats(c *gin.Context) {
	p, ok := project(c)
	if !ok {
		return
	}
	ms, err := intQuery(c, "t", 0)
	if err != nil || ms < 0 {
		c.String(http.StatusBadRequest, "invalid t")
		return
	}
	// Past statsCap every counter has long finished; clamping keeps the
	// duration and the next poll offset from overflowing.
	elapsed := time.Duration(min(int64(ms), statsCap.Milliseconds())) * time.Millisecond
	tr := translator(c)

	v := statsView{
		ProjectID: p.ID,
		Done:      true,
		NextMS:    (elapsed + statsStep).Milliseconds(),
		StepMS:    statsStep.Milliseconds(),
		T:         tr,
	}
	for _, st := range p.Stats {
		cnt := st.Counter()
		v.Stats = append(v.Stats, statView{Label: tr.T(st.Label), Value: cnt.Render(elapsed), Icon: st.Icon})
		if !cnt.Done(elapsed) {
			v.Done = false
		}
	}
	c.HTML(http.StatusOK, "project-stats.html", v)
}
