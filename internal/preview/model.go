// Package preview runs the portfolio's animated pieces in a terminal: the
// particle background on a braille canvas and a project's carousel strip.
package preview

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/i18n"
	"github.com/Zachkp/folio/internal/particles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	stripHeight   = 5

	// slideTravel is how many columns a new slide enters from.
	slideTravel = 12
	springFreq  = 6.0
	springDamp  = 0.8
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Bold(true)
	slideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Navigator is the slice of carousel.Runner the model drives.
type Navigator interface {
	Next()
	Previous()
	Pause()
	Resume()
	JumpTo(i int) error
}

type (
	frameMsg time.Time
	// SlideMsg carries a carousel snapshot published by the runner.
	SlideMsg carousel.State
	errMsg   struct{ err error }
)

type Model struct {
	field  *particles.Field
	canvas *Canvas
	anim   particles.Animator
	frame  time.Duration

	project content.Project
	nav     Navigator
	slides  <-chan carousel.State
	slide   carousel.State

	spring   harmonica.Spring
	offset   float64
	velocity float64
	elapsed  time.Duration

	pref i18n.Preference
	tr   i18n.Translator

	width, height int
	err           error
}

// NewModel builds the preview for project. slides is where the runner
// publishes; it may be nil when nav is driven some other way.
func NewModel(cfg *config.Config, project content.Project, initial carousel.State, nav Navigator, slides <-chan carousel.State, pref i18n.Preference, lang i18n.Language) (Model, error) {
	mode, err := particles.ParseMode(cfg.Theme, cfg.PrefersDark)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		frame:   cfg.FrameInterval(),
		project: project,
		nav:     nav,
		slides:  slides,
		slide:   initial,
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.Particles.FPS), springFreq, springDamp),
		pref:    pref,
		tr:      i18n.For(lang),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.canvas = NewCanvas(m.width, m.height-stripHeight, background(mode))
	w, h := m.canvas.PixelSize()
	m.field = particles.New(w, h, mode, nil, cfg.Particles.Tunables)
	m.anim = particles.Animator{Field: m.field, Surface: m.canvas}
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func waitForSlide(ch <-chan carousel.State) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return SlideMsg(s)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), waitForSlide(m.slides))
}

// navigate runs fn off the update loop. Runner calls block until the
// runner goroutine has applied them.
func (m Model) navigate(fn func(Navigator) error) tea.Cmd {
	if m.nav == nil {
		return nil
	}
	return func() tea.Msg {
		if err := fn(m.nav); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := max(m.height-stripHeight, 1)
		m.canvas = NewCanvas(max(m.width, 1), rows, m.canvas.bg)
		w, h := m.canvas.PixelSize()
		m.field.Resize(w, h)
		m.anim.Surface = m.canvas

	case frameMsg:
		m.anim.Tick()
		m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, 0)
		m.elapsed += m.frame
		return m, m.tick()

	case SlideMsg:
		s := carousel.State(msg)
		if s.Index != m.slide.Index {
			m.offset = float64(s.Direction) * slideTravel
			m.velocity = 0
		}
		m.slide = s
		return m, waitForSlide(m.slides)

	case errMsg:
		m.err = msg.err
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "n":
		return m, m.navigate(func(n Navigator) error { n.Next(); return nil })
	case "left", "b":
		return m, m.navigate(func(n Navigator) error { n.Previous(); return nil })
	case "p", " ":
		paused := m.slide.Paused
		return m, m.navigate(func(n Navigator) error {
			if paused {
				n.Resume()
			} else {
				n.Pause()
			}
			return nil
		})
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		return m, m.navigate(func(n Navigator) error { return n.JumpTo(i) })
	case "t":
		mode := particles.Light
		if m.field.Mode() == particles.Light {
			mode = particles.Dark
		}
		m.field.SetMode(mode)
		m.canvas.SetBackground(background(mode))
	case "l":
		lang := m.tr.Language().Other()
		m.tr = i18n.For(lang)
		return m, m.saveLanguage(lang)
	}
	return m, nil
}

func (m Model) saveLanguage(lang i18n.Language) tea.Cmd {
	if m.pref == nil {
		return nil
	}
	pref := m.pref
	return func() tea.Msg {
		if err := pref.Save(context.Background(), lang); err != nil {
			return errMsg{fmt.Errorf("save language: %w", err)}
		}
		return nil
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.String())
	b.WriteString(m.strip())
	return b.String()
}

func (m Model) strip() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.tr.T(m.project.TitleKey())))
	if m.slide.Paused {
		b.WriteString("  " + pausedStyle.Render("❚❚"))
	}
	b.WriteByte('\n')

	pad := max(int(math.Round(m.offset)), -slideTravel) + slideTravel
	if m.slide.Empty {
		b.WriteString(strings.Repeat(" ", pad) + dimStyle.Render(m.tr.T("carousel.empty")))
	} else {
		label := fmt.Sprintf("%d/%d  %s", m.slide.Index+1, m.slide.Len, m.slide.Image.Alt)
		b.WriteString(strings.Repeat(" ", pad) + slideStyle.Render(label))
	}
	b.WriteByte('\n')

	stats := make([]string, 0, len(m.project.Stats))
	for _, st := range m.project.Stats {
		stats = append(stats, statStyle.Render(st.Counter().Render(m.elapsed))+" "+dimStyle.Render(m.tr.T(st.Label)))
	}
	b.WriteString(strings.Join(stats, "   "))
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("←/→ · 1-%d · p · t %s · l %s · q",
			max(m.slide.Len, 1), m.field.Mode(), m.tr.T("nav.language"))))
	}
	b.WriteByte('\n')
	return b.String()
}

// Run starts the preview for project and blocks until the user quits.
// The language toggle is persisted through pref.
func Run(ctx context.Context, cfg *config.Config, project content.Project, pref i18n.Preference) error {
	lang, err := pref.Load(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	car := carousel.New(project.Images,
		carousel.WithAutoplay(cfg.Carousel.Autoplay),
		carousel.WithInterval(cfg.Carousel.Interval),
	)
	slides := make(chan carousel.State, 1)
	publish := func(s carousel.State) {
		select {
		case slides <- s:
		case <-ctx.Done():
		}
	}
	initial := car.State()
	runner := carousel.Run(ctx, car, publish)
	defer runner.Close()
	// Unblocks a pending publish before Close waits on the runner.
	defer cancel()

	m, err := NewModel(cfg, project, initial, runner, slides, pref, lang)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
