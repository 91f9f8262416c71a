package preview

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/i18n"
	"github.com/Zachkp/folio/internal/particles"
)

type fakeNav struct {
	calls []string
	jumps []int
}

func (f *fakeNav) Next()     { f.calls = append(f.calls, "next") }
func (f *fakeNav) Previous() { f.calls = append(f.calls, "prev") }
func (f *fakeNav) Pause()    { f.calls = append(f.calls, "pause") }
func (f *fakeNav) Resume()   { f.calls = append(f.calls, "resume") }
func (f *fakeNav) JumpTo(i int) error {
	f.jumps = append(f.jumps, i)
	if i >= 4 {
		return carousel.ErrIndexOutOfRange
	}
	return nil
}

type memPref struct{ saved []i18n.Language }

func (p *memPref) Load(context.Context) (i18n.Language, error) { return i18n.Default, nil }
func (p *memPref) Save(_ context.Context, l i18n.Language) error {
	p.saved = append(p.saved, l)
	return nil
}

func newTestModel(t *testing.T) (Model, *fakeNav, *memPref) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Theme = "dark"
	p := content.Projects[0]
	car := carousel.New(p.Images)
	nav := &fakeNav{}
	pref := &memPref{}
	m, err := NewModel(cfg, p, car.State(), nav, nil, pref, i18n.English)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m, nav, pref
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNavigationKeys(t *testing.T) {
	m, nav, _ := newTestModel(t)

	keys := []tea.KeyMsg{
		{Type: tea.KeyRight},
		{Type: tea.KeyLeft},
		runes("p"),
	}
	for _, k := range keys {
		_, cmd := update(t, m, k)
		if cmd == nil {
			t.Fatalf("%s: expected a command", k)
		}
		cmd()
	}
	want := []string{"next", "prev", "pause"}
	if strings.Join(nav.calls, ",") != strings.Join(want, ",") {
		t.Errorf("expected calls %v, got %v", want, nav.calls)
	}
}

func TestResumeWhenPaused(t *testing.T) {
	m, nav, _ := newTestModel(t)

	st := m.slide
	st.Paused = true
	m, _ = update(t, m, SlideMsg(st))
	_, cmd := update(t, m, runes("p"))
	cmd()
	if len(nav.calls) != 1 || nav.calls[0] != "resume" {
		t.Errorf("expected resume, got %v", nav.calls)
	}
}

func TestJumpKeys(t *testing.T) {
	m, nav, _ := newTestModel(t)

	_, cmd := update(t, m, runes("3"))
	if msg := cmd(); msg != nil {
		t.Errorf("expected no error, got %v", msg)
	}
	if len(nav.jumps) != 1 || nav.jumps[0] != 2 {
		t.Errorf("expected jump to 2, got %v", nav.jumps)
	}

	_, cmd = update(t, m, runes("9"))
	msg := cmd()
	em, ok := msg.(errMsg)
	if !ok {
		t.Fatalf("expected errMsg, got %T", msg)
	}
	m, _ = update(t, m, em)
	if !strings.Contains(m.View(), "out of range") {
		t.Error("expected the error in the status line")
	}
}

func TestSlideSpring(t *testing.T) {
	m, _, _ := newTestModel(t)

	st := m.slide
	st.Index, st.Direction = 1, carousel.Forward
	m, _ = update(t, m, SlideMsg(st))
	if m.offset != slideTravel {
		t.Fatalf("expected offset %d, got %f", slideTravel, m.offset)
	}

	for i := 0; i < 300; i++ {
		m, _ = update(t, m, frameMsg(time.Now()))
	}
	if m.offset > 0.5 || m.offset < -0.5 {
		t.Errorf("spring should settle near 0, got %f", m.offset)
	}

	st.Index, st.Direction = 0, carousel.Backward
	m, _ = update(t, m, SlideMsg(st))
	if m.offset != -slideTravel {
		t.Errorf("backward slide should enter from the left, got %f", m.offset)
	}
}

func TestSameSlideDoesNotAnimate(t *testing.T) {
	m, _, _ := newTestModel(t)

	st := m.slide
	st.Paused = true
	m, _ = update(t, m, SlideMsg(st))
	if m.offset != 0 {
		t.Errorf("pause should not move the strip, got %f", m.offset)
	}
}

func TestResize(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.field.Width() != 120*2*pixelScale || m.field.Height() != (40-stripHeight)*4*pixelScale {
		t.Errorf("unexpected field size %fx%f", m.field.Width(), m.field.Height())
	}
	for _, p := range m.field.Particles {
		if p.X < 0 || p.X >= m.field.Width() || p.Y < 0 || p.Y >= m.field.Height() {
			t.Fatalf("particle outside resized field: %+v", p)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runes("t"))
	if m.field.Mode() != particles.Light {
		t.Errorf("expected light mode, got %s", m.field.Mode())
	}
	if m.canvas.bg != lightBackground {
		t.Errorf("expected light background, got %s", m.canvas.bg)
	}
	for _, p := range m.field.Particles {
		if p.Color.L != 70 {
			t.Fatalf("expected light palette, got %+v", p.Color)
		}
	}

	m, _ = update(t, m, runes("t"))
	if m.field.Mode() != particles.Dark {
		t.Errorf("expected dark mode, got %s", m.field.Mode())
	}
}

func TestLanguageToggle(t *testing.T) {
	m, _, pref := newTestModel(t)

	m, cmd := update(t, m, runes("l"))
	if m.tr.Language() != i18n.French {
		t.Fatalf("expected French, got %s", m.tr.Language())
	}
	cmd()
	if len(pref.saved) != 1 || pref.saved[0] != i18n.French {
		t.Errorf("expected French to be saved, got %v", pref.saved)
	}
	if !strings.Contains(m.View(), "Note de l'App") {
		t.Error("expected French stat labels")
	}
}

func TestFramesCountUp(t *testing.T) {
	m, _, _ := newTestModel(t)

	for m.elapsed < 3*time.Second {
		m, _ = update(t, m, frameMsg(time.Now()))
	}
	view := m.View()
	for _, want := range []string{"15,000", "4.8/5", "CineList"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestCanvasSurface(t *testing.T) {
	c := NewCanvas(4, 2, darkBackground)
	col := particles.HSLA{H: 260, S: 70, L: 50, A: 0.5}

	c.FillCircle(1, 1, 0.5, col)
	if c.Grid[0][0] == blank {
		t.Error("expected a lit cell at the origin")
	}
	c.StrokeLine(0, 7*pixelScale, 7*pixelScale, 7*pixelScale, 1, col)
	for j := 0; j < 4; j++ {
		if c.Grid[1][j] == blank {
			t.Errorf("expected line through cell (1,%d)", j)
		}
	}
	if c.colors[1][0] != col.Blend(darkBackground) {
		t.Errorf("unexpected cell colour %s", c.colors[1][0])
	}

	c.Clear(8, 8)
	if strings.TrimSpace(c.String()) != "" {
		t.Error("cleared canvas should render blank")
	}
	if w, h := c.PixelSize(); w != 8*pixelScale || h != 8*pixelScale {
		t.Errorf("unexpected pixel size %fx%f", w, h)
	}
}
