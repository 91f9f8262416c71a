package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/i18n"
	"github.com/Zachkp/folio/internal/particles"
)

const (
	defaultWidth  = 1600
	defaultHeight = 900
	maxDimension  = 8192
	maxFrames     = 10000
)

var errBadDimension = errors.New("dimension out of range")

func dimension(c *gin.Context, key string, def int) (float64, error) {
	v, err := intQuery(c, key, def)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 || v > maxDimension {
		return 0, fmt.Errorf("%s=%d: %w", key, v, errBadDimension)
	}
	return float64(v), nil
}

const (
	themeCookie    = "theme"
	themeCookieAge = languageCookieAge
)

// theme is the visitor's stored theme, or the configured one when the
// cookie is missing or unknown.
func (s *Server) theme(c *gin.Context) string {
	if v, err := c.Cookie(themeCookie); err == nil {
		if _, err := particles.ParseMode(v, true); err == nil {
			return v
		}
	}
	return s.cfg.Theme
}

// prefersDark follows the Sec-CH-Prefers-Color-Scheme client hint when
// the browser sends one.
func (s *Server) prefersDark(c *gin.Context) bool {
	switch c.GetHeader("Sec-CH-Prefers-Color-Scheme") {
	case "dark":
		return true
	case "light":
		return false
	}
	return s.cfg.PrefersDark
}

// requestTheme lets ?theme override the stored theme.
func (s *Server) requestTheme(c *gin.Context) (string, particles.Mode, error) {
	theme := c.DefaultQuery("theme", s.theme(c))
	mode, err := particles.ParseMode(theme, s.prefersDark(c))
	return theme, mode, err
}

// newField builds a field from ?w, ?h and the request theme.
func (s *Server) newField(c *gin.Context) (*particles.Field, error) {
	w, err := dimension(c, "w", defaultWidth)
	if err != nil {
		return nil, err
	}
	h, err := dimension(c, "h", defaultHeight)
	if err != nil {
		return nil, err
	}
	_, mode, err := s.requestTheme(c)
	if err != nil {
		return nil, err
	}
	return particles.New(w, h, mode, nil, s.cfg.Particles.Tunables), nil
}

func streamURL(w, h float64, theme string) string {
	q := url.Values{}
	q.Set("w", strconv.FormatFloat(w, 'f', 0, 64))
	q.Set("h", strconv.FormatFloat(h, 'f', 0, 64))
	q.Set("theme", theme)
	return "/background/stream?" + q.Encode()
}

// backgroundView is either a loader that asks for the window size or the
// stream sized to it.
type backgroundView struct {
	Loader bool
	Stream string
}

type themeToggleView struct {
	Mode  particles.Mode
	Next  particles.Mode
	Label string
	OOB   bool
}

func newThemeToggle(mode particles.Mode, tr i18n.Translator, oob bool) themeToggleView {
	next := particles.Light
	if mode == particles.Light {
		next = particles.Dark
	}
	return themeToggleView{Mode: mode, Next: next, Label: tr.T("theme." + next.String()), OOB: oob}
}

// background connects the particle stream at the client's window size.
// It is requested again whenever the window is resized.
func (s *Server) background(c *gin.Context) {
	w, err := dimension(c, "w", defaultWidth)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	h, err := dimension(c, "h", defaultHeight)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	theme, _, err := s.requestTheme(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, "background.html", backgroundView{Stream: streamURL(w, h, theme)})
}

// setTheme stores the theme and swaps in a fresh background loader, so
// the stream reconnects in the new palette. The toggle is updated out of
// band.
func (s *Server) setTheme(c *gin.Context) {
	theme := c.Param("mode")
	mode, err := particles.ParseMode(theme, s.prefersDark(c))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.SetCookie(themeCookie, theme, themeCookieAge, "/", "", false, true)
	c.HTML(http.StatusOK, "theme-changed.html", gin.H{
		"Background": backgroundView{Loader: true},
		"Toggle":     newThemeToggle(mode, translator(c), true),
	})
}

// backgroundSnapshot renders one frame after ?frames steps.
func (s *Server) backgroundSnapshot(c *gin.Context) {
	field, err := s.newField(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	frames, err := intQuery(c, "frames", 0)
	if err != nil || frames < 0 || frames > maxFrames {
		c.String(http.StatusBadRequest, "frames must be between 0 and "+strconv.Itoa(maxFrames))
		return
	}
	for i := 0; i < frames; i++ {
		field.Advance()
	}
	svg := particles.SVG{Fill: true}
	field.Render(&svg)
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg.String()))
}

// backgroundStream pushes one SVG frame per tick as a server-sent event
// until the client goes away. Each connection owns its own field.
func (s *Server) backgroundStream(c *gin.Context) {
	field, err := s.newField(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	svg := &particles.SVG{Fill: true}
	anim := &particles.Animator{
		Field:   field,
		Surface: svg,
		Present: func() {
			c.SSEvent("frame", svg.String())
			c.Writer.Flush()
		},
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticker := time.NewTicker(s.cfg.FrameInterval())
	defer ticker.Stop()

	err = anim.Run(c.Request.Context(), ticker.C)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		log.Printf("Background stream ended: %v", err)
	}
}
