// Package web serves the portfolio page and the HTMX fragments it swaps
// in: carousels, project details, stat counters, the particle background
// and the contact form.
package web

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"year":  func() int { return time.Now().Year() },
}

type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New builds the router. Static assets are served from ./images, ./static
// and ./cv relative to the working directory, as in development.
func New(cfg *config.Config) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Static("/images", "./images")
	r.Static("/static", "./static")
	r.Static("/cv", "./cv")

	s := &Server{cfg: cfg, engine: r}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine
	r.Use(languageMiddleware())

	r.GET("/", s.index)
	r.POST("/language/:code", s.setLanguage)
	r.GET("/resume", s.downloadCV)

	projects := r.Group("/projects/:id")
	projects.GET("/carousel", s.carousel)
	projects.GET("/autoplay", s.autoplay)
	projects.GET("/images/:index", s.imagePreview)
	projects.GET("/details", s.details)
	projects.GET("/stats", s.stats)

	r.POST("/theme/:mode", s.setTheme)
	r.GET("/background", s.background)
	r.GET("/background.svg", s.backgroundSnapshot)
	r.GET("/background/stream", s.backgroundStream)

	r.POST("/contact", s.contact)
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Run() error {
	log.Printf("Portfolio listening on :%s", s.cfg.Port)
	return s.engine.Run(":" + s.cfg.Port)
}

const (
	languageCookie    = "language"
	languageCookieAge = 365 * 24 * 3600
	translatorKey     = "translator"
)

var _ i18n.Preference = cookiePreference{}

// cookiePreference keeps the visitor's language in a long-lived cookie.
type cookiePreference struct {
	c *gin.Context
}

func (p cookiePreference) Load(_ context.Context) (i18n.Language, error) {
	v, err := p.c.Cookie(languageCookie)
	if err != nil {
		return i18n.Default, nil
	}
	lang, err := i18n.ParseLanguage(v)
	if err != nil {
		return i18n.Default, nil
	}
	return lang, nil
}

func (p cookiePreference) Save(_ context.Context, lang i18n.Language) error {
	if _, err := i18n.ParseLanguage(string(lang)); err != nil {
		return err
	}
	p.c.SetCookie(languageCookie, string(lang), languageCookieAge, "/", "", false, true)
	return nil
}

func languageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, _ := cookiePreference{c}.Load(c.Request.Context())
		c.Set(translatorKey, i18n.For(lang))
		c.Next()
	}
}

func translator(c *gin.Context) i18n.Translator {
	if v, ok := c.Get(translatorKey); ok {
		if tr, ok := v.(i18n.Translator); ok {
			return tr
		}
	}
	return i18n.For(i18n.Default)
}
