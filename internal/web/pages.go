package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/i18n"
	"github.com/Zachkp/folio/internal/particles"
)

func (s *Server) index(c *gin.Context) {
	tr := translator(c)
	mode, err := particles.ParseMode(s.theme(c), s.prefersDark(c))
	if err != nil {
		log.Printf("Error resolving theme: %v", err)
		mode = particles.Dark
	}

	projects := make([]projectView, 0, len(content.Projects))
	for _, p := range content.Projects {
		car := s.newCarousel(p)
		projects = append(projects, projectView{
			ID:       p.ID,
			Title:    tr.T(p.TitleKey()),
			Tags:     p.Tags,
			Carousel: newCarouselView(p, car, false, tr),
			Details:  newDetailsView(p, false, tr),
		})
	}

	c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
	c.Header("Vary", "Sec-CH-Prefers-Color-Scheme")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"T":          tr,
		"lang":       tr.Language(),
		"owner":      content.Owner,
		"links":      content.Links,
		"cv":         content.CVPath(tr.Language()),
		"skills":     content.Skills,
		"projects":   projects,
		"mode":       mode,
		"theme":      newThemeToggle(mode, tr, false),
		"background": backgroundView{Loader: true},
	})
}

func (s *Server) setLanguage(c *gin.Context) {
	lang, err := i18n.ParseLanguage(c.Param("code"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if err := (cookiePreference{c}).Save(c.Request.Context(), lang); err != nil {
		log.Printf("Error saving language preference: %v", err)
		c.String(http.StatusInternalServerError, "could not save language")
		return
	}
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusNoContent)
}

func (s *Server) downloadCV(c *gin.Context) {
	c.Redirect(http.StatusFound, content.CVPath(translator(c).Language()))
}
