package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type contactForm struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

// contact validates the form and answers with a toast fragment. Messages
// are not forwarded anywhere; the toast is the whole feedback loop.
func (s *Server) contact(c *gin.Context) {
	tr := translator(c)

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Rejected contact form: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": tr.T("contact.error"),
		})
		return
	}

	log.Printf("Contact form submitted by %s", form.Name)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"title":       tr.T("contact.success"),
		"description": tr.T("contact.successDescription"),
	})
}
