package main

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
)

const (
	mailSentMessage   = "Thank you for your message! I'll get back to you soon."
	mailFailedMessage = "Sorry, there was an error sending your message. Please try again later."
)

type server struct {
	cfg    *Config
	log    *slog.Logger
	mailer Mailer
}

// newRouter wires every route of the site.
func newRouter(cfg *Config, log *slog.Logger, mailer Mailer) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	s := &server{cfg: cfg, log: log, mailer: mailer}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.LoadHTMLGlob(filepath.Join(cfg.TemplateDir, "*.html"))

	r.Static("/static", cfg.StaticDir)
	r.StaticFile("/wasm_exec.js", cfg.WasmExec)

	r.GET("/", s.home)
	r.POST("/contact", s.contact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// page is everything index.html renders.
type page struct {
	form    contact.Message
	errors  map[string]string
	success string
	failure string
}

func (p page) h() gin.H {
	errs := p.errors
	if errs == nil {
		errs = map[string]string{}
	}
	return gin.H{
		"title":          "Zach | Software Developer",
		"aboutMeContent": AboutMe,
		"skills":         Skills,
		"projects":       Projects,
		"year":           time.Now().Year(),
		"form":           p.form,
		"errors":         errs,
		"success":        p.success,
		"failure":        p.failure,
	}
}

func (s *server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page{}.h())
}

// contact handles the form when the page behaviors are not running and the
// browser posts it natively.
func (s *server) contact(c *gin.Context) {
	msg := contact.Message{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if fe := contact.Validate(msg); fe != nil {
		errs := make(map[string]string, len(fe))
		for _, f := range fe {
			errs[f.String()] = f.Problem()
		}
		c.HTML(http.StatusUnprocessableEntity, "index.html", page{form: msg, errors: errs}.h())
		return
	}

	if err := s.mailer.Send(msg); err != nil {
		if errors.Is(err, errMailNotConfigured) {
			s.log.Warn("contact form posted but mail is not configured")
		} else {
			s.log.Error("sending contact mail", "err", err)
		}
		c.HTML(http.StatusOK, "index.html", page{form: msg, failure: mailFailedMessage}.h())
		return
	}

	c.HTML(http.StatusOK, "index.html", page{success: mailSentMessage}.h())
}
