package main

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/bhudelson/portfolio/internal/content"
	"github.com/bhudelson/portfolio/internal/linktext"
	"github.com/bhudelson/portfolio/internal/site"
)

//go:embed templates/*.html
var templatesFS embed.FS

// server bundles what every handler needs.
type server struct {
	cfg     Config
	site    *site.Site
	content *content.Content
	store   *VisitorStore
	logger  *log.Logger
}

func parseTemplates(base string) (*template.Template, error) {
	funcs := template.FuncMap{
		"annotate": func(s string) template.HTML {
			return linktext.Render(s).HTML()
		},
		"asset": func(p string) string {
			return content.AssetPath(base, p)
		},
		"year": func() int { return time.Now().Year() },
	}
	t, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func newRouter(s *server) (*gin.Engine, error) {
	tmpl, err := parseTemplates(s.site.BaseURL)
	if err != nil {
		return nil, err
	}
	adm, err := newAdmin(s.cfg, s.store, s.content, s.logger)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), visitorTrackingMiddleware(s.store))
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", filepath.Join(s.cfg.AssetsDir, "images"))
	r.Static("/static", filepath.Join(s.cfg.AssetsDir, "static"))

	r.GET("/", s.handleIndex)
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"site":      s.site,
			"notice":    PrivacyNotice,
			"retention": PrivacyRetention,
		})
	})

	api := r.Group("/api")
	api.GET("/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.content)
	})
	// Preview of how a blurb will be split into text and links.
	api.GET("/annotate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"segments": linktext.Render(c.Query("text"))})
	})

	adm.routes(r)
	return r, nil
}

func (s *server) handleIndex(c *gin.Context) {
	featured, library := content.PartitionBooks(s.content.Books)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":       s.site,
		"experience": s.content.Experience,
		"featured":   featured,
		"library":    library,
		"hobbies":    s.content.Hobbies,
		"shelves":    s.content.Shelves(),
	})
}
