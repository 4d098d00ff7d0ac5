// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/bhudelson/portfolio/internal/content"
)

const adminCookie = "admin_token"

type admin struct {
	token    string
	username string
	password string
	store    *VisitorStore
	content  *content.Content
	logger   *log.Logger
}

func newAdmin(cfg Config, store *VisitorStore, c *content.Content, logger *log.Logger) (*admin, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	a := &admin{
		token:    token,
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		store:    store,
		content:  c,
		logger:   logger,
	}

	// Dev-only defaults; release builds without credentials have login disabled.
	if gin.Mode() == gin.DebugMode {
		if a.username == "" {
			a.username = "admin"
			logger.Warn("Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
		if a.password == "" {
			a.password = "admin123"
			logger.Warn("Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
		logger.Debug("Admin token (dev only)", "token", token)
	}
	if !a.loginEnabled() {
		logger.Warn("Admin login disabled: ADMIN_USERNAME and ADMIN_PASSWORD are not set")
	}
	logger.Info("Admin access available", "path", "/admin/login")
	return a, nil
}

func (a *admin) loginEnabled() bool {
	return a.username != "" && a.password != ""
}

func (a *admin) checkCredentials(username, password string) bool {
	if !a.loginEnabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// authMiddleware redirects to the login page unless the admin cookie matches.
func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/api/",
	"/favicon",
	"/privacy",
}

// visitorTrackingMiddleware records page views in the background. Do Not
// Track is honoured.
func visitorTrackingMiddleware(store *VisitorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		// The insert outlives the request.
		ctx := context.WithoutCancel(c.Request.Context())
		store.RecordAsync(ctx, ip, ua, path)
		c.Next()
	}
}

func (a *admin) routes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title":   "Admin Login",
			"enabled": a.loginEnabled(),
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		hashed := a.store.hashIP(c.ClientIP())
		if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			a.logger.Warn("Failed admin login attempt", "from", hashed)
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title":   "Admin Login",
				"enabled": a.loginEnabled(),
				"error":   msgInvalidCredentials,
			})
			return
		}

		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		a.logger.Info("Admin login successful", "from", hashed)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		a.logger.Info("Admin logout", "from", a.store.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin")
	g.Use(a.authMiddleware())

	g.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("Error loading admin stats", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": msgStatsFailed,
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
			"links": len(a.content.Links()),
		})
	})

	g.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("Error loading admin stats", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgStatsFailed})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.store.Recent(c.Request.Context(), 200)
		if err != nil {
			a.logger.Error("Error loading visitors", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": msgVisitorsFailed,
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	// Every annotated link in the media blurbs, for spotting dead targets.
	g.GET("/links", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-links.html", gin.H{
			"links": a.content.Links(),
		})
	})

	g.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := a.store.Cleanup(c.Request.Context())
		if err != nil {
			a.logger.Error("Error cleaning up visitor data", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgCleanupFailed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	g.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("Error exporting admin stats", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgStatsFailed})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		a.logger.Info("Admin stats exported", "by", a.store.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
