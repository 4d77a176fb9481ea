// Package router is the route table: one handler per page plus the catalog
// API, the activity feed socket and health probes.
package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/internal/auth"
	"novelverse/internal/backend"
	"novelverse/internal/browse"
	"novelverse/internal/catalog"
	"novelverse/internal/dashboard"
	"novelverse/internal/feed"
	"novelverse/internal/genres"
	"novelverse/internal/home"
	"novelverse/internal/library"
	"novelverse/internal/middleware"
	"novelverse/internal/novel"
	"novelverse/internal/profile"
	"novelverse/internal/reader"
	"novelverse/internal/reviews"
	"novelverse/internal/settings"
	"novelverse/internal/trending"
	"novelverse/internal/write"
)

type Deps struct {
	Store catalog.Store
	Hub   *feed.Hub
	API   backend.API

	// DB is set when the catalog is served from SQLite; /ready pings it.
	DB *sql.DB
	// Limiter guards the search routes. Nil disables rate limiting.
	Limiter        *middleware.Limiter
	TrustedProxies []string
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(d.TrustedProxies)
	r.Use(middleware.RequestID(), middleware.RequestLog(), gin.Recovery())

	var search []gin.HandlerFunc
	if d.Limiter != nil {
		search = append(search, middleware.RateLimit(d.Limiter))
	}

	r.GET("/ws", feed.WSHandler(d.Hub))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", ready(d))

	home.NewHandler(d.Store).RegisterRoutes(r.Group(""))
	browse.NewHandler(d.Store).RegisterRoutes(r.Group("/browse"), search...)
	genres.NewHandler(d.Store).RegisterRoutes(r.Group("/genres"))
	trending.NewHandler(d.Store).RegisterRoutes(r.Group("/trending"))
	library.NewHandler(d.Store, d.API).RegisterRoutes(r.Group("/library"))

	novels := r.Group("/novel")
	novel.NewHandler(d.Store).RegisterRoutes(novels)
	reviews.NewHandler(d.Store, d.API).RegisterRoutes(novels)

	reader.NewHandler(d.Store).RegisterRoutes(r.Group("/read"))
	write.NewHandler(d.API).RegisterRoutes(r.Group("/write"))
	dashboard.NewHandler(d.API, d.Hub).RegisterRoutes(r.Group("/dashboard"))
	profile.NewHandler().RegisterRoutes(r.Group("/profile"))
	settings.NewHandler(d.API).RegisterRoutes(r.Group("/settings"))
	auth.NewHandler(d.API).RegisterRoutes(r.Group("/auth"))

	catalog.NewHandler(d.Store).RegisterRoutes(r.Group("/api/novels"), search...)

	r.NoRoute(notFound)
	return r
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":    "not found",
		"path":     c.Request.URL.Path,
		"message":  "Oops! Page not found",
		"home_url": "/",
	})
}

func ready(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := d.Hub.Stats()
		body := gin.H{
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
			"feed_events": stats.History,
			"db":          "memory",
		}
		if d.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := d.DB.PingContext(ctx); err != nil {
				body["status"] = "not_ready"
				body["db_error"] = err.Error()
				c.JSON(http.StatusServiceUnavailable, body)
				return
			}
			body["db"] = "ok"
		}
		body["status"] = "ready"
		c.JSON(http.StatusOK, body)
	}
}
