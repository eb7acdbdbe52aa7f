package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shortlink/auth"
	"shortlink/config"
	"shortlink/middleware"
	"shortlink/services"
)

// NewRouter wires all routes and middleware.
func NewRouter(cfg *config.Config, geo services.LocationResolver, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	h := NewLinkHandler(cfg, geo, logger)

	r.GET("/", h.Index)
	r.POST("/shorten", h.CreateShortLink)
	r.DELETE("/links/:id", h.DeleteLink)

	r.POST("/api/register", Register)
	r.POST("/api/login", Login)

	r.GET("/links", auth.AuthMiddleware(), h.ListLinks)
	r.GET("/analytics", auth.AuthMiddleware(), h.Analytics)

	// Registered last so the static routes above take priority.
	r.GET("/:code", h.Redirect)

	return r
}
