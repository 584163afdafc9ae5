package router

import (
	"log"

	"helpdesk/config"
	"helpdesk/controllers"
	"helpdesk/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares:
// public creation + authenticated listing/updating of support requests.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	controllers.SetConfigurations(cfg)

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.Cors.AllowedOrigin))

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/requests", Logger(), controllers.CreateRequest)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/requests", Logger(), controllers.GetRequests)
	auth.PUT("/requests/:id", Logger(), controllers.UpdateRequest)

	log.Printf("Routes initialized")
}
