package handlers

import (
	portssvc "github.com/wordnum/wordnum_app/internal/core/ports/services"
	"github.com/wordnum/wordnum_app/internal/middleware"
	"github.com/wordnum/wordnum_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	setupAPIV1Routes(r, services, limiterInstance)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	// Apply rate limiting to the entire v1 group
	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	registerConvertRoutes(v1, services.Converter, services.Locale)
	registerLocaleRoutes(v1, services.Locale)
}
