package routes

import (
	"cms-backend/controllers"
	"cms-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the HTTP surface. The data controllers are nil when
// the store connection failed at startup; their routes then answer 503
// while the diagnostic surface keeps working.
func RegisterRoutes(
	r *gin.Engine,
	system *controllers.SystemController,
	product *controllers.ProductController,
	settings *controllers.SettingsController,
	contact *controllers.ContactController,
	admin gin.HandlerFunc,
) {
	r.GET("/", system.Root)
	r.GET("/test", system.Test)
	r.GET("/schema", system.Schema)
	r.GET("/health", system.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	if product == nil || settings == nil || contact == nil {
		api.Any("/*path", controllers.DatabaseUnavailable)
		return
	}

	api.GET("/products", product.List)
	api.POST("/products", admin, product.Create)
	api.PUT("/products/:id", admin, product.Update)
	api.DELETE("/products/:id", admin, product.Delete)

	api.GET("/settings", settings.Get)
	api.PUT("/settings", admin, settings.Put)

	api.POST("/contact", middleware.RateLimitMiddleware(), contact.Submit)
}
