package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spanishfly666/telegram-nitro-bot/internal/catalog"
	"github.com/spanishfly666/telegram-nitro-bot/internal/config"
	"github.com/spanishfly666/telegram-nitro-bot/internal/http/handlers"
	"github.com/spanishfly666/telegram-nitro-bot/internal/http/middleware"
	"github.com/spanishfly666/telegram-nitro-bot/internal/shared/markdown"
)

// NewRouter wires middleware and routes. ErrorHandler sits inside Logger so
// the log line sees the final status; Recovery sits innermost so panics
// still flow out through ErrorHandler as a rendered error page.
func NewRouter(l *slog.Logger, svc *catalog.Service, app config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.ErrorHandler(l),
		middleware.Recovery(l),
	)

	storefront := handlers.NewStorefrontHandler(svc, markdown.New(), app.Title)
	api := handlers.NewAPIHandler(svc)

	r.GET("/", storefront.Index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/categories", api.ListCategories)
		apiGroup.GET("/products", api.ListProducts)
		apiGroup.GET("/products/:id", api.GetProduct)
	}

	return r
}
