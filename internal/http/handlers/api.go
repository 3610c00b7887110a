package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spanishfly666/telegram-nitro-bot/internal/catalog"
	"github.com/spanishfly666/telegram-nitro-bot/internal/http/middleware"
	"github.com/spanishfly666/telegram-nitro-bot/internal/shared/apperr"
)

// APIHandler exposes the catalog as JSON for bot-side consumers.
type APIHandler struct {
	svc *catalog.Service
}

func NewAPIHandler(svc *catalog.Service) *APIHandler {
	return &APIHandler{svc: svc}
}

type productResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Price    float64        `json:"price"`
	Category string         `json:"category"`
	Details  map[string]any `json:"details,omitempty"`
}

// ListCategories handles GET /api/categories.
func (h *APIHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories())
}

// ListProducts handles GET /api/products. An unknown ?category= yields an
// empty array, mirroring the storefront's empty state. An optional ?limit=
// must be a positive integer.
func (h *APIHandler) ListProducts(c *gin.Context) {
	items := h.svc.Products(c.Query("category"))

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			middleware.Fail(c, apperr.InvalidErr("Limit must be a positive integer."))
			return
		}
		if limit < len(items) {
			items = items[:limit]
		}
	}

	out := make([]productResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// GetProduct handles GET /api/products/:id.
func (h *APIHandler) GetProduct(c *gin.Context) {
	p, ok := h.svc.Get(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	c.JSON(http.StatusOK, toResponse(p))
}

func toResponse(p catalog.Product) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Details:  p.Details,
	}
}
