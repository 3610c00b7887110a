package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/spanishfly666/telegram-nitro-bot/internal/catalog"
	"github.com/spanishfly666/telegram-nitro-bot/internal/http/render"
	"github.com/spanishfly666/telegram-nitro-bot/internal/shared/markdown"
	"github.com/spanishfly666/telegram-nitro-bot/pkg/view"
	"github.com/spanishfly666/telegram-nitro-bot/templates/pages"
)

// StorefrontHandler serves the catalog page.
type StorefrontHandler struct {
	svc   *catalog.Service
	md    *markdown.Renderer
	title string
}

func NewStorefrontHandler(svc *catalog.Service, md *markdown.Renderer, title string) *StorefrontHandler {
	return &StorefrontHandler{svc: svc, md: md, title: title}
}

// Index handles GET /. The selected category comes from the ?category=
// query parameter; the catalog service does the filtering, the renderer
// only displays what it is handed.
func (h *StorefrontHandler) Index(c *gin.Context) {
	selected := c.Query("category")

	vm := view.StorefrontPage{
		Title:      h.title,
		Selected:   selected,
		Categories: mapCategoryLinks(h.svc.Categories(), selected),
		Products:   h.mapProductCards(h.svc.Products(selected)),
	}

	render.Component(c, http.StatusOK, pages.Storefront(vm))
}

func mapCategoryLinks(labels []string, selected string) []view.CategoryLink {
	out := make([]view.CategoryLink, len(labels))
	for i, label := range labels {
		out[i] = view.CategoryLink{Label: label, Selected: label == selected}
	}
	return out
}

func (h *StorefrontHandler) mapProductCards(items []catalog.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		card := view.ProductCard{
			Name:  p.Name,
			Price: p.Price,
			Details: view.ProductDetails{
				FirstName: cast.ToString(p.Details["first_name"]),
				YearBorn:  cast.ToString(p.Details["year_born"]),
				City:      cast.ToString(p.Details["city"]),
			},
		}
		if p.Description != "" {
			card.DescriptionHTML = h.md.Render(p.Description)
		}
		out = append(out, card)
	}
	return out
}
