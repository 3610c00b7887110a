// Package pages renders the storefront's HTML documents as templ components.
// Every component is a pure function of its view model: no request state, no
// globals, safe to render from any number of goroutines.
package pages

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/spanishfly666/telegram-nitro-bot/pkg/view"
	"github.com/spanishfly666/telegram-nitro-bot/templates/shared"
)

// categoryHref builds a category's self-link. Spaces stay %20 rather than
// the query form's "+", so hrefs read the same as the bot's deep links.
func categoryHref(label string) string {
	return "/?category=" + strings.ReplaceAll(url.QueryEscape(label), "+", "%20")
}

// Storefront is the catalog page. Category links keep the caller's order,
// product blocks keep the caller's order, and an empty product list renders
// the empty-state message instead of a product section.
func Storefront(vm view.StorefrontPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(templ.EscapeString(vm.Title))
		b.WriteString(`</title></head><body><h1>`)
		b.WriteString(templ.EscapeString(vm.Title))
		b.WriteString(`</h1>`)

		if vm.Selected != "" {
			b.WriteString(`<h2 class="selected-category">`)
			b.WriteString(templ.EscapeString(vm.Selected))
			b.WriteString(`</h2>`)
		}

		b.WriteString(`<nav class="categories">`)
		for _, link := range vm.Categories {
			b.WriteString(`<a href="`)
			b.WriteString(categoryHref(link.Label))
			b.WriteString(`"`)
			if link.Selected {
				b.WriteString(` aria-current="page"`)
			}
			b.WriteString(`>`)
			b.WriteString(templ.EscapeString(link.Label))
			b.WriteString(`</a>`)
		}
		b.WriteString(`</nav>`)

		if len(vm.Products) > 0 {
			b.WriteString(`<section class="products">`)
			for _, card := range vm.Products {
				b.WriteString(`<article class="product"><h3>`)
				b.WriteString(templ.EscapeString(card.Name))
				b.WriteString(`</h3><p class="price">Price: `)
				b.WriteString(templ.EscapeString(shared.FormatCredits(card.Price)))
				b.WriteString(`</p>`)
				if !card.Details.Empty() {
					b.WriteString(`<p class="details">Details: `)
					b.WriteString(templ.EscapeString(card.Details.Line()))
					b.WriteString(`</p>`)
				}
				if card.DescriptionHTML != "" {
					// markup produced by our own markdown renderer
					b.WriteString(`<div class="description">`)
					b.WriteString(card.DescriptionHTML)
					b.WriteString(`</div>`)
				}
				b.WriteString(`<p class="cta">To buy, use the bot buttons inside Telegram.</p></article>`)
			}
			b.WriteString(`</section>`)
		} else {
			b.WriteString(`<p class="empty">No products in this category yet.</p>`)
		}

		b.WriteString(`</body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
