package catalog

import "maps"

// Service hands out read-only views of the loaded catalog. It is immutable
// after construction, so any number of request handlers may call it
// concurrently without locking.
type Service struct {
	categories []Category
	products   []Product
}

func NewService(categories []Category, products []Product) *Service {
	return &Service{categories: categories, products: products}
}

// Categories returns the category labels in catalog order.
func (s *Service) Categories() []string {
	out := make([]string, len(s.categories))
	for i, c := range s.categories {
		out[i] = c.Label
	}
	return out
}

// Products returns the products for the given category label, preserving
// catalog order. The match is exact and case-sensitive: labels are opaque
// identifiers, the same way the bot keys its callback data off them.
// An empty label selects the whole catalog. Returned products are copies,
// Details maps included, so callers cannot reach the service's state.
func (s *Service) Products(category string) []Product {
	var out []Product
	for _, p := range s.products {
		if category == "" || p.Category == category {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// Get looks up a product by id. The second return reports whether it exists.
func (s *Service) Get(id string) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}
	return Product{}, false
}

func cloneProduct(p Product) Product {
	p.Details = maps.Clone(p.Details)
	return p
}
