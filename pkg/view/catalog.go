package view

import "strings"

// CategoryLink is one navigable category in the storefront header.
type CategoryLink struct {
	Label    string
	Selected bool
}

// ProductDetails holds the displayable detail fields of a product. Zero
// values mean the field is absent and is skipped when rendering.
type ProductDetails struct {
	FirstName string
	YearBorn  string
	City      string
}

func (d ProductDetails) Empty() bool {
	return d.FirstName == "" && d.YearBorn == "" && d.City == ""
}

// Line joins the present fields into the details line, always in the order
// first name, year born, city. Absent fields leave no separator behind.
func (d ProductDetails) Line() string {
	parts := make([]string, 0, 3)
	if d.FirstName != "" {
		parts = append(parts, "First name: "+d.FirstName)
	}
	if d.YearBorn != "" {
		parts = append(parts, "Year born: "+d.YearBorn)
	}
	if d.City != "" {
		parts = append(parts, "City: "+d.City)
	}
	return strings.Join(parts, ", ")
}

// ProductCard is one product block on the storefront page.
type ProductCard struct {
	Name    string
	Price   float64
	Details ProductDetails
	// DescriptionHTML is already-rendered markup from our own markdown
	// renderer and is emitted raw; everything else goes through escaping.
	DescriptionHTML string
}

// StorefrontPage is the full view model for the catalog page.
type StorefrontPage struct {
	Title      string
	Selected   string
	Categories []CategoryLink
	Products   []ProductCard
}
