package catalog

// Category is a display label used to group products. Labels are opaque:
// filtering matches them byte for byte, and display order follows file order.
type Category struct {
	Label string `mapstructure:"label" validate:"required"`
}

// Product is a purchasable item. Price is denominated in credits, the bot's
// internal balance unit. Details carries optional descriptive attributes
// (first_name, year_born, city are the ones the storefront displays).
type Product struct {
	ID          string         `mapstructure:"id"`
	Name        string         `mapstructure:"name" validate:"required"`
	Price       float64        `mapstructure:"price" validate:"gte=0"`
	Category    string         `mapstructure:"category" validate:"required"`
	Details     map[string]any `mapstructure:"details"`
	Description string         `mapstructure:"description"`
}
