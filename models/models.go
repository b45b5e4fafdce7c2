package models

// All types in this package are read-only projections of the remote shop
// API's JSON payloads. The storefront never persists them.

// User represents the authenticated customer as returned by the auth API.
// It lives in the cookie session between login and logout.
type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Discount is the discount descriptor attached to a product. It drives both
// the badge and the struck-through pricing display.
type Discount struct {
	Percentage float64 `json:"percentage"`
	Name       string  `json:"name"`
}

// Product represents a catalog product. Price is nullable: a product without
// a base price is quoted on request ("contact us") and never carries a
// discount.
type Product struct {
	ID            uint      `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	FinalPrice    *float64  `json:"finalPrice,omitempty"`
	Discount      *Discount `json:"discount,omitempty"`
	Image         string    `json:"image,omitempty"`
	Category      *Category `json:"category,omitempty"`
	IsActive      bool      `json:"is_active"`
}

// Category represents a product category. Products is populated only by the
// categories/with-products endpoint used for the home page carousels.
type Category struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products,omitempty"`
}

// EffectivePrice returns the price the customer pays and whether the product
// is priced at all. The API usually sends finalPrice precomputed; when it is
// missing the discount is applied to the base price here so the two fields
// never disagree.
func (p *Product) EffectivePrice() (float64, bool) {
	if p.Price == nil || *p.Price <= 0 {
		return 0, false
	}
	if p.FinalPrice != nil {
		return *p.FinalPrice, true
	}
	if p.Discount != nil {
		return *p.Price * (1 - p.Discount.Percentage/100), true
	}
	return *p.Price, true
}

// BasePrice returns the pre-discount price shown struck through, preferring
// the explicit originalPrice field when the API sends one.
func (p *Product) BasePrice() (float64, bool) {
	if p.OriginalPrice != nil && *p.OriginalPrice > 0 {
		return *p.OriginalPrice, true
	}
	if p.Price != nil && *p.Price > 0 {
		return *p.Price, true
	}
	return 0, false
}
