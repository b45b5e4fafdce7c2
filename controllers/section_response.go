package controllers

import (
	"fmt"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
)

// Section layouts
const (
	LayoutGrid     = "grid"
	LayoutCarousel = "carousel"
)

// Breakpoint tells the client how many carousel slides fit below a viewport
// width.
type Breakpoint struct {
	MaxWidth int `json:"maxWidth"`
	Slides   int `json:"slides"`
}

// carouselBreakpoints degrades the five-wide carousel on narrower viewports.
var carouselBreakpoints = []Breakpoint{
	{MaxWidth: 1400, Slides: 4},
	{MaxWidth: 1100, Slides: 3},
	{MaxWidth: 768, Slides: 2},
	{MaxWidth: 520, Slides: 1},
}

// ProductCard is one rendered product tile: image or placeholder, discount
// badge when present, price presentation, and the detail link carrying the
// product's identifier.
type ProductCard struct {
	ID         uint            `json:"id"`
	Slug       string          `json:"slug"`
	Name       string          `json:"name"`
	Image      string          `json:"image,omitempty"`
	HasImage   bool            `json:"hasImage"`
	Badge      string          `json:"badge,omitempty"`
	Price      utils.PriceView `json:"price"`
	DetailPath string          `json:"detailPath"`
}

// Section is a titled product list with its layout decision: a wrapping grid
// below the carousel threshold, a paged carousel from six items up.
type Section struct {
	Title       string        `json:"title"`
	Layout      string        `json:"layout"`
	Slides      int           `json:"slides,omitempty"`
	Breakpoints []Breakpoint  `json:"breakpoints,omitempty"`
	Products    []ProductCard `json:"products"`
}

// NewSection builds a section view model, or nil for an empty list (an empty
// section renders nothing, not a placeholder).
func NewSection(title string, products []models.Product) *Section {
	if len(products) == 0 {
		return nil
	}

	section := &Section{
		Title:    title,
		Layout:   LayoutGrid,
		Products: make([]ProductCard, 0, len(products)),
	}
	if len(products) >= utils.CarouselThreshold {
		section.Layout = LayoutCarousel
		section.Slides = utils.CarouselSlidesWide
		section.Breakpoints = carouselBreakpoints
	}
	for _, p := range products {
		section.Products = append(section.Products, NewProductCard(p))
	}
	return section
}

// NewProductCard maps a product to its card view model
func NewProductCard(p models.Product) ProductCard {
	card := ProductCard{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Image:      p.Image,
		HasImage:   p.Image != "",
		Price:      utils.PresentPrice(p),
		DetailPath: fmt.Sprintf("/%s/products/%s", utils.APIVersion, p.Slug),
	}
	if card.Price.Badge != "" {
		card.Badge = card.Price.Badge
	}
	return card
}
