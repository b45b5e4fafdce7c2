package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/TuanAnh19122003/motoparts-storefront/utils"
)

// FilterState is the listing page's filter selection: selected category names
// (membership only, order is irrelevant), an inclusive price range, and a
// free-text keyword.
type FilterState struct {
	Categories []string   `json:"categories"`
	PriceRange [2]float64 `json:"priceRange"`
	Keyword    string     `json:"keyword"`
}

// DefaultFilter returns the initial filter selection: no categories, the full
// price range, empty keyword.
func DefaultFilter() FilterState {
	return FilterState{
		Categories: []string{},
		PriceRange: [2]float64{utils.PriceFilterMin, utils.PriceFilterMax},
	}
}

// Normalize clamps the price range into the configured bounds and swaps the
// bounds when min > max. Out-of-range input is corrected rather than
// rejected.
func (f FilterState) Normalize() FilterState {
	clamp := func(v float64) float64 {
		if v < utils.PriceFilterMin {
			return utils.PriceFilterMin
		}
		if v > utils.PriceFilterMax {
			return utils.PriceFilterMax
		}
		return v
	}
	f.PriceRange[0] = clamp(f.PriceRange[0])
	f.PriceRange[1] = clamp(f.PriceRange[1])
	if f.PriceRange[0] > f.PriceRange[1] {
		f.PriceRange[0], f.PriceRange[1] = f.PriceRange[1], f.PriceRange[0]
	}
	f.Keyword = strings.TrimSpace(f.Keyword)

	// Category selection is membership only; duplicates would defeat the
	// set comparison in Equal.
	seen := make(map[string]bool, len(f.Categories))
	categories := make([]string, 0, len(f.Categories))
	for _, cat := range f.Categories {
		if !seen[cat] {
			seen[cat] = true
			categories = append(categories, cat)
		}
	}
	f.Categories = categories
	return f
}

// QueryValues encodes the filter for the products endpoint: categories as a
// comma-separated list, the price bounds as two numeric fields, the keyword
// as free text. Empty categories and keyword are omitted, the bounds always
// travel.
func (f FilterState) QueryValues() url.Values {
	values := url.Values{}
	if len(f.Categories) > 0 {
		values.Set("categories", strings.Join(f.Categories, ","))
	}
	values.Set("priceMin", formatPrice(f.PriceRange[0]))
	values.Set("priceMax", formatPrice(f.PriceRange[1]))
	if f.Keyword != "" {
		values.Set("search", f.Keyword)
	}
	return values
}

// Equal reports whether two filter states select the same products.
// Categories are compared as sets.
func (f FilterState) Equal(other FilterState) bool {
	if f.Keyword != other.Keyword || f.PriceRange != other.PriceRange {
		return false
	}
	if len(f.Categories) != len(other.Categories) {
		return false
	}
	seen := make(map[string]bool, len(f.Categories))
	for _, cat := range f.Categories {
		seen[cat] = true
	}
	for _, cat := range other.Categories {
		if !seen[cat] {
			return false
		}
	}
	return true
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
