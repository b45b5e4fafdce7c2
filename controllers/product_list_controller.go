package controllers

import (
	"strconv"
	"strings"

	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// GetProducts serves the listing page. Filter parameters present on the
// request replace the corresponding field of this browser session's filter
// state; each actual change dispatches a re-fetch, and the handler answers
// with the latest settled product list. A fetch failure keeps the previous
// list in the session and surfaces the error.
//
// Query parameters: categories (comma-separated names), priceMin, priceMax,
// search.
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called with query params: %v", c.Request.URL.Query())

	sid, err := utils.ListingSessionID(c)
	if err != nil {
		utils.LogError("Failed to resolve listing session: %v", err)
		utils.InternalServerError(c, "Failed to resolve listing session", err.Error())
		return
	}
	session := listings.Get(sid)

	query := c.Request.URL.Query()
	if query.Has("search") {
		session.SetKeyword(query.Get("search"))
	}
	if query.Has("categories") {
		session.SetCategories(splitCategories(query.Get("categories")))
	}
	if query.Has("priceMin") || query.Has("priceMax") {
		current := session.Filter()
		min := parsePrice(query.Get("priceMin"), current.PriceRange[0])
		max := parsePrice(query.Get("priceMax"), current.PriceRange[1])
		session.SetPriceRange(min, max)
	}

	snapshot := session.Wait(c.Request.Context())
	if snapshot.Err != nil {
		utils.LogError("Listing fetch failed for session %s: %v", sid, snapshot.Err)
		utils.BadGateway(c, "Failed to load products", snapshot.Err.Error())
		return
	}

	cards := make([]ProductCard, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		cards = append(cards, NewProductCard(p))
	}

	// Category options power the filter sidebar; the listing is still usable
	// without them.
	var categoryNames []string
	if categories, err := shopAPI.ListCategories(c.Request.Context()); err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
	} else {
		for _, category := range categories {
			categoryNames = append(categoryNames, category.Name)
		}
	}

	utils.LogInfo("Successfully returning %d products for session %s", len(cards), sid)
	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": cards,
		"count":    len(cards),
		"loading":  snapshot.Loading,
		"filters":  snapshot.Filter,
		"availableFilters": gin.H{
			"categories": categoryNames,
			"priceBounds": [2]float64{
				utils.PriceFilterMin,
				utils.PriceFilterMax,
			},
		},
	})
}

func splitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}

// parsePrice falls back to the current bound on malformed input; range
// validation itself happens in the filter's Normalize.
func parsePrice(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.LogDebug("Ignoring malformed price bound %q", raw)
		return fallback
	}
	return value
}
