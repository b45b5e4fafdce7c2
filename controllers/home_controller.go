package controllers

import (
	"fmt"
	"strings"

	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// GetHome builds the home page: an optional search-results section, the
// featured carousel, and one section per category with embedded products.
func GetHome(c *gin.Context) {
	utils.LogInfo("GetHome called")
	ctx := c.Request.Context()

	sections := make([]*Section, 0, 8)

	if keyword := strings.TrimSpace(c.Query("keyword")); keyword != "" {
		results, err := shopAPI.SearchProducts(ctx, keyword)
		if err != nil {
			utils.LogError("Product search failed for %q: %v", keyword, err)
			utils.BadGateway(c, "Failed to search products", err.Error())
			return
		}
		utils.LogInfo("Search for %q returned %d products", keyword, len(results))
		if section := NewSection(fmt.Sprintf("Search results for %q", keyword), results); section != nil {
			sections = append(sections, section)
		}
	}

	featured, err := shopAPI.FeaturedProducts(ctx)
	if err != nil {
		utils.LogError("Failed to load featured products: %v", err)
		utils.BadGateway(c, "Failed to load home page", err.Error())
		return
	}
	if section := NewSection("Featured products", featured); section != nil {
		sections = append(sections, section)
	}

	categories, err := shopAPI.CategoriesWithProducts(ctx)
	if err != nil {
		utils.LogError("Failed to load categories with products: %v", err)
		utils.BadGateway(c, "Failed to load home page", err.Error())
		return
	}
	for _, category := range categories {
		if section := NewSection(category.Name, category.Products); section != nil {
			sections = append(sections, section)
		}
	}

	utils.LogInfo("Home page built with %d sections", len(sections))
	utils.Success(c, "Home page loaded successfully", gin.H{
		"sections": sections,
	})
}
