package controllers

import (
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// GetProductDetail serves the detail page for a product slug. A product the
// API does not know renders as an inline not-found state; no cart actions
// are offered for it.
func GetProductDetail(c *gin.Context) {
	slug := c.Param("slug")
	utils.LogInfo("GetProductDetail called for slug: %s", slug)

	if slug == "" {
		utils.BadRequest(c, "Product slug is required", nil)
		return
	}

	product, err := shopAPI.GetProduct(c.Request.Context(), slug)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("Product not found for slug: %s", slug)
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %s: %v", slug, err)
		utils.BadGateway(c, "Failed to load product", err.Error())
		return
	}

	categoryName := "Uncategorized"
	if product.Category != nil && product.Category.Name != "" {
		categoryName = product.Category.Name
	}
	description := product.Description
	if description == "" {
		description = "No description available"
	}

	price := utils.PresentPrice(product)

	utils.LogInfo("Successfully prepared detail view for product %s", slug)
	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": gin.H{
			"id":           product.ID,
			"slug":         product.Slug,
			"name":         product.Name,
			"description":  description,
			"category":     categoryName,
			"image":        product.Image,
			"hasImage":     product.Image != "",
			"price":        price,
			"inStock":      product.IsActive,
			"canAddToCart": product.IsActive,
			"quantity": gin.H{
				"min": utils.MinCartQuantity,
				"max": utils.MaxCartQuantity,
			},
		},
	})
}
