package controllers

import (
	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// AddToCartRequest is the cart add payload from the browser
type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// AddToCart forwards a cart addition to the remote cart API for the session
// user, then pulls the fresh cart count. The auth middleware guarantees a
// stored user; without one the route is never reached and no upstream call
// is made.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.LoginRequired(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart add payload: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = utils.MinCartQuantity
	}
	if req.Quantity < utils.MinCartQuantity || req.Quantity > utils.MaxCartQuantity {
		utils.LogError("Quantity out of bounds: %d", req.Quantity)
		utils.ValidationError(c, "Quantity must be between 1 and 100", nil)
		return
	}

	ctx := c.Request.Context()

	// Inactive products render without an add-to-cart action; refuse a
	// direct request for one as well.
	product, err := shopAPI.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogError("Product %d not found for cart add", req.ProductID)
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %d for cart add: %v", req.ProductID, err)
		utils.BadGateway(c, "Failed to add to cart", err.Error())
		return
	}
	if !product.IsActive {
		utils.LogError("Rejected cart add for inactive product %d", req.ProductID)
		utils.ValidationError(c, "Product is not available for purchase", nil)
		return
	}

	if err := shopAPI.AddToCart(ctx, user.ID, req.ProductID, req.Quantity); err != nil {
		utils.LogError("Failed to add product %d to cart for user %d: %v", req.ProductID, user.ID, err)
		utils.BadGateway(c, "Failed to add to cart", err.Error())
		return
	}
	utils.LogInfo("User %d added product %d x%d to cart", user.ID, req.ProductID, req.Quantity)

	// Cart count is shared across pages; pull it fresh rather than guessing.
	response := gin.H{}
	if count, err := shopAPI.CartCount(ctx, user.ID); err != nil {
		utils.LogError("Failed to refresh cart count for user %d: %v", user.ID, err)
	} else {
		response["cartCount"] = count
	}

	utils.Success(c, "Product added to cart", response)
}

// GetCartCount returns the cart badge value for the session user
func GetCartCount(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LoginRequired(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	count, err := shopAPI.CartCount(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to fetch cart count for user %d: %v", user.ID, err)
		utils.BadGateway(c, "Failed to fetch cart count", err.Error())
		return
	}

	utils.Success(c, "Cart count retrieved successfully", gin.H{
		"count": count,
	})
}
