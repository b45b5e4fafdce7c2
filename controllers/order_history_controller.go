package controllers

import (
	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// OrderItemRow is one line of the order history table
type OrderItemRow struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"total"`
}

// OrderView is one order card in the history view
type OrderView struct {
	ID              uint           `json:"id"`
	Status          string         `json:"status"`
	Note            string         `json:"note"`
	ShippingAddress string         `json:"shippingAddress"`
	CreatedAt       string         `json:"createdAt"`
	Items           []OrderItemRow `json:"items"`
	Total           string         `json:"total"`
}

// GetOrderHistory lists the session user's orders with items, totals and
// status, all prices localized.
func GetOrderHistory(c *gin.Context) {
	utils.LogInfo("GetOrderHistory called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.LoginRequired(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	orders, err := shopAPI.UserOrders(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to fetch orders for user %d: %v", user.ID, err)
		utils.BadGateway(c, "Failed to fetch order history", err.Error())
		return
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	utils.LogInfo("Returning %d orders for user %d", len(views), user.ID)
	utils.Success(c, "Order history retrieved successfully", gin.H{
		"orders": views,
		"count":  len(views),
	})
}

func newOrderView(order models.Order) OrderView {
	view := OrderView{
		ID:              order.ID,
		Status:          order.Status,
		Note:            order.Note,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt.Format("02/01/2006 15:04"),
		Items:           make([]OrderItemRow, 0, len(order.OrderItems)),
		Total:           utils.FormatCurrency(order.TotalPrice),
	}
	if view.Note == "" {
		view.Note = "-"
	}
	for _, item := range order.OrderItems {
		view.Items = append(view.Items, OrderItemRow{
			Product:   item.Product.Name,
			Quantity:  item.Quantity,
			Price:     utils.FormatCurrency(item.Price),
			LineTotal: utils.FormatCurrency(item.LineTotal()),
		})
	}
	return view
}
