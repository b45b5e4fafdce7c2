package controllers

import (
	"fmt"
	"time"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrderHistory downloads the session user's order history as a
// spreadsheet, one row per order line plus a per-order total.
func ExportOrderHistory(c *gin.Context) {
	utils.LogInfo("ExportOrderHistory called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.LoginRequired(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	orders, err := shopAPI.UserOrders(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to fetch orders for export - user %d: %v", user.ID, err)
		utils.BadGateway(c, "Failed to fetch order history", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders for export", len(orders))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Order History")
	if err != nil {
		utils.LogError("Failed to create sheet: %v", err)
		utils.InternalServerError(c, "Failed to create export", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("MOTOPARTS STORE - Order History")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Customer: " + user.Email)
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Exported: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "Date", "Status", "Shipping Address", "Product", "Quantity", "Price", "Line Total"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, order := range orders {
		for _, item := range order.OrderItems {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(order.ID))
			row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
			row.AddCell().SetString(order.Status)
			row.AddCell().SetString(order.ShippingAddress)
			row.AddCell().SetString(item.Product.Name)
			row.AddCell().SetInt(item.Quantity)
			row.AddCell().SetFloat(item.Price)
			row.AddCell().SetFloat(item.LineTotal())
		}
		totalRow := sheet.AddRow()
		totalRow.AddCell().SetString(fmt.Sprintf("Order #%d total", order.ID))
		for i := 0; i < 6; i++ {
			totalRow.AddCell()
		}
		totalRow.AddCell().SetFloat(order.TotalPrice)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%d.xlsx", user.ID))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write export file: %v", err)
		utils.InternalServerError(c, "Failed to write export file", err.Error())
		return
	}
	utils.LogInfo("Successfully exported %d orders for user %d", len(orders), user.ID)
}
