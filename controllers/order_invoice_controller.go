package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates a PDF invoice for one of the session user's
// orders, built from the order details fetched from the remote API.
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("Starting invoice download process")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("Unauthorized invoice download attempt - no user in context")
		utils.LoginRequired(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID in invoice download request: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}
	utils.LogInfo("Processing invoice download for order ID: %d", orderID)

	orders, err := shopAPI.UserOrders(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to fetch orders for invoice - user %d: %v", user.ID, err)
		utils.BadGateway(c, "Failed to fetch order", err.Error())
		return
	}

	var order *models.Order
	for i := range orders {
		if orders[i].ID == uint(orderID) {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		utils.LogError("Order not found for invoice download - Order ID: %d, User ID: %d", orderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "MotoParts Store")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "456 Honda Street, District 5, Ho Chi Minh City")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@motoparts.vn | Phone: 0909 123 456")
	pdf.Ln(12)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Status: "+order.Status)
	pdf.Ln(8)

	// Customer and shipping info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, user.FirstName+" "+user.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, user.Email)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Shipping Address:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.ShippingAddress)
	pdf.Ln(6)
	if order.Note != "" {
		pdf.Cell(100, 8, "Note: "+order.Note)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Items table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.OrderItems {
		pdf.CellFormat(70, 8, item.Product.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.0f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.0f", item.LineTotal()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Grand Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.0f", order.TotalPrice), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with MotoParts Store!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate PDF invoice for order %d: %v", orderID, err)
		utils.InternalServerError(c, "Failed to generate invoice", err.Error())
		return
	}
	utils.LogInfo("PDF invoice generated successfully for order ID: %d", orderID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", orderID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	utils.LogInfo("Invoice download completed for order ID: %d", orderID)
}
