package models

import (
	"time"
)

// Order status constants as reported by the order API
const (
	OrderStatusPlaced     = "Placed"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Order is an order record from GET /orders/user/{id}/details.
type Order struct {
	ID              uint        `json:"id"`
	Status          string      `json:"status"`
	Note            string      `json:"note,omitempty"`
	ShippingAddress string      `json:"shipping_address"`
	TotalPrice      float64     `json:"total_price"`
	CreatedAt       time.Time   `json:"createdAt"`
	OrderItems      []OrderItem `json:"orderItems"`
}

// OrderItem is a single line of an order with the product embedded.
type OrderItem struct {
	ID       uint         `json:"id"`
	Quantity int          `json:"quantity"`
	Price    float64      `json:"price"`
	Product  OrderProduct `json:"product"`
}

// OrderProduct is the slimmed product record nested in order items.
type OrderProduct struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LineTotal returns price times quantity for one order line.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
