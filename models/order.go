package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order on the remote service.
// Moving an order into or out of RETURNED or CANCELED makes the remote
// service reconcile stock; this server only forwards the status.
type OrderStatus string

// Order status constants
const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusConfirmed       OrderStatus = "CONFIRMED"
	OrderStatusPreparing       OrderStatus = "PREPARING"
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusReturnRequested OrderStatus = "RETURN_REQUESTED"
	OrderStatusReturned        OrderStatus = "RETURNED"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
)

// OrderStatuses lists every status the remote service recognizes
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusReturnRequested,
	OrderStatusReturned,
	OrderStatusCompleted,
	OrderStatusCanceled,
}

// ParseOrderStatus matches s case-insensitively against the known statuses
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if strings.EqualFold(string(status), strings.TrimSpace(s)) {
			return status, true
		}
	}
	return "", false
}

// Order is a persisted order as returned by the remote service
type Order struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName,omitempty"`
	CustomerName    string          `json:"customerName"`
	PhoneNumber     string          `json:"phoneNumber"`
	ShippingAddress string          `json:"shippingAddress"`
	Tiers           []string        `json:"tiers"`
	Sizes           []string        `json:"sizes"`
	Codes           []string        `json:"codes"`
	Colors          []string        `json:"colors"`
	Note            string          `json:"note,omitempty"`
	Quantity        int             `json:"quantity,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	ProductID       string   `json:"productId"`
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	ShippingAddress string   `json:"shippingAddress"`
	Tiers           []string `json:"tiers"`
	Sizes           []string `json:"sizes"`
	Codes           []string `json:"codes"`
	Colors          []string `json:"colors"`
	Note            string   `json:"note"`
	Quantity        int      `json:"quantity,omitempty"`
}

// UpdateOrderRequest is the body of PUT /orders/{id}; nil fields are left untouched
type UpdateOrderRequest struct {
	CustomerName    *string      `json:"customerName,omitempty"`
	PhoneNumber     *string      `json:"phoneNumber,omitempty"`
	ShippingAddress *string      `json:"shippingAddress,omitempty"`
	Tiers           []string     `json:"tiers,omitempty"`
	Sizes           []string     `json:"sizes,omitempty"`
	Codes           []string     `json:"codes,omitempty"`
	Colors          []string     `json:"colors,omitempty"`
	Note            *string      `json:"note,omitempty"`
	Quantity        *int         `json:"quantity,omitempty"`
	Status          *OrderStatus `json:"status,omitempty"`
}
