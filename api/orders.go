package api

import (
	"context"
	"net/http"

	"github.com/Govind-619/Storefront/models"
)

type orderEnvelope struct {
	Order models.Order `json:"order"`
}

type ordersEnvelope struct {
	Orders []models.Order `json:"orders"`
}

// CreateOrder places an order. It is never retried.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var env orderEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/orders", req, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

// UpdateOrder changes an order; the remote service reconciles stock on status changes
func (c *Client) UpdateOrder(ctx context.Context, id string, req models.UpdateOrderRequest) (*models.Order, error) {
	var env orderEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/orders/"+pathID(id), req, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var env ordersEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &env); err != nil {
		return nil, err
	}
	return env.Orders, nil
}
