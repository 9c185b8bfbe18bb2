package api

import (
	"context"
	"net/http"

	"github.com/Govind-619/Storefront/models"
)

type productEnvelope struct {
	Product models.Product `json:"product"`
}

type productsEnvelope struct {
	Products []models.Product `json:"products"`
}

type tierEnvelope struct {
	ProductTier models.ProductTier `json:"productTier"`
}

type tiersEnvelope struct {
	ProductTiers []models.ProductTier `json:"productTiers"`
}

type reviewEnvelope struct {
	Review models.Review `json:"review"`
}

type reviewsEnvelope struct {
	Reviews []models.Review `json:"reviews"`
}

// ListProducts returns every product
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var env productsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

// GetProduct returns one product
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var env productEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+pathID(id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	var env productEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/products", p, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p *models.Product) (*models.Product, error) {
	var env productEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+pathID(id), p, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+pathID(id), nil, nil)
}

// ListTiersByProduct returns the tiers a product is sold in
func (c *Client) ListTiersByProduct(ctx context.Context, productID string) ([]models.ProductTier, error) {
	var env tiersEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/product-tiers/product/"+pathID(productID), nil, &env); err != nil {
		return nil, err
	}
	return env.ProductTiers, nil
}

func (c *Client) ListTiers(ctx context.Context) ([]models.ProductTier, error) {
	var env tiersEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/product-tiers", nil, &env); err != nil {
		return nil, err
	}
	return env.ProductTiers, nil
}

func (c *Client) GetTier(ctx context.Context, id string) (*models.ProductTier, error) {
	var env tierEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/product-tiers/"+pathID(id), nil, &env); err != nil {
		return nil, err
	}
	return &env.ProductTier, nil
}

func (c *Client) CreateTier(ctx context.Context, t *models.ProductTier) (*models.ProductTier, error) {
	var env tierEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/product-tiers", t, &env); err != nil {
		return nil, err
	}
	return &env.ProductTier, nil
}

func (c *Client) UpdateTier(ctx context.Context, id string, t *models.ProductTier) (*models.ProductTier, error) {
	var env tierEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/product-tiers/"+pathID(id), t, &env); err != nil {
		return nil, err
	}
	return &env.ProductTier, nil
}

func (c *Client) DeleteTier(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/product-tiers/"+pathID(id), nil, nil)
}

// ListReviewsByProduct returns the reviews of a product, newest first as the service sends them
func (c *Client) ListReviewsByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	var env reviewsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/product/"+pathID(productID), nil, &env); err != nil {
		return nil, err
	}
	return env.Reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, r *models.Review) (*models.Review, error) {
	var env reviewEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/reviews", r, &env); err != nil {
		return nil, err
	}
	return &env.Review, nil
}
