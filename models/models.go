package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AttributeKind tags a product variant axis
type AttributeKind string

const (
	AttributeColor AttributeKind = "Color"
	AttributeCode  AttributeKind = "Code"
)

// Valid reports whether k is one of the known attribute kinds
func (k AttributeKind) Valid() bool {
	switch k {
	case AttributeColor, AttributeCode:
		return true
	}
	return false
}

// UnmarshalJSON rejects attribute kinds the storefront cannot render
func (k *AttributeKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind := AttributeKind(s)
	if !kind.Valid() {
		return fmt.Errorf("unknown attribute type %q", s)
	}
	*k = kind
	return nil
}

// Attribute is a color swatch or SKU-style code the buyer picks before ordering
type Attribute struct {
	ID    string        `json:"id,omitempty"`
	Name  string        `json:"name"`
	Kind  AttributeKind `json:"type"`
	Image string        `json:"image,omitempty"`
}

// Size is one row of a product's size chart
type Size struct {
	SizeName string `json:"sizeName"`
	Weight   string `json:"weight,omitempty"`
	Height   string `json:"height,omitempty"`
	Waist    string `json:"waist,omitempty"`
	Chest    string `json:"chest,omitempty"`
}

// Product mirrors the remote service's product document
type Product struct {
	ID                 string          `json:"id,omitempty"`
	Name               string          `json:"name"`
	Description        *string         `json:"description"`
	Price              decimal.Decimal `json:"price"`
	CategoryID         string          `json:"categoryId,omitempty"`
	DiscountPercentage int             `json:"discountPercentage"`
	StockQuantity      int             `json:"stockQuantity"`
	ProductImage       string          `json:"productImage"`
	SubImages          []string        `json:"subImages"`
	Sizes              []Size          `json:"sizes"`
	ExternalLink       string          `json:"externalLink,omitempty"`
	Attributes         []Attribute     `json:"attributes,omitempty"`
	ProductTiers       []ProductTier   `json:"productTiers,omitempty"`
}

// AttributesOfKind returns the product's attributes tagged with kind
func (p *Product) AttributesOfKind(kind AttributeKind) []Attribute {
	var out []Attribute
	for _, attr := range p.Attributes {
		if attr.Kind == kind {
			out = append(out, attr)
		}
	}
	return out
}

// Images returns the main product image followed by every attribute image
func (p *Product) Images() []string {
	images := []string{}
	if p.ProductImage != "" {
		images = append(images, p.ProductImage)
	}
	for _, attr := range p.Attributes {
		if attr.Image != "" {
			images = append(images, attr.Image)
		}
	}
	return images
}

// ProductTier is a seller-defined bundle with its own price and shipping fee
type ProductTier struct {
	ID          string          `json:"id,omitempty"`
	ProductID   string          `json:"productId"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
}

// Review is a customer review shown on the product page
type Review struct {
	ID            string    `json:"id,omitempty"`
	ProductID     string    `json:"productId"`
	AttributeID   *string   `json:"attributeId"`
	UserID        *string   `json:"userId"`
	ReviewerImage *string   `json:"reviewerImage"`
	ReviewerName  *string   `json:"reviewerName"`
	Rating        float64   `json:"rating"`
	Content       string    `json:"content"`
	Images        []string  `json:"images"`
	IsApproved    bool      `json:"isApproved"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// AverageRating returns the mean rating of reviews and false when there are none
func AverageRating(reviews []Review) (float64, bool) {
	if len(reviews) == 0 {
		return 0, false
	}
	total := 0.0
	for _, r := range reviews {
		total += r.Rating
	}
	return total / float64(len(reviews)), true
}
