package controllers

import (
	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/promotion"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// ProductListItem is a product card of the listing page
type ProductListItem struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	ProductImage       string `json:"productImage"`
	DiscountPercentage int    `json:"discountPercentage"`
	Price              string `json:"price"`
	NetPrice           int64  `json:"netPrice"`
	FormattedNetPrice  string `json:"formattedNetPrice"`
	SoldCount          string `json:"soldCount"`
}

// ReviewSummary is the review block of the detail page
type ReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	Count         int             `json:"count"`
	AverageRating *float64        `json:"averageRating"`
}

// ProductDetailResponse is everything the product page renders
type ProductDetailResponse struct {
	Product       models.Product        `json:"product"`
	Images        []string              `json:"images"`
	Pricing       checkout.Pricing      `json:"pricing"`
	ExpiresAt     int64                 `json:"expiresAt"`
	Countdown     promotion.Countdown   `json:"countdown"`
	SocialProof   promotion.SocialProof `json:"socialProof"`
	Reviews       ReviewSummary         `json:"reviews"`
	Tiers         []models.ProductTier  `json:"tiers"`
	Options       checkout.Options      `json:"options"`
	OtherProducts []ProductListItem     `json:"otherProducts"`
	Notification  string                `json:"notification,omitempty"`
}

func (ctl *Controller) listItem(p models.Product) ProductListItem {
	pricing := checkout.PricingFor(&p)
	return ProductListItem{
		ID:                 p.ID,
		Name:               p.Name,
		ProductImage:       p.ProductImage,
		DiscountPercentage: p.DiscountPercentage,
		Price:              pricing.FormattedPrice,
		NetPrice:           pricing.NetPrice,
		FormattedNetPrice:  pricing.FormattedNetPrice,
		SoldCount:          utils.FormatShortNumber(int64(promotion.RandomSoldCount(ctl.Sampler))),
	}
}

// ListProducts handles GET /v1/products
func (ctl *Controller) ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	products, err := ctl.client(c).ListProducts(c.Request.Context())
	if err != nil {
		respondAPIError(c, "List products", err)
		return
	}

	pagination := utils.NewPagination(c, utils.DefaultProductPageSize)
	start, end := pagination.Bounds(len(products))
	items := make([]ProductListItem, 0, end-start)
	for _, p := range products[start:end] {
		items = append(items, ctl.listItem(p))
	}

	utils.LogInfo("Listed %d of %d products", len(items), len(products))
	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": items}, pagination)
}

func summarizeReviews(reviews []models.Review, limit int) ReviewSummary {
	summary := ReviewSummary{Reviews: []models.Review{}, Count: len(reviews)}
	if avg, ok := models.AverageRating(reviews); ok {
		summary.AverageRating = &avg
	}
	if limit > len(reviews) {
		limit = len(reviews)
	}
	summary.Reviews = append(summary.Reviews, reviews[:limit]...)
	return summary
}

// GetProductDetail handles GET /v1/products/:id. The product itself is
// required; reviews, tiers and other products degrade to empty sections.
func (ctl *Controller) GetProductDetail(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("GetProductDetail called for product %s", productID)
	ctx := c.Request.Context()
	client := ctl.client(c)

	product, err := client.GetProduct(ctx, productID)
	if err != nil {
		respondAPIError(c, "Get product "+productID, err)
		return
	}

	resp := ProductDetailResponse{
		Product:       *product,
		Images:        product.Images(),
		Pricing:       checkout.PricingFor(product),
		SocialProof:   promotion.NewSocialProof(ctl.Sampler),
		Reviews:       ReviewSummary{Reviews: []models.Review{}},
		Tiers:         []models.ProductTier{},
		OtherProducts: []ProductListItem{},
	}

	window := ctl.Promotion.GetOrCreateWindow(ctx, ctl.Store(c), promotion.Key(ctl.PromotionScope, productID))
	resp.ExpiresAt = window.ExpiryTimestamp()
	resp.Countdown = ctl.Promotion.Current(window)

	if reviews, err := client.ListReviewsByProduct(ctx, productID); err != nil {
		utils.LogError("Reviews of product %s unavailable: %v", productID, err)
		resp.Notification = utils.ErrGeneric
	} else {
		resp.Reviews = summarizeReviews(reviews, utils.DefaultReviewPageSize)
	}

	tiersLoaded := false
	if tiers, err := client.ListTiersByProduct(ctx, productID); err != nil {
		utils.LogError("Tiers of product %s unavailable: %v", productID, err)
		resp.Notification = utils.ErrGeneric
	} else {
		tiersLoaded = true
		if tiers != nil {
			resp.Tiers = tiers
		}
	}

	if others, err := client.ListProducts(ctx); err != nil {
		utils.LogError("Other products unavailable: %v", err)
		resp.Notification = utils.ErrGeneric
	} else {
		for _, p := range others {
			if p.ID == productID {
				continue
			}
			resp.OtherProducts = append(resp.OtherProducts, ctl.listItem(p))
			if len(resp.OtherProducts) == utils.OtherProductsCount {
				break
			}
		}
	}

	resp.Options = checkout.OptionsFor(product, resp.Tiers)
	// a failed tier fetch must not make a tiered product look tierless to the draft
	if w, ok := ctl.Drafts.Get(utils.GetDraftID(c, productID)); ok && tiersLoaded {
		w.Refresh(product, resp.Tiers)
	}

	utils.LogDebug("Product %s detail: %d reviews, %d tiers, %d other products", productID, resp.Reviews.Count, len(resp.Tiers), len(resp.OtherProducts))
	utils.Success(c, "Product retrieved successfully", resp)
}

// ListProductReviews handles GET /v1/products/:id/reviews ("show more")
func (ctl *Controller) ListProductReviews(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("ListProductReviews called for product %s", productID)

	reviews, err := ctl.client(c).ListReviewsByProduct(c.Request.Context(), productID)
	if err != nil {
		respondAPIError(c, "List reviews of "+productID, err)
		return
	}

	pagination := utils.NewPagination(c, utils.DefaultReviewPageSize)
	start, end := pagination.Bounds(len(reviews))
	page := append([]models.Review{}, reviews[start:end]...)

	var average *float64
	if avg, ok := models.AverageRating(reviews); ok {
		average = &avg
	}
	utils.SuccessWithPagination(c, "Reviews retrieved successfully", gin.H{
		"reviews":       page,
		"averageRating": average,
	}, pagination)
}
