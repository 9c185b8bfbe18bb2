package checkout

import (
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NetPrice applies a percentage discount. discount is clamped to [0, 100].
func NetPrice(price decimal.Decimal, discount int) decimal.Decimal {
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	return price.Mul(decimal.NewFromInt(int64(100 - discount))).Div(hundred)
}

// NetPriceUnits is NetPrice floored to a whole currency unit, the value every
// page displays
func NetPriceUnits(price decimal.Decimal, discount int) int64 {
	return NetPrice(price, discount).Floor().IntPart()
}

// Pricing is the price block of a product page
type Pricing struct {
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage int             `json:"discountPercentage"`
	NetPrice           int64           `json:"netPrice"`
	FormattedPrice     string          `json:"formattedPrice"`
	FormattedNetPrice  string          `json:"formattedNetPrice"`
}

// PricingFor computes the price block of p
func PricingFor(p *models.Product) Pricing {
	net := NetPrice(p.Price, p.DiscountPercentage)
	return Pricing{
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		NetPrice:           net.Floor().IntPart(),
		FormattedPrice:     utils.FormatPrice(p.Price, ""),
		FormattedNetPrice:  utils.FormatPrice(net, ""),
	}
}
