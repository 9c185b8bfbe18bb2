package checkout

import (
	"testing"

	"github.com/Govind-619/Storefront/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetPrice(t *testing.T) {
	price := decimal.NewFromInt(199000)

	assert.True(t, NetPrice(price, 0).Equal(price))
	assert.True(t, NetPrice(price, 100).IsZero())
	assert.True(t, NetPrice(price, 50).Equal(decimal.NewFromInt(99500)))
	assert.True(t, NetPrice(price, -10).Equal(price), "negative discount is clamped to 0")
	assert.True(t, NetPrice(price, 150).IsZero(), "discount above 100 is clamped")
}

func TestNetPriceUnitsFloors(t *testing.T) {
	// 99999 * 67 / 100 = 66999.33
	assert.Equal(t, int64(66999), NetPriceUnits(decimal.NewFromInt(99999), 33))
	assert.Equal(t, int64(0), NetPriceUnits(decimal.RequireFromString("0.99"), 0))
}

func TestNetPriceNeverExceedsPrice(t *testing.T) {
	price := decimal.RequireFromString("123457.89")
	for d := -5; d <= 105; d++ {
		net := NetPrice(price, d)
		assert.True(t, net.LessThanOrEqual(price), "discount %d", d)
		assert.False(t, net.IsNegative(), "discount %d", d)
	}
}

func TestPricingFor(t *testing.T) {
	p := &models.Product{Price: decimal.NewFromInt(250000), DiscountPercentage: 40}

	pricing := PricingFor(p)

	assert.Equal(t, int64(150000), pricing.NetPrice)
	assert.Equal(t, "250.000đ", pricing.FormattedPrice)
	assert.Equal(t, "150.000đ", pricing.FormattedNetPrice)
	assert.Equal(t, 40, pricing.DiscountPercentage)
}
