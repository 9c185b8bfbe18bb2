// Package checkout holds the buyer's order draft and the submission workflow
// around it.
package checkout

import (
	"strings"

	"github.com/Govind-619/Storefront/models"
)

// Field names a draft field; field errors are keyed by it
type Field string

const (
	FieldCustomerName  Field = "customerName"
	FieldPhoneNumber   Field = "phoneNumber"
	FieldCity          Field = "city"
	FieldDistrict      Field = "district"
	FieldWard          Field = "ward"
	FieldDetailAddress Field = "detailAddress"
	FieldTiers         Field = "tiers"
	FieldQuantity      Field = "quantity"
	FieldSizes         Field = "sizes"
	FieldCodes         Field = "codes"
	FieldColors        Field = "colors"
	FieldNote          Field = "note"
)

// Draft is the buyer's in-progress order for one product
type Draft struct {
	ProductID     string   `json:"productId"`
	CustomerName  string   `json:"customerName"`
	PhoneNumber   string   `json:"phoneNumber"`
	City          string   `json:"city"`
	District      string   `json:"district"`
	Ward          string   `json:"ward"`
	DetailAddress string   `json:"detailAddress"`
	Tiers         []string `json:"tiers"`
	Sizes         []string `json:"sizes"`
	Codes         []string `json:"codes"`
	Colors        []string `json:"colors"`
	Note          string   `json:"note"`
	Quantity      int      `json:"quantity"`
}

// NewDraft returns an empty draft for productID with quantity 1
func NewDraft(productID string) Draft {
	return Draft{
		ProductID: productID,
		Tiers:     []string{},
		Sizes:     []string{},
		Codes:     []string{},
		Colors:    []string{},
		Quantity:  1,
	}
}

// ShippingAddress joins the non-empty address parts, most specific first
func (d Draft) ShippingAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{d.DetailAddress, d.Ward, d.District, d.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Request builds the order request. Tiers and quantity are exclusive: with
// tiers selected the quantity is omitted.
func (d Draft) Request() models.CreateOrderRequest {
	req := models.CreateOrderRequest{
		ProductID:       d.ProductID,
		CustomerName:    strings.TrimSpace(d.CustomerName),
		PhoneNumber:     strings.TrimSpace(d.PhoneNumber),
		ShippingAddress: d.ShippingAddress(),
		Tiers:           cloneStrings(d.Tiers),
		Sizes:           cloneStrings(d.Sizes),
		Codes:           cloneStrings(d.Codes),
		Colors:          cloneStrings(d.Colors),
		Note:            strings.TrimSpace(d.Note),
	}
	if len(req.Tiers) == 0 {
		req.Quantity = d.Quantity
	}
	return req
}

func (d Draft) clone() Draft {
	d.Tiers = cloneStrings(d.Tiers)
	d.Sizes = cloneStrings(d.Sizes)
	d.Codes = cloneStrings(d.Codes)
	d.Colors = cloneStrings(d.Colors)
	return d
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
