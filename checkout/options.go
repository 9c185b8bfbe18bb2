package checkout

import (
	"fmt"

	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
)

// Option is one choice of a selector
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Image string `json:"image,omitempty"`
}

// Options are the selector choices of a product
type Options struct {
	Tiers  []Option `json:"tiers"`
	Sizes  []Option `json:"sizes"`
	Codes  []Option `json:"codes"`
	Colors []Option `json:"colors"`
}

// OptionsFor derives the selectors from a product and its tiers. Tier and
// attribute options are keyed by id; sizes by name.
func OptionsFor(p *models.Product, tiers []models.ProductTier) Options {
	opts := Options{
		Tiers:  []Option{},
		Sizes:  []Option{},
		Codes:  []Option{},
		Colors: []Option{},
	}
	for _, t := range tiers {
		label := t.Description
		if label == "" {
			label = fmt.Sprintf("%d x %s", t.Quantity, utils.FormatPrice(t.Price, ""))
		}
		opts.Tiers = append(opts.Tiers, Option{Value: t.ID, Label: label})
	}
	if p == nil {
		return opts
	}
	for _, s := range p.Sizes {
		opts.Sizes = append(opts.Sizes, Option{Value: s.SizeName, Label: s.SizeName})
	}
	for _, attr := range p.Attributes {
		opt := Option{Value: attr.ID, Label: attr.Name, Image: attr.Image}
		switch attr.Kind {
		case models.AttributeColor:
			opts.Colors = append(opts.Colors, opt)
		case models.AttributeCode:
			opts.Codes = append(opts.Codes, opt)
		default:
			utils.LogError("Product %s has attribute %s of unknown type %q", p.ID, attr.ID, attr.Kind)
		}
	}
	return opts
}

// HasTiers reports whether the product is sold in tiers instead of by quantity
func (o Options) HasTiers() bool { return len(o.Tiers) > 0 }

func contains(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// keepOffered returns the values still among opts, in their original order
func keepOffered(opts []Option, values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if contains(opts, v) {
			kept = append(kept, v)
		} else {
			utils.LogInfo("Dropping selection %q that is no longer offered", v)
		}
	}
	return kept
}

// checkValues returns ErrUnknownOption for the first value not among opts
func checkValues(field Field, opts []Option, values []string) error {
	for _, v := range values {
		if !contains(opts, v) {
			return fmt.Errorf("%w: %s %q", ErrUnknownOption, field, v)
		}
	}
	return nil
}
