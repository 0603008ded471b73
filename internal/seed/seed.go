// Package seed builds the initial product catalog, either the built-in demo
// inventory or one described in a YAML file.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/AndreWeigel/bestbuy2/internal/domain"
)

// Default returns the demo inventory the store opens with
func Default() ([]*domain.Product, error) {
	return build(&File{
		Promotions: []PromotionSpec{
			{Name: "Second Half price!", Type: PromotionSecondHalfPrice},
			{Name: "Third One Free!", Type: PromotionThirdOneFree},
			{Name: "30% off!", Type: PromotionPercent, Percentage: decimal.NewFromInt(30)},
		},
		Products: []ProductSpec{
			{Name: "MacBook Air M2", Price: decimal.NewFromInt(1450), Quantity: 100, Promotion: "Second Half price!"},
			{Name: "Bose QuietComfort Earbuds", Price: decimal.NewFromInt(250), Quantity: 500, Promotion: "Third One Free!"},
			{Name: "Google Pixel 7", Price: decimal.NewFromInt(500), Quantity: 250},
			{Name: "Windows License", Price: decimal.NewFromInt(125), Kind: domain.KindNonStocked, Promotion: "30% off!"},
			{Name: "Shipping", Price: decimal.NewFromInt(10), Quantity: 250, Kind: domain.KindLimited, Maximum: 1},
		},
	})
}
