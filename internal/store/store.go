// Package store aggregates catalog products and turns shopping lists into orders.
package store

import (
	"github.com/shopspring/decimal"

	"github.com/AndreWeigel/bestbuy2/internal/domain"
)

// OrderLine is a single product/quantity request within an order
type OrderLine struct {
	Product  *domain.Product
	Quantity int
}

// Catalog defines the operations callers use to browse and buy from a store
type Catalog interface {
	// AddProduct appends a product to the catalog
	AddProduct(p *domain.Product)

	// RemoveProduct removes the product if present, otherwise does nothing
	RemoveProduct(p *domain.Product)

	// Products returns every product in insertion order, active or not
	Products() []*domain.Product

	// ActiveProducts returns the products that can currently be bought, in insertion order
	ActiveProducts() []*domain.Product

	// TotalQuantity sums the current quantity of every product
	TotalQuantity() int

	// Order purchases each line in turn and returns the summed price.
	// The first failing line aborts the order; earlier lines stay purchased.
	Order(lines []OrderLine) (decimal.Decimal, error)

	// OrderLines behaves like Order but returns the price of each applied line
	OrderLines(lines []OrderLine) ([]decimal.Decimal, error)
}
