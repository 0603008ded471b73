// Package domain holds the catalog's pricing and stock rules: products and the
// promotions that can be attached to them.
package domain

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Standard and limited products track a finite
// stock; a non-stocked product has a quantity of 0 that means unlimited.
//
// A stocked product with quantity 0 is always inactive.
type Product struct {
	name      string
	price     decimal.Decimal
	quantity  int
	active    bool
	kind      Kind
	maximum   int       // per-order cap, KindLimited only
	promotion Promotion // shared, not owned
}

// NewProduct creates a standard product with a finite stock
func NewProduct(name string, price decimal.Decimal, quantity int) (*Product, error) {
	return newStocked(name, price, quantity, KindStandard, 0)
}

// NewNonStockedProduct creates a product that never runs out
func NewNonStockedProduct(name string, price decimal.Decimal) (*Product, error) {
	p, err := newProduct(name, price, KindNonStocked)
	if err != nil {
		return nil, err
	}
	p.active = true
	return p, nil
}

// NewLimitedProduct creates a stocked product that can be bought at most maximum units per order
func NewLimitedProduct(name string, price decimal.Decimal, quantity, maximum int) (*Product, error) {
	if maximum <= 0 {
		return nil, invalidParameter("maximum per order must be positive, got %d", maximum)
	}
	return newStocked(name, price, quantity, KindLimited, maximum)
}

func newStocked(name string, price decimal.Decimal, quantity int, kind Kind, maximum int) (*Product, error) {
	p, err := newProduct(name, price, kind)
	if err != nil {
		return nil, err
	}
	p.maximum = maximum
	p.active = true
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return p, nil
}

func newProduct(name string, price decimal.Decimal, kind Kind) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidParameter("product name must not be empty")
	}
	if price.IsNegative() {
		return nil, invalidParameter("product price must not be negative, got %s", price)
	}
	return &Product{name: name, price: price, kind: kind}, nil
}

func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) Kind() Kind             { return p.kind }

// Maximum returns the per-order cap of a limited product, 0 for other kinds.
func (p *Product) Maximum() int { return p.maximum }

// Promotion returns the attached promotion or nil.
func (p *Product) Promotion() Promotion { return p.promotion }

// SetPrice changes the unit price.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return invalidParameter("product price must not be negative, got %s", price)
	}
	p.price = price
	return nil
}

// SetQuantity replaces the stock level and deactivates the product when it
// reaches zero. Non-stocked products keep their unlimited quantity.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return invalidParameter("quantity must not be negative, got %d", quantity)
	}
	if !p.kind.IsStocked() {
		return nil
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.Deactivate()
	}
	return nil
}

func (p *Product) IsActive() bool { return p.active }
func (p *Product) Activate()      { p.active = true }
func (p *Product) Deactivate()    { p.active = false }

// SetPromotion attaches promo by reference. The same promotion may be attached to many products.
func (p *Product) SetPromotion(promo Promotion) error {
	if isNilPromotion(promo) {
		return invalidParameter("promotion must not be nil")
	}
	p.promotion = promo
	return nil
}

func isNilPromotion(promo Promotion) bool {
	switch v := promo.(type) {
	case nil:
		return true
	case *PercentDiscount:
		return v == nil
	case *SecondHalfPrice:
		return v == nil
	case *ThirdOneFree:
		return v == nil
	default:
		return false
	}
}

func (p *Product) ClearPromotion() {
	p.promotion = nil
}

// Purchase sells quantity units and returns the price to charge.
// Stock is checked after the per-order cap; on failure nothing changes.
func (p *Product) Purchase(quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, invalidParameter("purchase quantity must be positive, got %d", quantity)
	}

	if p.kind == KindLimited && quantity > p.maximum {
		return decimal.Zero, errors.Wrapf(ErrOrderLimitExceeded,
			"%s: cannot purchase more than %d per order", p.name, p.maximum)
	}
	if p.kind.IsStocked() && quantity > p.quantity {
		return decimal.Zero, errors.Wrapf(ErrInsufficientStock,
			"%s: requested %d, available %d", p.name, quantity, p.quantity)
	}

	total := p.priceFor(quantity)

	if p.kind.IsStocked() {
		p.quantity -= quantity
		if p.quantity == 0 {
			p.Deactivate()
		}
	}

	return total, nil
}

func (p *Product) priceFor(quantity int) decimal.Decimal {
	if p.promotion != nil {
		return p.promotion.Apply(p.price, quantity)
	}
	return p.price.Mul(decimal.NewFromInt(int64(quantity)))
}

// String renders the product for catalog listings.
func (p *Product) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, Price: $%s", p.name, p.price.StringFixed(2))

	switch p.kind {
	case KindNonStocked:
		b.WriteString(", Quantity: Unlimited")
	case KindLimited:
		fmt.Fprintf(&b, ", Quantity: %d, Limited to %d per order!", p.quantity, p.maximum)
	default:
		fmt.Fprintf(&b, ", Quantity: %d", p.quantity)
	}

	if p.promotion != nil {
		fmt.Fprintf(&b, ", Promotion: %s", p.promotion.Name())
	}
	return b.String()
}
