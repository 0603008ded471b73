package domain

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// Promotion is a pricing strategy that replaces unit price × quantity for a purchase.
// Implementations are immutable and may be shared by any number of products.
type Promotion interface {
	Name() string
	Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal
}

// PercentDiscount takes a fixed percentage off the whole line.
type PercentDiscount struct {
	name       string
	percentage decimal.Decimal
}

// NewPercentDiscount creates a discount of percentage (0-100 inclusive).
// The name is shown in listings and must not be empty.
func NewPercentDiscount(name string, percentage decimal.Decimal) (*PercentDiscount, error) {
	if name == "" {
		return nil, invalidParameter("promotion name must not be empty")
	}
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return nil, invalidParameter("percentage must be between 0 and 100, got %s", percentage)
	}
	return &PercentDiscount{name: name, percentage: percentage}, nil
}

func (d *PercentDiscount) Name() string { return d.name }

// Percentage returns the configured discount in percent.
func (d *PercentDiscount) Percentage() decimal.Decimal { return d.percentage }

func (d *PercentDiscount) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	full := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return full.Mul(hundred.Sub(d.percentage)).Div(hundred)
}

// SecondHalfPrice sells every second unit at half price.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice creates the promotion; name must not be empty.
func NewSecondHalfPrice(name string) (*SecondHalfPrice, error) {
	if name == "" {
		return nil, invalidParameter("promotion name must not be empty")
	}
	return &SecondHalfPrice{name: name}, nil
}

func (s *SecondHalfPrice) Name() string { return s.name }

func (s *SecondHalfPrice) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	halved := quantity / 2
	full := quantity - halved

	halvedTotal := unitPrice.Mul(half).Mul(decimal.NewFromInt(int64(halved)))
	fullTotal := unitPrice.Mul(decimal.NewFromInt(int64(full)))
	return halvedTotal.Add(fullTotal)
}

// ThirdOneFree gives away every third unit.
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree creates the promotion; name must not be empty.
func NewThirdOneFree(name string) (*ThirdOneFree, error) {
	if name == "" {
		return nil, invalidParameter("promotion name must not be empty")
	}
	return &ThirdOneFree{name: name}, nil
}

func (t *ThirdOneFree) Name() string { return t.name }

func (t *ThirdOneFree) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	free := quantity / 3
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity - free)))
}
