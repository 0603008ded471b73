package store

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/AndreWeigel/bestbuy2/internal/domain"
)

var _ Catalog = (*Store)(nil)

// Store implements Catalog over an in-memory, ordered product list
type Store struct {
	products []*domain.Product
}

// New creates a store holding the given products in order
func New(products ...*domain.Product) *Store {
	s := &Store{products: make([]*domain.Product, 0, len(products))}
	for _, p := range products {
		s.AddProduct(p)
	}
	return s
}

// AddProduct appends p; nil products are ignored
func (s *Store) AddProduct(p *domain.Product) {
	if p == nil {
		return
	}
	s.products = append(s.products, p)
}

// RemoveProduct drops the first occurrence of p
func (s *Store) RemoveProduct(p *domain.Product) {
	for i, existing := range s.products {
		if existing == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Products returns a snapshot of all products
func (s *Store) Products() []*domain.Product {
	result := make([]*domain.Product, len(s.products))
	copy(result, s.products)
	return result
}

// ActiveProducts returns a snapshot of the active products
func (s *Store) ActiveProducts() []*domain.Product {
	result := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			result = append(result, p)
		}
	}
	return result
}

// TotalQuantity sums stock over all products; non-stocked products count as zero
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// Order processes lines sequentially and returns the total price
func (s *Store) Order(lines []OrderLine) (decimal.Decimal, error) {
	totals, err := s.OrderLines(lines)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Sum(decimal.Zero, totals...), nil
}

// OrderLines processes lines sequentially and returns each line's price.
// Product errors are returned unchanged; lines before the failing one are not rolled back.
func (s *Store) OrderLines(lines []OrderLine) ([]decimal.Decimal, error) {
	totals := make([]decimal.Decimal, 0, len(lines))
	for i, line := range lines {
		if line.Product == nil {
			return nil, errors.Wrapf(domain.ErrInvalidParameter, "order line %d has no product", i+1)
		}
		total, err := line.Product.Purchase(line.Quantity)
		if err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, nil
}
