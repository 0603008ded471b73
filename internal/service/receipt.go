package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt records a successfully placed order
type Receipt struct {
	ID        string
	Lines     []ReceiptLine
	Total     decimal.Decimal
	CreatedAt time.Time
}

type ReceiptLine struct {
	ProductName string
	Promotion   string // empty when no promotion applied
	Quantity    int
	Total       decimal.Decimal
}

// ItemCount returns the number of units across all lines
func (r *Receipt) ItemCount() int {
	count := 0
	for _, line := range r.Lines {
		count += line.Quantity
	}
	return count
}
