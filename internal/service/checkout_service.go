package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AndreWeigel/bestbuy2/internal/store"
)

type CheckoutService interface {
	PlaceOrder(lines []store.OrderLine) (*Receipt, error)
}

type CheckoutServiceImpl struct {
	catalog store.Catalog
	logger  *zap.Logger
	now     func() time.Time
}

func NewCheckoutService(catalog store.Catalog, logger *zap.Logger) *CheckoutServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutServiceImpl{
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// PlaceOrder submits lines to the catalog and builds a receipt on success.
// Catalog errors are logged and returned unchanged; lines already purchased stay purchased.
func (s *CheckoutServiceImpl) PlaceOrder(lines []store.OrderLine) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	orderID := uuid.New().String()
	log := s.logger.With(zap.String("order_id", orderID), zap.Int("lines", len(lines)))

	totals, err := s.catalog.OrderLines(lines)
	if err != nil {
		log.Warn("order failed", zap.Error(err))
		return nil, err
	}

	receipt := &Receipt{
		ID:        orderID,
		Lines:     make([]ReceiptLine, len(lines)),
		CreatedAt: s.now(),
	}
	for i, line := range lines {
		rl := ReceiptLine{
			ProductName: line.Product.Name(),
			Quantity:    line.Quantity,
			Total:       totals[i],
		}
		if promo := line.Product.Promotion(); promo != nil {
			rl.Promotion = promo.Name()
		}
		receipt.Lines[i] = rl
	}
	receipt.Total = decimal.Sum(decimal.Zero, totals...)

	log.Info("order placed",
		zap.Int("items", receipt.ItemCount()),
		zap.String("total", receipt.Total.StringFixed(2)))

	return receipt, nil
}
