package ledger

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	// RecordSale appends one record per line and books subtotal plus tip.
	RecordSale(ctx context.Context, lines []model.CartLine, tip decimal.Decimal) ([]model.TransactionRecord, error)
	// DeleteRecord reports false when nothing matched.
	DeleteRecord(ctx context.Context, productID string, timestamp time.Time) (bool, error)
	ListAll(ctx context.Context) ([]model.TransactionRecord, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	ResetBalance(ctx context.Context) error
	ResetAll(ctx context.Context, confirm bool) error
}
