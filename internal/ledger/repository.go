package ledger

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	LoadTransactions(ctx context.Context) ([]model.TransactionRecord, error)
	SaveTransactions(ctx context.Context, records []model.TransactionRecord) error
	LoadCashBalance(ctx context.Context) (decimal.Decimal, error)
	SaveCashBalance(ctx context.Context, balance decimal.Decimal) error
}
