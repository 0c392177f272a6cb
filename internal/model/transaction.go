package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one cart line of a completed checkout.
type TransactionRecord struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"` // snapshot at sale time
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TipShare    decimal.Decimal `json:"tip_share"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Revenue is unit price times quantity, tip excluded.
func (r TransactionRecord) Revenue() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// BalanceEffect is what the record added to the cash balance.
func (r TransactionRecord) BalanceEffect() decimal.Decimal {
	return r.Revenue().Add(r.TipShare)
}

// Matches reports whether the record has the given identity.
func (r TransactionRecord) Matches(productID string, ts time.Time) bool {
	return r.ProductID == productID && r.Timestamp.Equal(ts)
}
