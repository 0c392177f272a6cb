package model

import "github.com/shopspring/decimal"

// CartLine is one product's accumulated quantity in the sale being rung up.
// Name and UnitPrice are snapshots taken when the line was created.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
