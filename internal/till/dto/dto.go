package dto

import (
	"time"

	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/fekuna/omnipos-stand-service/internal/payment"
	"github.com/shopspring/decimal"
)

type CartView struct {
	Lines     []model.CartLine
	Subtotal  decimal.Decimal
	ItemCount int
}

// CheckoutView is a snapshot of the payment session after an operation.
type CheckoutView struct {
	State       payment.State
	Subtotal    decimal.Decimal
	Tip         decimal.Decimal
	RoundUp     bool
	FinalTotal  decimal.Decimal
	Received    decimal.Decimal
	Change      decimal.Decimal
	Deficit     decimal.Decimal
	CanComplete bool
}

type Receipt struct {
	payment.Result
	Timestamp time.Time
	Records   []model.TransactionRecord
}

func NewCheckoutView(s payment.Session) *CheckoutView {
	return &CheckoutView{
		State:       s.State(),
		Subtotal:    s.Subtotal(),
		Tip:         s.Tip(),
		RoundUp:     s.RoundUp(),
		FinalTotal:  s.FinalTotal(),
		Received:    s.Received(),
		Change:      s.Change(),
		Deficit:     s.Deficit(),
		CanComplete: s.CanComplete(),
	}
}
