// Package payment reconciles cash tendered against a checkout total.
//
// Session is a value: every operation returns a new Session and leaves the
// receiver untouched, so callers can keep or discard a step freely.
package payment

import (
	"fmt"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/shopspring/decimal"
)

type State int

const (
	// Idle is the zero Session: no checkout in progress.
	Idle State = iota
	// Open means nothing has been received yet.
	Open
	// Deficient means some money was received but not enough.
	Deficient
	// Validated means received covers the final total.
	Validated
	// Closed by Complete or Cancel.
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Open:
		return "open"
	case Deficient:
		return "deficient"
	case Validated:
		return "validated"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Session struct {
	active   bool
	closed   bool
	subtotal decimal.Decimal
	tip      decimal.Decimal
	roundUp  bool
	received decimal.Decimal
}

// Result is what a completed checkout hands back to the till.
type Result struct {
	Subtotal   decimal.Decimal
	Tip        decimal.Decimal
	FinalTotal decimal.Decimal
	Received   decimal.Decimal
	Change     decimal.Decimal
}

// NewSession opens a checkout for subtotal. The subtotal is fixed from here on.
func NewSession(subtotal decimal.Decimal) Session {
	return Session{active: true, subtotal: subtotal}
}

func (s Session) Subtotal() decimal.Decimal { return s.subtotal }
func (s Session) Tip() decimal.Decimal      { return s.tip }
func (s Session) RoundUp() bool             { return s.roundUp }
func (s Session) Received() decimal.Decimal { return s.received }

func (s Session) State() State {
	switch {
	case s.closed:
		return Closed
	case !s.active:
		return Idle
	case s.received.IsZero() && s.FinalTotal().IsPositive():
		return Open
	case s.received.GreaterThanOrEqual(s.FinalTotal()):
		return Validated
	default:
		return Deficient
	}
}

// Active reports whether the session accepts payment operations.
func (s Session) Active() bool {
	return s.active && !s.closed
}

// Tender adds one tendered amount to what was received.
func (s Session) Tender(amount decimal.Decimal) Session {
	if !s.Active() {
		return s
	}
	s.received = s.received.Add(amount)
	return s
}

// WithTip sets a manual tip and switches round-up off.
func (s Session) WithTip(tip decimal.Decimal) (Session, error) {
	if tip.IsNegative() {
		return s, apperror.Validation("tip must not be negative, got %s", tip)
	}
	if !tip.Equal(tip.Round(2)) {
		return s, apperror.Validation("tip %s has more than two decimal places", tip)
	}
	if !s.Active() {
		return s, nil
	}
	s.tip = tip
	s.roundUp = false
	return s, nil
}

// WithRoundUp sets the tip to whatever lifts the subtotal to the next whole
// euro, or clears the tip when on is false.
func (s Session) WithRoundUp(on bool) Session {
	if !s.Active() {
		return s
	}
	s.roundUp = on
	if on {
		s.tip = s.subtotal.Ceil().Sub(s.subtotal)
	} else {
		s.tip = decimal.Zero
	}
	return s
}

// Reset clears received money and tip. The checkout stays open.
func (s Session) Reset() Session {
	if !s.Active() {
		return s
	}
	return NewSession(s.subtotal)
}

func (s Session) FinalTotal() decimal.Decimal {
	if s.roundUp {
		return s.subtotal.Ceil()
	}
	return s.subtotal.Add(s.tip)
}

// Change is never negative.
func (s Session) Change() decimal.Decimal {
	if d := s.received.Sub(s.FinalTotal()); d.IsPositive() {
		return d
	}
	return decimal.Zero
}

// Deficit is the amount still missing once some money was received.
func (s Session) Deficit() decimal.Decimal {
	if s.received.IsPositive() && s.received.LessThan(s.FinalTotal()) {
		return s.FinalTotal().Sub(s.received)
	}
	return decimal.Zero
}

func (s Session) CanComplete() bool {
	return s.Active() && s.received.GreaterThanOrEqual(s.FinalTotal())
}

// Complete closes the session. While received is short of the final total it
// returns ErrInsufficientPayment and the unchanged session.
func (s Session) Complete() (Session, Result, error) {
	if !s.Active() {
		return s, Result{}, apperror.Validation("no checkout open")
	}
	if !s.CanComplete() {
		return s, Result{}, fmt.Errorf("%w: %s missing", apperror.ErrInsufficientPayment, s.FinalTotal().Sub(s.received).StringFixed(2))
	}

	res := Result{
		Subtotal:   s.subtotal,
		Tip:        s.tip,
		FinalTotal: s.FinalTotal(),
		Received:   s.received,
		Change:     s.Change(),
	}
	s.closed = true
	return s, res, nil
}

func (s Session) Cancel() Session {
	if !s.Active() {
		return s
	}
	s.closed = true
	return s
}
