package usecase

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/fekuna/omnipos-stand-service/internal/auth"
	"github.com/fekuna/omnipos-stand-service/internal/cart"
	"github.com/fekuna/omnipos-stand-service/internal/ledger"
	"github.com/fekuna/omnipos-stand-service/internal/payment"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/internal/till"
	"github.com/fekuna/omnipos-stand-service/internal/till/dto"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var errNoCheckout = apperror.Validation("no checkout open")

type tillUseCase struct {
	mu      sync.Mutex
	cart    *cart.Cart
	session payment.Session

	catalog product.UseCase
	ledger  ledger.UseCase
	logger  logger.ZapLogger
}

func NewTillUseCase(catalog product.UseCase, sales ledger.UseCase, log logger.ZapLogger) till.UseCase {
	return &tillUseCase{
		cart:    cart.New(),
		catalog: catalog,
		ledger:  sales,
		logger:  log,
	}
}

func (uc *tillUseCase) AddToCart(ctx context.Context, productID string) (*dto.CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.session.Active() {
		return nil, apperror.Validation("cart is locked while a checkout is open")
	}
	p, err := uc.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	uc.cart.Add(*p)
	return uc.cartView(), nil
}

func (uc *tillUseCase) RemoveFromCart(_ context.Context, productID string) (*dto.CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.session.Active() {
		return nil, apperror.Validation("cart is locked while a checkout is open")
	}
	uc.cart.RemoveOne(productID)
	return uc.cartView(), nil
}

// ClearCart also abandons an open checkout.
func (uc *tillUseCase) ClearCart(_ context.Context) (*dto.CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.cart.Clear()
	uc.session = payment.Session{}
	return uc.cartView(), nil
}

func (uc *tillUseCase) Cart(_ context.Context) (*dto.CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.cartView(), nil
}

func (uc *tillUseCase) OpenCheckout(_ context.Context) (*dto.CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cart.Len() == 0 {
		return nil, apperror.Validation("cart is empty")
	}
	if !uc.session.Active() {
		uc.session = payment.NewSession(uc.cart.Subtotal())
		uc.logger.Debug("checkout opened", zap.String("subtotal", uc.session.Subtotal().StringFixed(2)))
	}
	return dto.NewCheckoutView(uc.session), nil
}

func (uc *tillUseCase) Checkout(_ context.Context) (*dto.CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return dto.NewCheckoutView(uc.session), nil
}

func (uc *tillUseCase) Tender(_ context.Context, amount decimal.Decimal) (*dto.CheckoutView, error) {
	den, ok := payment.LookupDenomination(amount)
	if !ok {
		return nil, apperror.Validation("%s is not a euro coin or bill", amount)
	}
	return uc.step(func(s payment.Session) (payment.Session, error) {
		return s.Tender(den.Value), nil
	})
}

func (uc *tillUseCase) SetTip(_ context.Context, amount decimal.Decimal) (*dto.CheckoutView, error) {
	return uc.step(func(s payment.Session) (payment.Session, error) {
		return s.WithTip(amount)
	})
}

func (uc *tillUseCase) SetRoundUp(_ context.Context, on bool) (*dto.CheckoutView, error) {
	return uc.step(func(s payment.Session) (payment.Session, error) {
		return s.WithRoundUp(on), nil
	})
}

func (uc *tillUseCase) ResetPayment(_ context.Context) (*dto.CheckoutView, error) {
	return uc.step(func(s payment.Session) (payment.Session, error) {
		return s.Reset(), nil
	})
}

// CancelCheckout closes the checkout and keeps the cart.
func (uc *tillUseCase) CancelCheckout(_ context.Context) (*dto.CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.session.Active() {
		return nil, errNoCheckout
	}
	view := dto.NewCheckoutView(uc.session.Cancel())
	uc.session = payment.Session{}
	uc.logger.Debug("checkout cancelled")
	return view, nil
}

// CompleteCheckout records the sale. If recording fails the cart and the
// checkout stay as they were so the cashier can retry.
func (uc *tillUseCase) CompleteCheckout(ctx context.Context) (*dto.Receipt, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.session.Active() {
		return nil, errNoCheckout
	}
	_, res, err := uc.session.Complete()
	if err != nil {
		return nil, err
	}

	records, err := uc.ledger.RecordSale(ctx, uc.cart.Lines(), res.Tip)
	if err != nil {
		uc.logger.Error("failed to record sale", zap.Error(err))
		return nil, err
	}

	uc.cart.Clear()
	uc.session = payment.Session{}

	uc.logger.Info("checkout completed",
		zap.String("total", res.FinalTotal.StringFixed(2)),
		zap.String("received", res.Received.StringFixed(2)),
		zap.String("change", res.Change.StringFixed(2)),
		zap.String("tip", res.Tip.StringFixed(2)),
		zap.String("cashier", auth.GetCashier(ctx)))

	receipt := &dto.Receipt{Result: res, Records: records}
	if len(records) > 0 {
		receipt.Timestamp = records[0].Timestamp
	}
	return receipt, nil
}

func (uc *tillUseCase) step(f func(payment.Session) (payment.Session, error)) (*dto.CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.session.Active() {
		return nil, errNoCheckout
	}
	next, err := f(uc.session)
	if err != nil {
		return nil, err
	}
	uc.session = next
	return dto.NewCheckoutView(next), nil
}

func (uc *tillUseCase) cartView() *dto.CartView {
	lines := uc.cart.Lines()
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return &dto.CartView{
		Lines:     lines,
		Subtotal:  uc.cart.Subtotal(),
		ItemCount: count,
	}
}
