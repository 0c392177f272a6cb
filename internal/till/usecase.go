package till

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/till/dto"
	"github.com/shopspring/decimal"
)

// UseCase drives the single till: the cart and, once opened, its checkout.
type UseCase interface {
	AddToCart(ctx context.Context, productID string) (*dto.CartView, error)
	RemoveFromCart(ctx context.Context, productID string) (*dto.CartView, error)
	ClearCart(ctx context.Context) (*dto.CartView, error)
	Cart(ctx context.Context) (*dto.CartView, error)

	OpenCheckout(ctx context.Context) (*dto.CheckoutView, error)
	Checkout(ctx context.Context) (*dto.CheckoutView, error)
	Tender(ctx context.Context, amount decimal.Decimal) (*dto.CheckoutView, error)
	SetTip(ctx context.Context, amount decimal.Decimal) (*dto.CheckoutView, error)
	SetRoundUp(ctx context.Context, on bool) (*dto.CheckoutView, error)
	ResetPayment(ctx context.Context) (*dto.CheckoutView, error)
	CancelCheckout(ctx context.Context) (*dto.CheckoutView, error)
	CompleteCheckout(ctx context.Context) (*dto.Receipt, error)
}
