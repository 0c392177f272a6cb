package handler

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/fekuna/omnipos-stand-service/internal/payment"
	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"github.com/fekuna/omnipos-stand-service/internal/till"
	"github.com/fekuna/omnipos-stand-service/internal/till/dto"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

type TillHandler struct {
	uc     till.UseCase
	logger logger.ZapLogger
}

func NewTillHandler(uc till.UseCase, log logger.ZapLogger) *TillHandler {
	return &TillHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TillHandler) AddToCart(ctx context.Context, req *CartItemRequest) (*CartResponse, error) {
	return cartResponse(h.uc.AddToCart(ctx, req.ProductId))
}

func (h *TillHandler) RemoveFromCart(ctx context.Context, req *CartItemRequest) (*CartResponse, error) {
	return cartResponse(h.uc.RemoveFromCart(ctx, req.ProductId))
}

func (h *TillHandler) ClearCart(ctx context.Context, _ *emptypb.Empty) (*CartResponse, error) {
	return cartResponse(h.uc.ClearCart(ctx))
}

func (h *TillHandler) GetCart(ctx context.Context, _ *emptypb.Empty) (*CartResponse, error) {
	return cartResponse(h.uc.Cart(ctx))
}

func (h *TillHandler) OpenCheckout(ctx context.Context, _ *emptypb.Empty) (*CheckoutResponse, error) {
	return checkoutResponse(h.uc.OpenCheckout(ctx))
}

func (h *TillHandler) GetCheckout(ctx context.Context, _ *emptypb.Empty) (*CheckoutResponse, error) {
	return checkoutResponse(h.uc.Checkout(ctx))
}

func (h *TillHandler) Tender(ctx context.Context, req *AmountRequest) (*CheckoutResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return checkoutResponse(h.uc.Tender(ctx, amount))
}

func (h *TillHandler) SetTip(ctx context.Context, req *AmountRequest) (*CheckoutResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return checkoutResponse(h.uc.SetTip(ctx, amount))
}

func (h *TillHandler) SetRoundUp(ctx context.Context, req *RoundUpRequest) (*CheckoutResponse, error) {
	return checkoutResponse(h.uc.SetRoundUp(ctx, req.Enabled))
}

func (h *TillHandler) ResetPayment(ctx context.Context, _ *emptypb.Empty) (*CheckoutResponse, error) {
	return checkoutResponse(h.uc.ResetPayment(ctx))
}

func (h *TillHandler) CancelCheckout(ctx context.Context, _ *emptypb.Empty) (*CheckoutResponse, error) {
	return checkoutResponse(h.uc.CancelCheckout(ctx))
}

func (h *TillHandler) CompleteCheckout(ctx context.Context, _ *emptypb.Empty) (*CompleteCheckoutResponse, error) {
	receipt, err := h.uc.CompleteCheckout(ctx)
	if err != nil {
		h.logger.Warn("checkout not completed", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &CompleteCheckoutResponse{
		Subtotal:   receipt.Subtotal.StringFixed(2),
		Tip:        receipt.Tip.StringFixed(2),
		FinalTotal: receipt.FinalTotal.StringFixed(2),
		Received:   receipt.Received.StringFixed(2),
		Change:     receipt.Change.StringFixed(2),
		Timestamp:  receipt.Timestamp.Format(time.RFC3339Nano),
		Lines:      len(receipt.Records),
	}, nil
}

func (h *TillHandler) ListDenominations(_ context.Context, _ *emptypb.Empty) (*ListDenominationsResponse, error) {
	all := payment.Denominations()
	out := make([]*Denomination, len(all))
	for i, den := range all {
		out[i] = &Denomination{
			Value: den.Value.StringFixed(2),
			Kind:  string(den.Kind),
			Label: den.Label,
		}
	}
	return &ListDenominationsResponse{Denominations: out}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperror.Validation("amount %q is not a number", s)
	}
	return amount, nil
}

func cartResponse(v *dto.CartView, err error) (*CartResponse, error) {
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	lines := make([]*CartLine, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &CartLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Subtotal:  l.Subtotal().StringFixed(2),
		}
	}
	return &CartResponse{
		Lines:     lines,
		Subtotal:  v.Subtotal.StringFixed(2),
		ItemCount: v.ItemCount,
	}, nil
}

func checkoutResponse(v *dto.CheckoutView, err error) (*CheckoutResponse, error) {
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &CheckoutResponse{
		State:       v.State.String(),
		Subtotal:    v.Subtotal.StringFixed(2),
		Tip:         v.Tip.StringFixed(2),
		RoundUp:     v.RoundUp,
		FinalTotal:  v.FinalTotal.StringFixed(2),
		Received:    v.Received.StringFixed(2),
		Change:      v.Change.StringFixed(2),
		Deficit:     v.Deficit.StringFixed(2),
		CanComplete: v.CanComplete,
	}, nil
}
