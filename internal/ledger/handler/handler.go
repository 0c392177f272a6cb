package handler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/fekuna/omnipos-stand-service/internal/ledger"
	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

// UnknownProductLabel names sales whose product is gone and carried no name.
const UnknownProductLabel = "unknown product"

type LedgerHandler struct {
	uc      ledger.UseCase
	catalog product.UseCase
	logger  logger.ZapLogger
}

func NewLedgerHandler(uc ledger.UseCase, catalog product.UseCase, log logger.ZapLogger) *LedgerHandler {
	return &LedgerHandler{
		uc:      uc,
		catalog: catalog,
		logger:  log,
	}
}

func (h *LedgerHandler) ListTransactions(ctx context.Context, _ *emptypb.Empty) (*ListTransactionsResponse, error) {
	records, err := h.uc.ListAll(ctx)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	out := make([]*Transaction, len(records))
	for i, r := range records {
		out[i] = mapTransaction(r, label(r, names))
	}
	return &ListTransactionsResponse{Transactions: out}, nil
}

func (h *LedgerHandler) DeleteTransaction(ctx context.Context, req *DeleteTransactionRequest) (*DeleteTransactionResponse, error) {
	ts, err := time.Parse(time.RFC3339Nano, req.Timestamp)
	if err != nil {
		return nil, rpc.ToStatus(apperror.Validation("timestamp %q is not RFC 3339", req.Timestamp))
	}

	deleted, err := h.uc.DeleteRecord(ctx, req.ProductId, ts)
	if err != nil {
		h.logger.Error("failed to delete transaction", zap.String("product_id", req.ProductId), zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	balance, err := h.uc.Balance(ctx)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &DeleteTransactionResponse{Deleted: deleted, Balance: balance.StringFixed(2)}, nil
}

func (h *LedgerHandler) GetCashBalance(ctx context.Context, _ *emptypb.Empty) (*CashBalanceResponse, error) {
	balance, err := h.uc.Balance(ctx)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &CashBalanceResponse{Balance: balance.StringFixed(2)}, nil
}

func (h *LedgerHandler) ResetCashBalance(ctx context.Context, _ *emptypb.Empty) (*CashBalanceResponse, error) {
	if err := h.uc.ResetBalance(ctx); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &CashBalanceResponse{Balance: "0.00"}, nil
}

func (h *LedgerHandler) ResetAll(ctx context.Context, req *ResetAllRequest) (*emptypb.Empty, error) {
	if err := h.uc.ResetAll(ctx, req.Confirm); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// label prefers the current catalog name, then the name recorded at sale time.
func label(r model.TransactionRecord, names map[string]string) string {
	if name, ok := names[r.ProductID]; ok {
		return name
	}
	if r.ProductName != "" {
		return r.ProductName
	}
	return UnknownProductLabel
}

func mapTransaction(r model.TransactionRecord, name string) *Transaction {
	return &Transaction{
		ProductId:   r.ProductID,
		ProductName: name,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice.StringFixed(2),
		Tip:         r.TipShare.StringFixed(2),
		Total:       r.BalanceEffect().StringFixed(2),
		Timestamp:   r.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
