package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/fekuna/omnipos-stand-service/internal/ledger"
	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ledgerUseCase struct {
	mu      sync.Mutex
	repo    ledger.Repository
	catalog product.Repository
	now     func() time.Time
	logger  logger.ZapLogger
}

// NewLedgerUseCase needs the catalog repository only for ResetAll.
func NewLedgerUseCase(repo ledger.Repository, catalog product.Repository, log logger.ZapLogger) ledger.UseCase {
	return &ledgerUseCase{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
		logger:  log,
	}
}

func (uc *ledgerUseCase) RecordSale(ctx context.Context, lines []model.CartLine, tip decimal.Decimal) ([]model.TransactionRecord, error) {
	if len(lines) == 0 {
		return nil, apperror.Validation("nothing to record")
	}
	if tip.IsNegative() {
		return nil, apperror.Validation("tip must not be negative, got %s", tip)
	}
	if !tip.Equal(tip.Round(2)) {
		return nil, apperror.Validation("tip %s has more than two decimal places", tip)
	}

	shares := ledger.AllocateTip(lines, tip)
	ts := uc.now().UTC()
	sale := make([]model.TransactionRecord, len(lines))
	booked := decimal.Zero
	for i, l := range lines {
		sale[i] = model.TransactionRecord{
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TipShare:    shares[i],
			Timestamp:   ts,
		}
		booked = booked.Add(sale[i].BalanceEffect())
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	records, err := uc.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := uc.repo.LoadCashBalance(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveTransactions(ctx, append(slices.Clip(records), sale...)); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveCashBalance(ctx, balance.Add(booked)); err != nil {
		uc.restoreTransactions(ctx, records)
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.Int("lines", len(sale)),
		zap.String("booked", booked.StringFixed(2)),
		zap.Time("timestamp", ts))
	return sale, nil
}

func (uc *ledgerUseCase) DeleteRecord(ctx context.Context, productID string, timestamp time.Time) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	records, err := uc.repo.LoadTransactions(ctx)
	if err != nil {
		return false, err
	}
	i := -1
	for j := range records {
		if records[j].Matches(productID, timestamp) {
			i = j
			break
		}
	}
	if i < 0 {
		uc.logger.Debug("no transaction to delete",
			zap.String("product_id", productID),
			zap.Time("timestamp", timestamp))
		return false, nil
	}
	removed := records[i]

	balance, err := uc.repo.LoadCashBalance(ctx)
	if err != nil {
		return false, err
	}
	if err := uc.repo.SaveTransactions(ctx, slices.Delete(slices.Clone(records), i, i+1)); err != nil {
		return false, err
	}
	if err := uc.repo.SaveCashBalance(ctx, balance.Sub(removed.BalanceEffect())); err != nil {
		uc.restoreTransactions(ctx, records)
		return false, err
	}

	uc.logger.Info("transaction deleted",
		zap.String("product_id", productID),
		zap.Time("timestamp", timestamp),
		zap.String("reversed", removed.BalanceEffect().StringFixed(2)))
	return true, nil
}

func (uc *ledgerUseCase) ListAll(ctx context.Context) ([]model.TransactionRecord, error) {
	return uc.repo.LoadTransactions(ctx)
}

func (uc *ledgerUseCase) Balance(ctx context.Context) (decimal.Decimal, error) {
	return uc.repo.LoadCashBalance(ctx)
}

func (uc *ledgerUseCase) ResetBalance(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.SaveCashBalance(ctx, decimal.Zero); err != nil {
		return err
	}
	uc.logger.Info("cash balance reset")
	return nil
}

// ResetAll wipes transactions, catalog and balance. It cannot be undone, so
// callers must pass confirm.
func (uc *ledgerUseCase) ResetAll(ctx context.Context, confirm bool) error {
	if !confirm {
		return apperror.Validation("reset requires confirmation")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	records, err := uc.repo.LoadTransactions(ctx)
	if err != nil {
		return err
	}
	products, err := uc.catalog.LoadProducts(ctx)
	if err != nil {
		return err
	}

	if err := uc.repo.SaveTransactions(ctx, nil); err != nil {
		return err
	}
	if err := uc.catalog.SaveProducts(ctx, nil); err != nil {
		uc.restoreTransactions(ctx, records)
		return err
	}
	if err := uc.repo.SaveCashBalance(ctx, decimal.Zero); err != nil {
		uc.restoreTransactions(ctx, records)
		if rerr := uc.catalog.SaveProducts(ctx, products); rerr != nil {
			uc.logger.Error("failed to restore catalog", zap.Error(rerr))
		}
		return err
	}

	uc.logger.Warn("all stand data reset")
	return nil
}

// restoreTransactions puts back the snapshot taken before a multi-key write
// whose later step failed.
func (uc *ledgerUseCase) restoreTransactions(ctx context.Context, records []model.TransactionRecord) {
	if err := uc.repo.SaveTransactions(ctx, records); err != nil {
		uc.logger.Error("failed to restore transactions", zap.Error(err), zap.Int("records", len(records)))
	}
}
