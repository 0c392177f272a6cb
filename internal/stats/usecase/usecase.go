package usecase

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/ledger"
	"github.com/fekuna/omnipos-stand-service/internal/product"
	"github.com/fekuna/omnipos-stand-service/internal/stats"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"go.uber.org/zap"
)

type statsUseCase struct {
	ledger  ledger.Repository
	catalog product.Repository
	logger  logger.ZapLogger
}

func NewStatsUseCase(transactions ledger.Repository, catalog product.Repository, log logger.ZapLogger) stats.UseCase {
	return &statsUseCase{
		ledger:  transactions,
		catalog: catalog,
		logger:  log,
	}
}

func (uc *statsUseCase) Report(ctx context.Context, by stats.SortBy, order stats.Order) (*stats.Report, error) {
	records, err := uc.ledger.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.catalog.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	report := stats.Compute(records, products)
	report.PerProduct, err = stats.Sort(report.PerProduct, by, order)
	if err != nil {
		return nil, err
	}

	if report.OrphanedRevenue.IsPositive() {
		uc.logger.Debug("statistics skip deleted products",
			zap.String("orphaned_revenue", report.OrphanedRevenue.StringFixed(2)))
	}
	return &report, nil
}
