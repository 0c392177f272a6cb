package handler

import (
	"bytes"
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/rpc"
	"github.com/fekuna/omnipos-stand-service/internal/stats"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"go.uber.org/zap"
)

type StatsHandler struct {
	uc     stats.UseCase
	logger logger.ZapLogger
}

func NewStatsHandler(uc stats.UseCase, log logger.ZapLogger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StatsHandler) GetStatistics(ctx context.Context, req *StatisticsRequest) (*StatisticsResponse, error) {
	r, err := h.report(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}

	rows := make([]*ProductStat, len(r.PerProduct))
	for i, s := range r.PerProduct {
		rows[i] = &ProductStat{
			ProductId:    s.ProductID,
			ProductName:  s.ProductName,
			Quantity:     s.Quantity,
			TotalRevenue: s.TotalRevenue.StringFixed(2),
		}
	}
	return &StatisticsResponse{
		TotalProducts:   r.TotalProducts,
		TotalRevenue:    r.TotalRevenue.StringFixed(2),
		TotalTips:       r.TotalTips.StringFixed(2),
		OrphanedRevenue: r.OrphanedRevenue.StringFixed(2),
		PerProduct:      rows,
	}, nil
}

func (h *StatsHandler) ExportStatistics(ctx context.Context, req *StatisticsRequest) (*ExportResponse, error) {
	r, err := h.report(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}

	var buf bytes.Buffer
	if err := stats.WriteCSV(&buf, *r); err != nil {
		h.logger.Error("failed to render statistics export", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &ExportResponse{ContentType: "text/csv", Data: buf.String()}, nil
}

func (h *StatsHandler) report(ctx context.Context, req *StatisticsRequest) (*stats.Report, error) {
	by, order := stats.ByRevenue, stats.Descending
	if req.SortBy != "" {
		by = stats.SortBy(req.SortBy)
	}
	if req.SortOrder != "" {
		order = stats.Order(req.SortOrder)
	}
	return h.uc.Report(ctx, by, order)
}
