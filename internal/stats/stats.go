// Package stats aggregates the ledger into per-product totals and KPIs.
package stats

import (
	"sort"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/shopspring/decimal"
)

type SortBy string

const (
	ByQuantity SortBy = "quantity"
	ByRevenue  SortBy = "revenue"
)

type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

type ProductStat struct {
	ProductID    string
	ProductName  string
	Quantity     int
	TotalRevenue decimal.Decimal
}

type Report struct {
	TotalProducts int
	TotalRevenue  decimal.Decimal
	TotalTips     decimal.Decimal
	// OrphanedRevenue is revenue from sales of products no longer in the
	// catalog. It counts towards TotalRevenue but has no PerProduct row.
	OrphanedRevenue decimal.Decimal
	PerProduct      []ProductStat
}

// Compute aggregates records. Per-product rows use the current catalog name
// and appear in the order products were first sold.
func Compute(records []model.TransactionRecord, products []model.Product) Report {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	r := Report{
		TotalRevenue:    decimal.Zero,
		TotalTips:       decimal.Zero,
		OrphanedRevenue: decimal.Zero,
		PerProduct:      []ProductStat{},
	}
	index := map[string]int{}
	for _, rec := range records {
		revenue := rec.Revenue()
		r.TotalProducts += rec.Quantity
		r.TotalRevenue = r.TotalRevenue.Add(revenue)
		r.TotalTips = r.TotalTips.Add(rec.TipShare)

		name, ok := names[rec.ProductID]
		if !ok {
			r.OrphanedRevenue = r.OrphanedRevenue.Add(revenue)
			continue
		}
		i, seen := index[rec.ProductID]
		if !seen {
			i = len(r.PerProduct)
			index[rec.ProductID] = i
			r.PerProduct = append(r.PerProduct, ProductStat{
				ProductID:    rec.ProductID,
				ProductName:  name,
				TotalRevenue: decimal.Zero,
			})
		}
		r.PerProduct[i].Quantity += rec.Quantity
		r.PerProduct[i].TotalRevenue = r.PerProduct[i].TotalRevenue.Add(revenue)
	}
	return r
}

// Sort returns a sorted copy; equal keys keep their relative order.
func Sort(rows []ProductStat, by SortBy, order Order) ([]ProductStat, error) {
	var less func(a, b ProductStat) bool
	switch by {
	case ByQuantity:
		less = func(a, b ProductStat) bool { return a.Quantity < b.Quantity }
	case ByRevenue:
		less = func(a, b ProductStat) bool { return a.TotalRevenue.LessThan(b.TotalRevenue) }
	default:
		return nil, apperror.Validation("unknown sort key %q", by)
	}
	switch order {
	case Ascending:
	case Descending:
		asc := less
		less = func(a, b ProductStat) bool { return asc(b, a) }
	default:
		return nil, apperror.Validation("unknown sort order %q", order)
	}

	out := append([]ProductStat(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}
