package stats

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV renders the report for the export collaborator: one row per
// product, then a blank line and the totals.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	rows := [][]string{{"product_id", "product", "quantity", "revenue"}}
	for _, s := range r.PerProduct {
		rows = append(rows, []string{s.ProductID, s.ProductName, strconv.Itoa(s.Quantity), s.TotalRevenue.StringFixed(2)})
	}
	rows = append(rows,
		[]string{},
		[]string{"total_products", strconv.Itoa(r.TotalProducts)},
		[]string{"total_revenue", r.TotalRevenue.StringFixed(2)},
		[]string{"total_tips", r.TotalTips.StringFixed(2)},
		[]string{"orphaned_revenue", r.OrphanedRevenue.StringFixed(2)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
