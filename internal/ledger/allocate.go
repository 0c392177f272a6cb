package ledger

import (
	"sort"

	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AllocateTip splits tip across lines in proportion to each line's subtotal.
// Shares are whole cents and add up to tip rounded to the cent; leftover
// cents go to the largest fractional parts, earlier lines first on ties.
// A zero subtotal gets zero shares.
func AllocateTip(lines []model.CartLine, tip decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(lines))
	for i := range shares {
		shares[i] = decimal.Zero
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal())
	}
	tipCents := tip.Round(2).Mul(hundred)
	if !subtotal.IsPositive() || !tipCents.IsPositive() {
		return shares
	}

	cents := make([]int64, len(lines))
	remainders := make([]decimal.Decimal, len(lines))
	allocated := int64(0)
	for i, l := range lines {
		raw := l.Subtotal().Mul(tipCents).Div(subtotal)
		floor := raw.Floor()
		cents[i] = floor.IntPart()
		remainders[i] = raw.Sub(floor)
		allocated += cents[i]
	}

	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})
	left := tipCents.IntPart() - allocated
	for k := 0; left > 0 && k < len(order); k++ {
		cents[order[k]]++
		left--
	}

	for i, c := range cents {
		shares[i] = decimal.New(c, -2)
	}
	return shares
}
