package cart

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

// Summary aggregates a cart snapshot. Items is int64 so that lines at the
// quantity ceiling still sum without wrapping.
type Summary struct {
	Lines int         `json:"lines"`
	Items int64       `json:"items"`
	Total types.Price `json:"total"`
}

// Summarize totals price times quantity over lines.
func Summarize(lines []Line) Summary {
	total := decimal.Zero
	summary := Summary{Lines: len(lines)}
	for _, line := range lines {
		qty := int64(line.Quantity)
		summary.Items += qty
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(qty)))
	}
	summary.Total = types.NewPrice(total)
	return summary
}
