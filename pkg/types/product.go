package types

import "github.com/shopspring/decimal"

// Price is a decimal amount that travels as a bare JSON number, matching the upstream catalog.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// MustPrice parses value and panics on malformed input; meant for tests and constants.
func MustPrice(value string) Price {
	return Price{Decimal: decimal.RequireFromString(value)}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// Product is a catalog entry as served by the upstream catalog.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       Price   `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
