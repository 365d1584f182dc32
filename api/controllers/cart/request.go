package cart

import (
	"bytes"

	"github.com/shopspring/decimal"

	cartdto "github.com/angelmondragon/shopcart-backend/api/controllers/cart/dto"
	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

func toProduct(payload cartdto.AddCartItemRequest) (types.Product, error) {
	price, err := parsePrice(payload.Price)
	if err != nil {
		return types.Product{}, err
	}
	return types.Product{
		ID:          *payload.ID,
		Title:       *payload.Title,
		Price:       price,
		Description: *payload.Description,
		Category:    *payload.Category,
		Image:       *payload.Image,
		Rating:      payload.Rating,
	}, nil
}

// parsePrice accepts a bare JSON number only; strings and null are rejected.
func parsePrice(raw []byte) (types.Price, error) {
	raw = bytes.TrimSpace(raw)
	invalid := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"price": "must be a number"})
	if len(raw) == 0 || raw[0] == '"' {
		return types.Price{}, invalid
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return types.Price{}, invalid
	}
	return types.NewPrice(d), nil
}
