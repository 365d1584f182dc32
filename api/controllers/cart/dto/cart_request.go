package cartdto

import (
	"encoding/json"

	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

// AddCartItemRequest is the full product object posted to /cart/add.
// Price stays raw so that a quoted number can be told apart from a JSON number.
type AddCartItemRequest struct {
	ID          *int            `json:"id" validate:"required,min=0,max=4294967295"`
	Title       *string         `json:"title" validate:"required"`
	Price       json.RawMessage `json:"price" validate:"required"`
	Description *string         `json:"description" validate:"required"`
	Category    *string         `json:"category" validate:"required"`
	Image       *string         `json:"image" validate:"required"`
	Rating      *types.Rating   `json:"rating,omitempty"`
}

type EditCartItemRequest struct {
	ProductID *int `json:"product_id" validate:"required,min=0,max=4294967295"`
	Quantity  *int `json:"quantity" validate:"required,min=0,max=4294967295"`
}

type DeleteCartItemRequest struct {
	ProductID *int `json:"product_id" validate:"required,min=0,max=4294967295"`
}
