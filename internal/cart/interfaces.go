package cart

import "github.com/angelmondragon/shopcart-backend/pkg/types"

// CartRepository defines the storage surface required by the cart service.
type CartRepository interface {
	List() []Line
	Add(product types.Product) (lines int)
	Edit(productID, quantity int) error
	Delete(productID int) (lines int, err error)
}
