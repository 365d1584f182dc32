package cart

import (
	"sync"

	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

// NotFoundMessage is reported when edit or delete targets an id that is not in the cart.
const NotFoundMessage = "Product not found in cart"

// ErrNotFound is returned by Edit and Delete for absent product ids.
var ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, NotFoundMessage)

// Line pairs a product snapshot with its quantity.
type Line struct {
	Product  types.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Store is an in-memory, insertion-ordered cart with at most one line per product id.
// Every operation holds mu for the whole scan, never across I/O.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{lines: []Line{}}
}

// List returns a copy of the current lines in insertion order.
func (s *Store) List() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Add increments the quantity of an existing line or appends a new line with quantity 1.
// The stored product is kept as first added.
func (s *Store) Add(product types.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.lines[i].Quantity++
		return len(s.lines)
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: 1})
	return len(s.lines)
}

// Edit sets the quantity of an existing line. Zero is stored as is.
func (s *Store) Edit(productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return ErrNotFound
	}
	s.lines[i].Quantity = quantity
	return nil
}

// Delete removes the line for productID, keeping the order of the rest.
func (s *Store) Delete(productID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return len(s.lines), ErrNotFound
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return len(s.lines), nil
}

// caller must hold mu
func (s *Store) indexOf(productID int) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
