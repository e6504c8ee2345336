package machine

import (
	"fmt"

	"github.com/govalues/coins"
)

// Product is an item sold by a machine.
type Product struct {
	Name  string
	Price coins.PositiveMoney
}

func (p Product) String() string {
	return fmt.Sprintf("%v (%v)", p.Name, p.Price)
}

// ProductStack holds the portions of one product placed behind each
// other in a single slot of the machine.
type ProductStack struct {
	product  Product
	portions uint32
}

// NewProductStack returns a stack with the given number of portions.
func NewProductStack(p Product, portions uint32) *ProductStack {
	return &ProductStack{product: p, portions: portions}
}

// Product returns the product of the stack.
func (s *ProductStack) Product() Product {
	return s.product
}

// Portions returns the number of portions left.
func (s *ProductStack) Portions() uint32 {
	return s.portions
}

// IsEmpty returns true if no portions are left.
func (s *ProductStack) IsEmpty() bool {
	return s.portions == 0
}

// Take removes one portion from the stack.
// Take returns an error wrapping [ErrSoldOut] if the stack is empty.
func (s *ProductStack) Take() error {
	if s.portions == 0 {
		return fmt.Errorf("taking %v: %w", s.product.Name, ErrSoldOut)
	}
	s.portions--
	return nil
}

func (s *ProductStack) String() string {
	return fmt.Sprintf("%v ×%v", s.product, s.portions)
}
