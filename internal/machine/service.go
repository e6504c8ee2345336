package machine

import (
	"context"

	"github.com/govalues/coins"
)

// Service is the customer-facing interface of a vending machine.
type Service interface {
	// InsertCoin moves one coin from the user wallet into the machine.
	InsertCoin(ctx context.Context, user *coins.Wallet, c coins.Coin) error
	// Release gives all inserted coins back to the user.
	Release(ctx context.Context, user *coins.Wallet) (*coins.Wallet, error)
	// Buy sells the product at the given slot and pays out change to the user.
	Buy(ctx context.Context, user *coins.Wallet, x, y int) (Receipt, error)
}

var _ Service = (*Machine)(nil)
