package machine

import (
	"github.com/govalues/coins"
)

// EventKind identifies what happened in a machine.
type EventKind int

const (
	CoinInserted EventKind = iota + 1
	InsertFailed
	CoinsReleased
	ProductBought
	PurchaseFailed
)

func (k EventKind) String() string {
	switch k {
	case CoinInserted:
		return "coin inserted"
	case InsertFailed:
		return "insert failed"
	case CoinsReleased:
		return "coins released"
	case ProductBought:
		return "product bought"
	case PurchaseFailed:
		return "purchase failed"
	}
	return "unknown event"
}

// Event is passed to the listeners of a machine.
// Coins holds the released coins or the change, depending on Kind.
type Event struct {
	Kind    EventKind
	Coin    coins.Coin
	Product Product
	Coins   *coins.Wallet
	Err     error
}
