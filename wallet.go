package coins

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Wallet is a ledger of coins of one currency.
// It keeps a quantity for every coin it holds, either finite or [Unbounded].
// A coin whose quantity drops to zero is removed from the wallet.
//
// Wallets are mutated in place and are not safe for concurrent use.
// A wallet must be owned by one caller at a time.
type Wallet struct {
	curr  Currency
	coins map[Coin]Quantity
}

// NewWallet returns a wallet holding the given coins.
// The currency of the wallet is taken from hint, unless it is [XXX], in which
// case it is inferred from the coins.
// The map is copied, and coins with a zero quantity are not kept.
//
// NewWallet returns an error if:
//   - a coin is not in the catalog ([ErrUnknownCoin]);
//   - a quantity is negative but not [Unbounded], or exceeds [MaxQuantity] ([ErrInvalidQuantity]);
//   - the coins are in different currencies, or differ from hint ([ErrCurrencyMismatch]);
//   - there are no coins and hint is [XXX] ([ErrUnknownCurrency]).
func NewWallet(hint Currency, coins map[Coin]Quantity) (*Wallet, error) {
	if int(hint) >= len(codeLookup) {
		return nil, fmt.Errorf("creating wallet: currency %d: %w", hint, ErrUnknownCurrency)
	}
	curr := hint
	for c, q := range coins {
		if !c.Valid() {
			return nil, fmt.Errorf("creating wallet: %v: %w", c, ErrUnknownCoin)
		}
		if !q.Valid() {
			return nil, fmt.Errorf("creating wallet: %v of %v: %w", int64(q), c, ErrInvalidQuantity)
		}
		switch {
		case curr == XXX:
			curr = c.Curr()
		case curr != c.Curr():
			return nil, fmt.Errorf("creating wallet in %v: coin %v: %w", curr, c, ErrCurrencyMismatch)
		}
	}
	if curr == XXX {
		return nil, fmt.Errorf("creating wallet without coins: %w", ErrUnknownCurrency)
	}
	w := NewEmptyWallet(curr)
	for c, q := range coins {
		if q != 0 {
			w.coins[c] = q
		}
	}
	return w, nil
}

// MustNewWallet is like [NewWallet] but panics if the wallet cannot be created.
// It simplifies initialization of wallets in tests and examples.
func MustNewWallet(hint Currency, coins map[Coin]Quantity) *Wallet {
	w, err := NewWallet(hint, coins)
	if err != nil {
		panic(fmt.Sprintf("NewWallet(%v, %v) failed: %v", hint, coins, err))
	}
	return w
}

// NewEmptyWallet returns a wallet without coins in the currency curr.
func NewEmptyWallet(curr Currency) *Wallet {
	return &Wallet{curr: curr, coins: map[Coin]Quantity{}}
}

// Curr returns the currency of the wallet.
func (w *Wallet) Curr() Currency {
	return w.curr
}

// Quantity returns the quantity of the coin in the wallet, 0 if absent.
func (w *Wallet) Quantity(c Coin) Quantity {
	return w.coins[c]
}

// Coins returns the coins held in the wallet in descending order of value.
func (w *Wallet) Coins() []Coin {
	list := make([]Coin, 0, len(w.coins))
	for c := range w.coins {
		list = append(list, c)
	}
	sortDesc(list)
	return list
}

// Len returns the number of distinct coins in the wallet.
func (w *Wallet) Len() int {
	return len(w.coins)
}

// IsEmpty returns true if the wallet holds no coins.
func (w *Wallet) IsEmpty() bool {
	return len(w.coins) == 0
}

// Clone returns an independent copy of the wallet.
func (w *Wallet) Clone() *Wallet {
	v := NewEmptyWallet(w.curr)
	for c, q := range w.coins {
		v.coins[c] = q
	}
	return v
}

// Total returns the total value of the coins in the wallet.
// The total is undefined if any coin is [Unbounded], in which case
// Total returns false.
func (w *Wallet) Total() (PositiveMoney, bool) {
	var units int64
	for c, q := range w.coins {
		if q.IsUnbounded() {
			return PositiveMoney{}, false
		}
		// quantities are at most MaxQuantity and coins at most 500 units,
		// so the sum cannot overflow
		units += int64(q) * c.MinorUnits()
	}
	return NewMoney(w.curr, PositiveAmount{value: decimal.MustNew(units, w.curr.Scale())}), true
}

// TransferOneCoin moves one coin c from w to dst.
// The quantity of an [Unbounded] coin is left unchanged on either side.
//
// TransferOneCoin returns false if w does not hold the coin.
// TransferOneCoin returns an error if the wallets are in different
// currencies, or if the quantity in dst would exceed [MaxQuantity].
func (w *Wallet) TransferOneCoin(dst *Wallet, c Coin) (bool, error) {
	if w.curr != dst.curr {
		return false, fmt.Errorf("transferring %v from %v to %v wallet: %w", c, w.curr, dst.curr, ErrCurrencyMismatch)
	}
	q, ok := w.coins[c]
	if !ok || q == 0 {
		return false, nil
	}
	if d := dst.coins[c]; d == MaxQuantity {
		return false, fmt.Errorf("transferring %v: %v coins: %w", c, d+1, ErrInvalidQuantity)
	}
	switch {
	case q.IsUnbounded():
	case q == 1:
		delete(w.coins, c)
	default:
		w.coins[c] = q - 1
	}
	if d := dst.coins[c]; !d.IsUnbounded() {
		dst.coins[c] = d + 1
	}
	return true, nil
}

// TransferAllCoins moves all coins from w to dst, leaving w empty.
// The preconditions are checked before anything is moved, so on error
// neither wallet is changed.
//
// TransferAllCoins returns an error if:
//   - any coin in w is [Unbounded] ([ErrUnboundedTransfer]);
//   - the wallets are in different currencies ([ErrCurrencyMismatch]);
//   - a quantity in dst would exceed [MaxQuantity] ([ErrInvalidQuantity]).
func (w *Wallet) TransferAllCoins(dst *Wallet) error {
	if w.curr != dst.curr {
		return fmt.Errorf("transferring all coins from %v to %v wallet: %w", w.curr, dst.curr, ErrCurrencyMismatch)
	}
	for c, q := range w.coins {
		if q.IsUnbounded() {
			return fmt.Errorf("transferring all coins: %v: %w", c, ErrUnboundedTransfer)
		}
		if d := dst.coins[c]; !d.IsUnbounded() && d+q > MaxQuantity {
			return fmt.Errorf("transferring all coins: %v coins of %v: %w", d+q, c, ErrInvalidQuantity)
		}
	}
	for _, c := range w.Coins() {
		for q := w.coins[c]; q > 0; q-- {
			if _, err := w.TransferOneCoin(dst, c); err != nil {
				panic(fmt.Sprintf("transferring %v after checks: %v", c, err))
			}
		}
	}
	return nil
}

// String method implements the [fmt.Stringer] interface and returns
// the coins in descending order of value, such as
// "EUR [1.00×2 0.50×1 0.10×∞]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (w *Wallet) String() string {
	var b strings.Builder
	b.WriteString(w.curr.Code())
	b.WriteString(" [")
	for i, c := range w.Coins() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Value().Amount().String())
		b.WriteString("×")
		b.WriteString(w.coins[c].String())
	}
	b.WriteByte(']')
	return b.String()
}
