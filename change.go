package coins

import "fmt"

// Change finds coins in w whose values add up exactly to target.
// Larger coins are tried first, and the first combination found is returned.
// With an unbounded supply of every coin of the catalog this is also
// the combination with the fewest coins.
// The wallet is not changed, see [Wallet.ChangeBack] for moving the coins.
//
// Change returns false if no exact combination exists.
// A zero target is always satisfied by an empty wallet.
//
// Change returns an error if:
//   - target is in a different currency ([ErrCurrencyMismatch]);
//   - target has more digits after the decimal point than its currency ([ErrPrecision]).
func (w *Wallet) Change(target PositiveMoney) (*Wallet, bool, error) {
	if target.Curr() != w.curr {
		return nil, false, fmt.Errorf("computing change of %v from %v wallet: %w", target, w.curr, ErrCurrencyMismatch)
	}
	units, err := target.MinorUnits()
	if err != nil {
		return nil, false, fmt.Errorf("computing change of %v: %w", target, err)
	}
	accumulated := NewEmptyWallet(w.curr)
	if units == 0 {
		return accumulated, true, nil
	}
	available := w.Clone()
	for _, c := range available.Coins() {
		if searchChange(available, accumulated, units, c) {
			return accumulated, true, nil
		}
	}
	return nil, false, nil
}

// ChangeBack moves coins with the exact value of target from w to dst,
// and returns the moved coins as a new wallet.
// The coins are chosen by [Wallet.Change].
//
// ChangeBack returns false if no exact combination exists, in which case
// neither wallet is changed.
//
// ChangeBack returns an error if target or dst are in a different currency,
// or if target is not representable in minor units.
func (w *Wallet) ChangeBack(dst *Wallet, target PositiveMoney) (*Wallet, bool, error) {
	if dst.curr != w.curr {
		return nil, false, fmt.Errorf("giving change from %v to %v wallet: %w", w.curr, dst.curr, ErrCurrencyMismatch)
	}
	change, ok, err := w.Change(target)
	if err != nil || !ok {
		return nil, false, err
	}
	for _, c := range change.Coins() {
		for q := change.coins[c]; q > 0; q-- {
			if _, err := w.TransferOneCoin(dst, c); err != nil {
				return nil, false, fmt.Errorf("giving change %v: %w", change, err)
			}
		}
	}
	return change, true, nil
}

// searchChange commits one coin c from available to accumulated and then
// searches for the rest of remaining, trying coins not larger than c in
// descending order. On failure the coin is returned to available, so both
// wallets are left as they were.
func searchChange(available, accumulated *Wallet, remaining int64, c Coin) bool {
	units := c.MinorUnits()
	if remaining < units {
		return false
	}
	ok, err := available.TransferOneCoin(accumulated, c)
	if err != nil {
		panic(fmt.Sprintf("searching change: %v", err))
	}
	if !ok {
		return false
	}
	remaining -= units
	if remaining == 0 {
		return true
	}
	for _, next := range available.Coins() {
		if next.MinorUnits() > units {
			continue
		}
		if searchChange(available, accumulated, remaining, next) {
			return true
		}
	}
	if ok, err := accumulated.TransferOneCoin(available, c); !ok || err != nil {
		panic(fmt.Sprintf("searching change: returning %v to available coins failed: %v", c, err))
	}
	return false
}
