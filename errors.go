package coins

import "errors"

// Validation errors. Operations wrap them with context,
// use [errors.Is] to check for a particular failure.
var (
	// ErrSign is returned when a value violates the sign of a refined
	// amount, such as a negative value for a [PositiveAmount].
	ErrSign = errors.New("sign violation")

	// ErrCurrencyMismatch is returned when an operation combines values
	// or wallets denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrUnknownCurrency is returned when a currency is not in the catalog,
	// or when it cannot be inferred, as for a wallet without coins and
	// without a currency hint.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnboundedTransfer is returned when all coins of a wallet holding
	// an unbounded quantity of some coin are transferred.
	ErrUnboundedTransfer = errors.New("unbounded transfer")

	// ErrPrecision is returned when a value has more digits after the
	// decimal point than its minor unit allows.
	ErrPrecision = errors.New("sub-minor-unit precision")

	// ErrUnknownCoin is returned for a coin that is not in the catalog.
	ErrUnknownCoin = errors.New("unknown coin")

	// ErrInvalidQuantity is returned for a negative (but not unbounded)
	// or oversized coin quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
)
