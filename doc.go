/*
Package coins implements coin wallets and exact change-making for
vending machines.
It combines the [decimal] package's decimal floating-point numbers with a
[Currency] registry, a catalog of physical coins and a ledger of coin counts.

# Features

  - Immutable monetary values, safe for concurrent use by multiple goroutines
  - Sign refinements checked at construction: [Amount], [PositiveAmount], [NegativeAmount]
  - Currency-safe arithmetic and comparison of [Money] values
  - Conversion between monetary values and minor units
  - Wallets holding bounded or unbounded quantities of coins
  - Exact change-making by backtracking search

# Representation

[Currency] is an integer index into in-memory tables containing the code,
numeric code, symbol and scale of each currency.

[SignedAmount] is a [decimal.Decimal] together with a sign refinement.
The refinement is a type parameter, so a [PositiveAmount] can never hold a
negative value and a [NegativeAmount] can never hold a positive one.
Zero is admitted by every refinement.
Arithmetic always returns an unrefined [Amount]; use [SignedAmount.AssumePositive],
[SignedAmount.AssumeNegative] or [Refine] to narrow it again.

[SignedMoney] pairs a [SignedAmount] with a [Currency].
Its amount is padded with trailing zeros to the scale of the currency,
so "EUR 1" is printed as "EUR 1.00".

[Coin] is a closed enumeration of the coins of EUR, USD and JPY.
[Quantity] counts coins of one kind, where [Unbounded] stands for an
inexhaustible supply.

[Wallet] maps coins of a single currency to their quantities.
Coins with zero quantity are never stored.

# Change

[Wallet.Change] searches the coins of a wallet for a combination whose total
equals a target amount.
The search works on minor units, tries larger coins first and backtracks
when a branch cannot reach the target, so it finds a combination whenever
one exists.
[Wallet.ChangeBack] runs the same search and then moves the chosen coins
to another wallet.
Neither wallet is changed if no combination exists.

# Rounding

[SignedAmount.Round], [SignedAmount.RoundToCents] and [SignedMoney.RoundToCurr]
round half away from zero: 0.125 becomes 0.13 and -0.125 becomes -0.13.

# Errors

Constructors and parsers return errors wrapping [ErrSign], [ErrUnknownCurrency],
[ErrUnknownCoin] or [ErrInvalidQuantity].
Operations on values of different currencies fail with [ErrCurrencyMismatch].
Conversions to minor units fail with [ErrPrecision] when a value has more
digits after the decimal point than its currency allows.
Moving unbounded coins fails with [ErrUnboundedTransfer].
The Must* functions panic instead of returning an error.
*/
package coins
