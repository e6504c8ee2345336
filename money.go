package coins

import (
	"fmt"
	"io"
	"strconv"

	"github.com/govalues/decimal"
)

// SignedMoney type represents a monetary value in a specific currency,
// refined by the sign S.
// The amount is padded with trailing zeros to the scale of the currency,
// so EUR 1 is represented as EUR 1.00.
// Its zero value is XXX 0.
// SignedMoney is designed to be safe for concurrent use by multiple goroutines.
type SignedMoney[S Sign] struct {
	curr   Currency
	amount SignedAmount[S]
}

type (
	// Money is a monetary value of any sign.
	Money = SignedMoney[AnySign]
	// PositiveMoney is a monetary value greater than or equal to zero.
	PositiveMoney = SignedMoney[NonNegative]
	// NegativeMoney is a monetary value less than or equal to zero.
	NegativeMoney = SignedMoney[NonPositive]
)

// NewMoney returns a monetary value with the same refinement as the amount.
// NewMoney always succeeds, as the amount has already been checked.
func NewMoney[S Sign](curr Currency, amount SignedAmount[S]) SignedMoney[S] {
	return SignedMoney[S]{
		curr:   curr,
		amount: SignedAmount[S]{value: amount.value.Pad(curr.Scale())},
	}
}

// NewMoneyFromMinorUnits returns a monetary value from a whole number of
// minor units of the currency, e.g. 150 units of EUR is EUR 1.50.
// See also method [SignedMoney.MinorUnits].
func NewMoneyFromMinorUnits(curr Currency, units int64) Money {
	return NewMoney(curr, NewAmount(decimal.MustNew(units, curr.Scale())))
}

func parseSignedMoney[S Sign](curr, amount string) (SignedMoney[S], error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return SignedMoney[S]{}, fmt.Errorf("parsing currency: %w", err)
	}
	a, err := parseSignedAmount[S](amount)
	if err != nil {
		return SignedMoney[S]{}, err
	}
	return NewMoney(c, a), nil
}

// ParseMoney converts currency and decimal strings to a monetary value.
// See also constructors [ParseCurr] and [ParseAmount].
func ParseMoney(curr, amount string) (Money, error) {
	return parseSignedMoney[AnySign](curr, amount)
}

// ParsePositiveMoney is like [ParseMoney] but also fails with [ErrSign]
// if the amount is less than zero.
func ParsePositiveMoney(curr, amount string) (PositiveMoney, error) {
	return parseSignedMoney[NonNegative](curr, amount)
}

// ParseNegativeMoney is like [ParseMoney] but also fails with [ErrSign]
// if the amount is greater than zero.
func ParseNegativeMoney(curr, amount string) (NegativeMoney, error) {
	return parseSignedMoney[NonPositive](curr, amount)
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding monetary values.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// MustParsePositiveMoney is like [ParsePositiveMoney] but panics on failure.
func MustParsePositiveMoney(curr, amount string) PositiveMoney {
	m, err := ParsePositiveMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParsePositiveMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// MustParseNegativeMoney is like [ParseNegativeMoney] but panics on failure.
func MustParseNegativeMoney(curr, amount string) NegativeMoney {
	m, err := ParseNegativeMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseNegativeMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// RefineMoney converts a monetary value to the refinement T.
//
// RefineMoney returns an error wrapping [ErrSign] if the amount is not admitted by T.
func RefineMoney[T, S Sign](m SignedMoney[S]) (SignedMoney[T], error) {
	a, err := Refine[T](m.amount)
	if err != nil {
		return SignedMoney[T]{}, err
	}
	return SignedMoney[T]{curr: m.curr, amount: a}, nil
}

// Sum returns the total of monetary values in the currency curr.
// If curr is [XXX], the currency of the first value is used.
//
// Sum returns an error if:
//   - there are no values and curr is [XXX];
//   - any value is in a different currency;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func Sum(curr Currency, ms ...Money) (Money, error) {
	if curr == XXX {
		if len(ms) == 0 {
			return Money{}, fmt.Errorf("summing empty list: %w", ErrUnknownCurrency)
		}
		curr = ms[0].curr
	}
	total := NewMoney(curr, Amount{})
	for _, m := range ms {
		var err error
		total, err = total.Add(m)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Curr returns the currency of the monetary value.
func (m SignedMoney[S]) Curr() Currency {
	return m.curr
}

// Amount returns the amount of the monetary value, without the currency.
func (m SignedMoney[S]) Amount() SignedAmount[S] {
	return m.amount
}

// Decimal returns the decimal representation of the monetary value.
func (m SignedMoney[S]) Decimal() decimal.Decimal {
	return m.amount.value
}

// Money widens the monetary value to an unrefined [Money].
func (m SignedMoney[S]) Money() Money {
	return Money{curr: m.curr, amount: m.amount.Amount()}
}

// AssumePositive converts the monetary value to a [PositiveMoney].
//
// AssumePositive returns an error wrapping [ErrSign] if the amount is less than zero.
func (m SignedMoney[S]) AssumePositive() (PositiveMoney, error) {
	return RefineMoney[NonNegative](m)
}

// AssumeNegative converts the monetary value to a [NegativeMoney].
//
// AssumeNegative returns an error wrapping [ErrSign] if the amount is greater than zero.
func (m SignedMoney[S]) AssumeNegative() (NegativeMoney, error) {
	return RefineMoney[NonPositive](m)
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m SignedMoney[S]) Sign() int {
	return m.amount.Sign()
}

// IsZero returns true if the amount is 0.
func (m SignedMoney[S]) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is greater than or equal to zero.
func (m SignedMoney[S]) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is less than or equal to zero.
func (m SignedMoney[S]) IsNegative() bool {
	return m.amount.IsNegative()
}

// Abs returns the absolute value of the monetary value.
func (m SignedMoney[S]) Abs() PositiveMoney {
	return PositiveMoney{curr: m.curr, amount: m.amount.Abs()}
}

// Neg returns a monetary value with the opposite sign.
func (m SignedMoney[S]) Neg() Money {
	return Money{curr: m.curr, amount: m.amount.Neg()}
}

// SameCurr returns true if monetary values are denominated in the same currency.
func (m SignedMoney[S]) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Add returns the (possibly rounded) sum of monetary values m and b.
// The sum is unrefined, use [RefineMoney] to assert its sign.
//
// Add returns an error if:
//   - the currencies of the values are different;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (m SignedMoney[S]) Add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrCurrencyMismatch)
	}
	a, err := m.amount.Add(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return NewMoney(m.curr, a), nil
}

// Sub returns the (possibly rounded) difference between monetary values m and b.
// The difference is unrefined, use [RefineMoney] to assert its sign.
//
// Sub returns an error if:
//   - the currencies of the values are different;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (m SignedMoney[S]) Sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrCurrencyMismatch)
	}
	a, err := m.amount.Sub(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return NewMoney(m.curr, a), nil
}

// Mul returns the (possibly rounded) product of monetary values m and b.
// The product is unrefined, use [RefineMoney] to assert its sign.
//
// Mul returns an error if:
//   - the currencies of the values are different;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (m SignedMoney[S]) Mul(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, b, ErrCurrencyMismatch)
	}
	a, err := m.amount.Mul(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, b, err)
	}
	return NewMoney(m.curr, a), nil
}

// Quo returns the (possibly rounded) quotient of monetary values m and b.
// The quotient is unrefined, use [RefineMoney] to assert its sign.
//
// Quo returns an error if:
//   - the currencies of the values are different;
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (m SignedMoney[S]) Quo(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, b, ErrCurrencyMismatch)
	}
	a, err := m.amount.Quo(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return NewMoney(m.curr, a), nil
}

// Cmp compares monetary values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the currencies of the values are different.
func (m SignedMoney[S]) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.amount.Cmp(b.amount), nil
}

// RoundToCurr returns a monetary value rounded to the scale of its currency
// using rounding half away from zero.
// See also method [Currency.Scale].
func (m SignedMoney[S]) RoundToCurr() SignedMoney[S] {
	return NewMoney(m.curr, m.amount.Round(m.curr.Scale()))
}

// RoundToCents returns a monetary value rounded to 2 digits after the
// decimal point using rounding half away from zero.
func (m SignedMoney[S]) RoundToCents() SignedMoney[S] {
	return NewMoney(m.curr, m.amount.RoundToCents())
}

// MinorUnits returns the monetary value as a whole number of minor units
// of its currency, e.g. EUR 1.50 is 150 units.
// See also constructor [NewMoneyFromMinorUnits].
//
// MinorUnits returns an error wrapping [ErrPrecision] if the amount has
// more significant digits after the decimal point than the currency allows.
func (m SignedMoney[S]) MinorUnits() (int64, error) {
	return minorUnits(m.amount.value, m.curr.Scale())
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the monetary value.
// See also method [SignedMoney.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m SignedMoney[S]) String() string {
	return m.curr.Code() + " " + m.amount.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                |
//	| ------ | ---------- | -------------------------- |
//	| %s, %v | EUR 5.67   | Currency and amount        |
//	| %q     | "EUR 5.67" | Quoted currency and amount |
//	| %f     | 5.67       | Amount                     |
//	| %d     | 567        | Amount in minor units      |
//	| %c     | EUR        | Currency                   |
//
// The precision of the %f verb rounds the amount half away from zero.
// The %d verb rounds the amount to the scale of the currency.
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m SignedMoney[S]) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, m.String())
	case 'q', 'Q':
		writePadded(state, strconv.Quote(m.String()))
	case 'c', 'C':
		writePadded(state, m.curr.Code())
	case 'f', 'F':
		d := m.amount.value
		if p, ok := state.Precision(); ok {
			d = roundHalfAway(d, p).Pad(p)
		}
		writePadded(state, d.String())
	case 'd', 'D':
		d := roundHalfAway(m.amount.value, m.curr.Scale())
		units, err := minorUnits(d, m.curr.Scale())
		if err != nil {
			//nolint:errcheck
			io.WriteString(state, "%!d(coins.Money="+m.String()+")")
			return
		}
		writePadded(state, strconv.FormatInt(units, 10))
	default:
		//nolint:errcheck
		io.WriteString(state, "%!"+string(verb)+"(coins.Money="+m.String()+")")
	}
}
