package coins

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// Sign is the constraint satisfied by the sign refinements of amounts and
// monetary values. The set of refinements is closed:
//
//   - [AnySign] admits every value;
//   - [NonNegative] admits values greater than or equal to zero;
//   - [NonPositive] admits values less than or equal to zero.
//
// Zero is admitted by every refinement.
type Sign interface {
	AnySign | NonNegative | NonPositive
	admits(d decimal.Decimal) bool
	String() string
}

// AnySign refines nothing: every value is admitted.
type AnySign struct{}

func (AnySign) admits(decimal.Decimal) bool { return true }

func (AnySign) String() string { return "signed" }

// NonNegative admits zero and positive values.
type NonNegative struct{}

func (NonNegative) admits(d decimal.Decimal) bool { return !d.IsNeg() }

func (NonNegative) String() string { return "positive" }

// NonPositive admits zero and negative values.
type NonPositive struct{}

func (NonPositive) admits(d decimal.Decimal) bool { return !d.IsPos() }

func (NonPositive) String() string { return "negative" }

// SignedAmount type represents a decimal amount without a currency,
// refined by the sign S.
// A SignedAmount can only be obtained through a constructor or a checked
// conversion, so its value always satisfies S.
// Its zero value is 0, which satisfies every refinement.
// SignedAmount is designed to be safe for concurrent use by multiple goroutines.
type SignedAmount[S Sign] struct {
	value decimal.Decimal
}

type (
	// Amount is an amount of any sign.
	Amount = SignedAmount[AnySign]
	// PositiveAmount is an amount greater than or equal to zero.
	PositiveAmount = SignedAmount[NonNegative]
	// NegativeAmount is an amount less than or equal to zero.
	NegativeAmount = SignedAmount[NonPositive]
)

// NewSignedAmount returns an amount with the refinement S.
//
// NewSignedAmount returns an error wrapping [ErrSign] if the value
// is not admitted by S.
func NewSignedAmount[S Sign](d decimal.Decimal) (SignedAmount[S], error) {
	var s S
	if !s.admits(d) {
		return SignedAmount[S]{}, fmt.Errorf("%v is not %v: %w", d, s, ErrSign)
	}
	return SignedAmount[S]{value: d}, nil
}

// NewAmount returns an amount equal to d.
// NewAmount always succeeds.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// NewPositiveAmount returns a positive amount equal to d.
//
// NewPositiveAmount returns an error wrapping [ErrSign] if d < 0.
func NewPositiveAmount(d decimal.Decimal) (PositiveAmount, error) {
	return NewSignedAmount[NonNegative](d)
}

// NewNegativeAmount returns a negative amount equal to d.
//
// NewNegativeAmount returns an error wrapping [ErrSign] if d > 0.
func NewNegativeAmount(d decimal.Decimal) (NegativeAmount, error) {
	return NewSignedAmount[NonPositive](d)
}

// NewAmountFromCents returns an amount equal to the given number of
// cents, e.g. 115 cents is 1.15.
// See also method [SignedAmount.Cents].
func NewAmountFromCents(cents int64) Amount {
	return Amount{value: decimal.MustNew(cents, 2)}
}

func parseSignedAmount[S Sign](s string) (SignedAmount[S], error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return SignedAmount[S]{}, fmt.Errorf("parsing amount: %w", err)
	}
	a, err := NewSignedAmount[S](d)
	if err != nil {
		return SignedAmount[S]{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// ParseAmount converts a decimal string to an amount.
// See also constructor [decimal.Parse].
func ParseAmount(s string) (Amount, error) {
	return parseSignedAmount[AnySign](s)
}

// ParsePositiveAmount is like [ParseAmount] but also fails with [ErrSign]
// if the amount is less than zero.
func ParsePositiveAmount(s string) (PositiveAmount, error) {
	return parseSignedAmount[NonNegative](s)
}

// ParseNegativeAmount is like [ParseAmount] but also fails with [ErrSign]
// if the amount is greater than zero.
func ParseNegativeAmount(s string) (NegativeAmount, error) {
	return parseSignedAmount[NonPositive](s)
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// MustParsePositiveAmount is like [ParsePositiveAmount] but panics on failure.
func MustParsePositiveAmount(s string) PositiveAmount {
	a, err := ParsePositiveAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParsePositiveAmount(%q) failed: %v", s, err))
	}
	return a
}

// MustParseNegativeAmount is like [ParseNegativeAmount] but panics on failure.
func MustParseNegativeAmount(s string) NegativeAmount {
	a, err := ParseNegativeAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNegativeAmount(%q) failed: %v", s, err))
	}
	return a
}

// Refine converts an amount to the refinement T.
// It is the checked conversion between refinements, for example:
//
//	p, err := Refine[NonNegative](a)
//
// Refine returns an error wrapping [ErrSign] if the amount is not admitted by T.
// See also methods [SignedAmount.AssumePositive] and [SignedAmount.AssumeNegative].
func Refine[T, S Sign](a SignedAmount[S]) (SignedAmount[T], error) {
	return NewSignedAmount[T](a.value)
}

// Decimal returns the decimal representation of the amount.
func (a SignedAmount[S]) Decimal() decimal.Decimal {
	return a.value
}

// Amount widens the amount to an unrefined [Amount].
// This conversion always succeeds.
func (a SignedAmount[S]) Amount() Amount {
	return Amount{value: a.value}
}

// AssumePositive converts the amount to a [PositiveAmount].
//
// AssumePositive returns an error wrapping [ErrSign] if the amount is less than zero.
func (a SignedAmount[S]) AssumePositive() (PositiveAmount, error) {
	return Refine[NonNegative](a)
}

// AssumeNegative converts the amount to a [NegativeAmount].
//
// AssumeNegative returns an error wrapping [ErrSign] if the amount is greater than zero.
func (a SignedAmount[S]) AssumeNegative() (NegativeAmount, error) {
	return Refine[NonPositive](a)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a SignedAmount[S]) Sign() int {
	return a.value.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a SignedAmount[S]) IsZero() bool {
	return a.value.IsZero()
}

// IsPositive returns:
//
//	true  if a >= 0
//	false otherwise
//
// Zero is considered positive, as it is admitted by [PositiveAmount].
func (a SignedAmount[S]) IsPositive() bool {
	return !a.value.IsNeg()
}

// IsNegative returns:
//
//	true  if a <= 0
//	false otherwise
//
// Zero is considered negative, as it is admitted by [NegativeAmount].
func (a SignedAmount[S]) IsNegative() bool {
	return !a.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (a SignedAmount[S]) Abs() PositiveAmount {
	return PositiveAmount{value: a.value.Abs()}
}

// Neg returns an amount with the opposite sign.
func (a SignedAmount[S]) Neg() Amount {
	return Amount{value: a.value.Neg()}
}

// Scale returns the number of digits after the decimal point.
func (a SignedAmount[S]) Scale() int {
	return a.value.Scale()
}

// Add returns the (possibly rounded) sum of amounts a and b.
// The sum is unrefined, use [Refine] to assert its sign.
//
// Add returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (a SignedAmount[S]) Add(b Amount) (Amount, error) {
	d, err := a.value.Add(b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return Amount{value: d}, nil
}

// Sub returns the (possibly rounded) difference between amounts a and b.
// The difference is unrefined, use [Refine] to assert its sign.
//
// Sub returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (a SignedAmount[S]) Sub(b Amount) (Amount, error) {
	d, err := a.value.Sub(b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return Amount{value: d}, nil
}

// Mul returns the (possibly rounded) product of amounts a and b.
// The product is unrefined, use [Refine] to assert its sign.
//
// Mul returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (a SignedAmount[S]) Mul(b Amount) (Amount, error) {
	d, err := a.value.Mul(b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return Amount{value: d}, nil
}

// Quo returns the (possibly rounded) quotient of amounts a and b.
// The quotient is unrefined, use [Refine] to assert its sign.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (a SignedAmount[S]) Quo(b Amount) (Amount, error) {
	d, err := a.value.Quo(b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return Amount{value: d}, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Trailing zeros are ignored, 1.5 and 1.50 are equal.
func (a SignedAmount[S]) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// Equal returns true if amounts are numerically equal.
func (a SignedAmount[S]) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half away from zero].
// Rounding never changes the sign of an amount, so the refinement is kept.
// See also method [SignedAmount.RoundToCents].
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a SignedAmount[S]) Round(scale int) SignedAmount[S] {
	return SignedAmount[S]{value: roundHalfAway(a.value, scale)}
}

// RoundToCents returns an amount rounded to 2 digits after the decimal point
// using rounding half away from zero.
func (a SignedAmount[S]) RoundToCents() SignedAmount[S] {
	return a.Round(2)
}

// Cents returns the amount as a whole number of cents, e.g. 1.15 is 115 cents.
// See also constructor [NewAmountFromCents].
//
// Cents returns an error wrapping [ErrPrecision] if the amount has
// more than 2 significant digits after the decimal point.
func (a SignedAmount[S]) Cents() (int64, error) {
	return minorUnits(a.value, 2)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a SignedAmount[S]) String() string {
	return a.value.String()
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a SignedAmount[S]) MarshalText() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The refinement is checked, so a negative text cannot be unmarshaled
// into a [PositiveAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *SignedAmount[S]) UnmarshalText(text []byte) error {
	b, err := parseSignedAmount[S](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", *a, err)
	}
	*a = b
	return nil
}

// roundHalfAway rounds d to the scale, with ties rounded away from zero.
func roundHalfAway(d decimal.Decimal, scale int) decimal.Decimal {
	scale = max(scale, 0)
	if d.Scale() <= scale {
		return d
	}
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		panic(fmt.Sprintf("rounding %v: %v", d, err))
	}
	// d.Scale() > scale, so scale+1 is a valid scale
	half := decimal.MustNew(5, scale+1)
	if r.Abs().Cmp(half) < 0 {
		return t
	}
	ulp := decimal.MustNew(1, scale)
	if d.IsNeg() {
		ulp = ulp.Neg()
	}
	t, err = t.Add(ulp)
	if err != nil {
		panic(fmt.Sprintf("rounding %v: %v", d, err))
	}
	return t
}

// minorUnits converts d to an integer number of units of 10^-scale.
func minorUnits(d decimal.Decimal, scale int) (int64, error) {
	if d.MinScale() > scale {
		return 0, fmt.Errorf("converting %v to units with scale %v: %w", d, scale, ErrPrecision)
	}
	d = d.Rescale(scale)
	if d.Scale() != scale {
		return 0, fmt.Errorf("converting %v to units with scale %v: %w", d, scale, errAmountOverflow)
	}
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, fmt.Errorf("converting %v to units with scale %v: %w", d, scale, errAmountOverflow)
		}
		return -int64(u), nil //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("converting %v to units with scale %v: %w", d, scale, errAmountOverflow)
	}
	return int64(u), nil
}
