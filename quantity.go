package coins

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is the number of coins of one denomination held in a [Wallet].
// A quantity is either a finite count between 0 and [MaxQuantity],
// or [Unbounded].
type Quantity int64

const (
	// Unbounded means an infinite supply of a coin.
	// An unbounded coin is never depleted by transfers, a wallet holding one
	// has no total value, and its coins cannot be transferred all at once.
	Unbounded Quantity = -1

	// MaxQuantity is the largest finite quantity.
	MaxQuantity Quantity = math.MaxUint32
)

// ParseQuantity converts a string to a quantity.
// The input string must be a non-negative integer, or one of
// "unbounded" and "∞" for an [Unbounded] quantity.
//
// ParseQuantity returns an error wrapping [ErrInvalidQuantity] if the
// integer is negative or greater than [MaxQuantity].
func ParseQuantity(s string) (Quantity, error) {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, "unbounded") || t == "∞" {
		return Unbounded, nil
	}
	n, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing quantity %q: %w", s, err)
	}
	q := Quantity(n)
	if q < 0 || q > MaxQuantity {
		return 0, fmt.Errorf("parsing quantity %q: %w", s, ErrInvalidQuantity)
	}
	return q, nil
}

// IsUnbounded returns true if the quantity is [Unbounded].
func (q Quantity) IsUnbounded() bool {
	return q == Unbounded
}

// Valid returns true if the quantity is either finite and within
// [0, MaxQuantity] or [Unbounded].
func (q Quantity) Valid() bool {
	return q == Unbounded || (q >= 0 && q <= MaxQuantity)
}

// String method implements the [fmt.Stringer] interface.
// Unbounded quantities are represented as "∞".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	if q.IsUnbounded() {
		return "∞"
	}
	return strconv.FormatInt(int64(q), 10)
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Unbounded quantities are marshaled as "unbounded".
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (q Quantity) MarshalText() ([]byte, error) {
	if q.IsUnbounded() {
		return []byte("unbounded"), nil
	}
	return []byte(q.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseQuantity].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (q *Quantity) UnmarshalText(text []byte) error {
	var err error
	*q, err = ParseQuantity(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", *q, err)
	}
	return nil
}
