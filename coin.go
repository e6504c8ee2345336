package coins

import (
	"fmt"
	"slices"
	"strings"

	"github.com/govalues/decimal"
)

// Coin type represents a denomination that can be held in a [Wallet].
// The catalog is closed: every coin is a constant below, and each constant
// stands for exactly one monetary value, so coins are equal if and only if
// their values are equal.
// The zero value is not a coin.
type Coin uint8

//nolint:revive
const (
	EuroCent1 Coin = iota + 1
	EuroCent2
	EuroCent5
	EuroCent10
	EuroCent20
	EuroCent50
	Euro1
	Euro2
	USCent1
	USCent5
	USCent10
	USCent25
	USDollar1
	Yen1
	Yen5
	Yen10
	Yen50
	Yen100
	Yen500
)

type coinData struct {
	curr  Currency
	units int64 // in minor units of curr
}

var coinTable = [...]coinData{
	EuroCent1:  {EUR, 1},
	EuroCent2:  {EUR, 2},
	EuroCent5:  {EUR, 5},
	EuroCent10: {EUR, 10},
	EuroCent20: {EUR, 20},
	EuroCent50: {EUR, 50},
	Euro1:      {EUR, 100},
	Euro2:      {EUR, 200},
	USCent1:    {USD, 1},
	USCent5:    {USD, 5},
	USCent10:   {USD, 10},
	USCent25:   {USD, 25},
	USDollar1:  {USD, 100},
	Yen1:       {JPY, 1},
	Yen5:       {JPY, 5},
	Yen10:      {JPY, 10},
	Yen50:      {JPY, 50},
	Yen100:     {JPY, 100},
	Yen500:     {JPY, 500},
}

// NewCoin returns the coin with the given value.
//
// NewCoin returns an error wrapping [ErrUnknownCoin] if there is no coin
// with this value in the catalog.
func NewCoin(value PositiveMoney) (Coin, error) {
	units, err := value.MinorUnits()
	if err != nil {
		return 0, fmt.Errorf("coin %v: %w", value, ErrUnknownCoin)
	}
	for c := Coin(1); int(c) < len(coinTable); c++ {
		if coinTable[c].curr == value.Curr() && coinTable[c].units == units {
			return c, nil
		}
	}
	return 0, fmt.Errorf("coin %v: %w", value, ErrUnknownCoin)
}

// ParseCoin converts a string to a coin.
// The input string must contain a currency and an amount separated by
// whitespace, for example:
//
//	EUR 0.50
//	eur 0.5
//	JPY 100
//
// ParseCoin returns an error wrapping [ErrUnknownCoin] if the string is
// well-formed but there is no such coin.
func ParseCoin(s string) (Coin, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("parsing coin %q: want currency and amount", s)
	}
	value, err := ParsePositiveMoney(fields[0], fields[1])
	if err != nil {
		return 0, fmt.Errorf("parsing coin %q: %w", s, err)
	}
	return NewCoin(value)
}

// MustParseCoin is like [ParseCoin] but panics if the string cannot be parsed.
func MustParseCoin(s string) Coin {
	c, err := ParseCoin(s)
	if err != nil {
		panic(fmt.Sprintf("ParseCoin(%q) failed: %v", s, err))
	}
	return c
}

// CoinsOf returns all coins of the currency, in descending order of value.
func CoinsOf(curr Currency) []Coin {
	var list []Coin
	for c := Coin(1); int(c) < len(coinTable); c++ {
		if coinTable[c].curr == curr {
			list = append(list, c)
		}
	}
	sortDesc(list)
	return list
}

// sortDesc sorts coins of the same currency by descending value.
func sortDesc(list []Coin) {
	slices.SortFunc(list, func(a, b Coin) int {
		switch {
		case a.MinorUnits() > b.MinorUnits():
			return -1
		case a.MinorUnits() < b.MinorUnits():
			return 1
		}
		return 0
	})
}

// Valid returns true if the coin is in the catalog.
func (c Coin) Valid() bool {
	return c > 0 && int(c) < len(coinTable)
}

// Curr returns the currency of the coin.
// For an invalid coin Curr returns [XXX].
func (c Coin) Curr() Currency {
	if !c.Valid() {
		return XXX
	}
	return coinTable[c].curr
}

// MinorUnits returns the value of the coin in minor units of its currency,
// e.g. 50 for [EuroCent50].
func (c Coin) MinorUnits() int64 {
	if !c.Valid() {
		return 0
	}
	return coinTable[c].units
}

// Value returns the monetary value of the coin.
func (c Coin) Value() PositiveMoney {
	curr := c.Curr()
	return NewMoney(curr, PositiveAmount{value: decimal.MustNew(c.MinorUnits(), curr.Scale())})
}

// Cmp compares coins by value and returns:
//
//	-1 if c < b
//	 0 if c = b
//	+1 if c > b
//
// Cmp returns an error if the coins are in different currencies.
func (c Coin) Cmp(b Coin) (int, error) {
	return c.Value().Cmp(b.Value().Money())
}

// String method implements the [fmt.Stringer] interface and returns
// the value of the coin, such as "EUR 0.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Coin) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Coin(%d)", uint8(c))
	}
	return c.Value().String()
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Coin) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshaling %v: %w", c, ErrUnknownCoin)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCoin].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Coin) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCoin(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", *c, err)
	}
	return nil
}
