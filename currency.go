package coins

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency accepted by coin wallets.
// The zero value is [XXX], which indicates that the currency is unknown.
//
// Currency is implemented as an integer index into an in-memory array that
// stores properties defined by [ISO 4217], such as code, symbol and scale.
// The catalog is closed: currencies cannot be registered at runtime.
// Two Currency values are equal if and only if their codes are equal,
// so currencies can be compared with the == operator.
//
// When exchanging a currency value with other systems, use the alphabetic
// code returned by the [Currency.Code] method, rather than the integer index.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	EUR
//	eur
//	Eur
//	978
//
// ParseCurr returns an error if the string does not represent a currency from the catalog.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		c, ok = currLookup[strings.ToUpper(strings.TrimSpace(curr))]
	}
	if !ok {
		return XXX, fmt.Errorf("parsing %q: %w", curr, ErrUnknownCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// CurrFromNum returns the currency with the given ISO 4217 numeric code.
func CurrFromNum(num int) (Currency, error) {
	if num < 0 || num > 999 {
		return XXX, fmt.Errorf("numeric code %v: %w", num, ErrUnknownCurrency)
	}
	return ParseCurr(fmt.Sprintf("%03d", num))
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// This method always returns a valid code.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if int(c) >= len(codeLookup) {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217
// standard, including leading zeros (e.g. "036" for AUD).
// See also method [Currency.NumCode].
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if int(c) >= len(numLookup) {
		return numLookup[XXX]
	}
	return numLookup[c]
}

// NumCode returns the ISO 4217 numeric code as an integer.
func (c Currency) NumCode() int {
	n, _ := strconv.Atoi(c.Num())
	return n
}

// Symbol returns the sign commonly used to display amounts in the currency,
// such as "€" or "$". Different currencies may share the same symbol.
func (c Currency) Symbol() string {
	if int(c) >= len(symbolLookup) {
		return symbolLookup[XXX]
	}
	return symbolLookup[c]
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
//   - A scale of 0 indicates currencies without minor units.
//     For example, the [Japanese Yen] does not have minor units.
//   - A scale of 2 indicates currencies that use 2 digits to represent their minor units.
//     For example, the [Euro] represents its minor unit, 1 cent, as 0.01 euros.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [Euro]: https://en.wikipedia.org/wiki/Euro
func (c Currency) Scale() int {
	if int(c) >= len(scaleLookup) {
		return 0
	}
	return int(scaleLookup[c])
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.Code())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | EUR     | Currency        |
//	| %q         | "EUR"   | Quoted currency |
//	| %y         | €       | Currency symbol |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	switch verb {
	case 'c', 'C', 's', 'S', 'v', 'V':
		writePadded(state, c.Code())
	case 'q', 'Q':
		writePadded(state, strconv.Quote(c.Code()))
	case 'y', 'Y':
		writePadded(state, c.Symbol())
	default:
		//nolint:errcheck
		io.WriteString(state, "%!"+string(verb)+"(coins.Currency="+c.Code()+")")
	}
}

// writePadded writes s to the state, honoring the width and the '-' flag.
// Width is measured in runes, so that symbols like "€" are padded correctly.
func writePadded(state fmt.State, s string) {
	n := len([]rune(s))
	w, ok := state.Width()
	if !ok || w <= n {
		//nolint:errcheck
		io.WriteString(state, s)
		return
	}
	spaces := strings.Repeat(" ", w-n)
	if state.Flag('-') {
		s += spaces
	} else {
		s = spaces + s
	}
	//nolint:errcheck
	io.WriteString(state, s)
}
