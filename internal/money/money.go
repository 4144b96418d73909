// Package money provides the fixed-point currency amount used across the API.
//
// Amounts are stored as int64 minor units (scale 100). On the wire they are
// plain decimal numbers in the user's currency; clients may also send strings
// using either a dot or a comma as decimal separator.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of minor units per major unit.
const Scale = 100

const scaleExp = 2

// ErrInvalidAmount is returned when an amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a currency amount in minor units.
type Amount int64

// FromMinor returns an Amount from minor units.
func FromMinor(minor int64) Amount { return Amount(minor) }

// FromMajor returns an Amount from a whole number of major units.
func FromMajor(major int64) Amount { return Amount(major * Scale) }

// Minor returns the amount in minor units.
func (a Amount) Minor() int64 { return int64(a) }

// Decimal returns the amount in major units as a decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -scaleExp)
}

// String formats the amount with two decimals, e.g. "12.50".
func (a Amount) String() string {
	return a.Decimal().StringFixed(scaleExp)
}

// Parse converts a user supplied decimal string to an Amount.
//
// Both "12.34" and "12,34" are accepted. When both separators appear the
// last one is treated as the decimal separator and the other as a thousands
// separator ("1.234,56" and "1,234.56" both yield 1234.56). A separator
// repeated in thousands groups ("1.234.567") is dropped. Values are
// rounded half away from zero to two decimals. Negative values are allowed;
// callers that need positive amounts validate separately.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = normalizeSeparators(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal in major units to an Amount.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Round(scaleExp).Shift(scaleExp)
	if !minor.IsInteger() || minor.Abs().GreaterThan(decimal.New(1<<62, 0)) {
		return 0, ErrInvalidAmount
	}
	return Amount(minor.IntPart()), nil
}

func normalizeSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return stripGroups(s, ",")
		}
		return strings.Replace(s, ",", ".", 1)
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			return stripGroups(s, ".")
		}
	}
	return s
}

// stripGroups removes sep when it splits s into thousands groups, as in
// "1.234.567". Anything else is returned unchanged and fails to parse.
func stripGroups(s, sep string) string {
	parts := strings.Split(s, sep)
	if strings.TrimLeft(parts[0], "+-") == "" {
		return s
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return s
		}
	}
	return strings.Join(parts, "")
}

// MarshalJSON emits the amount as a JSON number in major units.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number or a string with dot or comma separator.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*a = Amount(v)
	case int32:
		*a = Amount(v)
	case float64:
		*a = Amount(int64(v))
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		*a = Amount(d.IntPart())
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		*a = Amount(d.IntPart())
	case nil:
		*a = 0
	default:
		return fmt.Errorf("money: cannot scan %T into Amount", src)
	}
	return nil
}

// Sum adds amounts.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}
