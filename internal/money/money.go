package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in millimes (1/1000 TND). All arithmetic stays
// in integer minor units; formatting to 3 decimals happens at the boundary.
type Amount int64

const millimesPerDinar = 1000

var ErrInvalidAmount = errors.New("invalid monetary amount")

// FromMillimes wraps a raw minor-unit value.
func FromMillimes(m int64) Amount {
	return Amount(m)
}

// Parse reads a decimal string like "21.000" or "5.5" into millimes.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 3 {
		return 0, ErrInvalidAmount
	}
	// pad fraction to millimes
	frac = frac + strings.Repeat("0", 3-len(frac))

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	var f int64
	if frac != "000" {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
	}

	v := w*millimesPerDinar + f
	if neg {
		v = -v
	}
	return Amount(v), nil
}

// MulQty multiplies a unit price by a quantity.
func (a Amount) MulQty(qty int) Amount {
	return a * Amount(qty)
}

// Millimes returns the raw minor-unit value.
func (a Amount) Millimes() int64 {
	return int64(a)
}

// String formats the amount with exactly 3 decimals, e.g. "21.000".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%03d", sign, v/millimesPerDinar, v%millimesPerDinar)
}

// MarshalJSON encodes the amount as a quoted 3-decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
