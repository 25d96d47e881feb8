// Package money holds the minor-unit conversion helpers used at the storage
// and display boundaries. Everything inside the domain packages works on
// int64 minor units; conversions to and from decimal major units never
// happen in commission or allocation logic.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MajorToMinor converts a decimal major-unit amount to integer minor units,
// rounding half away from zero.
func MajorToMinor(major float64) int64 {
	return int64(math.Round(major * 100))
}

// MinorToMajor converts integer minor units to a decimal major-unit amount.
func MinorToMajor(minor int64) float64 {
	return float64(minor) / 100
}

// Format renders a minor-unit amount as a display string for the given
// ISO 4217 currency code, e.g. Format(1050099, "USD") -> "$10,500.99".
// Unknown codes fall back to a plain decimal with the code appended.
func Format(minor int64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", MinorToMajor(minor), code)
	}

	p := message.NewPrinter(language.English)

	return p.Sprintf("%v", currency.Symbol(unit.Amount(MinorToMajor(minor))))
}
