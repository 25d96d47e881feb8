// Package commission holds the pure commission arithmetic: rate derivation,
// amount computation and the two share-split policies. All amounts are
// integer minor units and every result is exact; no floating point is used
// on any financial path.
package commission

import "fmt"

// PropertyType classifies the property being sold.
type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCommercial  PropertyType = "COMMERCIAL"
	PropertyLand        PropertyType = "LAND"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyResidential, PropertyCommercial, PropertyLand:
		return true
	}

	return false
}

const (
	// DefaultRateBps is the rate applied when a creation request carries no
	// explicit rate. The property-type-derived rate exists as a separate
	// policy and is only used when configured.
	DefaultRateBps = 1000

	// MaxRateBps is 100% expressed in basis points.
	MaxRateBps = 10000

	minRateBps = 50

	// Price tiers for the progressive discount, in minor units.
	discountTierOneMinor = 5_000_000 * 100
	discountTierTwoMinor = 15_000_000 * 100
)

// ValidationError reports an out-of-range value handed to the rule engine.
// Range checks normally happen at the request boundary; the engine still
// guards its own inputs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RateForProperty derives a commission rate in basis points from the
// property type and gross price: 300 bps for commercial, 150 for land,
// 250 otherwise, minus a progressive discount of 25 bps at or above
// 5,000,000 major units and 50 bps at or above 15,000,000, never going
// below 50 bps.
func RateForProperty(propertyType PropertyType, grossPriceMinor int64) int {
	base := 250

	switch propertyType {
	case PropertyCommercial:
		base = 300
	case PropertyLand:
		base = 150
	}

	discount := 0

	switch {
	case grossPriceMinor >= discountTierTwoMinor:
		discount = 50
	case grossPriceMinor >= discountTierOneMinor:
		discount = 25
	}

	return max(base-discount, minRateBps)
}

// Amount computes the commission for a gross price at a given rate:
// round(grossPriceMinor * rateBps / 10000), exact to the minor unit.
func Amount(grossPriceMinor int64, rateBps int) (int64, error) {
	if grossPriceMinor <= 0 {
		return 0, &ValidationError{Field: "grossPrice", Message: "must be a positive integer"}
	}

	if rateBps < 0 || rateBps > MaxRateBps {
		return 0, &ValidationError{Field: "commissionRateBps", Message: "must be between 0 and 10000"}
	}

	return (grossPriceMinor*int64(rateBps) + 5000) / 10000, nil
}
