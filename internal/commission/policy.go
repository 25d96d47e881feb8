package commission

// RatePolicy decides the rate applied when a creation request supplies no
// explicit commission rate. Exactly one policy is selected at wiring time.
type RatePolicy interface {
	Rate(propertyType PropertyType, grossPriceMinor int64) int
}

// FixedRatePolicy always answers a flat rate regardless of the property.
// The production default is DefaultRateBps (10%).
type FixedRatePolicy struct {
	Bps int
}

func (p FixedRatePolicy) Rate(PropertyType, int64) int {
	return p.Bps
}

// DerivedRatePolicy answers the property-type and price based rate from
// RateForProperty.
type DerivedRatePolicy struct{}

func (DerivedRatePolicy) Rate(propertyType PropertyType, grossPriceMinor int64) int {
	return RateForProperty(propertyType, grossPriceMinor)
}

// PolicyFromName maps a configuration value to a rate policy, falling back
// to the fixed default for anything unrecognized.
func PolicyFromName(name string) RatePolicy {
	if name == "derived" {
		return DerivedRatePolicy{}
	}

	return FixedRatePolicy{Bps: DefaultRateBps}
}
