package transaction

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/commission"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the creation parameters and returns one error per invalid
// field. An empty result means the params are acceptable.
func (p CreateParams) Validate() []FieldError {
	var errs []FieldError

	if p.UserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "userId", Message: "is required"})
	}

	if p.PropertyID == "" {
		errs = append(errs, FieldError{Field: "propertyId", Message: "is required"})
	}

	if !p.PropertyType.Valid() {
		errs = append(errs, FieldError{Field: "propertyType", Message: "must be RESIDENTIAL, COMMERCIAL or LAND"})
	}

	if p.GrossPrice <= 0 {
		errs = append(errs, FieldError{Field: "grossPrice", Message: "must be a positive integer of minor units"})
	}

	if p.CommissionRateBps != nil && (*p.CommissionRateBps < 0 || *p.CommissionRateBps > commission.MaxRateBps) {
		errs = append(errs, FieldError{Field: "commissionRateBps", Message: "must be between 0 and 10000"})
	}

	if len(p.Currency) != 3 {
		errs = append(errs, FieldError{Field: "currency", Message: "must be a 3-letter code"})
	}

	if p.ListingAgentID == uuid.Nil {
		errs = append(errs, FieldError{Field: "listingAgentId", Message: "is required"})
	}

	if p.SellingAgentID == uuid.Nil {
		errs = append(errs, FieldError{Field: "sellingAgentId", Message: "is required"})
	}

	return errs
}
