package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/commission"
)

// ErrNotFound is returned when no transaction exists for the requested id.
var ErrNotFound = errors.New("transaction not found")

// Stage represents the lifecycle phase of a sales transaction. Stages only
// move forward, one step at a time.
type Stage string

const (
	StageAgreement    Stage = "AGREEMENT"
	StageEarnestMoney Stage = "EARNEST_MONEY"
	StageTitleDeed    Stage = "TITLE_DEED"
	StageCompleted    Stage = "COMPLETED"
)

// Next returns the successor stage. The terminal stage is its own
// successor, so advancing a completed transaction is a no-op rather than
// an error.
func (s Stage) Next() Stage {
	switch s {
	case StageAgreement:
		return StageEarnestMoney
	case StageEarnestMoney:
		return StageTitleDeed
	case StageTitleDeed:
		return StageCompleted
	}

	return StageCompleted
}

func (s Stage) Valid() bool {
	switch s {
	case StageAgreement, StageEarnestMoney, StageTitleDeed, StageCompleted:
		return true
	}

	return false
}

// Terminal reports whether the stage is the end of the lifecycle.
func (s Stage) Terminal() bool {
	return s == StageCompleted
}

// Transaction is the aggregate root for a real-estate sale. Monetary fields
// are integer minor units; the commission amount is computed once at
// creation and never rederived from the rate.
type Transaction struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	PropertyID       string
	PropertyType     commission.PropertyType
	GrossPrice       int64 // minor units
	CommissionRate   int   // basis points
	CommissionAmount int64 // minor units
	Currency         string
	Stage            Stage
	ListingAgentID   uuid.UUID
	SellingAgentID   uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Solo reports whether one agent holds both sides of the deal.
func (t *Transaction) Solo() bool {
	return t.ListingAgentID == t.SellingAgentID
}

// RoleOf labels an agent's participation in the transaction.
func (t *Transaction) RoleOf(agentID uuid.UUID) commission.Role {
	switch {
	case t.Solo() && agentID == t.ListingAgentID:
		return commission.RoleSolo
	case agentID == t.ListingAgentID:
		return commission.RoleListing
	case agentID == t.SellingAgentID:
		return commission.RoleSelling
	}

	return commission.RoleOther
}
