// Package agent implements the per-agent earnings report over completed
// transactions. Its split math deliberately differs from the completion
// allocation: earnings are recomputed 50/50 from the stored commission
// amount and never read persisted shares.
package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/commission"
	"github.com/MrJamesThe3rd/realty/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=agent

// EarningsRow is the slice of a completed transaction the earnings query
// needs.
type EarningsRow struct {
	ID               uuid.UUID
	CommissionAmount int64 // minor units
	ListingAgentID   uuid.UUID
	SellingAgentID   uuid.UUID
	Currency         string
	CreatedAt        time.Time
}

type ListCompletedParams struct {
	AgentID uuid.UUID
	From    *time.Time // inclusive
	To      *time.Time // inclusive
}

type Repository interface {
	// ListCompletedByAgent returns COMPLETED transactions where the agent
	// is the listing or selling party, newest first.
	ListCompletedByAgent(ctx context.Context, params ListCompletedParams) ([]EarningsRow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EarningsItem is one completed transaction's contribution to an agent's
// earnings.
type EarningsItem struct {
	TransactionID   uuid.UUID
	Role            commission.Role
	EarnedMinor     int64
	EarnedMajor     float64
	EarnedFormatted string
	CreatedAt       time.Time
}

type EarningsReport struct {
	AgentID        uuid.UUID
	From           *time.Time
	To             *time.Time
	Currency       string
	TotalMinor     int64
	TotalMajor     float64
	TotalFormatted string
	ByTransaction  []EarningsItem
}

// Earnings sums the agent's take across their completed transactions,
// optionally bounded by an inclusive creation-date range.
func (s *Service) Earnings(ctx context.Context, agentID uuid.UUID, from, to *time.Time) (*EarningsReport, error) {
	rows, err := s.repo.ListCompletedByAgent(ctx, ListCompletedParams{AgentID: agentID, From: from, To: to})
	if err != nil {
		return nil, err
	}

	currency := "TRY"
	if len(rows) > 0 {
		currency = rows[0].Currency
	}

	var totalMinor int64

	items := make([]EarningsItem, len(rows))

	for i, row := range rows {
		role := roleFor(row, agentID)
		earned := commission.EarningsSplit(row.CommissionAmount, role)
		totalMinor += earned

		items[i] = EarningsItem{
			TransactionID:   row.ID,
			Role:            role,
			EarnedMinor:     earned,
			EarnedMajor:     money.MinorToMajor(earned),
			EarnedFormatted: money.Format(earned, row.Currency),
			CreatedAt:       row.CreatedAt,
		}
	}

	return &EarningsReport{
		AgentID:        agentID,
		From:           from,
		To:             to,
		Currency:       currency,
		TotalMinor:     totalMinor,
		TotalMajor:     money.MinorToMajor(totalMinor),
		TotalFormatted: money.Format(totalMinor, currency),
		ByTransaction:  items,
	}, nil
}

func roleFor(row EarningsRow, agentID uuid.UUID) commission.Role {
	switch {
	case row.ListingAgentID == row.SellingAgentID && row.ListingAgentID == agentID:
		return commission.RoleSolo
	case row.ListingAgentID == agentID:
		return commission.RoleListing
	case row.SellingAgentID == agentID:
		return commission.RoleSelling
	}

	return commission.RoleOther
}
