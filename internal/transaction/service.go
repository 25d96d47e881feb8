package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/commission"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, int, error)
	GetShares(ctx context.Context, id uuid.UUID) ([]commission.Share, error)

	// BeginAdvance opens a unit of work holding a row lock on the
	// transaction, so concurrent advances on one id serialize and the stage
	// write commits together with any share replacement.
	BeginAdvance(ctx context.Context, id uuid.UUID) (AdvanceTx, error)
}

type AdvanceTx interface {
	Transaction() *Transaction
	UpdateStage(ctx context.Context, stage Stage) error
	ReplaceShares(ctx context.Context, shares []commission.Share) error
	Commit() error
	Rollback() error
}

// Directory resolves agent ids to display names. Ids with no known user
// are simply absent from the result.
type Directory interface {
	AgentNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type Service struct {
	repo      Repository
	directory Directory
	rates     commission.RatePolicy
}

func NewService(repo Repository, directory Directory, rates commission.RatePolicy) *Service {
	return &Service{repo: repo, directory: directory, rates: rates}
}

type CreateParams struct {
	UserID            uuid.UUID
	PropertyID        string
	PropertyType      commission.PropertyType
	GrossPrice        int64 // minor units
	CommissionRateBps *int
	Currency          string
	ListingAgentID    uuid.UUID
	SellingAgentID    uuid.UUID
}

type ListFilter struct {
	UserID *uuid.UUID
	Skip   int
	Take   int
}

// Create computes the commission once and persists the transaction at the
// AGREEMENT stage. An explicit rate wins; otherwise the configured rate
// policy decides.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	rate := s.rates.Rate(params.PropertyType, params.GrossPrice)
	if params.CommissionRateBps != nil {
		rate = *params.CommissionRateBps
	}

	amount, err := commission.Amount(params.GrossPrice, rate)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		UserID:           params.UserID,
		PropertyID:       params.PropertyID,
		PropertyType:     params.PropertyType,
		GrossPrice:       params.GrossPrice,
		CommissionRate:   rate,
		CommissionAmount: amount,
		Currency:         params.Currency,
		Stage:            StageAgreement,
		ListingAgentID:   params.ListingAgentID,
		SellingAgentID:   params.SellingAgentID,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, int, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// Breakdown is the commission split returned when a transaction completes.
type Breakdown struct {
	Agency int64
	Agents []commission.Share
}

type AdvanceResult struct {
	ID        uuid.UUID
	Stage     Stage
	Breakdown *Breakdown
}

// Advance moves a transaction to its successor stage. Reaching COMPLETED
// allocates the commission from the stored amount and replaces any
// previously stored shares in the same storage transaction as the stage
// write. Advancing at COMPLETED re-persists the same stage and shares,
// which is idempotent.
func (s *Service) Advance(ctx context.Context, id uuid.UUID) (*AdvanceResult, error) {
	atx, err := s.repo.BeginAdvance(ctx, id)
	if err != nil {
		return nil, err
	}
	defer atx.Rollback()

	tx := atx.Transaction()
	next := tx.Stage.Next()

	if err := atx.UpdateStage(ctx, next); err != nil {
		return nil, fmt.Errorf("updating stage: %w", err)
	}

	result := &AdvanceResult{ID: id, Stage: next}

	if next.Terminal() {
		agency, shares := commission.CompletionSplit(tx.CommissionAmount, tx.ListingAgentID, tx.SellingAgentID)
		if err := atx.ReplaceShares(ctx, shares); err != nil {
			return nil, fmt.Errorf("replacing shares: %w", err)
		}

		result.Breakdown = &Breakdown{Agency: agency, Agents: shares}
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("committing advance: %w", err)
	}

	return result, nil
}

// BreakdownAgent is one agent's line in the breakdown view. Name is nil
// when the directory does not know the agent.
type BreakdownAgent struct {
	AgentID     uuid.UUID
	Name        *string
	Role        commission.Role
	AmountMinor int64
}

type BreakdownView struct {
	TransactionID   uuid.UUID
	TotalCommission int64
	Agency          int64
	Currency        string
	Agents          []BreakdownAgent
}

// GetBreakdown returns the commission split for display. Persisted shares
// win; if none exist yet the split is computed on the fly and not stored.
func (s *Service) GetBreakdown(ctx context.Context, id uuid.UUID) (*BreakdownView, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	agency := commission.AgencyPortion(tx.CommissionAmount)

	shares, err := s.repo.GetShares(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading shares: %w", err)
	}

	if len(shares) == 0 {
		_, shares = commission.CompletionSplit(tx.CommissionAmount, tx.ListingAgentID, tx.SellingAgentID)
	}

	ids := make([]uuid.UUID, 0, len(shares))
	seen := make(map[uuid.UUID]struct{}, len(shares))

	for _, sh := range shares {
		if _, ok := seen[sh.AgentID]; ok {
			continue
		}

		seen[sh.AgentID] = struct{}{}
		ids = append(ids, sh.AgentID)
	}

	names, err := s.directory.AgentNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving agent names: %w", err)
	}

	agents := make([]BreakdownAgent, len(shares))
	for i, sh := range shares {
		agent := BreakdownAgent{
			AgentID:     sh.AgentID,
			Role:        tx.RoleOf(sh.AgentID),
			AmountMinor: sh.AmountMinor,
		}

		if name, ok := names[sh.AgentID]; ok {
			agent.Name = &name
		}

		agents[i] = agent
	}

	return &BreakdownView{
		TransactionID:   id,
		TotalCommission: tx.CommissionAmount,
		Agency:          agency,
		Currency:        tx.Currency,
		Agents:          agents,
	}, nil
}
