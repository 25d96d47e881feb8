package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/agent"
	"github.com/MrJamesThe3rd/realty/internal/commission"
	"github.com/MrJamesThe3rd/realty/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.user_id, t.property_id, t.property_type, t.gross_price,
	t.commission_rate, t.commission_amount, t.currency, t.stage,
	t.listing_agent_id, t.selling_agent_id, t.created_at, t.updated_at
`

// scanTransaction reads a transaction row in selectTransactionColumns order.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var propertyType, stage string

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.PropertyID, &propertyType, &tx.GrossPrice,
		&tx.CommissionRate, &tx.CommissionAmount, &tx.Currency, &stage,
		&tx.ListingAgentID, &tx.SellingAgentID, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.PropertyType = commission.PropertyType(propertyType)
	tx.Stage = transaction.Stage(stage)

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (
			user_id, property_id, property_type, gross_price,
			commission_rate, commission_amount, currency, stage,
			listing_agent_id, selling_agent_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.PropertyID,
		tx.PropertyType,
		tx.GrossPrice,
		tx.CommissionRate,
		tx.CommissionAmount,
		tx.Currency,
		tx.Stage,
		tx.ListingAgentID,
		tx.SellingAgentID,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, int, error) {
	where := ""

	var args []any

	if filter.UserID != nil {
		where = " WHERE t.user_id = $1"

		args = append(args, *filter.UserID)
	}

	countQuery := `SELECT COUNT(*) FROM transactions t` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting transactions: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s
		FROM transactions t%s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d`, selectTransactionColumns, where, len(args)+1, len(args)+2)

	args = append(args, filter.Take, filter.Skip)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, total, nil
}

// Both shares of one completion carry the same created_at, so order by the
// serial id to read them back in insert order (listing agent first).
const getSharesQuery = `
	SELECT agent_id, amount_minor
	FROM commission_shares
	WHERE transaction_id = $1
	ORDER BY id ASC
`

func (s *Store) GetShares(ctx context.Context, id uuid.UUID) ([]commission.Share, error) {
	rows, err := s.db.QueryContext(ctx, getSharesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("getting shares: %w", err)
	}
	defer rows.Close()

	var shares []commission.Share

	for rows.Next() {
		var share commission.Share
		if err := rows.Scan(&share.AgentID, &share.AmountMinor); err != nil {
			return nil, fmt.Errorf("scanning share: %w", err)
		}

		shares = append(shares, share)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating share rows: %w", err)
	}

	return shares, nil
}

// completedByAgentQuery builds the earnings query: only COMPLETED
// transactions where the agent is a party, with inclusive creation-date
// bounds appended as given.
func completedByAgentQuery(params agent.ListCompletedParams) (string, []any) {
	query := `
		SELECT t.id, t.commission_amount, t.listing_agent_id, t.selling_agent_id, t.currency, t.created_at
		FROM transactions t
		WHERE t.stage = $1 AND (t.listing_agent_id = $2 OR t.selling_agent_id = $2)
	`

	args := []any{transaction.StageCompleted, params.AgentID}

	if params.From != nil {
		args = append(args, *params.From)
		query += fmt.Sprintf(" AND t.created_at >= $%d", len(args))
	}

	if params.To != nil {
		args = append(args, *params.To)
		query += fmt.Sprintf(" AND t.created_at <= $%d", len(args))
	}

	query += " ORDER BY t.created_at DESC"

	return query, args
}

func (s *Store) ListCompletedByAgent(ctx context.Context, params agent.ListCompletedParams) ([]agent.EarningsRow, error) {
	query, args := completedByAgentQuery(params)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing completed transactions: %w", err)
	}
	defer rows.Close()

	var result []agent.EarningsRow

	for rows.Next() {
		var row agent.EarningsRow
		if err := rows.Scan(
			&row.ID, &row.CommissionAmount, &row.ListingAgentID,
			&row.SellingAgentID, &row.Currency, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning earnings row: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating earnings rows: %w", err)
	}

	return result, nil
}

type advanceTx struct {
	tx      *sql.Tx
	current *transaction.Transaction
}

// BeginAdvance opens a database transaction and locks the row, so a
// concurrent advance on the same id waits here and then reads the stage the
// first one committed. The stage update and share replacement commit
// together; a reader never sees COMPLETED without its shares.
func (s *Store) BeginAdvance(ctx context.Context, id uuid.UUID) (transaction.AdvanceTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning advance tx: %w", err)
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1
		FOR UPDATE`

	current, err := scanTransaction(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		dbTx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("locking transaction: %w", err)
	}

	return &advanceTx{tx: dbTx, current: current}, nil
}

func (atx *advanceTx) Transaction() *transaction.Transaction { return atx.current }
func (atx *advanceTx) Commit() error                         { return atx.tx.Commit() }
func (atx *advanceTx) Rollback() error                       { return atx.tx.Rollback() }

func (atx *advanceTx) UpdateStage(ctx context.Context, stage transaction.Stage) error {
	query := `
		UPDATE transactions
		SET stage = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := atx.tx.ExecContext(ctx, query, stage, atx.current.ID); err != nil {
		return fmt.Errorf("updating stage: %w", err)
	}

	return nil
}

func (atx *advanceTx) ReplaceShares(ctx context.Context, shares []commission.Share) error {
	return replaceShares(ctx, atx.tx, atx.current.ID, shares)
}

func replaceShares(ctx context.Context, tx *sql.Tx, id uuid.UUID, shares []commission.Share) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM commission_shares WHERE transaction_id = $1`, id); err != nil {
		return fmt.Errorf("deleting shares: %w", err)
	}

	query := `
		INSERT INTO commission_shares (transaction_id, agent_id, amount_minor, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	for _, share := range shares {
		if _, err := tx.ExecContext(ctx, query, id, share.AgentID, share.AmountMinor); err != nil {
			return fmt.Errorf("inserting share: %w", err)
		}
	}

	return nil
}
