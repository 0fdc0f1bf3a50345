package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/models"
)

// ExpenseRepository handles expense snapshot database operations.
type ExpenseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *sql.DB, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores an expense snapshot.
func (r *ExpenseRepository) Create(ctx context.Context, snapshot *models.ExpenseSnapshot) error {
	fields, err := json.Marshal(snapshot.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal expense fields: %w", err)
	}
	groups, err := json.Marshal(snapshot.GroupSums)
	if err != nil {
		return fmt.Errorf("failed to marshal group sums: %w", err)
	}

	query := `
		INSERT INTO expense_snapshots (
			applicant_name, fields, group_sums, grand_total, grand_total_words, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		snapshot.ApplicantName,
		string(fields),
		string(groups),
		snapshot.GrandTotal.StringFixed(2),
		snapshot.GrandTotalWords,
		snapshot.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create expense snapshot", zap.Error(err))
		return fmt.Errorf("failed to create expense snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	snapshot.ID = id
	return nil
}

// GetByID retrieves an expense snapshot by ID. Returns nil when absent.
func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*models.ExpenseSnapshot, error) {
	query := `
		SELECT id, applicant_name, fields, group_sums, grand_total, grand_total_words, created_at
		FROM expense_snapshots
		WHERE id = ?
	`

	var snapshot models.ExpenseSnapshot
	var fields, groups, total string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.ApplicantName,
		&fields,
		&groups,
		&total,
		&snapshot.GrandTotalWords,
		&snapshot.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get expense snapshot", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get expense snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(fields), &snapshot.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expense fields: %w", err)
	}
	if err := json.Unmarshal([]byte(groups), &snapshot.GroupSums); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group sums: %w", err)
	}
	snapshot.GrandTotal = mustDecimal(total)
	return &snapshot, nil
}

// mustDecimal parses a stored amount column. Stored amounts are written by
// StringFixed(2) so a parse failure means a corrupted row; it degrades to 0.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
