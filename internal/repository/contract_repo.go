// Package repository persists document snapshots. Snapshots are stored as
// structured JSON blobs plus a few scalar columns; the persistence format is
// opaque to the engine packages.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/models"
)

// ContractRepository handles contract snapshot database operations.
type ContractRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContractRepository creates a new contract repository.
func NewContractRepository(db *sql.DB, logger *zap.Logger) *ContractRepository {
	return &ContractRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a contract snapshot.
func (r *ContractRepository) Create(ctx context.Context, snapshot *models.ContractSnapshot) error {
	buckets, err := json.Marshal(snapshot.Buckets)
	if err != nil {
		return fmt.Errorf("failed to marshal contract buckets: %w", err)
	}
	fees, err := json.Marshal(snapshot.CategoryFees)
	if err != nil {
		return fmt.Errorf("failed to marshal category fees: %w", err)
	}

	query := `
		INSERT INTO contract_snapshots (
			client_name, buckets, category_fees, total_cost, total_cost_words, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		snapshot.ClientName,
		string(buckets),
		string(fees),
		snapshot.TotalCost.StringFixed(2),
		snapshot.TotalCostWords,
		snapshot.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create contract snapshot", zap.Error(err))
		return fmt.Errorf("failed to create contract snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	snapshot.ID = id
	return nil
}

// GetByID retrieves a contract snapshot by ID. Returns nil when absent.
func (r *ContractRepository) GetByID(ctx context.Context, id int64) (*models.ContractSnapshot, error) {
	query := `
		SELECT id, client_name, buckets, category_fees, total_cost, total_cost_words, created_at
		FROM contract_snapshots
		WHERE id = ?
	`

	var snapshot models.ContractSnapshot
	var buckets, fees, total string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.ClientName,
		&buckets,
		&fees,
		&total,
		&snapshot.TotalCostWords,
		&snapshot.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get contract snapshot", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get contract snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(buckets), &snapshot.Buckets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contract buckets: %w", err)
	}
	if err := json.Unmarshal([]byte(fees), &snapshot.CategoryFees); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category fees: %w", err)
	}
	snapshot.TotalCost = mustDecimal(total)
	return &snapshot, nil
}
