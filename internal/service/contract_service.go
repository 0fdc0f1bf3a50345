// Package service wires the engine packages into the contract and expense
// document workflows the host exposes.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/aggregate"
	"github.com/fenglian/fee-engine/internal/catalog"
	"github.com/fenglian/fee-engine/internal/ledger"
	"github.com/fenglian/fee-engine/internal/models"
	"github.com/fenglian/fee-engine/internal/money"
	"github.com/fenglian/fee-engine/internal/numeral"
)

// ErrValidationFailed wraps a non-empty validation error set at submit time.
var ErrValidationFailed = errors.New("document validation failed")

// ContractRepository persists contract snapshots.
type ContractRepository interface {
	Create(ctx context.Context, snapshot *models.ContractSnapshot) error
	GetByID(ctx context.Context, id int64) (*models.ContractSnapshot, error)
}

// DocumentFiller renders a snapshot into a printable file.
type DocumentFiller interface {
	FillContract(snapshot *models.ContractSnapshot, outputPath string) error
}

// ContractService turns raw contract drafts into validated, persisted
// snapshots with their legal numeral rendition.
type ContractService struct {
	catalog *catalog.Catalog
	repo    ContractRepository
	filler  DocumentFiller
	logger  *zap.Logger
}

// NewContractService creates a ContractService. filler may be nil when the
// host does not render printable documents.
func NewContractService(c *catalog.Catalog, repo ContractRepository, filler DocumentFiller, logger *zap.Logger) *ContractService {
	return &ContractService{
		catalog: c,
		repo:    repo,
		filler:  filler,
		logger:  logger,
	}
}

// LoadLedger replays a draft's selections into a fresh ledger. Item keys
// that resolve to no category are logged and skipped; they indicate
// corrupted form data, not user error.
func (s *ContractService) LoadLedger(draft *models.ContractDraft) *ledger.Ledger {
	l := ledger.New(s.catalog)
	for _, sel := range draft.Selections {
		if err := l.SetChecked(sel.ItemKey, sel.Checked); err != nil {
			s.logger.Warn("Dropping selection with unroutable item key",
				zap.String("item_key", sel.ItemKey),
				zap.Error(err))
			continue
		}
		if sel.Checked && sel.Amount != "" {
			amount := money.Parse(money.Sanitize(sel.Amount))
			if err := l.SetAmount(sel.ItemKey, amount); err != nil {
				s.logger.Warn("Failed to set item amount",
					zap.String("item_key", sel.ItemKey),
					zap.Error(err))
			}
		}
	}
	return l
}

// Validate runs the submit-time checks over a draft without persisting.
func (s *ContractService) Validate(draft *models.ContractDraft) []aggregate.ValidationError {
	l := s.LoadLedger(draft)
	fees := s.parseCategoryFees(draft)
	errs := aggregate.ValidateFees(l, fees)
	errs = append(errs, aggregate.ValidateContractTotal(money.Parse(money.Sanitize(draft.TotalCost)))...)
	return errs
}

// BuildSnapshot computes the persisted shape of a draft: non-empty category
// buckets, parsed fees, the author-entered total, and its legal numeral.
// The validation error set is returned alongside; a non-empty set means the
// snapshot must not be persisted.
func (s *ContractService) BuildSnapshot(draft *models.ContractDraft) (*models.ContractSnapshot, []aggregate.ValidationError) {
	l := s.LoadLedger(draft)
	fees := s.parseCategoryFees(draft)
	total := money.Parse(money.Sanitize(draft.TotalCost))

	errs := aggregate.ValidateFees(l, fees)
	errs = append(errs, aggregate.ValidateContractTotal(total)...)
	if len(errs) > 0 {
		return nil, errs
	}

	snapshot := &models.ContractSnapshot{
		ClientName:     draft.ClientName,
		Buckets:        aggregate.Snapshot(l),
		CategoryFees:   fees,
		TotalCost:      total,
		TotalCostWords: numeral.MustLegalNumeral(total),
		CreatedAt:      time.Now(),
	}
	return snapshot, nil
}

// Submit validates, persists, and optionally renders a contract draft.
func (s *ContractService) Submit(ctx context.Context, draft *models.ContractDraft, outputPath string) (*models.ContractSnapshot, error) {
	snapshot, errs := s.BuildSnapshot(draft)
	if len(errs) > 0 {
		s.logger.Info("Contract submission blocked by validation",
			zap.String("client_name", draft.ClientName),
			zap.Int("error_count", len(errs)))
		return nil, validationError(errs)
	}

	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist contract snapshot: %w", err)
	}

	if s.filler != nil && outputPath != "" {
		if err := s.filler.FillContract(snapshot, outputPath); err != nil {
			// The snapshot is already persisted; a render failure degrades
			// to a missing printout, not a lost contract.
			s.logger.Error("Failed to render contract document",
				zap.Int64("contract_id", snapshot.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("Contract submitted",
		zap.Int64("contract_id", snapshot.ID),
		zap.String("client_name", snapshot.ClientName),
		zap.String("total_cost", snapshot.TotalCost.StringFixed(2)))
	return snapshot, nil
}

// Get loads a persisted contract snapshot. Returns nil when absent.
func (s *ContractService) Get(ctx context.Context, id int64) (*models.ContractSnapshot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContractService) parseCategoryFees(draft *models.ContractDraft) map[string]decimal.Decimal {
	fees := make(map[string]decimal.Decimal, len(draft.CategoryFees))
	for id, raw := range draft.CategoryFees {
		if raw == "" {
			continue
		}
		fees[id] = money.Parse(money.Sanitize(raw))
	}
	return fees
}

// ValidationFailure carries the error set through the error return path so
// transport layers can unwrap it into a structured response.
type ValidationFailure struct {
	Errors []aggregate.ValidationError
}

func (f *ValidationFailure) Error() string {
	return fmt.Sprintf("%v: %d errors", ErrValidationFailed, len(f.Errors))
}

func (f *ValidationFailure) Unwrap() error {
	return ErrValidationFailed
}

func validationError(errs []aggregate.ValidationError) error {
	return &ValidationFailure{Errors: errs}
}
