package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/aggregate"
	"github.com/fenglian/fee-engine/internal/models"
	"github.com/fenglian/fee-engine/internal/money"
	"github.com/fenglian/fee-engine/internal/numeral"
)

// ExpenseRepository persists expense record snapshots.
type ExpenseRepository interface {
	Create(ctx context.Context, snapshot *models.ExpenseSnapshot) error
	GetByID(ctx context.Context, id int64) (*models.ExpenseSnapshot, error)
}

// ExpenseService recomputes the reactive total over the expense record's
// atomic fee fields and produces persisted snapshots.
type ExpenseService struct {
	repo      ExpenseRepository
	partition map[string]string
	logger    *zap.Logger
}

// NewExpenseService creates an ExpenseService over the default field
// partition.
func NewExpenseService(repo ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		repo:      repo,
		partition: aggregate.ExpensePartition,
		logger:    logger,
	}
}

// Recompute parses the draft's raw field values and derives the group sums
// and grand total. The draft's display total feeds the no-redundant-write
// guard: when the returned total reports Changed == false the host must not
// write the total field again.
func (s *ExpenseService) Recompute(draft *models.ExpenseDraft) (aggregate.ReactiveTotal, error) {
	fields := s.parseFields(draft)
	current := money.Parse(money.Sanitize(draft.DisplayTotal))

	total, err := aggregate.Recompute(fields, s.partition, current)
	if err != nil {
		return aggregate.ReactiveTotal{}, fmt.Errorf("failed to recompute expense total: %w", err)
	}
	return total, nil
}

// Submit recomputes and persists an expense record.
func (s *ExpenseService) Submit(ctx context.Context, draft *models.ExpenseDraft) (*models.ExpenseSnapshot, error) {
	total, err := s.Recompute(draft)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]decimal.Decimal, len(draft.Fields))
	for id, v := range s.parseFields(draft) {
		if v != nil {
			parsed[id] = *v
		}
	}

	snapshot := &models.ExpenseSnapshot{
		ApplicantName:   draft.ApplicantName,
		Fields:          parsed,
		GroupSums:       total.GroupSums,
		GrandTotal:      total.GrandTotal,
		GrandTotalWords: numeral.MustLegalNumeral(total.GrandTotal),
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist expense snapshot: %w", err)
	}

	s.logger.Info("Expense record submitted",
		zap.Int64("expense_id", snapshot.ID),
		zap.String("applicant_name", snapshot.ApplicantName),
		zap.String("grand_total", snapshot.GrandTotal.StringFixed(2)))
	return snapshot, nil
}

// Get loads a persisted expense snapshot. Returns nil when absent.
func (s *ExpenseService) Get(ctx context.Context, id int64) (*models.ExpenseSnapshot, error) {
	return s.repo.GetByID(ctx, id)
}

// parseFields sanitizes the raw field inputs for every known atomic field.
// Fields the draft does not mention stay nil (not yet entered). Raw values
// for unknown field IDs are dropped with a warning: the partition is the
// authority on which fields exist.
func (s *ExpenseService) parseFields(draft *models.ExpenseDraft) map[string]*decimal.Decimal {
	fields := make(map[string]*decimal.Decimal, len(s.partition))
	for id := range s.partition {
		fields[id] = nil
	}
	for id, raw := range draft.Fields {
		if _, ok := s.partition[id]; !ok {
			s.logger.Warn("Dropping unknown expense field", zap.String("field_id", id))
			continue
		}
		if raw == "" {
			continue
		}
		v := money.Parse(money.Sanitize(raw))
		fields[id] = &v
	}
	return fields
}
