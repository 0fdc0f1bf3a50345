package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fenglian/fee-engine/internal/ledger"
)

// Validation failure reasons surfaced to the form layer.
const (
	ReasonMissingRequiredFee = "MissingRequiredFee"
	ReasonInvalidAmount      = "InvalidAmount"
)

// ValidationError is one submit-blocking failure. Ref names the category or
// field the failure is attached to.
type ValidationError struct {
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Ref, e.Reason)
}

// ValidateFees checks the category fee requirement over the current ledger:
// once a category has any checked item its manually entered fee must be
// present and positive. Nothing is auto-corrected; failures block
// submission and are shown to the user.
func ValidateFees(l *ledger.Ledger, categoryFees map[string]decimal.Decimal) []ValidationError {
	var errs []ValidationError
	for _, id := range catalogOrder(l.Catalog()) {
		if !RequiresCategoryFee(id, l) {
			continue
		}
		fee, ok := categoryFees[id]
		if !ok || !fee.IsPositive() {
			errs = append(errs, ValidationError{Ref: id, Reason: ReasonMissingRequiredFee})
		}
	}
	return errs
}

// ValidateContractTotal checks the author-entered contract total. The total
// is deliberately independent of the item amounts (negotiated totals may
// round away from the line-item sum), so only presence and positivity are
// enforced.
func ValidateContractTotal(total decimal.Decimal) []ValidationError {
	if total.IsPositive() {
		return nil
	}
	return []ValidationError{{Ref: "totalCost", Reason: ReasonInvalidAmount}}
}
