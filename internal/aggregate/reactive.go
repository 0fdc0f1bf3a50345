package aggregate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidPartition means the field→group assignment does not cover every
// field exactly once.
var ErrInvalidPartition = errors.New("field partition does not cover fields")

// ReactiveTotal is the result of one recomputation pass over the atomic fee
// fields. Changed reports whether the stored total field needs a write; the
// host must skip the write when it is false, otherwise the
// write→change-detection→recompute cycle never terminates.
type ReactiveTotal struct {
	GroupSums  map[string]decimal.Decimal `json:"group_sums"`
	GrandTotal decimal.Decimal            `json:"grand_total"`
	Changed    bool                       `json:"changed"`
}

// Recompute sums the atomic fields into group subtotals and a grand total.
// fields maps fieldID to its current value (nil means not yet entered,
// treated as 0). partition assigns every field to exactly one group; a field
// missing from the partition is an ErrInvalidPartition, never silently
// dropped. currentTotal is the value presently stored in the caller's total
// field, used only for the no-redundant-write guard.
//
// Recompute is a pure function of its inputs: identical inputs yield an
// identical ReactiveTotal, and once the caller has written the grand total
// back, the next pass reports Changed == false.
func Recompute(fields map[string]*decimal.Decimal, partition map[string]string, currentTotal decimal.Decimal) (ReactiveTotal, error) {
	groupSums := make(map[string]decimal.Decimal, len(partition))
	for _, group := range partition {
		if _, ok := groupSums[group]; !ok {
			groupSums[group] = decimal.Zero
		}
	}

	grand := decimal.Zero
	for fieldID, value := range fields {
		group, ok := partition[fieldID]
		if !ok {
			return ReactiveTotal{}, fmt.Errorf("%w: field %s has no group", ErrInvalidPartition, fieldID)
		}
		v := decimal.Zero
		if value != nil {
			v = value.Round(2)
		}
		groupSums[group] = groupSums[group].Add(v)
		grand = grand.Add(v)
	}

	return ReactiveTotal{
		GroupSums:  groupSums,
		GrandTotal: grand,
		Changed:    !grand.Equal(currentTotal),
	}, nil
}
