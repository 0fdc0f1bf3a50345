// Package aggregate derives the reporting views over ledger and field
// state: category rollups for contract documents, the reactive grand total
// for expense records, and the fee validation signals both share.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/fenglian/fee-engine/internal/catalog"
	"github.com/fenglian/fee-engine/internal/ledger"
)

// RollupItem is one selected item inside a category rollup.
type RollupItem struct {
	ItemKey  string          `json:"item_key"`
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryRollup is the derived, category-partitioned view of the ledger.
// It is recomputed on demand and never stored as the source of truth.
type CategoryRollup struct {
	CategoryID   string       `json:"category_id"`
	OutputField  string       `json:"output_field"`
	Items        []RollupItem `json:"items"`
	HasSelection bool         `json:"has_selection"`
}

// Subtotal sums the item amounts of the rollup.
func (r CategoryRollup) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// Rollup partitions the checked ledger entries by category, in catalog
// declaration order with items in catalog item order. Every category appears
// in the result; Snapshot applies the empty-category omission rule.
func Rollup(l *ledger.Ledger) []CategoryRollup {
	c := l.Catalog()
	checked := make(map[string]ledger.Entry)
	for _, e := range l.CheckedEntries() {
		checked[e.ItemKey] = e
	}

	rollups := make([]CategoryRollup, 0, len(c.Categories()))
	for _, cat := range c.Categories() {
		r := CategoryRollup{CategoryID: cat.ID, OutputField: cat.OutputField}
		for _, item := range cat.Items {
			e, ok := checked[item.Key]
			if !ok {
				continue
			}
			amount := decimal.Zero
			if e.Amount != nil {
				amount = *e.Amount
			}
			r.Items = append(r.Items, RollupItem{
				ItemKey:  item.Key,
				ItemName: c.DisplayName(item.Key),
				Amount:   amount,
			})
		}
		r.HasSelection = len(r.Items) > 0
		rollups = append(rollups, r)
	}
	return rollups
}

// Snapshot maps each non-empty category's output field to its item list,
// the shape persisted with the document. Categories whose selections were
// cleared disappear entirely instead of leaving stale empty buckets.
func Snapshot(l *ledger.Ledger) map[string][]RollupItem {
	out := make(map[string][]RollupItem)
	for _, r := range Rollup(l) {
		if r.HasSelection {
			out[r.OutputField] = r.Items
		}
	}
	return out
}

// RequiresCategoryFee reports whether the category's manually entered fee
// field is mandatory: true exactly when the category has a checked item.
func RequiresCategoryFee(categoryID string, l *ledger.Ledger) bool {
	for _, r := range Rollup(l) {
		if r.CategoryID == categoryID {
			return r.HasSelection
		}
	}
	return false
}

// catalogOrder gives validation output a stable category ordering.
func catalogOrder(c *catalog.Catalog) []string {
	ids := make([]string, 0, len(c.Categories()))
	for _, cat := range c.Categories() {
		ids = append(ids, cat.ID)
	}
	return ids
}
