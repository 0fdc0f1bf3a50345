package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenglian/fee-engine/internal/catalog"
	"github.com/fenglian/fee-engine/internal/ledger"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	return ledger.New(catalog.Default())
}

func check(t *testing.T, l *ledger.Ledger, key, amount string) {
	t.Helper()
	require.NoError(t, l.SetChecked(key, true))
	if amount != "" {
		require.NoError(t, l.SetAmount(key, decimal.RequireFromString(amount)))
	}
}

func TestRollupPartitionsByCategory(t *testing.T) {
	l := newLedger(t)
	check(t, l, "est_company_registration", "500")
	check(t, l, "est_seal_carving", "200")
	check(t, l, "tax_vat_filing", "300")

	rollups := Rollup(l)
	byID := make(map[string]CategoryRollup)
	for _, r := range rollups {
		byID[r.CategoryID] = r
	}

	est := byID[catalog.CategoryEstablishment]
	require.True(t, est.HasSelection)
	require.Len(t, est.Items, 2)
	// Items ordered by catalog declaration, not check order
	assert.Equal(t, "est_company_registration", est.Items[0].ItemKey)
	assert.Equal(t, "公司设立登记", est.Items[0].ItemName)
	assert.Equal(t, "700.00", est.Subtotal().StringFixed(2))

	tax := byID[catalog.CategoryTax]
	assert.True(t, tax.HasSelection)
	assert.Len(t, tax.Items, 1)

	bank := byID[catalog.CategoryBank]
	assert.False(t, bank.HasSelection)
	assert.Empty(t, bank.Items)
}

// Cleared categories must vanish from the snapshot instead of leaving stale
// empty buckets.
func TestSnapshotOmitsEmptyCategories(t *testing.T) {
	l := newLedger(t)
	check(t, l, "est_company_registration", "500")
	check(t, l, "bank_basic_account", "100")

	snap := Snapshot(l)
	require.Len(t, snap, 2)
	assert.Contains(t, snap, "businessEstablishment")
	assert.Contains(t, snap, "bankService")

	require.NoError(t, l.SetChecked("bank_basic_account", false))
	snap = Snapshot(l)
	require.Len(t, snap, 1)
	assert.NotContains(t, snap, "bankService")
}

func TestRollupCheckedWithoutAmountIsZero(t *testing.T) {
	l := newLedger(t)
	check(t, l, "soc_insurance_account", "")

	snap := Snapshot(l)
	items := snap["socialInsurance"]
	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.IsZero())
}

func TestRequiresCategoryFee(t *testing.T) {
	l := newLedger(t)
	assert.False(t, RequiresCategoryFee(catalog.CategoryTax, l))

	check(t, l, "tax_registration", "")
	assert.True(t, RequiresCategoryFee(catalog.CategoryTax, l))

	require.NoError(t, l.SetChecked("tax_registration", false))
	assert.False(t, RequiresCategoryFee(catalog.CategoryTax, l))
}

func TestValidateFees(t *testing.T) {
	l := newLedger(t)
	check(t, l, "tax_registration", "")

	// Selection without a category fee blocks submission
	errs := ValidateFees(l, map[string]decimal.Decimal{})
	require.Len(t, errs, 1)
	assert.Equal(t, catalog.CategoryTax, errs[0].Ref)
	assert.Equal(t, ReasonMissingRequiredFee, errs[0].Reason)

	// Zero fee is still missing
	errs = ValidateFees(l, map[string]decimal.Decimal{
		catalog.CategoryTax: decimal.Zero,
	})
	require.Len(t, errs, 1)

	// Positive fee clears the requirement
	errs = ValidateFees(l, map[string]decimal.Decimal{
		catalog.CategoryTax: decimal.RequireFromString("800"),
	})
	assert.Empty(t, errs)

	// Clearing the selection clears the requirement too
	require.NoError(t, l.SetChecked("tax_registration", false))
	errs = ValidateFees(l, map[string]decimal.Decimal{})
	assert.Empty(t, errs)
}

func TestValidateContractTotal(t *testing.T) {
	assert.Empty(t, ValidateContractTotal(decimal.RequireFromString("0.01")))

	errs := ValidateContractTotal(decimal.Zero)
	require.Len(t, errs, 1)
	assert.Equal(t, "totalCost", errs[0].Ref)
	assert.Equal(t, ReasonInvalidAmount, errs[0].Reason)

	assert.Len(t, ValidateContractTotal(decimal.RequireFromString("-5")), 1)
}
