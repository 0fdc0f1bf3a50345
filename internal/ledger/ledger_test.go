package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenglian/fee-engine/internal/catalog"
)

func TestSetCheckedAndAmount(t *testing.T) {
	l := New(catalog.Default())

	require.NoError(t, l.SetChecked("est_company_registration", true))
	require.NoError(t, l.SetAmount("est_company_registration", decimal.RequireFromString("500")))

	e, ok := l.Entry("est_company_registration")
	require.True(t, ok)
	assert.True(t, e.Checked)
	require.NotNil(t, e.Amount)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("500")))
}

// Unchecking must clear the amount so a later re-check starts from nil, not
// a stale value.
func TestUncheckClearsAmount(t *testing.T) {
	l := New(catalog.Default())

	require.NoError(t, l.SetChecked("tax_vat_filing", true))
	require.NoError(t, l.SetAmount("tax_vat_filing", decimal.RequireFromString("300")))
	require.NoError(t, l.SetChecked("tax_vat_filing", false))

	e, ok := l.Entry("tax_vat_filing")
	require.True(t, ok)
	assert.False(t, e.Checked)
	assert.Nil(t, e.Amount)

	// Re-checking starts fresh
	require.NoError(t, l.SetChecked("tax_vat_filing", true))
	e, _ = l.Entry("tax_vat_filing")
	assert.True(t, e.Checked)
	assert.Nil(t, e.Amount)
}

func TestSetAmountRequiresChecked(t *testing.T) {
	l := New(catalog.Default())

	err := l.SetAmount("bank_basic_account", decimal.RequireFromString("100"))
	assert.ErrorIs(t, err, ErrNotChecked)

	require.NoError(t, l.SetChecked("bank_basic_account", true))
	require.NoError(t, l.SetChecked("bank_basic_account", false))
	err = l.SetAmount("bank_basic_account", decimal.RequireFromString("100"))
	assert.ErrorIs(t, err, ErrNotChecked)
}

func TestSetCheckedUnknownItem(t *testing.T) {
	l := New(catalog.Default())
	err := l.SetChecked("zzz_unknown", true)
	assert.ErrorIs(t, err, catalog.ErrUnknownItem)
}

func TestCheckedEntriesOrderAndReset(t *testing.T) {
	l := New(catalog.Default())

	require.NoError(t, l.SetChecked("soc_insurance_account", true))
	require.NoError(t, l.SetChecked("est_name_check", true))
	require.NoError(t, l.SetChecked("acc_annual_report", true))
	require.NoError(t, l.SetChecked("est_name_check", false))

	entries := l.CheckedEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "soc_insurance_account", entries[0].ItemKey)
	assert.Equal(t, "acc_annual_report", entries[1].ItemKey)

	l.Reset()
	assert.Empty(t, l.CheckedEntries())
}

func TestSetAmountQuantizesToFen(t *testing.T) {
	l := New(catalog.Default())
	require.NoError(t, l.SetChecked("lic_food_operation", true))
	require.NoError(t, l.SetAmount("lic_food_operation", decimal.RequireFromString("99.999")))

	e, _ := l.Entry("lic_food_operation")
	assert.Equal(t, "100.00", e.Amount.StringFixed(2))
}
