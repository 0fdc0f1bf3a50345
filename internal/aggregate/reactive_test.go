package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRecomputeSumsGroupsAndGrandTotal(t *testing.T) {
	fields := map[string]*decimal.Decimal{
		FieldTaxiFee:         dec("35.50"),
		FieldParkingFee:      dec("10"),
		FieldRegistrationFee: dec("120"),
		FieldStampTaxFee:     nil,
		FieldBankChargeFee:   dec("0.60"),
	}

	total, err := Recompute(fields, ExpensePartition, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, "45.50", total.GroupSums[GroupTransport].StringFixed(2))
	assert.Equal(t, "120.00", total.GroupSums[GroupGovernment].StringFixed(2))
	assert.Equal(t, "0.60", total.GroupSums[GroupBanking].StringFixed(2))
	assert.Equal(t, "166.10", total.GrandTotal.StringFixed(2))
	assert.True(t, total.Changed)
}

// Σ groupSums must equal grandTotal for any field set, because the
// partition assigns each field to exactly one group.
func TestGroupSumsEqualGrandTotal(t *testing.T) {
	fields := make(map[string]*decimal.Decimal)
	for i, id := range ExpenseFields {
		d := decimal.NewFromInt(int64(i * 7)).Add(decimal.RequireFromString("0.33"))
		fields[id] = &d
	}

	total, err := Recompute(fields, ExpensePartition, decimal.Zero)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, g := range total.GroupSums {
		sum = sum.Add(g)
	}
	assert.True(t, sum.Equal(total.GrandTotal),
		"group sums %s != grand total %s", sum, total.GrandTotal)
}

func TestExpensePartitionCoversAllFields(t *testing.T) {
	assert.Len(t, ExpensePartition, len(ExpenseFields))
	for _, id := range ExpenseFields {
		_, ok := ExpensePartition[id]
		assert.True(t, ok, "field %s missing from partition", id)
	}

	groups := make(map[string]bool)
	for _, g := range ExpensePartition {
		groups[g] = true
	}
	assert.Len(t, groups, 7)
}

func TestRecomputeRejectsUnpartitionedField(t *testing.T) {
	fields := map[string]*decimal.Decimal{"mysteryFee": dec("1")}
	_, err := Recompute(fields, ExpensePartition, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidPartition)
}

// Recompute is pure: identical inputs yield identical results, and once the
// grand total has been written back the next pass must report no change,
// otherwise the write→recompute cycle never terminates.
func TestRecomputeIdempotentAfterWriteBack(t *testing.T) {
	fields := map[string]*decimal.Decimal{
		FieldAgencyFee: dec("800"),
		FieldOtherFee:  dec("12.50"),
	}

	first, err := Recompute(fields, ExpensePartition, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, first.Changed)

	// Host writes first.GrandTotal into its total field, then recomputes
	second, err := Recompute(fields, ExpensePartition, first.GrandTotal)
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.True(t, second.GrandTotal.Equal(first.GrandTotal))
	for g, v := range first.GroupSums {
		assert.True(t, second.GroupSums[g].Equal(v), "group %s", g)
	}
}

func TestRecomputeMissingFieldsAreZero(t *testing.T) {
	total, err := Recompute(map[string]*decimal.Decimal{}, ExpensePartition, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, total.GrandTotal.IsZero())
	assert.False(t, total.Changed)

	// Every declared group is present even when empty
	assert.Len(t, total.GroupSums, 7)
}
