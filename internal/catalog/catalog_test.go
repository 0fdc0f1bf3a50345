package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	assert.Len(t, c.Categories(), 8)
	assert.GreaterOrEqual(t, c.ItemCount(), 50)
}

// Every declared item key must route back to exactly the category that
// declares it.
func TestCategoryCompleteness(t *testing.T) {
	c := Default()
	for _, cat := range c.Categories() {
		for _, item := range cat.Items {
			id, err := c.CategoryOf(item.Key)
			require.NoError(t, err, "item %s", item.Key)
			assert.Equal(t, cat.ID, id, "item %s", item.Key)
		}
	}
}

func TestCategoryOfUnknownItem(t *testing.T) {
	c := Default()
	_, err := c.CategoryOf("zzz_not_a_service")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestDisplayNameFallback(t *testing.T) {
	c := Default()
	assert.Equal(t, "公司核名", c.DisplayName("est_name_check"))
	// Unknown keys render as themselves so legacy data still shows something
	assert.Equal(t, "legacy_item_1999", c.DisplayName("legacy_item_1999"))
}

func TestNewRejectsOverlappingPrefixes(t *testing.T) {
	_, err := New([]CategoryDef{
		{ID: "a", Prefix: "tax", OutputField: "a"},
		{ID: "b", Prefix: "tax_special", OutputField: "b"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestNewRejectsDuplicateItemKeys(t *testing.T) {
	_, err := New([]CategoryDef{
		{ID: "a", Prefix: "aa", OutputField: "a", Items: []ServiceItem{{Key: "aa_x", DisplayName: "x"}}},
		{ID: "b", Prefix: "bb", OutputField: "b", Items: []ServiceItem{{Key: "aa_x", DisplayName: "x"}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared by both")
}

func TestNewRejectsItemOutsideItsPrefix(t *testing.T) {
	_, err := New([]CategoryDef{
		{ID: "a", Prefix: "aa", OutputField: "a", Items: []ServiceItem{{Key: "bb_item", DisplayName: "x"}}},
		{ID: "b", Prefix: "bb", OutputField: "b"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "routes to")
}
