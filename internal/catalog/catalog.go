// Package catalog holds the static service item catalog and the category
// prefix router shared by all document templates.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ServiceItem is one selectable service line item.
type ServiceItem struct {
	Key         string `json:"item_key"`
	DisplayName string `json:"display_name"`
}

// CategoryDef groups item keys that share one fee field and one output bucket.
// Membership is decided by the longest matching registered prefix.
type CategoryDef struct {
	ID          string        `json:"category_id"`
	Prefix      string        `json:"prefix"`
	DisplayName string        `json:"display_name"`
	OutputField string        `json:"output_field"`
	Items       []ServiceItem `json:"items"`
}

// Catalog is immutable reference data loaded once at process start.
type Catalog struct {
	categories []CategoryDef
	byPrefix   []CategoryDef // sorted by prefix length, longest first
	names      map[string]string
}

// New builds a catalog from category definitions and validates it.
func New(categories []CategoryDef) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		names:      make(map[string]string),
	}

	c.byPrefix = make([]CategoryDef, len(categories))
	copy(c.byPrefix, categories)
	sort.SliceStable(c.byPrefix, func(i, j int) bool {
		return len(c.byPrefix[i].Prefix) > len(c.byPrefix[j].Prefix)
	})

	for _, cat := range categories {
		for _, item := range cat.Items {
			c.names[item.Key] = item.DisplayName
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in catalog of company service items.
func Default() *Catalog {
	c, err := New(defaultCategories)
	if err != nil {
		// The built-in table is validated by tests; a failure here means the
		// binary shipped with a corrupted catalog.
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return c
}

// validate enforces the catalog load-time invariants: unique item keys,
// disjoint category prefixes, and every declared item routing back to the
// category that declares it.
func (c *Catalog) validate() error {
	seen := make(map[string]string)
	for _, cat := range c.categories {
		if cat.Prefix == "" {
			return fmt.Errorf("category %s has empty prefix", cat.ID)
		}
		for _, item := range cat.Items {
			if other, ok := seen[item.Key]; ok {
				return fmt.Errorf("item key %s declared by both %s and %s", item.Key, other, cat.ID)
			}
			seen[item.Key] = cat.ID
		}
	}

	for i, a := range c.categories {
		for j, b := range c.categories {
			if i == j {
				continue
			}
			if strings.HasPrefix(a.Prefix, b.Prefix) {
				return fmt.Errorf("category prefixes overlap: %s (%s) and %s (%s)",
					a.ID, a.Prefix, b.ID, b.Prefix)
			}
		}
	}

	for _, cat := range c.categories {
		for _, item := range cat.Items {
			id, err := c.CategoryOf(item.Key)
			if err != nil {
				return fmt.Errorf("item %s does not route to any category: %w", item.Key, err)
			}
			if id != cat.ID {
				return fmt.Errorf("item %s declared by %s but routes to %s", item.Key, cat.ID, id)
			}
		}
	}
	return nil
}

// CategoryOf resolves an item key to its category by longest-prefix match.
// Returns ErrUnknownItem when no registered prefix matches; for
// catalog-originated keys this indicates data corruption and callers should
// log it rather than absorb the key into a wrong category.
func (c *Catalog) CategoryOf(itemKey string) (string, error) {
	for _, cat := range c.byPrefix {
		if strings.HasPrefix(itemKey, cat.Prefix) {
			return cat.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownItem, itemKey)
}

// DisplayName returns the Chinese display name for an item key. Unknown keys
// fall back to the key itself so legacy data still renders something.
func (c *Catalog) DisplayName(itemKey string) string {
	if name, ok := c.names[itemKey]; ok {
		return name
	}
	return itemKey
}

// HasItem reports whether the key is declared by the catalog.
func (c *Catalog) HasItem(itemKey string) bool {
	_, ok := c.names[itemKey]
	return ok
}

// Categories returns the category definitions in declaration order.
func (c *Catalog) Categories() []CategoryDef {
	return c.categories
}

// Category returns a category definition by ID.
func (c *Catalog) Category(id string) (CategoryDef, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return CategoryDef{}, false
}

// ItemCount returns the total number of declared items.
func (c *Catalog) ItemCount() int {
	return len(c.names)
}
