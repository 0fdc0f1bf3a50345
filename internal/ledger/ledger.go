// Package ledger holds the per-document selection state: which catalog
// items are checked and the fee entered for each. One ledger instance backs
// one document-editing session and expects a single writer.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fenglian/fee-engine/internal/catalog"
)

var (
	// ErrNotChecked means an amount was supplied for an unchecked item.
	ErrNotChecked = errors.New("item is not checked")
)

// Entry is the selection state of one catalog item. Amount is nil until the
// user enters a fee; unchecking always resets it to nil so a re-check never
// resurrects a stale value.
type Entry struct {
	ItemKey string
	Checked bool
	Amount  *decimal.Decimal
}

// Ledger is the mutable selection map for one document.
type Ledger struct {
	catalog *catalog.Catalog
	entries map[string]*Entry
	order   []string // insertion order of first check, for stable iteration
}

// New creates an empty ledger over the given catalog.
func New(c *catalog.Catalog) *Ledger {
	return &Ledger{
		catalog: c,
		entries: make(map[string]*Entry),
	}
}

// Catalog returns the catalog the ledger routes against.
func (l *Ledger) Catalog() *catalog.Catalog {
	return l.catalog
}

// SetChecked toggles an item. Unchecking clears the stored amount.
func (l *Ledger) SetChecked(itemKey string, checked bool) error {
	if _, err := l.catalog.CategoryOf(itemKey); err != nil {
		return err
	}

	e, ok := l.entries[itemKey]
	if !ok {
		e = &Entry{ItemKey: itemKey}
		l.entries[itemKey] = e
		l.order = append(l.order, itemKey)
	}
	e.Checked = checked
	if !checked {
		e.Amount = nil
	}
	return nil
}

// SetAmount stores a fee for a checked item. The raw value goes through the
// sanitize/parse pipeline before it reaches here; SetAmount only quantizes.
func (l *Ledger) SetAmount(itemKey string, amount decimal.Decimal) error {
	e, ok := l.entries[itemKey]
	if !ok || !e.Checked {
		return fmt.Errorf("%w: %s", ErrNotChecked, itemKey)
	}
	quantized := amount.Round(2)
	e.Amount = &quantized
	return nil
}

// Entry returns a copy of the entry for an item key.
func (l *Ledger) Entry(itemKey string) (Entry, bool) {
	e, ok := l.entries[itemKey]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// CheckedEntries returns copies of all checked entries in first-check order.
func (l *Ledger) CheckedEntries() []Entry {
	var out []Entry
	for _, key := range l.order {
		if e := l.entries[key]; e.Checked {
			out = append(out, *e)
		}
	}
	return out
}

// Reset clears all selection state, returning the ledger to its initial
// empty form for a fresh editing session.
func (l *Ledger) Reset() {
	l.entries = make(map[string]*Entry)
	l.order = nil
}
