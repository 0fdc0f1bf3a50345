package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fenglian/fee-engine/internal/aggregate"
)

// ContractDraft is the caller-supplied editing state of a service contract:
// the raw selections, the per-category fee fields, and the author-entered
// total. Amount strings are raw keyboard input; the engine sanitizes them.
type ContractDraft struct {
	ClientName   string            `json:"client_name"`
	Selections   []ItemSelection   `json:"selections"`
	CategoryFees map[string]string `json:"category_fees"` // categoryID -> raw amount
	TotalCost    string            `json:"total_cost"`    // raw amount, author-entered
}

// ItemSelection is one checkbox/amount pair from the form layer.
type ItemSelection struct {
	ItemKey string `json:"item_key"`
	Checked bool   `json:"checked"`
	Amount  string `json:"amount"` // raw input, empty when not entered
}

// ContractSnapshot is the persisted shape of a submitted contract. Buckets
// holds the category rollups keyed by output field, with empty categories
// omitted entirely.
type ContractSnapshot struct {
	ID             int64                             `json:"id"`
	ClientName     string                            `json:"client_name"`
	Buckets        map[string][]aggregate.RollupItem `json:"buckets"`
	CategoryFees   map[string]decimal.Decimal        `json:"category_fees"`
	TotalCost      decimal.Decimal                   `json:"total_cost"`
	TotalCostWords string                            `json:"total_cost_words"`
	CreatedAt      time.Time                         `json:"created_at"`
}

// ExpenseDraft is the editing state of an expense record: the atomic fee
// fields as raw input plus the currently displayed total.
type ExpenseDraft struct {
	ApplicantName string            `json:"applicant_name"`
	Fields        map[string]string `json:"fields"`        // fieldID -> raw amount
	DisplayTotal  string            `json:"display_total"` // current stored total field
}

// ExpenseSnapshot is the persisted shape of a submitted expense record.
type ExpenseSnapshot struct {
	ID              int64                      `json:"id"`
	ApplicantName   string                     `json:"applicant_name"`
	Fields          map[string]decimal.Decimal `json:"fields"`
	GroupSums       map[string]decimal.Decimal `json:"group_sums"`
	GrandTotal      decimal.Decimal            `json:"grand_total"`
	GrandTotalWords string                     `json:"grand_total_words"`
	CreatedAt       time.Time                  `json:"created_at"`
}
