// Package ledger implements the aggregations behind the budget and
// dashboard reporting endpoints.
//
// All functions are pure transformations over rows that have already
// been fetched, they perform no I/O.
package ledger

import (
	"strings"

	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/shopspring/decimal"
)

// MergedRow is one row of the budget/actual view for a month. For
// expenses without a matching allocation, ID is null and
// AllocatedAmount is zero.
type MergedRow struct {
	ID              *uint           `json:"id"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	Difference      decimal.Decimal `json:"difference"`
}

// categoryKey normalizes a category or expense name so that names
// differing only in case or surrounding whitespace merge into one row.
func categoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MergeMonth merges the budget allocations for a month with the
// actual expenses recorded for the same month.
//
// Allocations come first, in the order they are passed in. Expenses
// without a matching allocation are appended as unbudgeted rows in
// the order of their first appearance.
func MergeMonth(month, year int, allocations []models.BudgetAllocation, actuals []models.Expense) []MergedRow {
	// Sum the actual expenses by normalized name. The first
	// occurrence determines the display name of unbudgeted rows.
	sums := make(map[string]decimal.Decimal)
	display := make(map[string]string)
	var order []string

	for _, e := range actuals {
		key := categoryKey(e.Name)
		if _, ok := sums[key]; !ok {
			order = append(order, key)
			display[key] = strings.TrimSpace(e.Name)
		}
		sums[key] = sums[key].Add(e.Amount)
	}

	merged := make([]MergedRow, 0, len(allocations))
	budgeted := make(map[string]bool)

	for _, a := range allocations {
		key := categoryKey(a.Category)
		budgeted[key] = true

		actual := sums[key]
		id := a.ID
		merged = append(merged, MergedRow{
			ID:              &id,
			Month:           a.Month,
			Year:            a.Year,
			Category:        a.Category,
			AllocatedAmount: a.AllocatedAmount,
			ActualAmount:    actual,
			Difference:      a.AllocatedAmount.Sub(actual),
		})
	}

	for _, key := range order {
		if budgeted[key] {
			continue
		}

		merged = append(merged, MergedRow{
			ID:              nil,
			Month:           month,
			Year:            year,
			Category:        display[key],
			AllocatedAmount: decimal.Zero,
			ActualAmount:    sums[key],
			Difference:      sums[key].Neg(),
		})
	}

	return merged
}
