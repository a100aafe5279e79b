package ledger

import (
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
)

// SummaryRow sums all allocations of one month against the month's
// total actual spending.
type SummaryRow struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	Categories     int             `json:"categories"`
	TotalActual    decimal.Decimal `json:"total_actual"`
	Difference     decimal.Decimal `json:"difference"`
}

// Summarize groups allocations by month. Months without any
// allocation never get a row, even if they have expenses. actuals
// maps a month to its total recorded expense amount, months missing
// from it count as zero.
//
// Rows are emitted in the order the months first appear in the
// allocations.
func Summarize(allocations []models.BudgetAllocation, actuals map[types.MonthYear]decimal.Decimal) []SummaryRow {
	grouped := make(map[types.MonthYear]*SummaryRow)
	var order []types.MonthYear

	for _, a := range allocations {
		key := a.MonthYear()
		row, ok := grouped[key]
		if !ok {
			row = &SummaryRow{Month: a.Month, Year: a.Year}
			grouped[key] = row
			order = append(order, key)
		}

		row.TotalAllocated = row.TotalAllocated.Add(a.AllocatedAmount)
		row.Categories++
	}

	summary := make([]SummaryRow, 0, len(order))
	for _, key := range order {
		row := grouped[key]
		row.TotalActual = actuals[key]
		row.Difference = row.TotalAllocated.Sub(row.TotalActual)
		summary = append(summary, *row)
	}

	return summary
}
