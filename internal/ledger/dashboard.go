package ledger

import (
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// recentExpenseCount is the number of expenses shown on the dashboard.
const recentExpenseCount = 10

// Stats is the dashboard statistics payload.
type Stats struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	TotalSavings      decimal.Decimal `json:"totalSavings"`
	SavingRate        float64         `json:"savingRate"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	MonthlyTrend      []TrendPoint    `json:"monthlyTrend"`
	RecentExpenses    []RecentExpense `json:"recentExpenses"`
	TotalRecords      int             `json:"totalRecords"`
}

// CategoryTotal is the total spending for one expense name across all
// months.
//
// The breakdown keys by the raw expense name: "Rent" and "rent" are
// two entries here even though MergeMonth folds them into one row.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TrendPoint is one month's totals in the dashboard trend chart.
type TrendPoint struct {
	Label   string          `json:"label"`
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// RecentExpense is an expense line item annotated with the month of
// the record it belongs to.
type RecentExpense struct {
	models.Expense
	Month    int  `json:"month"`
	Year     int  `json:"year"`
	RecordID uint `json:"recordId"`
}

// Dashboard reduces all of a user's monthly records into the
// dashboard statistics. The records do not need to be sorted.
func Dashboard(records []models.MonthlyRecord) Stats {
	// Trend and recent expenses are in record chronology
	sorted := make([]models.MonthlyRecord, len(records))
	copy(sorted, records)
	slices.SortStableFunc(sorted, func(a, b models.MonthlyRecord) int {
		return a.MonthYear().Compare(b.MonthYear())
	})

	stats := Stats{
		CategoryBreakdown: []CategoryTotal{},
		MonthlyTrend:      []TrendPoint{},
		RecentExpenses:    []RecentExpense{},
		TotalRecords:      len(sorted),
	}

	categories := make(map[string]decimal.Decimal)
	var categoryOrder []string
	var allExpenses []RecentExpense

	for _, record := range sorted {
		var income, expense decimal.Decimal

		for _, i := range record.Incomes {
			income = income.Add(i.Amount)
		}

		for _, e := range record.Expenses {
			expense = expense.Add(e.Amount)

			if _, ok := categories[e.Name]; !ok {
				categoryOrder = append(categoryOrder, e.Name)
			}
			categories[e.Name] = categories[e.Name].Add(e.Amount)

			allExpenses = append(allExpenses, RecentExpense{
				Expense:  e,
				Month:    record.Month,
				Year:     record.Year,
				RecordID: record.ID,
			})
		}

		stats.TotalIncome = stats.TotalIncome.Add(income)
		stats.TotalExpense = stats.TotalExpense.Add(expense)

		stats.MonthlyTrend = append(stats.MonthlyTrend, TrendPoint{
			Label:   record.MonthYear().Label(),
			Month:   record.Month,
			Year:    record.Year,
			Income:  income,
			Expense: expense,
			Savings: income.Sub(expense),
		})
	}

	stats.TotalSavings = stats.TotalIncome.Sub(stats.TotalExpense)

	if stats.TotalIncome.IsPositive() {
		stats.SavingRate = stats.TotalSavings.
			Div(stats.TotalIncome).
			Mul(decimal.NewFromInt(100)).
			Round(1).
			InexactFloat64()
	}

	for _, name := range categoryOrder {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, CategoryTotal{
			Category: name,
			Amount:   categories[name],
		})
	}
	slices.SortStableFunc(stats.CategoryBreakdown, func(a, b CategoryTotal) int {
		return b.Amount.Cmp(a.Amount)
	})

	// The tail of the chronological expense list, most recent first
	start := len(allExpenses) - recentExpenseCount
	if start < 0 {
		start = 0
	}
	for i := len(allExpenses) - 1; i >= start; i-- {
		stats.RecentExpenses = append(stats.RecentExpenses, allExpenses[i])
	}

	return stats
}
