package models

import (
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetAllocation is a planned spending cap for one category in one
// month. Multiple allocations share a month, one per category.
//
// There is no foreign key to MonthlyRecord: actual spending is joined
// at query time by matching month, year and category name.
type BudgetAllocation struct {
	Model
	UserID          uint            `json:"user_id" gorm:"index"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" gorm:"type:DECIMAL(20,8)"`
}

// MonthYear returns the month this allocation is for.
func (b BudgetAllocation) MonthYear() types.MonthYear {
	return types.NewMonthYear(b.Month, b.Year)
}
