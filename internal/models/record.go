package models

import (
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyRecord is one month's income/expense ledger. A user can have
// at most one record per month.
//
// Income and Expense children are never patched in place: updates
// replace the full child set.
type MonthlyRecord struct {
	Model
	UserID      uint            `json:"user_id" gorm:"uniqueIndex:idx_records_user_month"`
	Month       int             `json:"month" gorm:"uniqueIndex:idx_records_user_month"`
	Year        int             `json:"year" gorm:"uniqueIndex:idx_records_user_month"`
	SavingsGoal decimal.Decimal `json:"savings_goal" gorm:"type:DECIMAL(20,8)"`
	Notes       string          `json:"notes"`
	Incomes     []Income        `json:"incomes" gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
	Expenses    []Expense       `json:"expenses" gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
}

// MonthYear returns the month this record is for.
func (r MonthlyRecord) MonthYear() types.MonthYear {
	return types.NewMonthYear(r.Month, r.Year)
}

// Income is a single income line item of a MonthlyRecord.
type Income struct {
	Model
	RecordID uint            `json:"record_id" gorm:"index"`
	Source   string          `json:"source"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

// Expense is a single expense line item of a MonthlyRecord. The name
// is free text, it doubles as the category for budget reporting.
type Expense struct {
	Model
	RecordID uint            `json:"record_id" gorm:"index"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}
