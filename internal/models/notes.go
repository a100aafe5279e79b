package models

import (
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
)

// Note entry types.
const (
	NoteTypeGeneral = "general"
	NoteTypeLending = "lending"
)

// MonthlyNotes is one month's collection of note entries. A user can
// have at most one notes set per month.
type MonthlyNotes struct {
	Model
	UserID      uint        `json:"user_id" gorm:"uniqueIndex:idx_notes_user_month"`
	Month       int         `json:"month" gorm:"uniqueIndex:idx_notes_user_month"`
	Year        int         `json:"year" gorm:"uniqueIndex:idx_notes_user_month"`
	NoteEntries []NoteEntry `json:"note_entries" gorm:"foreignKey:NotesID;constraint:OnDelete:CASCADE"`
}

// MonthYear returns the month this notes set is for.
func (n MonthlyNotes) MonthYear() types.MonthYear {
	return types.NewMonthYear(n.Month, n.Year)
}

// NoteEntry is a free-form or lending note. PersonName and Amount are
// only set for lending entries.
type NoteEntry struct {
	Model
	NotesID     uint             `json:"notes_id" gorm:"index"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	PersonName  *string          `json:"person_name"`
	Amount      *decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}
