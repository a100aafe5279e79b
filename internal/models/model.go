package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The SPA consumes all amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Model is the base model for all persisted resources.
type Model struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
