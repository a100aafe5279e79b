// Package types implements special types for the Expense Tracker backend.
package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMonthOutOfRange = errors.New("month must be between 1 and 12")
	ErrYearOutOfRange  = errors.New("year must be 2000 or later")
)

// MonthYear identifies one calendar month. All records, budgets and
// notes are keyed by it together with the owning user.
type MonthYear struct {
	Month int
	Year  int
}

// NewMonthYear returns a new MonthYear.
func NewMonthYear(month, year int) MonthYear {
	return MonthYear{Month: month, Year: year}
}

// Validate checks that the month and year are within the allowed ranges.
func (m MonthYear) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return ErrMonthOutOfRange
	}

	if m.Year < 2000 {
		return ErrYearOutOfRange
	}

	return nil
}

// String returns the "M/YYYY" representation used in API messages.
func (m MonthYear) String() string {
	return fmt.Sprintf("%d/%d", m.Month, m.Year)
}

// Label returns the human readable representation, e.g. "Mar 2024".
func (m MonthYear) Label() string {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// Before reports whether m is chronologically before n.
func (m MonthYear) Before(n MonthYear) bool {
	return m.Compare(n) < 0
}

// Compare returns -1 if m is before n, 0 if they are the same month
// and 1 if m is after n.
func (m MonthYear) Compare(n MonthYear) int {
	if m.Year != n.Year {
		if m.Year < n.Year {
			return -1
		}
		return 1
	}

	if m.Month != n.Month {
		if m.Month < n.Month {
			return -1
		}
		return 1
	}

	return 0
}
