package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/madhannmady/Expense-tracker-application/internal/controllers"
	"github.com/madhannmady/Expense-tracker-application/internal/httputil"
	"github.com/madhannmady/Expense-tracker-application/internal/ledger"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestRecord(t *testing.T, headers map[string]string, r controllers.RecordEditable, expectedStatus ...int) models.MonthlyRecord {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodPost, "/api/records", r, headers)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var record models.MonthlyRecord
	if recorder.Code == http.StatusCreated {
		test.DecodeResponse(t, &recorder, &record)
	}

	return record
}

func (suite *TestSuiteStandard) TestRecordsUnauthorized() {
	r := test.Request(suite.T(), http.MethodGet, "/api/records", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestGetRecordsEmpty() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/records", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestCreateRecord() {
	_, headers := test.CreateUser(suite.T(), "morre")

	record := createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month:       3,
		Year:        2024,
		SavingsGoal: decimal.NewFromInt(500),
		Notes:       "March",
		Incomes: []controllers.IncomeEditable{
			{Source: "Salary", Amount: decimal.NewFromInt(3000)},
		},
		Expenses: []controllers.ExpenseEditable{
			{Name: "Rent", Amount: decimal.NewFromInt(1200)},
			{Name: "Groceries", Amount: decimal.NewFromFloat(312.48)},
		},
	})

	assert.NotZero(suite.T(), record.ID)
	assert.Equal(suite.T(), 3, record.Month)
	assert.Equal(suite.T(), "March", record.Notes)
	assert.Len(suite.T(), record.Incomes, 1)
	assert.Len(suite.T(), record.Expenses, 2)
	assert.True(suite.T(), record.SavingsGoal.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestCreateRecordDuplicateMonth() {
	_, headers := test.CreateUser(suite.T(), "morre")

	createTestRecord(suite.T(), headers, controllers.RecordEditable{Month: 3, Year: 2024})

	r := test.Request(suite.T(), http.MethodPost, "/api/records", controllers.RecordEditable{Month: 3, Year: 2024}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httputil.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Record for 3/2024 already exists.", response.Message)
}

func (suite *TestSuiteStandard) TestCreateRecordSameMonthOtherUser() {
	_, headers := test.CreateUser(suite.T(), "morre")
	_, otherHeaders := test.CreateUser(suite.T(), "other")

	createTestRecord(suite.T(), headers, controllers.RecordEditable{Month: 3, Year: 2024})
	createTestRecord(suite.T(), otherHeaders, controllers.RecordEditable{Month: 3, Year: 2024})
}

func (suite *TestSuiteStandard) TestCreateRecordInvalid() {
	_, headers := test.CreateUser(suite.T(), "morre")

	tests := []struct {
		name   string
		record controllers.RecordEditable
	}{
		{"Month out of range", controllers.RecordEditable{Month: 13, Year: 2024}},
		{"Year out of range", controllers.RecordEditable{Month: 3, Year: 1999}},
		{"Negative savings goal", controllers.RecordEditable{Month: 3, Year: 2024, SavingsGoal: decimal.NewFromInt(-1)}},
		{"Negative income", controllers.RecordEditable{Month: 3, Year: 2024, Incomes: []controllers.IncomeEditable{{Source: "x", Amount: decimal.NewFromInt(-1)}}}},
		{"Negative expense", controllers.RecordEditable{Month: 3, Year: 2024, Expenses: []controllers.ExpenseEditable{{Name: "x", Amount: decimal.NewFromInt(-1)}}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestRecord(t, headers, tt.record, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetRecordsSorted() {
	_, headers := test.CreateUser(suite.T(), "morre")

	createTestRecord(suite.T(), headers, controllers.RecordEditable{Month: 1, Year: 2024})
	createTestRecord(suite.T(), headers, controllers.RecordEditable{Month: 11, Year: 2023})
	createTestRecord(suite.T(), headers, controllers.RecordEditable{Month: 3, Year: 2024})

	r := test.Request(suite.T(), http.MethodGet, "/api/records", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var records []models.MonthlyRecord
	test.DecodeResponse(suite.T(), &r, &records)

	assert.Len(suite.T(), records, 3)
	assert.Equal(suite.T(), 3, records[0].Month)
	assert.Equal(suite.T(), 1, records[1].Month)
	assert.Equal(suite.T(), 11, records[2].Month)
}

func (suite *TestSuiteStandard) TestGetRecord() {
	_, headers := test.CreateUser(suite.T(), "morre")

	record := createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 3,
		Year:  2024,
		Incomes: []controllers.IncomeEditable{
			{Source: "Salary", Amount: decimal.NewFromInt(3000)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/records/%d", record.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched models.MonthlyRecord
	test.DecodeResponse(suite.T(), &r, &fetched)
	assert.Equal(suite.T(), record.ID, fetched.ID)
	assert.Len(suite.T(), fetched.Incomes, 1)
}

func (suite *TestSuiteStandard) TestGetRecordNotFound() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/records/4711", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response httputil.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "there is no monthly record matching your query", response.Message)
}

func (suite *TestSuiteStandard) TestGetRecordOtherUser() {
	_, headers := test.CreateUser(suite.T(), "morre")
	_, otherHeaders := test.CreateUser(suite.T(), "other")

	record := createTestRecord(suite.T(), headers, controllers.RecordEditable{Month: 3, Year: 2024})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/records/%d", record.ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetRecordInvalidID() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/records/definitely-not-a-number", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateRecord() {
	_, headers := test.CreateUser(suite.T(), "morre")

	record := createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 3,
		Year:  2024,
		Expenses: []controllers.ExpenseEditable{
			{Name: "Rent", Amount: decimal.NewFromInt(1200)},
		},
	})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/records/%d", record.ID), controllers.RecordEditable{
		Month:       3,
		Year:        2024,
		SavingsGoal: decimal.NewFromInt(750),
		Expenses: []controllers.ExpenseEditable{
			{Name: "Rent", Amount: decimal.NewFromInt(1250)},
			{Name: "Internet", Amount: decimal.NewFromInt(40)},
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.MonthlyRecord
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), record.ID, updated.ID)
	assert.True(suite.T(), updated.SavingsGoal.Equal(decimal.NewFromInt(750)))
	assert.Len(suite.T(), updated.Expenses, 2)

	// The old expense rows must be gone, not orphaned
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestUpdateRecordNotFound() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodPut, "/api/records/4711", controllers.RecordEditable{Month: 3, Year: 2024}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteRecord() {
	_, headers := test.CreateUser(suite.T(), "morre")

	record := createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 3,
		Year:  2024,
		Incomes: []controllers.IncomeEditable{
			{Source: "Salary", Amount: decimal.NewFromInt(3000)},
		},
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/records/%d", record.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Record deleted", response.Message)

	// Children are deleted with the record
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Income{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/records/%d", record.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/records/dashboard", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stats ledger.Stats
	test.DecodeResponse(suite.T(), &r, &stats)
	assert.Equal(suite.T(), 0, stats.TotalRecords)
	assert.Equal(suite.T(), float64(0), stats.SavingRate)
	assert.Empty(suite.T(), stats.CategoryBreakdown)
}

func (suite *TestSuiteStandard) TestDashboard() {
	_, headers := test.CreateUser(suite.T(), "morre")

	createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 2,
		Year:  2024,
		Incomes: []controllers.IncomeEditable{
			{Source: "Salary", Amount: decimal.NewFromInt(3000)},
		},
		Expenses: []controllers.ExpenseEditable{
			{Name: "Rent", Amount: decimal.NewFromInt(1200)},
			{Name: "rent", Amount: decimal.NewFromInt(100)},
		},
	})
	createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 1,
		Year:  2024,
		Incomes: []controllers.IncomeEditable{
			{Source: "Salary", Amount: decimal.NewFromInt(3000)},
		},
		Expenses: []controllers.ExpenseEditable{
			{Name: "Rent", Amount: decimal.NewFromInt(1200)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/records/dashboard", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stats ledger.Stats
	test.DecodeResponse(suite.T(), &r, &stats)

	assert.Equal(suite.T(), 2, stats.TotalRecords)
	assert.True(suite.T(), stats.TotalIncome.Equal(decimal.NewFromInt(6000)))
	assert.True(suite.T(), stats.TotalExpense.Equal(decimal.NewFromInt(2500)))
	assert.True(suite.T(), stats.TotalSavings.Equal(decimal.NewFromInt(3500)))
	assert.InDelta(suite.T(), 58.3, stats.SavingRate, 0.01)

	// The breakdown does not fold expense names, "Rent" and "rent"
	// stay separate entries
	assert.Len(suite.T(), stats.CategoryBreakdown, 2)
	assert.Equal(suite.T(), "Rent", stats.CategoryBreakdown[0].Category)
	assert.True(suite.T(), stats.CategoryBreakdown[0].Amount.Equal(decimal.NewFromInt(2400)))

	// Trend is in chronological order
	assert.Len(suite.T(), stats.MonthlyTrend, 2)
	assert.Equal(suite.T(), "Jan 2024", stats.MonthlyTrend[0].Label)
	assert.Equal(suite.T(), "Feb 2024", stats.MonthlyTrend[1].Label)
}

func (suite *TestSuiteStandard) TestRecordsDBClosed() {
	_, headers := test.CreateUser(suite.T(), "morre")
	suite.CloseDB()

	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Listing fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "/api/records", nil, headers)
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			},
		},
		{
			"Creation fails",
			func(t *testing.T) {
				createTestRecord(t, headers, controllers.RecordEditable{Month: 3, Year: 2024}, http.StatusInternalServerError)
			},
		},
		{
			"Dashboard fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "/api/records/dashboard", nil, headers)
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, tt.test)
	}
}
