package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/madhannmady/Expense-tracker-application/internal/controllers"
	"github.com/madhannmady/Expense-tracker-application/internal/ledger"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func saveTestBudget(t *testing.T, headers map[string]string, b controllers.BudgetEditable, expectedStatus ...int) controllers.SaveBudgetResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "/api/budgets", b, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response controllers.SaveBudgetResponse
	if r.Code == http.StatusOK {
		test.DecodeResponse(t, &r, &response)
	}

	return response
}

func (suite *TestSuiteStandard) TestBudgetsUnauthorized() {
	r := test.Request(suite.T(), http.MethodGet, "/api/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestGetBudgetsEmpty() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestSaveBudget() {
	_, headers := test.CreateUser(suite.T(), "morre")

	response := saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
			{Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)},
		},
	})

	assert.Equal(suite.T(), "Budget saved successfully", response.Message)
	assert.Equal(suite.T(), 2, response.Count)
}

func (suite *TestSuiteStandard) TestSaveBudgetFiltersInvalidRows() {
	_, headers := test.CreateUser(suite.T(), "morre")

	response := saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
			{Category: "   ", AllocatedAmount: decimal.NewFromInt(100)},
			{Category: "Zero", AllocatedAmount: decimal.Zero},
			{Category: "Negative", AllocatedAmount: decimal.NewFromInt(-5)},
		},
	})

	assert.Equal(suite.T(), 1, response.Count)
}

func (suite *TestSuiteStandard) TestSaveBudgetReplaces() {
	_, headers := test.CreateUser(suite.T(), "morre")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
			{Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)},
		},
	})

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1300)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocations []models.BudgetAllocation
	test.DecodeResponse(suite.T(), &r, &allocations)
	assert.Len(suite.T(), allocations, 1)
	assert.True(suite.T(), allocations[0].AllocatedAmount.Equal(decimal.NewFromInt(1300)))
}

func (suite *TestSuiteStandard) TestSaveBudgetInvalid() {
	_, headers := test.CreateUser(suite.T(), "morre")

	tests := []struct {
		name   string
		budget controllers.BudgetEditable
	}{
		{"Missing month", controllers.BudgetEditable{Year: 2024, Allocations: []controllers.AllocationEditable{{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1)}}}},
		{"Missing year", controllers.BudgetEditable{Month: 3, Allocations: []controllers.AllocationEditable{{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1)}}}},
		{"Missing allocations", controllers.BudgetEditable{Month: 3, Year: 2024}},
		{"Month out of range", controllers.BudgetEditable{Month: 13, Year: 2024, Allocations: []controllers.AllocationEditable{{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1)}}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			saveTestBudget(t, headers, tt.budget, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudgetMonth() {
	_, headers := test.CreateUser(suite.T(), "morre")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
			{Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)},
		},
	})

	createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 3,
		Year:  2024,
		Expenses: []controllers.ExpenseEditable{
			{Name: "rent ", Amount: decimal.NewFromInt(1250)},
			{Name: "Eating out", Amount: decimal.NewFromInt(80)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets/3/2024", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rows []ledger.MergedRow
	test.DecodeResponse(suite.T(), &r, &rows)

	assert.Len(suite.T(), rows, 3)

	// Alphabetical allocations first, "rent " folds into "Rent"
	assert.Equal(suite.T(), "Groceries", rows[0].Category)
	assert.True(suite.T(), rows[0].ActualAmount.IsZero())

	assert.Equal(suite.T(), "Rent", rows[1].Category)
	assert.True(suite.T(), rows[1].ActualAmount.Equal(decimal.NewFromInt(1250)))
	assert.True(suite.T(), rows[1].Difference.Equal(decimal.NewFromInt(-50)))

	// Unbudgeted spending comes last without an allocation ID
	assert.Equal(suite.T(), "Eating out", rows[2].Category)
	assert.Nil(suite.T(), rows[2].ID)
	assert.True(suite.T(), rows[2].Difference.Equal(decimal.NewFromInt(-80)))
}

func (suite *TestSuiteStandard) TestGetBudgetMonthWithoutRecord() {
	_, headers := test.CreateUser(suite.T(), "morre")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets/3/2024", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rows []ledger.MergedRow
	test.DecodeResponse(suite.T(), &r, &rows)
	assert.Len(suite.T(), rows, 1)
	assert.True(suite.T(), rows[0].ActualAmount.IsZero())
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	_, headers := test.CreateUser(suite.T(), "morre")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets", nil, headers)
	var allocations []models.BudgetAllocation
	test.DecodeResponse(suite.T(), &r, &allocations)
	suite.Require().Len(allocations, 1)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%d", allocations[0].ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Budget deleted", response.Message)
}

func (suite *TestSuiteStandard) TestDeleteBudgetNotFound() {
	_, headers := test.CreateUser(suite.T(), "morre")

	r := test.Request(suite.T(), http.MethodDelete, "/api/budgets/4711", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetOtherUser() {
	_, headers := test.CreateUser(suite.T(), "morre")
	_, otherHeaders := test.CreateUser(suite.T(), "other")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets", nil, headers)
	var allocations []models.BudgetAllocation
	test.DecodeResponse(suite.T(), &r, &allocations)
	suite.Require().Len(allocations, 1)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%d", allocations[0].ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetMonth() {
	_, headers := test.CreateUser(suite.T(), "morre")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
			{Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)},
		},
	})

	r := test.Request(suite.T(), http.MethodDelete, "/api/budgets/month/3/2024", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Monthly budget deleted successfully", response.Message)

	r = test.Request(suite.T(), http.MethodGet, "/api/budgets", nil, headers)
	assert.JSONEq(suite.T(), `[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetSummary() {
	_, headers := test.CreateUser(suite.T(), "morre")

	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 3,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
			{Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)},
		},
	})
	saveTestBudget(suite.T(), headers, controllers.BudgetEditable{
		Month: 2,
		Year:  2024,
		Allocations: []controllers.AllocationEditable{
			{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)},
		},
	})

	createTestRecord(suite.T(), headers, controllers.RecordEditable{
		Month: 3,
		Year:  2024,
		Expenses: []controllers.ExpenseEditable{
			{Name: "Rent", Amount: decimal.NewFromInt(1250)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets/summary", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary []ledger.SummaryRow
	test.DecodeResponse(suite.T(), &r, &summary)

	suite.Require().Len(summary, 2)

	// Newest month first, matching the allocation ordering
	assert.Equal(suite.T(), 3, summary[0].Month)
	assert.Equal(suite.T(), 2, summary[0].Categories)
	assert.True(suite.T(), summary[0].TotalAllocated.Equal(decimal.NewFromInt(1600)))
	assert.True(suite.T(), summary[0].TotalActual.Equal(decimal.NewFromInt(1250)))
	assert.True(suite.T(), summary[0].Difference.Equal(decimal.NewFromInt(350)))

	assert.Equal(suite.T(), 2, summary[1].Month)
	assert.True(suite.T(), summary[1].TotalActual.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	_, headers := test.CreateUser(suite.T(), "morre")
	suite.CloseDB()

	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Listing fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "/api/budgets", nil, headers)
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			},
		},
		{
			"Saving fails",
			func(t *testing.T) {
				saveTestBudget(t, headers, controllers.BudgetEditable{
					Month: 3,
					Year:  2024,
					Allocations: []controllers.AllocationEditable{
						{Category: "Rent", AllocatedAmount: decimal.NewFromInt(1)},
					},
				}, http.StatusInternalServerError)
			},
		},
		{
			"Summary fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "/api/budgets/summary", nil, headers)
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, tt.test)
	}
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	_, headers := test.CreateUser(suite.T(), "morre")

	tests := []struct {
		path  string
		allow string
	}{
		{"/api/budgets", "OPTIONS, GET, POST"},
		{"/api/budgets/summary", "OPTIONS, GET"},
		{"/api/budgets/1", "OPTIONS, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
