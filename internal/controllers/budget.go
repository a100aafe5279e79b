package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madhannmady/Expense-tracker-application/internal/httputil"
	"github.com/madhannmady/Expense-tracker-application/internal/ledger"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable defines the budget for one month. Saving replaces
// all existing allocations for that month.
type BudgetEditable struct {
	Month       int                  `json:"month"`
	Year        int                  `json:"year"`
	Allocations []AllocationEditable `json:"allocations"`
}

type AllocationEditable struct {
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
}

// SaveBudgetResponse reports how many allocations were stored.
type SaveBudgetResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// RegisterBudgetRoutes registers the routes for budget allocations
// with the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetBudgets)
		r.POST("", SaveBudget)
	}

	// Summary over all months
	{
		r.OPTIONS("/summary", httputil.OptionsGet)
		r.GET("/summary", GetBudgetSummary)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteBudget)
	}

	// Whole month
	{
		r.OPTIONS("/:id/:year", httputil.OptionsGet)
		r.GET("/:id/:year", GetBudgetMonth)
		r.OPTIONS("/month/:month/:year", httputil.OptionsDelete)
		r.DELETE("/month/:month/:year", DeleteBudgetMonth)
	}
}

// @Summary		Get allocations
// @Description	Returns all budget allocations of the user, newest month first
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.BudgetAllocation
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/budgets [get]
func GetBudgets(c *gin.Context) {
	allocations := make([]models.BudgetAllocation, 0)

	err := models.DB.
		Where("user_id = ?", currentUser(c).ID).
		Order("year DESC").
		Order("month DESC").
		Find(&allocations).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, allocations)
}

// @Summary		Save budget
// @Description	Replaces all allocations for a month. Allocations with an empty category or non-positive amount are dropped.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SaveBudgetResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/budgets [post]
func SaveBudget(c *gin.Context) {
	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if data.Month == 0 || data.Year == 0 || len(data.Allocations) == 0 {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Month, year, and allocations are required"))
		return
	}

	if err := types.NewMonthYear(data.Month, data.Year).Validate(); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	userID := currentUser(c).ID

	rows := make([]models.BudgetAllocation, 0, len(data.Allocations))
	for _, allocation := range data.Allocations {
		if strings.TrimSpace(allocation.Category) == "" || !allocation.AllocatedAmount.IsPositive() {
			continue
		}

		rows = append(rows, models.BudgetAllocation{
			UserID:          userID,
			Month:           data.Month,
			Year:            data.Year,
			Category:        allocation.Category,
			AllocatedAmount: allocation.AllocatedAmount,
		})
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ? AND month = ? AND year = ?", userID, data.Month, data.Year).
			Delete(&models.BudgetAllocation{}).Error
		if err != nil {
			return err
		}

		if len(rows) > 0 {
			return tx.Create(&rows).Error
		}

		return nil
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, SaveBudgetResponse{
		Message: "Budget saved successfully",
		Count:   len(rows),
	})
}

// @Summary		Get budget for month
// @Description	Returns the allocations for a month merged with the actual expenses recorded for it
// @Tags			Budgets
// @Produce		json
// @Success		200		{array}		ledger.MergedRow
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	path		int	true	"Month"
// @Param			year	path		int	true	"Year"
// @Router			/api/budgets/{month}/{year} [get]
func GetBudgetMonth(c *gin.Context) {
	// The first path parameter is registered as ":id" so the wildcard
	// name stays consistent with the other /:id routes of this group
	month, err := httputil.ParseInt(c, "id")
	if err != nil {
		return
	}

	year, err := httputil.ParseInt(c, "year")
	if err != nil {
		return
	}

	userID := currentUser(c).ID

	var allocations []models.BudgetAllocation
	err = models.DB.
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category ASC").
		Find(&allocations).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// Actual spending comes from the month's record, if one exists
	var actuals []models.Expense
	var record models.MonthlyRecord
	err = models.DB.
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&record).Error
	if err == nil {
		err = models.DB.Where("record_id = ?", record.ID).Find(&actuals).Error
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, ledger.MergeMonth(month, year, allocations, actuals))
}

// @Summary		Delete allocation
// @Description	Deletes a single budget allocation
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the allocation"
// @Router			/api/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var allocation models.BudgetAllocation
	err = models.DB.Where("user_id = ?", currentUser(c).ID).First(&allocation, id).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted"})
}

// @Summary		Delete budget for month
// @Description	Deletes all allocations for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	path		int	true	"Month"
// @Param			year	path		int	true	"Year"
// @Router			/api/budgets/month/{month}/{year} [delete]
func DeleteBudgetMonth(c *gin.Context) {
	month, err := httputil.ParseInt(c, "month")
	if err != nil {
		return
	}

	year, err := httputil.ParseInt(c, "year")
	if err != nil {
		return
	}

	err = models.DB.
		Where("user_id = ? AND month = ? AND year = ?", currentUser(c).ID, month, year).
		Delete(&models.BudgetAllocation{}).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Monthly budget deleted successfully"})
}

// @Summary		Budget summary
// @Description	Returns each budgeted month's total allocation against its total actual spending
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		ledger.SummaryRow
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/budgets/summary [get]
func GetBudgetSummary(c *gin.Context) {
	userID := currentUser(c).ID

	var allocations []models.BudgetAllocation
	err := models.DB.
		Where("user_id = ?", userID).
		Order("year DESC").
		Order("month DESC").
		Find(&allocations).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	var records []models.MonthlyRecord
	err = models.DB.
		Preload("Expenses").
		Where("user_id = ?", userID).
		Find(&records).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	actuals := make(map[types.MonthYear]decimal.Decimal, len(records))
	for _, record := range records {
		var total decimal.Decimal
		for _, expense := range record.Expenses {
			total = total.Add(expense.Amount)
		}
		actuals[record.MonthYear()] = total
	}

	c.JSON(http.StatusOK, ledger.Summarize(allocations, actuals))
}
