package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madhannmady/Expense-tracker-application/internal/httputil"
	"github.com/madhannmady/Expense-tracker-application/internal/ledger"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxRecordNotesLength caps the free-form notes on a record.
const maxRecordNotesLength = 500

// RecordEditable defines all values that can be set when creating or
// updating a monthly record. Income and expense children always
// replace the full existing set.
type RecordEditable struct {
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	SavingsGoal decimal.Decimal   `json:"savingsGoal"`
	Notes       string            `json:"notes"`
	Incomes     []IncomeEditable  `json:"incomes"`
	Expenses    []ExpenseEditable `json:"expenses"`
}

type IncomeEditable struct {
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
}

type ExpenseEditable struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func (r RecordEditable) validate() error {
	if err := types.NewMonthYear(r.Month, r.Year).Validate(); err != nil {
		return err
	}

	if r.SavingsGoal.IsNegative() {
		return errors.New("The savings goal must not be negative")
	}

	if len(r.Notes) > maxRecordNotesLength {
		return fmt.Errorf("Notes must be %d characters or less", maxRecordNotesLength)
	}

	for _, income := range r.Incomes {
		if income.Amount.IsNegative() {
			return errors.New("Income amounts must not be negative")
		}
	}

	for _, expense := range r.Expenses {
		if expense.Amount.IsNegative() {
			return errors.New("Expense amounts must not be negative")
		}
	}

	return nil
}

func (r RecordEditable) incomeModels(recordID uint) []models.Income {
	incomes := make([]models.Income, 0, len(r.Incomes))
	for _, income := range r.Incomes {
		incomes = append(incomes, models.Income{
			RecordID: recordID,
			Source:   income.Source,
			Amount:   income.Amount,
		})
	}
	return incomes
}

func (r RecordEditable) expenseModels(recordID uint) []models.Expense {
	expenses := make([]models.Expense, 0, len(r.Expenses))
	for _, expense := range r.Expenses {
		expenses = append(expenses, models.Expense{
			RecordID: recordID,
			Name:     expense.Name,
			Amount:   expense.Amount,
		})
	}
	return expenses
}

func (r RecordEditable) model(userID uint) models.MonthlyRecord {
	return models.MonthlyRecord{
		UserID:      userID,
		Month:       r.Month,
		Year:        r.Year,
		SavingsGoal: r.SavingsGoal,
		Notes:       r.Notes,
		Incomes:     r.incomeModels(0),
		Expenses:    r.expenseModels(0),
	}
}

// RegisterRecordRoutes registers the routes for monthly records with
// the RouterGroup that is passed.
func RegisterRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetRecords)
		r.POST("", CreateRecord)
	}

	// Dashboard statistics
	{
		r.OPTIONS("/dashboard", httputil.OptionsGet)
		r.GET("/dashboard", GetDashboard)
	}

	// Record with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetRecord)
		r.PUT("/:id", UpdateRecord)
		r.DELETE("/:id", DeleteRecord)
	}
}

// fetchFullRecord returns a record with its incomes and expenses,
// scoped to the owning user.
func fetchFullRecord(id, userID uint) (models.MonthlyRecord, error) {
	var record models.MonthlyRecord
	err := models.DB.
		Preload("Incomes").
		Preload("Expenses").
		Where("user_id = ?", userID).
		First(&record, id).Error

	return record, err
}

// @Summary		Get records
// @Description	Returns all monthly records of the user, newest month first
// @Tags			Records
// @Produce		json
// @Success		200	{array}		models.MonthlyRecord
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/records [get]
func GetRecords(c *gin.Context) {
	records := make([]models.MonthlyRecord, 0)

	err := models.DB.
		Preload("Incomes").
		Preload("Expenses").
		Where("user_id = ?", currentUser(c).ID).
		Order("year DESC").
		Order("month DESC").
		Find(&records).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// @Summary		Create record
// @Description	Creates the monthly record for a month. A month can only have one record.
// @Tags			Records
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.MonthlyRecord
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			record	body		RecordEditable	true	"Record"
// @Router			/api/records [post]
func CreateRecord(c *gin.Context) {
	var data RecordEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if err := data.validate(); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	userID := currentUser(c).ID

	var count int64
	err := models.DB.
		Model(&models.MonthlyRecord{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, data.Month, data.Year).
		Count(&count).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if count > 0 {
		httputil.NewError(c, http.StatusBadRequest, fmt.Errorf("Record for %s already exists.", types.NewMonthYear(data.Month, data.Year)))
		return
	}

	record := data.model(userID)
	err = models.DB.Create(&record).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	full, err := fetchFullRecord(record.ID, userID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, full)
}

// @Summary		Get record
// @Description	Returns a specific monthly record
// @Tags			Records
// @Produce		json
// @Success		200	{object}	models.MonthlyRecord
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the record"
// @Router			/api/records/{id} [get]
func GetRecord(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	record, err := fetchFullRecord(id, currentUser(c).ID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// @Summary		Update record
// @Description	Updates a monthly record. The incomes and expenses replace the existing ones completely.
// @Tags			Records
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.MonthlyRecord
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		int				true	"ID of the record"
// @Param			record	body		RecordEditable	true	"Record"
// @Router			/api/records/{id} [put]
func UpdateRecord(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	userID := currentUser(c).ID

	record, err := fetchFullRecord(id, userID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	var data RecordEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if err := data.validate(); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	// Children are not patched in place: the old set is deleted and
	// the submitted set inserted
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"month":        data.Month,
			"year":         data.Year,
			"savings_goal": data.SavingsGoal,
			"notes":        data.Notes,
		}
		if err := tx.Model(&models.MonthlyRecord{}).Where("id = ?", record.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("record_id = ?", record.ID).Delete(&models.Income{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", record.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}

		if incomes := data.incomeModels(record.ID); len(incomes) > 0 {
			if err := tx.Create(&incomes).Error; err != nil {
				return err
			}
		}
		if expenses := data.expenseModels(record.ID); len(expenses) > 0 {
			if err := tx.Create(&expenses).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	full, err := fetchFullRecord(record.ID, userID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, full)
}

// @Summary		Delete record
// @Description	Deletes a monthly record with its incomes and expenses
// @Tags			Records
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the record"
// @Router			/api/records/{id} [delete]
func DeleteRecord(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var record models.MonthlyRecord
	err = models.DB.Where("user_id = ?", currentUser(c).ID).First(&record, id).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// Incomes and expenses are removed by the foreign key cascade
	err = models.DB.Delete(&record).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Record deleted"})
}

// @Summary		Dashboard statistics
// @Description	Returns the aggregated dashboard statistics over all records of the user
// @Tags			Records
// @Produce		json
// @Success		200	{object}	ledger.Stats
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/records/dashboard [get]
func GetDashboard(c *gin.Context) {
	var records []models.MonthlyRecord

	err := models.DB.
		Preload("Incomes").
		Preload("Expenses").
		Where("user_id = ?", currentUser(c).ID).
		Order("year ASC").
		Order("month ASC").
		Find(&records).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, ledger.Dashboard(records))
}
