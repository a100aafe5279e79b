package models_test

import (
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecordMonthUnique() {
	user := suite.createTestUser("morre")

	suite.createTestRecord(models.MonthlyRecord{UserID: user.ID, Month: 3, Year: 2024})

	err := models.DB.Create(&models.MonthlyRecord{UserID: user.ID, Month: 3, Year: 2024}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRecordMonthNotUnique)

	// The same month is fine for another user
	other := suite.createTestUser("other")
	suite.createTestRecord(models.MonthlyRecord{UserID: other.ID, Month: 3, Year: 2024})
}

func (suite *TestSuiteStandard) TestRecordCascadeDelete() {
	user := suite.createTestUser("morre")

	record := suite.createTestRecord(models.MonthlyRecord{
		UserID: user.ID,
		Month:  3,
		Year:   2024,
		Incomes: []models.Income{
			{Source: "Salary", Amount: decimal.NewFromInt(3000)},
		},
		Expenses: []models.Expense{
			{Name: "Rent", Amount: decimal.NewFromInt(1200)},
			{Name: "Groceries", Amount: decimal.NewFromInt(400)},
		},
	})

	suite.Require().Nil(models.DB.Delete(&record).Error)

	var incomes, expenses int64
	suite.Require().Nil(models.DB.Model(&models.Income{}).Count(&incomes).Error)
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&expenses).Error)

	assert.Zero(suite.T(), incomes)
	assert.Zero(suite.T(), expenses)
}

func (suite *TestSuiteStandard) TestRecordMonthYear() {
	record := models.MonthlyRecord{Month: 3, Year: 2024}
	assert.Equal(suite.T(), types.MonthYear{Month: 3, Year: 2024}, record.MonthYear())
}

func (suite *TestSuiteStandard) TestRecordNotFoundMessage() {
	err := models.DB.First(&models.MonthlyRecord{}, 4711).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no monthly record matching your query", err.Error())
}
