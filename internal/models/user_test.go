package models_test

import (
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserTrimUsername() {
	user := suite.createTestUser("  morre  ")
	assert.Equal(suite.T(), "morre", user.Username)
}

func (suite *TestSuiteStandard) TestUserUsernameUnique() {
	suite.createTestUser("morre")

	err := models.DB.Create(&models.User{
		Username:     "morre",
		PasswordHash: []byte("hash"),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrUsernameTaken)
}

func (suite *TestSuiteStandard) TestUserNotFoundMessage() {
	err := models.DB.First(&models.User{}, 4711).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no user matching your query", err.Error())
}
