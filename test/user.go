package test

import (
	"testing"

	"github.com/madhannmady/Expense-tracker-application/internal/auth"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/stretchr/testify/require"
)

// CreateUser creates a user directly in the database and returns it
// together with an Authorization header for requests on its behalf.
func CreateUser(t *testing.T, username string) (models.User, map[string]string) {
	hash, err := auth.HashPassword("sup3r-secret")
	require.Nil(t, err)

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	require.Nil(t, models.DB.Create(&user).Error)

	token, err := auth.NewToken(user)
	require.Nil(t, err)

	return user, map[string]string{"Authorization": "Bearer " + token}
}
