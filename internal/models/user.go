package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the owner of all records, budgets and notes.
type User struct {
	Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash []byte `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	return nil
}
