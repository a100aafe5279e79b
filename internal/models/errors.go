package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUsernameTaken        = errors.New("Username is already taken")
	ErrRecordMonthNotUnique = errors.New("a record for this month already exists")
	ErrNotesMonthNotUnique  = errors.New("notes for this month already exist")
)
