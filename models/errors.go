package models

import "errors"

var (
	ErrBirthDateRequired = errors.New("birth date is required")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidStep       = errors.New("navigation step must be one of -7, -1, 1 or 7 days")
	ErrNoDataset         = errors.New("no biorhythm data has been calculated yet")
)
