package settings

import "errors"

// Settings-related errors
var (
	ErrInvalidStartDate = errors.New("start date must be a valid YYYY-MM-DD date")
)
