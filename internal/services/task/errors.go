package task

import (
	"errors"

	"github.com/thenoetrevino/internlog/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTask       = errors.New("task description cannot be empty")
	ErrInvalidDate     = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidDayRange = errors.New("invalid day range")

	// Business logic errors
	ErrTaskNotFound    = models.ErrTaskNotFound
	ErrNothingToExport = errors.New("no tasks to export")
)
