package models

import "errors"

// Domain-level errors shared by the repository and service layers
var (
	// ErrTaskNotFound indicates an id-addressed task operation found no record
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateDate indicates a write would break the one-task-per-date rule
	ErrDuplicateDate = errors.New("a task already exists for this date")
)
