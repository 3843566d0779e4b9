package models

import "time"

// Task is the single entry recorded for one calendar date.
// DayNumber is cached at insert time; report reads recompute it from the
// current start date, so the stored value may lag behind a start date change.
type Task struct {
	ID        int       `json:"id"`
	Date      string    `json:"date"`
	Text      string    `json:"task"`
	DayNumber int       `json:"dayNumber"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID lets the CLI print just the id in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// Clone returns a copy that can be modified without touching the original
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// UpsertResult reports what a save-by-date did
type UpsertResult struct {
	Action UpsertAction `json:"action"`
	Task   *Task        `json:"task"`
}

// GetID returns the id of the saved task
func (r *UpsertResult) GetID() int {
	if r == nil || r.Task == nil {
		return 0
	}
	return r.Task.ID
}
