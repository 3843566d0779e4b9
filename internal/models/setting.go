package models

import "time"

// Setting is a single key/value configuration entry stored with the data
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
