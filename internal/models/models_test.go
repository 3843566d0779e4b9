package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrTaskNotFound, "task not found"},
		{ErrDuplicateDate, "a task already exists for this date"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrTaskNotFound, ErrDuplicateDate) {
		t.Error("ErrTaskNotFound should not equal ErrDuplicateDate")
	}
}

// ============================================================================
// Role Tests
// ============================================================================

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleViewer, true},
		{Role("owner"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestUser_IsAdmin(t *testing.T) {
	var nilUser *User
	if nilUser.IsAdmin() {
		t.Error("nil user should not be admin")
	}

	admin := &User{Username: "admin", Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Error("Expected admin user to be admin")
	}

	viewer := &User{Username: "admin2", Role: RoleViewer}
	if viewer.IsAdmin() {
		t.Error("Expected viewer user not to be admin")
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: 3, Date: "2024-01-03", Text: "Write docs", DayNumber: 3}

	c := orig.Clone()
	c.Text = "changed"
	c.DayNumber = 9

	if orig.Text != "Write docs" {
		t.Errorf("Clone should not alias the original, got text %q", orig.Text)
	}
	if orig.DayNumber != 3 {
		t.Errorf("Clone should not alias the original, got day %d", orig.DayNumber)
	}

	var nilTask *Task
	if nilTask.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestUpsertResult_GetID(t *testing.T) {
	var nilResult *UpsertResult
	if nilResult.GetID() != 0 {
		t.Error("nil result should report id 0")
	}

	r := &UpsertResult{Action: ActionInserted, Task: &Task{ID: 42}}
	if r.GetID() != 42 {
		t.Errorf("Expected id 42, got %d", r.GetID())
	}
}
