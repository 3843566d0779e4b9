package models

// ============================================================================
// ROLE CONSTANTS
// ============================================================================

// Role is the two-value access flag carried by every user
type Role string

const (
	// RoleAdmin may record, edit and delete tasks and change settings
	RoleAdmin Role = "admin"
	// RoleViewer may only read reports and exports
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// ============================================================================
// SETTING KEYS
// ============================================================================

// SettingStartDate anchors day numbering and progress (YYYY-MM-DD)
const SettingStartDate = "startDate"

// ============================================================================
// UPSERT ACTIONS
// ============================================================================

// UpsertAction tells the caller which branch a date upsert took
type UpsertAction string

const (
	ActionInserted UpsertAction = "inserted"
	ActionUpdated  UpsertAction = "updated"
)

// ============================================================================
// TASK LIST DEFAULTS
// ============================================================================

// DefaultTaskLimit caps the admin task list when no limit is configured
const DefaultTaskLimit = 20
