package database

// DataStore defines the unified interface for all data operations.
// It is composed of smaller, domain-specific interfaces; consumers can depend
// on the smaller ones (e.g. TaskRepository) for clearer dependencies.
type DataStore interface {
	TaskRepository
	SettingRepository
	UserRepository
}

var _ DataStore = (*Repository)(nil)
