package database

// DataStore defines the unified interface for all data operations.
// It is composed of smaller, domain-specific interfaces; consumers can
// depend on the smaller interfaces (e.g., CardRepository) for better
// testability and clearer dependencies.
type DataStore interface {
	BoardRepository
	ColumnRepository
	CardRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
