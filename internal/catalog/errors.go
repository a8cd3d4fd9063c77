package catalog

import "errors"

var (
	// ErrNotFound reports a lookup that matched no row.
	ErrNotFound = errors.New("catalog: not found")
	// ErrDuplicate reports an insert that collides with an existing name.
	ErrDuplicate = errors.New("catalog: already exists")
	// ErrSchemaMismatch indicates the database was migrated by a newer build.
	ErrSchemaMismatch = errors.New("catalog: schema version mismatch")
	// ErrInvalidRecord reports a record that fails validation before insert.
	ErrInvalidRecord = errors.New("catalog: invalid record")
)
