package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPersistenceUnavailable is returned (wrapped) when the local storage
	// medium cannot be reached or written. Persistence is best-effort for
	// this client; write paths surface the failure, read paths degrade to
	// empty results.
	ErrPersistenceUnavailable = errors.New("local storage unavailable")

	// ErrKeyNotFound is returned when a key has no value in the store.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSessionNotFound is returned when no session record is stored.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query against
	// the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
