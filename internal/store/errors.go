package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCategoryAlreadyExists is returned when creating a category whose
	// name is already present in the inventory.
	ErrCategoryAlreadyExists = errors.New("categoria already exists")

	// ErrCategoryNotFound is returned when an operation targets a category
	// that does not exist in the inventory.
	ErrCategoryNotFound = errors.New("categoria was not found")

	// ErrUsernameAlreadyExists is returned when adding a team member whose
	// username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrMemberNotFound is returned when a roster operation targets a member
	// id that does not exist.
	ErrMemberNotFound = errors.New("team member was not found")

	// ErrBackupNotFound is returned when a download targets a backup id that
	// does not exist.
	ErrBackupNotFound = errors.New("backup was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
