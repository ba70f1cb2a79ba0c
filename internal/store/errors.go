package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a user
	// fails because the user id is already present in the database.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when a profile id does not belong to the
	// user or does not exist.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrVaultNotFound is returned when a vault id is unknown. The client-side
	// vault cache returns it as well.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the version stored in
	// the database, meaning another writer has modified the vault since the
	// client last fetched it.
	ErrVersionConflict = errors.New("vault version conflict occurred")
)

// Errors specific to the client-side vault cache.
var (
	// ErrItemNotFound is returned when an item id is not present in the
	// vault it is looked up in.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemAlreadyExists is returned by AddItem when the vault already
	// holds an item with the same id.
	ErrItemAlreadyExists = errors.New("vault item already exists")

	// ErrUnsupportedItem is returned for item proxies of an unknown kind.
	ErrUnsupportedItem = errors.New("unsupported vault item")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
