package store

import "errors"

// Sentinel errors returned by blob and counter storages to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrBlobNotFound is returned when no blob is stored under the requested
	// namespace and id.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrBlobExists is returned by an exclusive create when a blob is already
	// stored under the requested namespace and id.
	ErrBlobExists = errors.New("blob already exists")

	// ErrUnknownNamespace is returned when a namespace other than
	// [models.NamespaceNotes] or [models.NamespaceShared] is used.
	ErrUnknownNamespace = errors.New("unknown blob namespace")

	// ErrInvalidBlobID is returned when an id cannot be used as a storage key
	// (empty, or containing a path separator).
	ErrInvalidBlobID = errors.New("invalid blob id")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
