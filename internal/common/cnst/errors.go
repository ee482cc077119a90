package cnst

import "errors"

var (
	// ErrUnsupportedDatabaseType is returned when the configured database type is unknown
	ErrUnsupportedDatabaseType = errors.New("unsupported database type")
	// ErrTransactionRequired is returned when a cascade runs outside a transaction
	ErrTransactionRequired = errors.New("operation requires a transaction")
)
