package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Collection Operations
const (
	ErrMsgFailedToGetOwnedSlots    = "failed to get owned slots"
	ErrMsgFailedToCreateCollection = "failed to create collection record"
	ErrMsgFailedToLockCollection   = "failed to lock collection record"
	ErrMsgFailedToUpdateCollection = "failed to update collection record"
	ErrMsgFailedToResetCollection  = "failed to reset collection"
	ErrMsgFailedToListCompleted    = "failed to list completed collections"
	ErrMsgFailedToScanCompletedRow = "failed to scan completed collection row"
)

// Error Messages - Stats Operations
const (
	ErrMsgFailedToGetStats   = "failed to get stats"
	ErrMsgFailedToModifyStat = "failed to modify stat"
	ErrMsgFailedToGetTopStat = "failed to get stat leader"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
