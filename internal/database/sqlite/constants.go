package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// dsnOptions applies to every pooled connection. _txlock=immediate makes
// BeginTx take the write lock up front so read-modify-write transactions
// serialise across processes sharing the file.
const dsnOptions = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate"

// Error Messages
const (
	ErrMsgPathRequired              = "sqlite path is required"
	ErrMsgFailedToOpen              = "failed to open sqlite database"
	ErrMsgFailedToPing              = "failed to ping sqlite database"
	ErrMsgFailedToMigrate           = "failed to migrate sqlite database"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToGetOwnedSlots     = "failed to get owned slots"
	ErrMsgFailedToCreateCollection  = "failed to create collection record"
	ErrMsgFailedToReadCollection    = "failed to read collection record"
	ErrMsgFailedToUpdateCollection  = "failed to update collection record"
	ErrMsgFailedToResetCollection   = "failed to reset collection"
	ErrMsgFailedToListCompleted     = "failed to list completed collections"
	ErrMsgFailedToGetStats          = "failed to get stats"
	ErrMsgFailedToModifyStat        = "failed to modify stat"
	ErrMsgFailedToGetTopStat        = "failed to get stat leader"
)

// Log Messages
const (
	LogMsgOpened           = "Opened sqlite database"
	LogMsgFailedToClose    = "Failed to close sqlite database"
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
