package record

// Deltas applied by the play operation
const (
	// GamesPlayedDelta is added to a player's game count per play invocation
	GamesPlayedDelta = 1
)

// Validation error messages
const (
	ErrMsgNoPlayerNames = "at least one player name is required"
)

// Database operation error messages
const (
	ErrMsgGetRecordFailed       = "failed to get record: %w"
	ErrMsgUpsertRecordFailed    = "failed to upsert record: %w"
	ErrMsgIncrementRecordFailed = "failed to increment record: %w"
	ErrMsgDeleteRecordFailed    = "failed to delete record: %w"
	ErrMsgListRecordsFailed     = "failed to list records: %w"
)

// Log messages
const (
	LogMsgRecordIncremented     = "Record incremented"
	LogMsgRecordSet             = "Record set"
	LogMsgRecordDeleted         = "Record deleted"
	LogMsgRetrievedRecords      = "Retrieved channel records"
	LogMsgFailedToGetRecord     = "Failed to get record"
	LogMsgFailedToUpsertRecord  = "Failed to upsert record"
	LogMsgFailedToIncrement     = "Failed to increment record"
	LogMsgFailedToDeleteRecord  = "Failed to delete record"
	LogMsgFailedToListRecords   = "Failed to list records"
)
