package postgres

// PostgreSQL error codes mapped onto domain errors
const (
	PgErrorCodeUniqueViolation      = "23505"
	PgErrorCodeForeignKeyViolation  = "23503"
	PgErrorCodeCheckViolation       = "23514"
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
)

// Constraint names referenced when translating unique violations
const (
	ConstraintPlayersUsername = "players_username_key"
	ConstraintUserTaskOwner   = "user_tasks_player_id_template_id_key"
)

// FeedLockKey is the transaction-scoped advisory lock serializing feed
// appends so seq order matches commit order.
const FeedLockKey int64 = 0x6861636b66656564

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToGetPlayer       = "failed to get player"
	ErrMsgFailedToListPlayers     = "failed to list players"
	ErrMsgFailedToInsertPlayer    = "failed to insert player"
	ErrMsgFailedToUpdatePlayer    = "failed to update player"
	ErrMsgFailedToDeletePlayer    = "failed to delete player"
	ErrMsgFailedToRegenStamina    = "failed to regenerate stamina"
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToWriteInventory  = "failed to write inventory"
	ErrMsgFailedToGetUserTasks    = "failed to get user tasks"
	ErrMsgFailedToWriteUserTask   = "failed to write user task"
	ErrMsgFailedToGetFeed         = "failed to get feed"
	ErrMsgFailedToAppendFeed      = "failed to append feed item"
	ErrMsgFailedToUpdateReactions = "failed to update reactions"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetShopItem     = "failed to get shop item"
	ErrMsgFailedToGetTaskTemplate = "failed to get task template"
	ErrMsgFailedToGetQuestion     = "failed to get question"
	ErrMsgFailedToUpsertCatalog   = "failed to upsert catalog entry"
)
