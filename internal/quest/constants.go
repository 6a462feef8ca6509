package quest

// Operation names
const (
	OpAssign  = "task.assign"
	OpAccept  = "task.accept"
	OpClaim   = "task.claim"
	OpAdvance = "task.advance"
)

// Error messages
const (
	ErrMsgGetTaskFailed      = "failed to get task"
	ErrMsgGetPlayerFailed    = "failed to get player"
	ErrMsgGetTemplateFailed  = "failed to get task template"
	ErrMsgListTasksFailed    = "failed to list tasks"
	ErrMsgUpdateTaskFailed   = "failed to update task"
	ErrMsgUpdatePlayerFailed = "failed to update player"
	ErrMsgNarrateFailed      = "failed to narrate task"
	ErrMsgDecodePayload      = "failed to decode %s payload: %w"
)

// Result messages
const (
	MsgFmtClaimed = "Claimed %s: +%d creds, +%d XP"
)

// Log messages
const (
	LogMsgTaskAssigned    = "Task assigned"
	LogMsgTaskAccepted    = "Task accepted"
	LogMsgTaskClaimed     = "Task claimed"
	LogMsgTasksAdvanced   = "Task progress advanced"
	LogMsgTaskRefused     = "Task operation refused"
	LogMsgAdvanceFailed   = "Failed to advance task progress"
	LogMsgMissingTemplate = "Skipping task with missing template"
)
