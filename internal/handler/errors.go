package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgPlayerRegistered = "Player registered"
	MsgPlayerDeleted    = "Player deleted"
	MsgLoginSuccess     = "Login successful"
	MsgTaskAccepted     = "Task accepted"
	MsgTaskAssigned     = "Task assigned"
	MsgTaskProgress     = "Task progress recorded"
	MsgReactionAdded    = "Reaction added"
	MsgHackWon          = "Breach successful"
	MsgHackLost         = "Breach failed"
	MsgQuizCorrect      = "Correct answer"
	MsgQuizIncorrect    = "Incorrect answer"
)

// Operation names used in logs
const (
	OpPreviewHack   = "Preview hack"
	OpResolveHack   = "Resolve hack"
	OpListShop      = "List shop items"
	OpPurchase      = "Purchase item"
	OpActivate      = "Activate item"
	OpGetInventory  = "Get inventory"
	OpListTasks     = "List tasks"
	OpAcceptTask    = "Accept task"
	OpClaimTask     = "Claim task"
	OpAssignTask    = "Assign task"
	OpAdvanceTask   = "Advance task"
	OpListQuestions = "List questions"
	OpAnswerQuiz    = "Answer quiz"
	OpGetFeed       = "Get feed"
	OpReact         = "React to feed item"
	OpRegister      = "Register player"
	OpGetPlayer     = "Get player"
	OpListPlayers   = "List players"
	OpDeletePlayer  = "Delete player"
	OpLogin         = "Login"
)
