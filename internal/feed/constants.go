package feed

// Feed query limits
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Narration templates. Numbers are formatted with the locale printer.
const (
	TmplHackWin        = "%s breached %s and siphoned %d creds"
	TmplHackLoss       = "%s tried to breach %s and got traced"
	TmplPurchase       = "%s bought %s"
	TmplBoostActivated = "%s installed %s: %s +%d"
	TmplItemActivated  = "%s activated %s"
	TmplTaskClaimed    = "%s completed %s for %d creds"
)

// Log messages
const (
	LogMsgFeedAppended  = "Feed item appended"
	LogMsgReactionAdded = "Feed reaction added"
	LogMsgReactFailed   = "Failed to add feed reaction"
)

// Error messages
const (
	ErrMsgAppendFeedFailed = "failed to append feed item"
	ErrMsgGetFeedFailed    = "failed to load feed"
	ErrMsgReadFeedFailed   = "failed to read feed item"
	ErrMsgUpdateReactions  = "failed to update reactions"
)

// OpReact is the engine operation name for reactions
const OpReact = "feed.react"
