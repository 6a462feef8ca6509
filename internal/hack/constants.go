package hack

// Operation names
const (
	OpHack = "hack"
)

// Log messages
const (
	LogMsgHackStarted    = "Hack started"
	LogMsgHackResolved   = "Hack resolved"
	LogMsgHackRejected   = "Hack rejected"
	LogMsgPreviewFailed  = "Hack preview failed"
	ErrMsgGetPlayer      = "failed to get player"
	ErrMsgUpdateAttacker = "failed to update attacker"
	ErrMsgUpdateDefender = "failed to update defender"
	ErrMsgNarrate        = "failed to narrate hack"
)
