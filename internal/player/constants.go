package player

// Starting stats for newly registered players
const (
	StartingCreds         = 1000
	StartingStaminaMax    = 100
	StartingHackingSkill  = 10
	StartingSecurityLevel = 10
)

// Registration limits
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 6
)

// OpDelete is the engine operation name for admin deletes
const OpDelete = "player.delete"

// Error messages
const (
	ErrMsgHashPasswordFailed = "failed to hash password"
	ErrMsgCreatePlayerFailed = "failed to create player"
	ErrMsgGetPlayerFailed    = "failed to get player"
	ErrMsgListPlayersFailed  = "failed to list players"
	ErrMsgDeletePlayerFailed = "failed to delete player"
	ErrMsgRegenFailed        = "failed to regenerate stamina"
)

// Log messages
const (
	LogMsgPlayerRegistered   = "Player registered"
	LogMsgRegisterRefused    = "Registration refused"
	LogMsgPlayerDeleted      = "Player deleted"
	LogMsgLoginSucceeded     = "Login succeeded"
	LogMsgLoginFailed        = "Login failed"
	LogMsgStaminaRegenerated = "Stamina regenerated"
)
