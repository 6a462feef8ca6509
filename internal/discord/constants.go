package discord

// Embed colors per feed type
const (
	colorHack       = 0xE74C3C // Red
	colorPurchase   = 0x2ECC71 // Green
	colorActivation = 0x9B59B6 // Purple
	colorTask       = 0xF1C40F // Yellow
	colorQuiz       = 0x3498DB // Blue
	colorDefault    = 0x5865F2 // Discord Blurple
)

const (
	embedFooter   = "HackArena Feed"
	fieldActor    = "Actor"
	fieldTarget   = "Target"
	fieldSequence = "Seq"
)

// Log messages
const (
	logMsgRelayRegistered = "Discord feed relay registered"
	logMsgParseError      = "Failed to decode feed payload"
	logMsgSendError       = "Failed to relay feed item to Discord"
	logMsgSent            = "Feed item relayed to Discord"
)

const errMsgNilExecutor = "discord relay requires a webhook executor"
