package economy

// Operation names
const (
	OpPurchase = "shop.purchase"
	OpActivate = "inventory.activate"
)

// FeedMinTier is the lowest item tier whose purchase or activation is
// narrated in the feed. Permanent boosts always narrate.
const FeedMinTier = 2

// ==================== Error Messages ====================

const (
	ErrMsgListShopFailed        = "failed to list shop items"
	ErrMsgGetItemFailed         = "failed to get item"
	ErrMsgGetPlayerFailed       = "failed to get player"
	ErrMsgGetInventoryFailed    = "failed to get inventory"
	ErrMsgUpdatePlayerFailed    = "failed to update player"
	ErrMsgUpdateInventoryFailed = "failed to update inventory"
	ErrMsgNarrateFailed         = "failed to narrate"
)

// ==================== Result Messages ====================

const (
	MsgFmtPurchased = "Purchased %s!"
	MsgFmtActivated = "Activated %s!"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchaseCalled  = "Purchase called"
	LogMsgItemPurchased   = "Item purchased"
	LogMsgPurchaseRefused = "Purchase refused"
	LogMsgActivateCalled  = "Activate called"
	LogMsgItemActivated   = "Item activated"
	LogMsgActivateRefused = "Activation refused"
)
