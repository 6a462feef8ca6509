package domain

import "time"

// ItemType classifies how a shop item behaves once owned.
type ItemType string

const (
	ItemTypeConsumable     ItemType = "consumable"
	ItemTypeBooster        ItemType = "booster"
	ItemTypeCosmetic       ItemType = "cosmetic"
	ItemTypePermanentBoost ItemType = "permanent_boost"
)

// Effect names carried in an item payload
const (
	EffectStaminaRefill  = "stamina_refill"
	EffectAttackPercent  = "attack_percent"
	EffectDefensePercent = "defense_percent"
	EffectHackingSkill   = "hacking_skill"
	EffectSecurityLevel  = "security_level"
	EffectAttackFlat     = "attack_flat"
	EffectDefenseFlat    = "defense_flat"
	EffectCosmeticFrame  = "cosmetic_frame"
)

// ItemPayload is the effect an item applies.
type ItemPayload struct {
	Effect   string `json:"effect"`
	Value    int    `json:"value"`
	Duration *int   `json:"duration,omitempty"` // seconds
}

// ShopItem is an immutable catalog entry.
type ShopItem struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       int         `json:"price"`
	Tier        int         `json:"tier"`
	ItemType    ItemType    `json:"item_type"`
	Payload     ItemPayload `json:"payload"`
	ImageURL    string      `json:"image_url,omitempty"`
}

// IsStaminaRefill reports whether buying the item restores stamina directly.
func (i *ShopItem) IsStaminaRefill() bool {
	return i.ItemType == ItemTypeConsumable && i.Payload.Effect == EffectStaminaRefill
}

// BoostsHacking reports whether a permanent boost targets hacking_skill
// rather than security_level.
func (i *ShopItem) BoostsHacking() bool {
	return i.Payload.Effect == EffectHackingSkill || i.Payload.Effect == EffectAttackFlat
}

// InventoryItem is a player's stack of one shop item.
type InventoryItem struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"player_id"`
	ItemID      string     `json:"item_id"`
	Qty         int        `json:"qty"`
	Activated   bool       `json:"activated"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	Version     int64      `json:"-"`

	Item *ShopItem `json:"item,omitempty"`
}

// Validate checks the quantity invariant.
func (i *InventoryItem) Validate() error {
	if i.Qty < 0 {
		return IntegrityError("inventory", "qty", i.Qty)
	}
	return nil
}
