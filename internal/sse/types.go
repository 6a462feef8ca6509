package sse

// HackPayload is the public slice of a resolved hack
type HackPayload struct {
	AttackerID string `json:"attacker_id"`
	DefenderID string `json:"defender_id"`
	Win        bool   `json:"win"`
	LootCreds  int    `json:"loot_creds"`
}

// StaminaPayload tells clients to refresh stamina bars
type StaminaPayload struct {
	PlayersAffected int64 `json:"players_affected"`
	Amount          int   `json:"amount"`
}

// ValidEventTypes lists the types a client may filter on
var ValidEventTypes = map[string]bool{
	EventTypeFeed:    true,
	EventTypeHack:    true,
	EventTypeStamina: true,
}
