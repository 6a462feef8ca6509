package domain

// HackEmulationResult is the pure preview of a hack. Never persisted.
type HackEmulationResult struct {
	AttackerPower float64 `json:"attacker_power"`
	DefenderPower float64 `json:"defender_power"`
	WinProb       float64 `json:"win_prob"`
	StaminaCost   int     `json:"stamina_cost"`
}

// Loot is what a winning attacker takes.
type Loot struct {
	Creds int `json:"creds"`
	XP    int `json:"xp"`
}

// HackResult is the sampled outcome applied by a committed hack.
type HackResult struct {
	Win            bool   `json:"win"`
	Loot           Loot   `json:"loot"`
	AttackerXPGain int    `json:"attacker_xp_gain"`
	DefenderXPGain int    `json:"defender_xp_gain"`
	StaminaCost    int    `json:"stamina_cost"`
	FeedItemID     string `json:"feed_item_id,omitempty"`
}
