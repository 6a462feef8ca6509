package domain

// HackResolvedPayload is the event payload for hack.resolved events
type HackResolvedPayload struct {
	AttackerID  string `json:"attacker_id"`
	DefenderID  string `json:"defender_id"`
	Win         bool   `json:"win"`
	LootCreds   int    `json:"loot_creds"`
	StaminaCost int    `json:"stamina_cost"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemPurchasedPayload is the event payload for item.purchased events
type ItemPurchasedPayload struct {
	PlayerID  string   `json:"player_id"`
	ItemID    string   `json:"item_id"`
	ItemType  ItemType `json:"item_type"`
	Price     int      `json:"price"`
	Timestamp int64    `json:"timestamp"`
}

// ItemActivatedPayload is the event payload for item.activated events
type ItemActivatedPayload struct {
	PlayerID     string   `json:"player_id"`
	ItemID       string   `json:"item_id"`
	ItemType     ItemType `json:"item_type"`
	RemainingQty int      `json:"remaining_qty"`
	Timestamp    int64    `json:"timestamp"`
}

// TaskPayload is the event payload for task.* events
type TaskPayload struct {
	PlayerID    string     `json:"player_id"`
	TaskID      string     `json:"task_id"`
	TemplateID  string     `json:"template_id"`
	Status      TaskStatus `json:"status"`
	RewardCreds int        `json:"reward_creds,omitempty"`
	RewardXP    int        `json:"reward_xp,omitempty"`
	Timestamp   int64      `json:"timestamp"`
}

// QuizAnsweredPayload is the event payload for quiz.answered events
type QuizAnsweredPayload struct {
	PlayerID   string `json:"player_id"`
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	CredsDelta int    `json:"creds_delta"`
	Timestamp  int64  `json:"timestamp"`
}

// FeedPublishedPayload is the event payload for feed.published events
type FeedPublishedPayload struct {
	Item FeedItem `json:"item"`
}

// StaminaRegeneratedPayload is the event payload for stamina.regenerated events
type StaminaRegeneratedPayload struct {
	PlayersAffected int64 `json:"players_affected"`
	Amount          int   `json:"amount"`
	Timestamp       int64 `json:"timestamp"`
}
