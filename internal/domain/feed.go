package domain

import "time"

// FeedType tags what kind of action produced a feed entry.
type FeedType string

const (
	FeedTypeHack       FeedType = "hack"
	FeedTypePurchase   FeedType = "purchase"
	FeedTypeActivation FeedType = "activation"
	FeedTypeTask       FeedType = "task"
	FeedTypeQuiz       FeedType = "quiz"
)

// Reaction emojis accepted on feed entries. The set is fixed.
const (
	ReactionFire  = "🔥"
	ReactionSkull = "💀"
	ReactionLaugh = "😂"
	ReactionEyes  = "👀"
)

// ReactionEmojis lists the accepted reactions in display order.
var ReactionEmojis = []string{ReactionFire, ReactionSkull, ReactionLaugh, ReactionEyes}

// IsValidReaction reports whether emoji belongs to the fixed reaction set.
func IsValidReaction(emoji string) bool {
	for _, e := range ReactionEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}

// NewReactionCounters returns a zeroed counter map covering every reaction.
func NewReactionCounters() map[string]int {
	m := make(map[string]int, len(ReactionEmojis))
	for _, e := range ReactionEmojis {
		m[e] = 0
	}
	return m
}

// FeedItem is an append-only narrated activity entry.
// Seq is assigned at commit and orders entries by commit time.
type FeedItem struct {
	ID        string         `json:"id"`
	Seq       int64          `json:"seq"`
	Type      FeedType       `json:"type"`
	Text      string         `json:"text"`
	ActorID   string         `json:"actor_id"`
	TargetID  string         `json:"target_id,omitempty"`
	Reactions map[string]int `json:"reactions"`
	CreatedAt time.Time      `json:"created_at"`
}

// Clone copies the entry including its reaction counters.
func (f *FeedItem) Clone() *FeedItem {
	c := *f
	c.Reactions = make(map[string]int, len(f.Reactions))
	for k, v := range f.Reactions {
		c.Reactions[k] = v
	}
	return &c
}
