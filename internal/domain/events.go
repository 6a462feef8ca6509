package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.purchased")
const (
	// EventTypeHackResolved is published after a hack transaction commits
	EventTypeHackResolved = "hack.resolved"

	// EventTypeItemPurchased is published after a shop purchase commits
	EventTypeItemPurchased = "item.purchased"

	// EventTypeItemActivated is published after an inventory item is activated or used
	EventTypeItemActivated = "item.activated"

	// EventTypeTaskAccepted is published when a task moves to in_progress
	EventTypeTaskAccepted = "task.accepted"

	// EventTypeTaskCompleted is published when progress reaches the needed count
	EventTypeTaskCompleted = "task.completed"

	// EventTypeTaskClaimed is published after a reward claim commits
	EventTypeTaskClaimed = "task.claimed"

	// EventTypeQuizAnswered is published after a quiz answer is applied
	EventTypeQuizAnswered = "quiz.answered"

	// EventTypeFeedPublished is published for every feed entry, in commit order
	EventTypeFeedPublished = "feed.published"

	// EventTypeStaminaRegenerated is published after a regeneration sweep
	EventTypeStaminaRegenerated = "stamina.regenerated"
)
