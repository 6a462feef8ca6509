package domain

import "time"

// TaskStatus is a position in the task lifecycle.
type TaskStatus string

const (
	TaskStatusAvailable  TaskStatus = "available"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusClaimed    TaskStatus = "claimed"
	TaskStatusFailed     TaskStatus = "failed"
	TaskStatusExpired    TaskStatus = "expired"
)

// Condition types a task can track
const (
	ConditionHackWins    = "hack_wins"
	ConditionHacks       = "hacks"
	ConditionPurchases   = "purchases"
	ConditionActivations = "activations"
	ConditionQuizCorrect = "quiz_correct"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusAvailable:  {TaskStatusInProgress, TaskStatusExpired},
	TaskStatusInProgress: {TaskStatusCompleted, TaskStatusFailed, TaskStatusExpired},
	TaskStatusCompleted:  {TaskStatusClaimed},
}

// CanTransition reports whether the lifecycle allows moving from s to next.
// Transitions are monotonic; claimed, failed and expired are terminal.
func (s TaskStatus) CanTransition(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TaskCondition describes what a task counts and how many are needed.
type TaskCondition struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TaskTemplate is an immutable catalog entry describing a task and its reward.
type TaskTemplate struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	RewardCreds int           `json:"reward_creds"`
	RewardXP    int           `json:"reward_xp"`
	Condition   TaskCondition `json:"condition"`
}

// TaskProgress tracks completion toward a template's condition count.
type TaskProgress struct {
	Current int `json:"current"`
	Needed  int `json:"needed"`
}

// UserTask is one player's instance of a task template.
type UserTask struct {
	ID          string       `json:"id"`
	PlayerID    string       `json:"player_id"`
	TemplateID  string       `json:"template_id"`
	Status      TaskStatus   `json:"status"`
	Progress    TaskProgress `json:"progress"`
	AcceptedAt  *time.Time   `json:"accepted_at,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	ClaimedAt   *time.Time   `json:"claimed_at,omitempty"`
	Version     int64        `json:"-"`

	Template *TaskTemplate `json:"template,omitempty"`
}
