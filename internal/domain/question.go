package domain

// Question is an immutable multiple-choice quiz entry.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Choices       []string `json:"choices"`
	CorrectChoice int      `json:"-"`
	Category      string   `json:"category,omitempty"`
}

// Quiz reward amounts
const (
	QuizCorrectCreds   = 20
	QuizCorrectXP      = 10
	QuizIncorrectCreds = -5
)

// QuizResult describes what an answer submission applied.
type QuizResult struct {
	QuestionID   string `json:"question_id"`
	Correct      bool   `json:"correct"`
	CredsDelta   int    `json:"creds_delta"`
	XPDelta      int    `json:"xp_delta"`
	CredsBalance int    `json:"creds_balance"`
}
