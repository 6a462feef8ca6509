package handler

import (
	"net/http"

	"github.com/osse101/HackArena_Go/internal/quiz"
)

// QuizAnswerRequest submits a zero-based choice index
type QuizAnswerRequest struct {
	PlayerID   string `json:"player_id" validate:"required,max=64"`
	QuestionID string `json:"question_id" validate:"required,max=64"`
	Choice     *int   `json:"choice" validate:"required"`
}

// HandleListQuestions lists quiz questions without their answers
// @Summary List quiz questions
// @Tags quiz
// @Produce json
// @Success 200 {object} Response{data=[]domain.Question}
// @Router /api/v1/quiz/questions [get]
func HandleListQuestions(svc quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := svc.ListQuestions(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListQuestions, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", questions)
	}
}

// HandleAnswerQuiz scores an answer
// @Summary Answer a quiz question
// @Description A correct answer pays creds and XP. A wrong one costs creds, never below zero.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body QuizAnswerRequest true "Answer"
// @Success 200 {object} Response{data=domain.QuizResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/quiz/answer [post]
func HandleAnswerQuiz(svc quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizAnswerRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAnswerQuiz); err != nil {
			return
		}

		res, err := svc.SubmitAnswer(r.Context(), req.PlayerID, req.QuestionID, *req.Choice)
		if err != nil {
			respondServiceError(w, r, OpAnswerQuiz, err)
			return
		}

		msg := MsgQuizIncorrect
		if res.Correct {
			msg = MsgQuizCorrect
		}
		respondSuccess(w, http.StatusOK, msg, res)
	}
}
