package handler

import (
	"net/http"

	"github.com/osse101/HackArena_Go/internal/quest"
)

// TaskActionRequest targets one of a player's tasks
type TaskActionRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	TaskID   string `json:"task_id" validate:"required,max=64"`
}

// AssignTaskRequest puts a template on a player's board
type AssignTaskRequest struct {
	PlayerID   string `json:"player_id" validate:"required,max=64"`
	TemplateID string `json:"template_id" validate:"required,max=64"`
}

// AdvanceTaskRequest reports progress toward a condition
type AdvanceTaskRequest struct {
	PlayerID  string `json:"player_id" validate:"required,max=64"`
	Condition string `json:"condition" validate:"required,condition"`
	Amount    int    `json:"amount" validate:"gte=1,max=1000"`
}

// HandleListTasks lists a player's tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param player_id query string true "Player id"
// @Success 200 {object} Response{data=[]domain.UserTask}
// @Failure 404 {object} Response
// @Router /api/v1/tasks [get]
func HandleListTasks(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		tasks, err := svc.ListTasks(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpListTasks, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", tasks)
	}
}

// HandleAcceptTask moves an available task to in_progress
// @Summary Accept a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body TaskActionRequest true "Task"
// @Success 200 {object} Response{data=domain.UserTask}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/tasks/accept [post]
func HandleAcceptTask(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TaskActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAcceptTask); err != nil {
			return
		}

		task, err := svc.Accept(r.Context(), req.PlayerID, req.TaskID)
		if err != nil {
			respondServiceError(w, r, OpAcceptTask, err)
			return
		}
		respondSuccess(w, http.StatusOK, MsgTaskAccepted, task)
	}
}

// HandleClaimTask pays out a completed task
// @Summary Claim a task reward
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body TaskActionRequest true "Task"
// @Success 200 {object} Response{data=quest.ClaimResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/tasks/claim [post]
func HandleClaimTask(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TaskActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpClaimTask); err != nil {
			return
		}

		res, err := svc.Claim(r.Context(), req.PlayerID, req.TaskID)
		if err != nil {
			respondServiceError(w, r, OpClaimTask, err)
			return
		}
		respondSuccess(w, http.StatusOK, res.Message, res)
	}
}

// HandleListTemplates lists every task template
// @Summary List task templates
// @Tags tasks
// @Produce json
// @Success 200 {object} Response{data=[]domain.TaskTemplate}
// @Router /api/v1/tasks/templates [get]
func HandleListTemplates(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := svc.ListTemplates(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListTasks, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", templates)
	}
}

// HandleAssignTask assigns a template to a player
// @Summary Assign a task (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AssignTaskRequest true "Assignment"
// @Success 201 {object} Response{data=domain.UserTask}
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/admin/tasks/assign [post]
func HandleAssignTask(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssignTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAssignTask); err != nil {
			return
		}

		task, err := svc.Assign(r.Context(), req.PlayerID, req.TemplateID)
		if err != nil {
			respondServiceError(w, r, OpAssignTask, err)
			return
		}
		respondSuccess(w, http.StatusCreated, MsgTaskAssigned, task)
	}
}

// HandleAdvanceTask records progress on every matching in-progress task
// @Summary Advance task progress (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdvanceTaskRequest true "Progress"
// @Success 200 {object} Response{data=[]domain.UserTask}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/admin/tasks/advance [post]
func HandleAdvanceTask(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdvanceTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAdvanceTask); err != nil {
			return
		}

		completed, err := svc.Advance(r.Context(), req.PlayerID, req.Condition, req.Amount)
		if err != nil {
			respondServiceError(w, r, OpAdvanceTask, err)
			return
		}
		respondSuccess(w, http.StatusOK, MsgTaskProgress, completed)
	}
}
