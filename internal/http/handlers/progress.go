package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kariyeryolu/backend/internal/http/response"
	"github.com/kariyeryolu/backend/internal/progress"
	"github.com/kariyeryolu/backend/internal/services"
)

type ProgressHandler struct {
	prog services.ProgressService
}

func NewProgressHandler(prog services.ProgressService) *ProgressHandler {
	return &ProgressHandler{prog: prog}
}

// progressView is the full record plus the derived level band, so the UI
// renders the XP bar without reimplementing the threshold table.
type progressView struct {
	progress.UserRecord
	LevelProgress progress.LevelProgress `json:"levelProgress"`
}

// GET /api/progress
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	rec := h.prog.Record()
	response.RespondOK(c, progressView{
		UserRecord:    rec,
		LevelProgress: progress.XPForNextLevel(rec.Stats.XP),
	})
}

type completeLessonReq struct {
	NodeID string `json:"node_id"`
}

// POST /api/progress/complete
func (h *ProgressHandler) CompleteLesson(c *gin.Context) {
	var req completeLessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	res, err := h.prog.CompleteLesson(req.NodeID)
	if err != nil {
		if errors.Is(err, services.ErrNodeNotFound) {
			response.RespondError(c, http.StatusNotFound, "node_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "complete_failed", err)
		return
	}
	response.RespondOK(c, res)
}

type completeQuizReq struct {
	NodeID  string `json:"node_id"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// POST /api/progress/quiz
func (h *ProgressHandler) CompleteQuiz(c *gin.Context) {
	var req completeQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	res, err := h.prog.CompleteQuiz(req.NodeID, req.Correct, req.Total)
	if err != nil {
		if errors.Is(err, services.ErrNodeNotFound) {
			response.RespondError(c, http.StatusNotFound, "node_not_found", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "quiz_complete_failed", err)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/progress/survey
func (h *ProgressHandler) SubmitSurvey(c *gin.Context) {
	var answers map[string]string
	if err := c.ShouldBindJSON(&answers); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	response.RespondOK(c, h.prog.SubmitSurvey(answers))
}

// POST /api/progress/reset
func (h *ProgressHandler) Reset(c *gin.Context) {
	h.prog.Reset()
	response.RespondOK(c, gin.H{"reset": true})
}
