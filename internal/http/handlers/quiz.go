package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/http/response"
	"github.com/kariyeryolu/backend/internal/services"
)

type QuizHandler struct {
	quiz services.QuizService
}

func NewQuizHandler(quiz services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// GET /api/quiz/:nodeId
// Questions come back shuffled. A node without a quiz is not an error, the
// UI shows the message instead.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	nodeID := c.Param("nodeId")
	questions := h.quiz.QuestionsForNode(nodeID)
	if len(questions) == 0 {
		response.RespondOK(c, gin.H{
			"questions": []catalog.Question{},
			"message":   "No quiz has been prepared for this lesson yet",
		})
		return
	}
	response.RespondOK(c, gin.H{"questions": questions})
}

type quizSubmission struct {
	NodeID  string            `json:"node_id"`
	Answers map[string]string `json:"answers"`
}

// POST /api/quiz/submit
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req quizSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.quiz.Submit(req.NodeID, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			response.RespondError(c, http.StatusNotFound, "quiz_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "quiz_submit_failed", err)
		return
	}
	response.RespondOK(c, result)
}
