package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kariyeryolu/backend/internal/http/response"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/services"
)

type ChatHandler struct {
	log  *logger.Logger
	chat services.ChatService
}

func NewChatHandler(baseLog *logger.Logger, chat services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:  baseLog.With("handler", "ChatHandler"),
		chat: chat,
	}
}

// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("chat request unreadable", "error", err)
		c.JSON(http.StatusInternalServerError, services.ChatResponse{
			Reply:  "Something went wrong. Please try again.",
			Source: services.SourceError,
		})
		return
	}

	response.RespondOK(c, h.chat.Chat(c.Request.Context(), req))
}
