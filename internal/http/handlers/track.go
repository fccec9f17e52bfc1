package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kariyeryolu/backend/internal/http/response"
	"github.com/kariyeryolu/backend/internal/services"
)

type TrackHandler struct {
	tracks services.TrackService
}

func NewTrackHandler(tracks services.TrackService) *TrackHandler {
	return &TrackHandler{tracks: tracks}
}

// GET /api/tracks
func (h *TrackHandler) ListTracks(c *gin.Context) {
	response.RespondOK(c, h.tracks.ListTracks())
}

// GET /api/tracks/:id
func (h *TrackHandler) GetTrack(c *gin.Context) {
	id := c.Param("id")
	track, ok := h.tracks.GetTrack(id)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "track_not_found", errors.New("track not found"))
		return
	}
	response.RespondOK(c, track)
}

// GET /api/node/:id
func (h *TrackHandler) GetNode(c *gin.Context) {
	id := c.Param("id")
	node, ok := h.tracks.GetNode(id)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "node_not_found", errors.New("node not found"))
		return
	}
	response.RespondOK(c, node)
}
