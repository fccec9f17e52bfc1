package services

import (
	"github.com/kariyeryolu/backend/internal/catalog"
)

// TrackSummary is the list-endpoint shape: track metadata plus node counts.
type TrackSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalUnits  int    `json:"totalUnits"`
	TotalNodes  int    `json:"totalNodes"`
}

type TrackService interface {
	ListTracks() []TrackSummary
	GetTrack(id string) (catalog.Track, bool)
	GetNode(id string) (catalog.NodeInfo, bool)
}

type trackService struct {
	cat *catalog.Catalog
}

func NewTrackService(cat *catalog.Catalog) TrackService {
	return &trackService{cat: cat}
}

func (ts *trackService) ListTracks() []TrackSummary {
	tracks := ts.cat.Tracks()
	out := make([]TrackSummary, 0, len(tracks))
	for _, t := range tracks {
		nodes := 0
		for _, u := range t.Units {
			nodes += len(u.Nodes)
		}
		out = append(out, TrackSummary{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			TotalUnits:  len(t.Units),
			TotalNodes:  nodes,
		})
	}
	return out
}

func (ts *trackService) GetTrack(id string) (catalog.Track, bool) {
	return ts.cat.TrackByID(id)
}

func (ts *trackService) GetNode(id string) (catalog.NodeInfo, bool) {
	return ts.cat.NodeByID(id)
}
