package services

import "testing"

func TestListTracks_CountsUnitsAndNodes(t *testing.T) {
	ts := NewTrackService(testCatalog(t))

	tracks := ts.ListTracks()
	if len(tracks) != 14 {
		t.Fatalf("expected 14 tracks, got %d", len(tracks))
	}

	var frontend *TrackSummary
	for i := range tracks {
		if tracks[i].ID == "frontend_developer" {
			frontend = &tracks[i]
		}
	}
	if frontend == nil {
		t.Fatalf("frontend_developer missing from list")
	}
	if frontend.TotalUnits != 2 || frontend.TotalNodes != 6 {
		t.Fatalf("unexpected frontend counts: %+v", frontend)
	}
	if frontend.Title == "" || frontend.Description == "" {
		t.Fatalf("expected metadata, got %+v", frontend)
	}
}

func TestGetNode_JoinsUnitTitle(t *testing.T) {
	ts := NewTrackService(testCatalog(t))

	node, ok := ts.GetNode("be_http_intro")
	if !ok {
		t.Fatalf("expected be_http_intro")
	}
	if node.TrackID != "backend_developer" || node.UnitTitle == "" {
		t.Fatalf("unexpected node info: %+v", node)
	}
}
