package catalog

import (
	"fmt"
	"strings"
)

// Catalog is the validated, read-only Track → Unit → Node tree plus the quiz
// bank. It is loaded once at startup; the rest of the backend only sees the
// narrow lookup methods below, never raw maps.
type Catalog struct {
	tracks  []Track
	byID    map[string]*Track
	nodes   map[string]NodeInfo
	quizzes map[string][]Question
	docs    []Document
}

func newCatalog(tracks []Track, quizzes map[string][]Question) (*Catalog, error) {
	c := &Catalog{
		tracks:  tracks,
		byID:    make(map[string]*Track, len(tracks)),
		nodes:   make(map[string]NodeInfo),
		quizzes: quizzes,
	}

	for i := range tracks {
		t := &tracks[i]
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("track %d: empty id", i)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate track id %q", t.ID)
		}
		c.byID[t.ID] = t

		for _, u := range t.Units {
			for _, n := range u.Nodes {
				if strings.TrimSpace(n.ID) == "" {
					return nil, fmt.Errorf("track %q unit %q: node with empty id", t.ID, u.ID)
				}
				if _, dup := c.nodes[n.ID]; dup {
					return nil, fmt.Errorf("duplicate node id %q", n.ID)
				}
				switch n.Type {
				case NodeTypeLesson, NodeTypeQuiz, NodeTypeBoss:
				default:
					return nil, fmt.Errorf("node %q: unknown type %q", n.ID, n.Type)
				}
				c.nodes[n.ID] = NodeInfo{
					Node:      n,
					TrackID:   t.ID,
					UnitID:    u.ID,
					UnitTitle: u.Title,
				}
			}
		}
	}

	c.docs = flattenDocuments(tracks)
	return c, nil
}

// minDocumentLen is the shortest trimmed node content that still becomes a
// searchable document. Shorter entries are placeholders, not teachable text.
const minDocumentLen = 20

func flattenDocuments(tracks []Track) []Document {
	var docs []Document
	for _, t := range tracks {
		for _, u := range t.Units {
			for _, n := range u.Nodes {
				if len(strings.TrimSpace(n.Content)) <= minDocumentLen {
					continue
				}
				docs = append(docs, Document{
					NodeID:  n.ID,
					TrackID: t.ID,
					Title:   n.Title,
					Text:    strings.ToLower(n.Content),
				})
			}
		}
	}
	return docs
}

// Tracks returns tracks in declaration order.
func (c *Catalog) Tracks() []Track {
	return c.tracks
}

func (c *Catalog) TrackByID(id string) (Track, bool) {
	t, ok := c.byID[id]
	if !ok {
		return Track{}, false
	}
	return *t, true
}

func (c *Catalog) HasTrack(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) NodeByID(id string) (NodeInfo, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

// QuestionsForNode returns a copy so callers can shuffle freely.
func (c *Catalog) QuestionsForNode(nodeID string) []Question {
	qs, ok := c.quizzes[nodeID]
	if !ok || len(qs) == 0 {
		return nil
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Documents returns the flattened search corpus, built once at load time.
func (c *Catalog) Documents() []Document {
	return c.docs
}
