// Package rag implements the keyword retrieval that grounds the chat
// assistant. It is a linear substring scan over the flattened catalog, which
// is fine: the corpus is small, static and built once at startup.
package rag

import (
	"sort"
	"strings"

	"github.com/kariyeryolu/backend/internal/catalog"
)

const (
	bodyTokenScore  = 10
	titleTokenScore = 20
	trackBoost      = 1.5
	maxResults      = 3
	minTokenLen     = 3
)

type ScoredDocument struct {
	catalog.Document
	Score float64
}

// Tokenize lowercases the query, splits on whitespace and drops tokens
// shorter than three characters.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Search scores every document against the query and returns the top 3 with
// a positive score, descending. A non-empty trackID multiplies the score of
// documents from that track by 1.5, applied once after additive scoring.
func Search(query string, docs []catalog.Document, trackID string) []ScoredDocument {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var scored []ScoredDocument
	for _, doc := range docs {
		score := 0.0
		titleLower := strings.ToLower(doc.Title)
		for _, tok := range tokens {
			if strings.Contains(doc.Text, tok) {
				score += bodyTokenScore
			}
			if strings.Contains(titleLower, tok) {
				score += titleTokenScore
			}
		}

		if trackID != "" && doc.TrackID == trackID {
			score *= trackBoost
		}

		if score > 0 {
			scored = append(scored, ScoredDocument{Document: doc, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
