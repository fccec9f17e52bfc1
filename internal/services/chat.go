package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/platform/groq"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/rag"
)

// Chat reply sources, in degradation order.
const (
	SourceAI       = "ai"
	SourceRAG      = "rag"
	SourceFallback = "fallback"
	SourceError    = "error"
)

const (
	contextSnippetLen = 500
	ragSnippetLen     = 400
	maxHistoryTurns   = 4
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message        string        `json:"message"`
	History        []ChatMessage `json:"history,omitempty"`
	CurrentTrackID string        `json:"current_track_id,omitempty"`
}

type ContextRef struct {
	Title   string `json:"title"`
	TrackID string `json:"trackId"`
}

type ChatResponse struct {
	Reply   string       `json:"reply"`
	Source  string       `json:"source"`
	Context []ContextRef `json:"context,omitempty"`
}

var fallbackReplies = []string{
	"I could not find enough about that in the curriculum. Maybe try phrasing the question differently?",
	"I cannot give a clear answer to that right now. Keep completing lessons and we will get there!",
	"That topic is not covered in detail in the curriculum yet. More content is on the way!",
}

const systemPrompt = `You are the learning assistant of the KariyerYolu platform.

Your tasks:
- Answer questions about software development
- Give career advice
- Explain with code examples where useful
- Guide the learner through their journey

Context from the current lesson catalog:
%s

Rules:
- Only help with software and technology topics
- Keep answers short and to the point
- Explain technical terms
- Be encouraging`

type ChatService interface {
	// Chat never surfaces upstream failures: when the model is unavailable it
	// degrades to a retrieval snippet or a canned reply.
	Chat(ctx context.Context, req ChatRequest) ChatResponse
}

type chatService struct {
	cat *catalog.Catalog
	llm groq.Client // nil when no API key is configured
	log *logger.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewChatService(cat *catalog.Catalog, llm groq.Client, baseLog *logger.Logger, rng *rand.Rand) ChatService {
	return &chatService{
		cat: cat,
		llm: llm,
		log: baseLog.With("service", "ChatService"),
		rng: rng,
	}
}

func (cs *chatService) Chat(ctx context.Context, req ChatRequest) ChatResponse {
	if strings.TrimSpace(req.Message) == "" {
		return ChatResponse{
			Reply:  "Please ask a question.",
			Source: SourceError,
		}
	}

	docs := rag.Search(req.Message, cs.cat.Documents(), req.CurrentTrackID)
	refs := contextRefs(docs)

	if reply, ok := cs.generate(ctx, req, docs); ok {
		return ChatResponse{Reply: reply, Source: SourceAI, Context: refs}
	}

	if len(docs) > 0 {
		best := docs[0]
		snippet := truncate(best.Text, ragSnippetLen)
		reply := fmt.Sprintf(
			"The lesson **%s** covers this topic:\n\n%s...\n\nHave a look at the full lesson for more detail!",
			best.Title, snippet,
		)
		return ChatResponse{Reply: reply, Source: SourceRAG, Context: refs}
	}

	return ChatResponse{Reply: cs.pickFallback(), Source: SourceFallback}
}

// generate calls the model with retrieval context. Returns ok=false on any
// failure so the caller can degrade.
func (cs *chatService) generate(ctx context.Context, req ChatRequest, docs []rag.ScoredDocument) (string, bool) {
	if cs.llm == nil {
		return "", false
	}

	var b strings.Builder
	for i, d := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%s]: %s...", d.Title, truncate(d.Text, contextSnippetLen))
	}

	messages := []groq.Message{
		{Role: "system", Content: fmt.Sprintf(systemPrompt, b.String())},
	}
	history := req.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, h := range history {
		if h.Role != "user" && h.Role != "assistant" {
			continue
		}
		messages = append(messages, groq.Message{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, groq.Message{Role: "user", Content: req.Message})

	reply, err := cs.llm.ChatCompletion(ctx, messages)
	if err != nil {
		cs.log.Warn("model call failed, degrading", "error", err)
		return "", false
	}
	return reply, true
}

func (cs *chatService) pickFallback() string {
	cs.rngMu.Lock()
	defer cs.rngMu.Unlock()
	return fallbackReplies[cs.rng.Intn(len(fallbackReplies))]
}

func contextRefs(docs []rag.ScoredDocument) []ContextRef {
	if len(docs) == 0 {
		return nil
	}
	refs := make([]ContextRef, 0, len(docs))
	for _, d := range docs {
		refs = append(refs, ContextRef{Title: d.Title, TrackID: d.TrackID})
	}
	return refs
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
