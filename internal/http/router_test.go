package http

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/http/handlers"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/progress"
	"github.com/kariyeryolu/backend/internal/progress/blob"
	"github.com/kariyeryolu/backend/internal/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log := logger.NewNop()

	cat, err := catalog.Load("", log)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	store := progress.NewStore(blob.NewMemoryStore(), log)
	store.SetClock(func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	})

	trackSvc := services.NewTrackService(cat)
	quizSvc := services.NewQuizService(cat, log, rand.New(rand.NewSource(1)))
	recSvc := services.NewRecommendationService(cat, log)
	chatSvc := services.NewChatService(cat, nil, log, rand.New(rand.NewSource(1)))
	progSvc := services.NewProgressService(store, cat, recSvc, log)

	return NewRouter(RouterConfig{
		Log:                   log,
		HealthHandler:         handlers.NewHealthHandler(),
		TrackHandler:          handlers.NewTrackHandler(trackSvc),
		QuizHandler:           handlers.NewQuizHandler(quizSvc),
		RecommendationHandler: handlers.NewRecommendationHandler(recSvc),
		ChatHandler:           handlers.NewChatHandler(log, chatSvc),
		ProgressHandler:       handlers.NewProgressHandler(progSvc),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: bad json body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, decoded
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/healthcheck", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListTracks(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tracks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var tracks []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &tracks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tracks) != 14 {
		t.Fatalf("expected 14 tracks, got %d", len(tracks))
	}
}

func TestGetTrack_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/tracks/ghost_track", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	errObj, ok := body["error"].(map[string]any)
	if !ok || errObj["code"] != "track_not_found" {
		t.Fatalf("unexpected error envelope: %v", body)
	}
}

func TestGetNode_IncludesPosition(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/node/fe_html_intro", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["trackId"] != "frontend_developer" || body["unitId"] != "fe_u1" {
		t.Fatalf("unexpected node body: %v", body)
	}
}

func TestGetQuiz_NodeWithoutQuizIsNotAnError(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/quiz/fe_html_intro", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] == nil {
		t.Fatalf("expected explanatory message, got %v", body)
	}
	if qs, ok := body["questions"].([]any); !ok || len(qs) != 0 {
		t.Fatalf("expected empty question list, got %v", body["questions"])
	}
}

func TestGetQuiz_ReturnsQuestions(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/quiz/fe_u1_quiz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	qs, ok := body["questions"].([]any)
	if !ok || len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %v", body["questions"])
	}
}

func TestSubmitQuiz_PassAndEnvelope(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"node_id":"fe_u1_quiz","answers":{"fe_q1":"<nav>","fe_q2":"padding","fe_q3":"flexbox","fe_q4":"wrong"}}`
	w, body := doJSON(t, r, http.MethodPost, "/api/quiz/submit", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", w.Code, body)
	}
	if body["passed"] != true || body["score"] != "3/4" {
		t.Fatalf("unexpected result: %v", body)
	}
}

func TestSubmitQuiz_UnknownNode(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/quiz/submit", `{"node_id":"ghost","answers":{}}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSubmitQuiz_MalformedBody(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/quiz/submit", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRecommend_MalformedBodyStillRecommends(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/recommend", `{broken`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["track_id"] != "frontend_developer" {
		t.Fatalf("expected default recommendation, got %v", body)
	}
}

func TestRecommend_GameAnswers(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/recommend", `{"platform_preference":"game"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["track_id"] != "game_developer" {
		t.Fatalf("expected game_developer, got %v", body)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/chat", `{"message":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["source"] != "error" {
		t.Fatalf("expected error source, got %v", body)
	}
}

func TestChat_MalformedBody(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/chat", `{broken`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body["source"] != "error" {
		t.Fatalf("expected error source, got %v", body)
	}
}

func TestChat_RetrievalAnswerWithoutModel(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/chat", `{"message":"what is html"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["source"] != "rag" {
		t.Fatalf("expected rag source without a model, got %v", body)
	}
}

func TestProgressFlow(t *testing.T) {
	r := newTestRouter(t)

	// Fresh record.
	w, body := doJSON(t, r, http.MethodGet, "/api/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	stats := body["stats"].(map[string]any)
	if stats["xp"].(float64) != 0 {
		t.Fatalf("expected fresh record, got %v", stats)
	}

	// Complete a lesson.
	w, body = doJSON(t, r, http.MethodPost, "/api/progress/complete", `{"node_id":"fe_html_intro"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", w.Code, body)
	}
	if body["xp_gained"].(float64) == 0 {
		t.Fatalf("expected xp on completion: %v", body)
	}

	// Progress reflects it.
	_, body = doJSON(t, r, http.MethodGet, "/api/progress", "")
	prog := body["progress"].(map[string]any)
	nodes := prog["completedNodes"].([]any)
	if len(nodes) != 1 || nodes[0] != "fe_html_intro" {
		t.Fatalf("unexpected completed nodes: %v", nodes)
	}
	lp := body["levelProgress"].(map[string]any)
	if lp["needed"].(float64) != 100 {
		t.Fatalf("expected level 1 band of 100 xp, got %v", lp)
	}

	// Reset wipes it.
	w, _ = doJSON(t, r, http.MethodPost, "/api/progress/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	_, body = doJSON(t, r, http.MethodGet, "/api/progress", "")
	stats = body["stats"].(map[string]any)
	if stats["xp"].(float64) != 0 {
		t.Fatalf("expected cleared record, got %v", stats)
	}
}

func TestProgressCompleteLesson_UnknownNode(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/progress/complete", `{"node_id":"ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProgressCompleteQuiz_RunnerRule(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/progress/quiz", `{"node_id":"fe_u1_quiz","correct":3,"total":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", w.Code, body)
	}
	if body["passed"] != true {
		t.Fatalf("3/5 must pass the runner rule: %v", body)
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/progress/quiz", `{"node_id":"fe_u1_quiz","correct":0,"total":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid totals, got %d: %v", w.Code, body)
	}
}

func TestProgressSurvey(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/progress/survey", `{"platform_preference":"game"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	rec := body["recommendation"].(map[string]any)
	if rec["track_id"] != "game_developer" {
		t.Fatalf("expected game_developer, got %v", rec)
	}

	_, body = doJSON(t, r, http.MethodGet, "/api/progress", "")
	if body["recommendedTrack"] != "game_developer" {
		t.Fatalf("recommendation not persisted: %v", body["recommendedTrack"])
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/healthcheck", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}
