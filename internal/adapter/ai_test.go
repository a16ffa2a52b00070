package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study2skills/study2skills/internal/config"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) (AIAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ai, err := NewAIAdapter(config.ClientAI{
		Address:        srv.URL,
		APIKey:         "test-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return ai, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", got)

	got, err = normalizeBaseURL("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	_, err = normalizeBaseURL("   ")
	assert.Error(t, err)
}

func TestNewAIAdapter_EmptyAddress(t *testing.T) {
	_, err := NewAIAdapter(config.ClientAI{}, logger.Nop())
	assert.Error(t, err)
}

func TestGenerateRoadmap_Success(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/roadmap", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Data Science", body["domain"])

		_ = json.NewEncoder(w).Encode(models.RoadmapData{
			Domain: "Data Science",
			Roadmap: []models.RoadmapItem{
				{Semester: 1, Focus: "Foundations"},
			},
		})
	})

	got, err := ai.GenerateRoadmap(context.Background(), "Data Science")
	require.NoError(t, err)
	assert.Equal(t, "Data Science", got.Domain)
	require.Len(t, got.Roadmap, 1)
}

func TestGenerateRoadmap_EmptyPayloadIsError(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.RoadmapData{Domain: "Data Science"})
	})

	_, err := ai.GenerateRoadmap(context.Background(), "Data Science")
	assert.ErrorIs(t, err, ErrExternalService)
}

func TestPost_NonSuccessStatus(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := ai.MarketInsights(context.Background(), "AI/ML")
	assert.ErrorIs(t, err, ErrExternalService)
}

func TestPost_MissingAPIKey(t *testing.T) {
	ai, err := NewAIAdapter(config.ClientAI{Address: "http://localhost:9"}, logger.Nop())
	require.NoError(t, err)

	_, err = ai.GenerateRoadmap(context.Background(), "AI/ML")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateJobApplication_Success(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/jobs/application", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.JobApplicationDraft{
			CoverLetter:     "Dear Hiring Team",
			TailoredSummary: "Backend-focused summary",
		})
	})

	profile := models.UserProfile{ID: "u1", Email: "a@x.com"}
	got, err := ai.GenerateJobApplication(context.Background(), profile, "Backend Engineer", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Team", got.CoverLetter)
	assert.Equal(t, "Backend-focused summary", got.TailoredSummary)
}

func TestGenerateJobApplication_EmptyCoverLetterIsError(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.JobApplicationDraft{})
	})

	_, err := ai.GenerateJobApplication(context.Background(), models.UserProfile{}, "R", "C")
	assert.ErrorIs(t, err, ErrExternalService)
}

func TestGenerateInterviewQuestion_Success(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, string(models.InterviewSkepticalCTO), body["type"])

		_ = json.NewEncoder(w).Encode(map[string]string{"question": "Why Go?"})
	})

	got, err := ai.GenerateInterviewQuestion(context.Background(), "Backend", models.InterviewSkepticalCTO)
	require.NoError(t, err)
	assert.Equal(t, "Why Go?", got)
}

func TestMentorChat_SendsHistory(t *testing.T) {
	ai, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			History []models.ChatMessage `json:"history"`
			Message string               `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.History, 1)
		assert.Equal(t, "What next?", body.Message)

		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "Practice system design."})
	})

	history := []models.ChatMessage{{ID: "1", Role: "user", Text: "Hi"}}
	got, err := ai.MentorChat(context.Background(), history, "What next?")
	require.NoError(t, err)
	assert.Equal(t, "Practice system design.", got)
}
