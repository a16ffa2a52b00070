package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/study2skills/study2skills/internal/config"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

type aiAdapter struct {
	client *resty.Client
	apiKey string

	logger *logger.Logger
}

// NewAIAdapter constructs the HTTP implementation of [AIAdapter]. It
// normalises and validates the base URL from cfg.Address and configures the
// underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewAIAdapter(cfg config.ClientAI, logger *logger.Logger) (AIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid generation API address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &aiAdapter{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// post sends an authenticated JSON request and decodes the 2xx body into
// result. Non-2xx statuses and transport failures map to ErrExternalService.
func (a *aiAdapter) post(ctx context.Context, path string, body any, result any) error {
	if a.apiKey == "" {
		return ErrMissingAPIKey
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(a.apiKey).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if resp.IsError() {
		a.logger.Warn().
			Str("func", "aiAdapter.post").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("generation API returned error status")
		return fmt.Errorf("%w: status %d", ErrExternalService, resp.StatusCode())
	}

	return nil
}

// GenerateRoadmap implements [AIAdapter]. It requests a multi-semester
// learning roadmap for the given domain.
func (a *aiAdapter) GenerateRoadmap(ctx context.Context, domain string) (models.RoadmapData, error) {
	var out models.RoadmapData
	err := a.post(ctx, "/v1/roadmap", map[string]string{"domain": domain}, &out)
	if err != nil {
		return models.RoadmapData{}, fmt.Errorf("generate roadmap: %w", err)
	}
	if len(out.Roadmap) == 0 {
		return models.RoadmapData{}, fmt.Errorf("generate roadmap: %w: empty roadmap in response", ErrExternalService)
	}

	return out, nil
}

// AnalyzeResume implements [AIAdapter]. It submits resume text for scoring.
func (a *aiAdapter) AnalyzeResume(ctx context.Context, content string) (models.ResumeAnalysis, error) {
	var out models.ResumeAnalysis
	err := a.post(ctx, "/v1/resume/analyze", map[string]string{"content": content}, &out)
	if err != nil {
		return models.ResumeAnalysis{}, fmt.Errorf("analyze resume: %w", err)
	}

	return out, nil
}

// GenerateResumeContent implements [AIAdapter]. It asks for a full resume
// draft built from the profile.
func (a *aiAdapter) GenerateResumeContent(ctx context.Context, profile models.UserProfile) (string, error) {
	var out struct {
		Content string `json:"content"`
	}
	err := a.post(ctx, "/v1/resume/generate", map[string]any{"profile": profile}, &out)
	if err != nil {
		return "", fmt.Errorf("generate resume content: %w", err)
	}
	if out.Content == "" {
		return "", fmt.Errorf("generate resume content: %w: empty content in response", ErrExternalService)
	}

	return out.Content, nil
}

// GenerateInterviewQuestion implements [AIAdapter].
func (a *aiAdapter) GenerateInterviewQuestion(ctx context.Context, domain string, kind models.InterviewType) (string, error) {
	var out struct {
		Question string `json:"question"`
	}
	body := map[string]string{"domain": domain, "type": string(kind)}
	if err := a.post(ctx, "/v1/interview/question", body, &out); err != nil {
		return "", fmt.Errorf("generate interview question: %w", err)
	}
	if out.Question == "" {
		return "", fmt.Errorf("generate interview question: %w: empty question in response", ErrExternalService)
	}

	return out.Question, nil
}

// InterviewFeedback implements [AIAdapter]. It grades one answer.
func (a *aiAdapter) InterviewFeedback(ctx context.Context, question, answer string, kind models.InterviewType) (models.InterviewFeedback, error) {
	var out models.InterviewFeedback
	body := map[string]string{"question": question, "answer": answer, "type": string(kind)}
	if err := a.post(ctx, "/v1/interview/feedback", body, &out); err != nil {
		return models.InterviewFeedback{}, fmt.Errorf("interview feedback: %w", err)
	}

	return out, nil
}

// MarketInsights implements [AIAdapter]. It returns demand/growth trends
// with grounding sources for a domain.
func (a *aiAdapter) MarketInsights(ctx context.Context, domain string) (models.InsightsResponse, error) {
	var out models.InsightsResponse
	if err := a.post(ctx, "/v1/insights", map[string]string{"domain": domain}, &out); err != nil {
		return models.InsightsResponse{}, fmt.Errorf("market insights: %w", err)
	}

	return out, nil
}

// GenerateJobApplication implements [AIAdapter]. It produces the cover
// letter and tailored summary consumed by the automation engine.
func (a *aiAdapter) GenerateJobApplication(ctx context.Context, profile models.UserProfile, role, company string) (models.JobApplicationDraft, error) {
	var out models.JobApplicationDraft
	body := map[string]any{"profile": profile, "role": role, "company": company}
	if err := a.post(ctx, "/v1/jobs/application", body, &out); err != nil {
		return models.JobApplicationDraft{}, fmt.Errorf("generate job application: %w", err)
	}
	if out.CoverLetter == "" {
		return models.JobApplicationDraft{}, fmt.Errorf("generate job application: %w: empty cover letter in response", ErrExternalService)
	}

	return out, nil
}

// MentorChat implements [AIAdapter]. It sends the running history plus the
// new message and returns the model's reply.
func (a *aiAdapter) MentorChat(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	body := map[string]any{"history": history, "message": message}
	if err := a.post(ctx, "/v1/chat", body, &out); err != nil {
		return "", fmt.Errorf("mentor chat: %w", err)
	}

	return out.Reply, nil
}
