package adapter

import (
	"context"

	"github.com/study2skills/study2skills/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AIAdapter is the boundary to the remote generation API. Every call carries
// a context so in-flight requests can be cancelled on navigation or engine
// stop. Failures surface as errors wrapping [ErrExternalService]; they are
// never silently treated as success.
type AIAdapter interface {
	GenerateRoadmap(ctx context.Context, domain string) (models.RoadmapData, error)
	AnalyzeResume(ctx context.Context, content string) (models.ResumeAnalysis, error)
	GenerateResumeContent(ctx context.Context, profile models.UserProfile) (string, error)
	GenerateInterviewQuestion(ctx context.Context, domain string, kind models.InterviewType) (string, error)
	InterviewFeedback(ctx context.Context, question, answer string, kind models.InterviewType) (models.InterviewFeedback, error)
	MarketInsights(ctx context.Context, domain string) (models.InsightsResponse, error)
	GenerateJobApplication(ctx context.Context, profile models.UserProfile, role, company string) (models.JobApplicationDraft, error)
	MentorChat(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// Notifier is the fire-and-forget notification boundary. Implementations
// must never block domain flows on delivery; errors are for logging only.
type Notifier interface {
	SendJobMatch(ctx context.Context, email, jobTitle, company string) error
	SendProgressUpdate(ctx context.Context, email string, progress int) error
	SendMentorshipConfirmation(ctx context.Context, email, mentorName string) error
}
