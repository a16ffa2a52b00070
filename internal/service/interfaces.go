package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/study2skills/study2skills/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the user repository and the session lifecycle. There is
// no ambient "current user" singleton: callers hold this service and ask it.
type AuthService interface {
	// Register creates a new account, seeds its gamification state, starts
	// a session for it and initialises the empty roadmap entry.
	Register(ctx context.Context, profile models.UserProfile, password string) (models.UserProfile, error)

	// Login authenticates by email, re-asserts the derived role and writes
	// the session snapshot.
	Login(ctx context.Context, email, password string) (models.UserProfile, error)

	// Logout destroys the current session. Safe to call without one.
	Logout(ctx context.Context) error

	// CurrentUser returns the session snapshot, or false when no session
	// exists.
	CurrentUser(ctx context.Context) (models.UserProfile, bool)

	// StartGuestSession fabricates an ephemeral demo profile and stores it
	// as the session without touching the repository.
	StartGuestSession(ctx context.Context) (models.UserProfile, error)

	// UpdateProfile merges the record into the repository (matched by
	// email) and overwrites the session snapshot. A miss is a silent no-op
	// for repository purposes; the session is still refreshed.
	UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)

	// ListUsers returns the full collection. Never fails; corrupt or
	// absent data yields an empty slice.
	ListUsers(ctx context.Context) []models.UserProfile
}

// GamificationService mutates the engagement state embedded in profiles.
type GamificationService interface {
	// AwardXP adds a non-negative delta and recomputes the level. Repeated
	// calls compound; callers award once per completed unit of work.
	AwardXP(ctx context.Context, user models.UserProfile, amount int) (models.UserProfile, error)

	// AwardBadge grants a badge once; duplicate names are a no-op.
	AwardBadge(ctx context.Context, user models.UserProfile, name, description, icon string) (models.UserProfile, error)

	// RecordStudyHours adds to the lifetime study-hours total.
	RecordStudyHours(ctx context.Context, user models.UserProfile, hours float64) (models.UserProfile, error)

	// TouchStreak bumps the daily streak: same day is a no-op, next day
	// increments, a gap resets to 1.
	TouchStreak(ctx context.Context, user models.UserProfile, now time.Time) (models.UserProfile, error)
}

// AdminService exposes moderation and aggregate statistics.
type AdminService interface {
	// ToggleStatus flips active and disabled for the matching record.
	// Unknown emails are a no-op; admin records are refused.
	ToggleStatus(ctx context.Context, email string) error

	// Stats returns the aggregate projection, served from a short TTL
	// cache.
	Stats(ctx context.Context) models.AdminStats
}

// LeaderboardService ranks the collection by XP.
type LeaderboardService interface {
	// Leaderboard returns profiles sorted non-increasing by XP, ties kept
	// in collection order. With the demo fallback enabled and fewer than
	// five real users, deterministic seed profiles are blended in.
	Leaderboard(ctx context.Context) []models.UserProfile
}

// UserDataService is the typed registry over the per-user data store.
type UserDataService interface {
	SaveRoadmap(ctx context.Context, userID string, roadmap models.RoadmapData) error
	Roadmap(ctx context.Context, userID string) (models.RoadmapData, bool)

	MarkCourseCompleted(ctx context.Context, userID, courseID string) error
	CompletedCourses(ctx context.Context, userID string) []string

	SaveResumeVersion(ctx context.Context, userID string, version models.ResumeVersion) error
	ResumeVersions(ctx context.Context, userID string) []models.ResumeVersion

	SaveMentors(ctx context.Context, userID string, mentors []models.Mentor) error
	Mentors(ctx context.Context, userID string) []models.Mentor

	SaveChatHistory(ctx context.Context, userID string, history []models.ChatMessage) error
	ChatHistory(ctx context.Context, userID string) []models.ChatMessage

	// Export collects the raw entries of every known kind present for the
	// user, keyed by kind.
	Export(ctx context.Context, userID string) map[models.DataKind]json.RawMessage

	// SaveRaw and GetRaw expose the underlying (userID, kind) storage for
	// round-trip use by feature pages that own their own schema.
	SaveRaw(ctx context.Context, userID string, kind models.DataKind, value any) error
	GetRaw(ctx context.Context, userID string, kind models.DataKind, out any) bool
}

// JobEngine drives the simulated application automation queue. One task
// advances one state per tick; the engine halts itself when every task is
// Applied. Stop pauses at a tick boundary and a later Start resumes from
// the exact queue state.
type JobEngine interface {
	Enqueue(tasks ...models.JobApplication)
	Start(ctx context.Context)
	Stop()
	Running() bool
	Snapshot() []models.JobApplication
	Done() bool
}
