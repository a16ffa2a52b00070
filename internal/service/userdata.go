package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/store"
	"github.com/study2skills/study2skills/models"
)

type userDataService struct {
	data store.UserDataStore

	logger *logger.Logger
}

// NewUserDataService constructs the [UserDataService]: the typed registry
// of known per-user data kinds over the generic (userID, kind) store.
func NewUserDataService(data store.UserDataStore, logger *logger.Logger) UserDataService {
	return &userDataService{data: data, logger: logger}
}

// SaveRaw implements [UserDataService].
func (s *userDataService) SaveRaw(ctx context.Context, userID string, kind models.DataKind, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode user data (kind=%s): %w", kind, err)
	}

	return s.data.Set(ctx, userID, kind, raw)
}

// GetRaw implements [UserDataService]. Returns false when the entry is
// absent or the stored JSON does not decode into out.
func (s *userDataService) GetRaw(ctx context.Context, userID string, kind models.DataKind, out any) bool {
	raw, ok := s.data.Get(ctx, userID, kind)
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "userDataService.GetRaw").
			Str("user_id", userID).
			Str("kind", string(kind)).
			Msg("stored user data does not match expected shape")
		return false
	}

	return true
}

// SaveRoadmap implements [UserDataService].
func (s *userDataService) SaveRoadmap(ctx context.Context, userID string, roadmap models.RoadmapData) error {
	return s.SaveRaw(ctx, userID, models.DataKindRoadmap, roadmap)
}

// Roadmap implements [UserDataService]. The registration-time seed is a
// JSON null, which decodes into the zero value and reports absent.
func (s *userDataService) Roadmap(ctx context.Context, userID string) (models.RoadmapData, bool) {
	var roadmap models.RoadmapData
	if !s.GetRaw(ctx, userID, models.DataKindRoadmap, &roadmap) {
		return models.RoadmapData{}, false
	}
	if len(roadmap.Roadmap) == 0 {
		return models.RoadmapData{}, false
	}

	return roadmap, true
}

// MarkCourseCompleted implements [UserDataService]. Completion is a set:
// marking the same course twice is a no-op.
func (s *userDataService) MarkCourseCompleted(ctx context.Context, userID, courseID string) error {
	completed := s.CompletedCourses(ctx, userID)
	for _, id := range completed {
		if id == courseID {
			return nil
		}
	}

	completed = append(completed, courseID)
	return s.SaveRaw(ctx, userID, models.DataKindCompletedCourses, completed)
}

// CompletedCourses implements [UserDataService].
func (s *userDataService) CompletedCourses(ctx context.Context, userID string) []string {
	var completed []string
	if !s.GetRaw(ctx, userID, models.DataKindCompletedCourses, &completed) {
		return []string{}
	}

	return completed
}

// SaveResumeVersion implements [UserDataService]. Versions accumulate;
// history is never truncated.
func (s *userDataService) SaveResumeVersion(ctx context.Context, userID string, version models.ResumeVersion) error {
	versions := s.ResumeVersions(ctx, userID)
	versions = append(versions, version)

	return s.SaveRaw(ctx, userID, models.DataKindResumeVersions, versions)
}

// ResumeVersions implements [UserDataService].
func (s *userDataService) ResumeVersions(ctx context.Context, userID string) []models.ResumeVersion {
	var versions []models.ResumeVersion
	if !s.GetRaw(ctx, userID, models.DataKindResumeVersions, &versions) {
		return []models.ResumeVersion{}
	}

	return versions
}

// SaveMentors implements [UserDataService]. The directory is replaced whole.
func (s *userDataService) SaveMentors(ctx context.Context, userID string, mentors []models.Mentor) error {
	return s.SaveRaw(ctx, userID, models.DataKindMentors, mentors)
}

// Mentors implements [UserDataService].
func (s *userDataService) Mentors(ctx context.Context, userID string) []models.Mentor {
	var mentors []models.Mentor
	if !s.GetRaw(ctx, userID, models.DataKindMentors, &mentors) {
		return []models.Mentor{}
	}

	return mentors
}

// SaveChatHistory implements [UserDataService]. The transcript is replaced
// whole; callers append before saving.
func (s *userDataService) SaveChatHistory(ctx context.Context, userID string, history []models.ChatMessage) error {
	return s.SaveRaw(ctx, userID, models.DataKindChatHistory, history)
}

// ChatHistory implements [UserDataService].
func (s *userDataService) ChatHistory(ctx context.Context, userID string) []models.ChatMessage {
	var history []models.ChatMessage
	if !s.GetRaw(ctx, userID, models.DataKindChatHistory, &history) {
		return []models.ChatMessage{}
	}

	return history
}

// Export implements [UserDataService]. Only kinds with a stored entry appear
// in the result; the raw bytes are returned untouched.
func (s *userDataService) Export(ctx context.Context, userID string) map[models.DataKind]json.RawMessage {
	out := make(map[models.DataKind]json.RawMessage)
	for _, kind := range models.KnownDataKinds {
		raw, ok := s.data.Get(ctx, userID, kind)
		if !ok {
			continue
		}
		out[kind] = json.RawMessage(raw)
	}

	return out
}
