package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

// sessionStore keeps the current-user snapshot in its own slot, independent
// of the user collection. The snapshot is a denormalized copy, not a
// reference: a crash between collection write and session write can leave
// the two views inconsistent until the next write reconciles them.
type sessionStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewSessionStore constructs the [SessionStore].
func NewSessionStore(kv KeyValueStore, logger *logger.Logger) SessionStore {
	return &sessionStore{
		kv:     kv,
		logger: logger,
	}
}

// Get returns the stored session snapshot, or ErrSessionNotFound when no
// session exists or the stored snapshot is unreadable.
func (s *sessionStore) Get(ctx context.Context) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.UserProfile{}, ErrSessionNotFound
		}
		return models.UserProfile{}, fmt.Errorf("read session: %w", err)
	}

	var user models.UserProfile
	if err = json.Unmarshal(raw, &user); err != nil {
		log.Warn().
			Err(err).
			Str("func", "sessionStore.Get").
			Msg("session snapshot corrupt, treating as absent")
		return models.UserProfile{}, ErrSessionNotFound
	}

	return user, nil
}

// Set overwrites the session snapshot with a full copy of user.
func (s *sessionStore) Set(ctx context.Context, user models.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}

	if err = s.kv.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("persist session snapshot: %w", err)
	}

	return nil
}

// Clear removes the session snapshot. Clearing an absent session is a no-op.
func (s *sessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
