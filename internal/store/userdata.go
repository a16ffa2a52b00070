package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

// userDataStore namespaces arbitrary JSON values by (userID, kind). Entries
// are created lazily on first save, overwritten on subsequent saves, and
// never garbage-collected.
type userDataStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewUserDataStore constructs the [UserDataStore].
func NewUserDataStore(kv KeyValueStore, logger *logger.Logger) UserDataStore {
	return &userDataStore{
		kv:     kv,
		logger: logger,
	}
}

// Get returns the raw JSON stored for (userID, kind). The second return is
// false when the entry is absent; read failures also report absent so
// feature pages degrade to their empty state.
func (s *userDataStore) Get(ctx context.Context, userID string, kind models.DataKind) ([]byte, bool) {
	log := logger.FromContext(ctx)

	raw, err := s.kv.Get(ctx, userDataKey(userID, kind))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warn().
				Err(err).
				Str("func", "userDataStore.Get").
				Str("user_id", userID).
				Str("kind", string(kind)).
				Msg("user data unreadable, treating as absent")
		}
		return nil, false
	}

	return raw, true
}

// Set overwrites the raw JSON stored for (userID, kind).
func (s *userDataStore) Set(ctx context.Context, userID string, kind models.DataKind, raw []byte) error {
	if err := s.kv.Set(ctx, userDataKey(userID, kind), raw); err != nil {
		return fmt.Errorf("persist user data (kind=%s): %w", kind, err)
	}

	return nil
}
