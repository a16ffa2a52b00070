package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

// userCollectionStore persists the whole user collection as one JSON blob
// under a single key. There is no per-record addressing at this level;
// callers read-modify-write the full slice.
type userCollectionStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewUserCollectionStore constructs the blob-backed [UserCollectionStore].
func NewUserCollectionStore(kv KeyValueStore, logger *logger.Logger) UserCollectionStore {
	return &userCollectionStore{
		kv:     kv,
		logger: logger,
	}
}

// Load returns the full deserialized collection. Absent or corrupt data
// yields an empty slice, never an error: the read path is resilient so UI
// listings survive a damaged blob.
func (s *userCollectionStore) Load(ctx context.Context) []models.UserProfile {
	log := logger.FromContext(ctx)

	raw, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warn().
				Err(err).
				Str("func", "userCollectionStore.Load").
				Msg("user collection unreadable, treating as empty")
		}
		return []models.UserProfile{}
	}

	var users []models.UserProfile
	if err = json.Unmarshal(raw, &users); err != nil {
		log.Warn().
			Err(err).
			Str("func", "userCollectionStore.Load").
			Msg("user collection corrupt, treating as empty")
		return []models.UserProfile{}
	}

	return users
}

// Save serializes and persists the full collection, replacing the previous
// blob.
func (s *userCollectionStore) Save(ctx context.Context, users []models.UserProfile) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user collection: %w", err)
	}

	if err = s.kv.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("persist user collection: %w", err)
	}

	return nil
}
