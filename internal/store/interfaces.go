package store

import (
	"context"

	"github.com/study2skills/study2skills/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistent store adapter: synchronous raw get/set/
// delete over the local medium. All repositories build on it.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UserCollectionStore persists the full user collection as one blob.
type UserCollectionStore interface {
	Load(ctx context.Context) []models.UserProfile
	Save(ctx context.Context, users []models.UserProfile) error
}

// SessionStore keeps the denormalized current-user snapshot.
type SessionStore interface {
	Get(ctx context.Context) (models.UserProfile, error)
	Set(ctx context.Context, user models.UserProfile) error
	Clear(ctx context.Context) error
}

// UserDataStore namespaces raw JSON blobs by (userID, kind).
type UserDataStore interface {
	Get(ctx context.Context, userID string, kind models.DataKind) ([]byte, bool)
	Set(ctx context.Context, userID string, kind models.DataKind, raw []byte) error
}
