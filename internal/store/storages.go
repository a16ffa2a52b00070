package store

import (
	"context"
	"fmt"

	"github.com/study2skills/study2skills/internal/config"
	"github.com/study2skills/study2skills/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// KV is the raw persistent store adapter.
	KV KeyValueStore

	// Users is the blob-backed user collection.
	Users UserCollectionStore

	// Session is the current-user snapshot slot.
	Session SessionStore

	// UserData is the per-(userID, kind) JSON store.
	UserData UserDataStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the kv adapter and the repositories layered on top of it.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValueStore(db, logger)

	return &ClientStorages{
		KV:       kv,
		Users:    NewUserCollectionStore(kv, logger),
		Session:  NewSessionStore(kv, logger),
		UserData: NewUserDataStore(kv, logger),
	}, nil
}
