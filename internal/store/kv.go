package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/study2skills/study2skills/internal/logger"
)

// kvStore is the persistent store adapter: raw get/set/delete over the kv
// table. All higher repositories read-modify-write through it. No
// transactional guarantees across keys; last writer wins.
type kvStore struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueStore constructs the SQLite-backed [KeyValueStore].
func NewKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &kvStore{
		DB:     db,
		logger: logger,
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value []byte
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		log.Err(err).
			Str("func", "kvStore.Get").
			Str("key", key).
			Msg("failed to query kv entry")
		return nil, fmt.Errorf("%w: %w: %v", ErrPersistenceUnavailable, ErrExecutingQuery, err)
	}
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		log.Err(err).
			Str("func", "kvStore.Get").
			Str("key", key).
			Msg("failed to scan kv row")
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvStore.Set").
			Str("key", key).
			Msg("failed to execute upsert for kv entry")
		return fmt.Errorf("%w: %w: %v", ErrPersistenceUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvStore.Delete").
			Str("key", key).
			Msg("failed to execute delete for kv entry")
		return fmt.Errorf("%w: %w: %v", ErrPersistenceUnavailable, ErrExecutingStatement, err)
	}

	return nil
}
