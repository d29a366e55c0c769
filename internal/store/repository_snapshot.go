// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

// snapshotRepository is the SQLite-backed implementation of
// [SnapshotStore]. It executes all snapshot CRUD operations against the
// "snapshots" table using the embedded [*DB] connection.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotStore] backed by the provided
// database connection and logger.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotStore {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) Save(ctx context.Context, key models.Key, blob []byte, appliedAt int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSnapshotQuery(key, blob, appliedAt)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.Save").
			Str("key", key.String()).
			Msg("failed to build query")
		return fmt.Errorf("build upsert snapshot query: %w", err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.Save").
			Str("key", key.String()).
			Msg("failed to save snapshot")
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}

	return nil
}

func (r *snapshotRepository) Load(ctx context.Context, key models.Key) ([]byte, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery(key)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.Load").
			Str("key", key.String()).
			Msg("failed to build query")
		return nil, 0, fmt.Errorf("build select snapshot query: %w", err)
	}

	var (
		blob      []byte
		appliedAt int64
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&blob, &appliedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.Load").
			Str("key", key.String()).
			Msg("failed to load snapshot")
		return nil, 0, fmt.Errorf("load snapshot %s: %w", key, err)
	}

	return blob, appliedAt, nil
}

func (r *snapshotRepository) Delete(ctx context.Context, key models.Key) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSnapshotQuery(key)
	if err != nil {
		return fmt.Errorf("build delete snapshot query: %w", err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.Delete").
			Str("key", key.String()).
			Msg("failed to delete snapshot")
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}

	return nil
}

func (r *snapshotRepository) List(ctx context.Context, owner models.Owner) ([]models.Key, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOwnerSnapshotsQuery(owner)
	if err != nil {
		return nil, fmt.Errorf("build list snapshots query: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.List").
			Str("owner", string(owner)).
			Msg("failed to list snapshots")
		return nil, fmt.Errorf("list snapshots for %s: %w", owner, err)
	}
	defer rows.Close()

	var keys []models.Key
	for rows.Next() {
		var docType int64
		if err = rows.Scan(&docType); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		keys = append(keys, models.Key{Type: models.DocumentType(docType), Owner: owner})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}

	return keys, nil
}

func (r *snapshotRepository) Close() error {
	return r.DB.Close()
}
