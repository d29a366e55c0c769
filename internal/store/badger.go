// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

// badgerSnapshotStore keeps snapshots in a Badger key-value database.
// Keys are "snap/<owner>/<type>"; values are an 8-byte big-endian
// applied-at timestamp followed by the sealed blob. An empty directory
// selects Badger's in-memory mode, used by tests and the sim command.
type badgerSnapshotStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerStore opens a Badger-backed [SnapshotStore] at dir, or an
// in-memory one when dir is empty.
func NewBadgerStore(dir string, log *logger.Logger) (SnapshotStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerStore").Str("dir", dir).Msg("error opening badger database")
		return nil, fmt.Errorf("open badger store: %w", err)
	}

	return &badgerSnapshotStore{db: db, logger: log}, nil
}

func badgerKey(key models.Key) []byte {
	return []byte(fmt.Sprintf("snap/%s/%d", key.Owner, int64(key.Type)))
}

func badgerOwnerPrefix(owner models.Owner) []byte {
	return []byte(fmt.Sprintf("snap/%s/", owner))
}

func (s *badgerSnapshotStore) Save(_ context.Context, key models.Key, blob []byte, appliedAt int64) error {
	value := make([]byte, 8+len(blob))
	binary.BigEndian.PutUint64(value, uint64(appliedAt))
	copy(value[8:], blob)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(key), value)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "badgerSnapshotStore.Save").Str("key", key.String()).Msg("failed to save snapshot")
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}

func (s *badgerSnapshotStore) Load(_ context.Context, key models.Key) ([]byte, int64, error) {
	var (
		blob      []byte
		appliedAt int64
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			if len(value) < 8 {
				return fmt.Errorf("snapshot value too short: %d bytes", len(value))
			}
			appliedAt = int64(binary.BigEndian.Uint64(value))
			blob = append([]byte(nil), value[8:]...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, 0, ErrSnapshotNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "badgerSnapshotStore.Load").Str("key", key.String()).Msg("failed to load snapshot")
		return nil, 0, fmt.Errorf("load snapshot %s: %w", key, err)
	}

	return blob, appliedAt, nil
}

func (s *badgerSnapshotStore) Delete(_ context.Context, key models.Key) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerKey(key))
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}
	return nil
}

func (s *badgerSnapshotStore) List(_ context.Context, owner models.Owner) ([]models.Key, error) {
	prefix := badgerOwnerPrefix(owner)

	var keys []models.Key
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			suffix := strings.TrimPrefix(string(it.Item().Key()), string(prefix))
			docType, err := strconv.ParseInt(suffix, 10, 64)
			if err != nil {
				return fmt.Errorf("malformed snapshot key %q: %w", it.Item().Key(), err)
			}
			keys = append(keys, models.Key{Type: models.DocumentType(docType), Owner: owner})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots for %s: %w", owner, err)
	}

	return keys, nil
}

func (s *badgerSnapshotStore) Close() error {
	return s.db.Close()
}
