// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/session-foundation/configsync/internal/crypto"
	"github.com/session-foundation/configsync/internal/engine"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/projection"
	"github.com/session-foundation/configsync/internal/store"
	"github.com/session-foundation/configsync/models"
)

type coordinator struct {
	keyring   crypto.KeyringService
	snapshots store.SnapshotStore
	projector projection.Projector
	registry  *Registry
	logger    *logger.Logger
}

// NewCoordinator constructs a [Coordinator] over the given keyring,
// snapshot store and projector.
func NewCoordinator(keyring crypto.KeyringService, snapshots store.SnapshotStore, projector projection.Projector, log *logger.Logger) Coordinator {
	return &coordinator{
		keyring:   keyring,
		snapshots: snapshots,
		projector: projector,
		registry:  NewRegistry(),
		logger:    log,
	}
}

func (c *coordinator) Load(ctx context.Context, key models.Key) error {
	log := logger.FromContext(ctx)

	sealer, err := c.keyring.SealerFor(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUserDoesNotExist, err)
	}

	blob, _, err := c.snapshots.Load(ctx, key)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		blob = nil
	} else if err != nil {
		log.Err(err).Str("func", "coordinator.Load").Str("key", key.String()).Msg("failed to load snapshot")
		return fmt.Errorf("%w: %w", ErrUnableToLoadObject, err)
	}

	obj, err := engine.New(key, sealer, blob, c.logger)
	if err != nil {
		log.Err(err).Str("func", "coordinator.Load").Str("key", key.String()).Msg("failed to restore config object")
		return fmt.Errorf("%w: %w", ErrUnableToLoadObject, err)
	}

	c.registry.Put(key, obj)
	log.Debug().Str("func", "coordinator.Load").Str("key", key.String()).Bool("fresh", blob == nil).Msg("config object loaded")
	return nil
}

func (c *coordinator) LoadAll(ctx context.Context, owner models.Owner) error {
	for _, typ := range models.AllDocumentTypes() {
		if err := c.Load(ctx, models.Key{Type: typ, Owner: owner}); err != nil {
			return err
		}
	}
	return nil
}

func (c *coordinator) Remove(ctx context.Context, key models.Key) error {
	c.registry.Delete(key)
	if err := c.snapshots.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove snapshot %s: %w", key, err)
	}
	return nil
}

func (c *coordinator) SetField(ctx context.Context, key models.Key, field string, value any) error {
	var dump []byte
	err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
		if err := obj.Set(field, value); err != nil {
			return err
		}
		return c.stageDump(obj, &dump)
	})
	if err != nil {
		return err
	}
	return c.persistDump(ctx, key, dump)
}

func (c *coordinator) DeleteField(ctx context.Context, key models.Key, field string) error {
	var dump []byte
	err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
		if err := obj.DeleteField(field); err != nil {
			return err
		}
		return c.stageDump(obj, &dump)
	})
	if err != nil {
		return err
	}
	return c.persistDump(ctx, key, dump)
}

func (c *coordinator) GetField(ctx context.Context, key models.Key, field string, target any) (bool, error) {
	var found bool
	err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
		ok, err := obj.GetInto(field, target)
		found = ok
		return err
	})
	return found, err
}

func (c *coordinator) CurrentFields(ctx context.Context, key models.Key) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
		fields = obj.CurrentFields()
		return nil
	})
	return fields, err
}

func (c *coordinator) PendingChanges(ctx context.Context, owner models.Owner) (models.PendingChanges, error) {
	if !c.keyring.Has(owner) {
		return models.PendingChanges{}, ErrUserDoesNotExist
	}

	var pending models.PendingChanges
	for _, key := range c.registry.KeysForOwner(owner) {
		err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
			pending.ObsoleteHashes = append(pending.ObsoleteHashes, obj.ObsoleteHashes()...)
			if !obj.NeedsPush() {
				return nil
			}
			payload, seqno, err := obj.Push()
			if err != nil {
				return fmt.Errorf("generate push for %s: %w", key, err)
			}
			pending.Pushes = append(pending.Pushes, models.PendingPush{
				Type:    key.Type,
				Payload: payload,
				Seqno:   seqno,
			})
			return nil
		})
		if err != nil {
			return models.PendingChanges{}, err
		}
	}

	return pending, nil
}

func (c *coordinator) MergeIncoming(ctx context.Context, owner models.Owner, batch []models.IncomingMessage) (models.MergeResult, error) {
	log := logger.FromContext(ctx)

	if !c.keyring.Has(owner) {
		return models.MergeResult{}, ErrUserDoesNotExist
	}

	// Validate the batch envelope up front so a malformed entry rejects
	// the whole call before any document has been mutated or persisted.
	for i, msg := range batch {
		if msg.Payload == nil || msg.Hash == "" {
			return models.MergeResult{}, fmt.Errorf("%w: entry %d has no payload or hash", engine.ErrMalformedBatch, i)
		}
	}

	byType := make(map[models.DocumentType][]models.IncomingMessage)
	for _, msg := range batch {
		byType[msg.Type] = append(byType[msg.Type], msg)
	}

	var total models.MergeResult
	for _, typ := range models.AllDocumentTypes() {
		msgs, ok := byType[typ]
		if !ok {
			continue
		}
		key := models.Key{Type: typ, Owner: owner}

		if !c.registry.Has(key) {
			if err := c.Load(ctx, key); err != nil {
				return total, err
			}
		}

		var (
			dump []byte
			res  models.MergeResult
		)
		err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
			var mergeErr error
			res, mergeErr = obj.Merge(msgs)
			if mergeErr != nil {
				return mergeErr
			}
			return c.stageDump(obj, &dump)
		})
		if err != nil {
			return total, fmt.Errorf("merge %s: %w", key, err)
		}

		// I/O happens only after the per-document lock is released.
		if err = c.persistDump(ctx, key, dump); err != nil {
			return total, err
		}
		if len(res.Changes) > 0 {
			if err = c.projector.Project(ctx, res.Changes); err != nil {
				log.Err(err).Str("func", "coordinator.MergeIncoming").Str("key", key.String()).Msg("projection failed")
			}
		}

		total.Incorporated = append(total.Incorporated, res.Incorporated...)
		total.Changes = append(total.Changes, res.Changes...)
		if res.MaxTimestamp > total.MaxTimestamp {
			total.MaxTimestamp = res.MaxTimestamp
		}
	}

	return total, nil
}

func (c *coordinator) ConfirmPushed(ctx context.Context, key models.Key, seqno int64, relayHash string) error {
	var dump []byte
	err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
		obj.ConfirmPushed(seqno, relayHash)
		return c.stageDump(obj, &dump)
	})
	if err != nil {
		return err
	}
	return c.persistDump(ctx, key, dump)
}

func (c *coordinator) PruneObsolete(ctx context.Context, key models.Key, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}
	var dump []byte
	err := c.registry.Mutate(ctx, key, func(obj *engine.Object) error {
		obj.ClearObsolete(hashes)
		return c.stageDump(obj, &dump)
	})
	if err != nil {
		return err
	}
	return c.persistDump(ctx, key, dump)
}

// stageDump serializes the object's state while its lock is held, leaving
// the write to the snapshot store for after release. dump stays nil when
// the object has nothing new to persist.
func (c *coordinator) stageDump(obj *engine.Object, dump *[]byte) error {
	if !obj.NeedsDump() {
		return nil
	}
	blob, err := obj.Dump()
	if err != nil {
		return fmt.Errorf("generate dump: %w", err)
	}
	*dump = blob
	return nil
}

func (c *coordinator) persistDump(ctx context.Context, key models.Key, dump []byte) error {
	if dump == nil {
		return nil
	}
	if err := c.snapshots.Save(ctx, key, dump, time.Now().Unix()); err != nil {
		c.logger.Err(err).Str("func", "coordinator.persistDump").Str("key", key.String()).Msg("failed to persist dump")
		return fmt.Errorf("persist dump %s: %w", key, err)
	}
	return nil
}
