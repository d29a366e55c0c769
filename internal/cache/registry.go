// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/session-foundation/configsync/internal/engine"
	"github.com/session-foundation/configsync/models"
)

// entry pairs a live config object with its own mutex. The per-entry mutex
// serializes all access to one document; the registry map itself is guarded
// by a separate coarse lock so that operations on different documents never
// contend.
type entry struct {
	mu  sync.Mutex
	obj *engine.Object
}

// Registry holds the live config objects of a device, keyed by
// (document type, owner).
type Registry struct {
	mu      sync.RWMutex
	entries map[models.Key]*entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[models.Key]*entry)}
}

// Put registers obj under key, replacing any previous object.
func (r *Registry) Put(key models.Key, obj *engine.Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = &entry{obj: obj}
}

// Delete removes the object under key. Deleting a missing key is a no-op.
func (r *Registry) Delete(key models.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Has reports whether an object is registered under key.
func (r *Registry) Has(key models.Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// KeysForOwner returns the owner's registered keys sorted by document
// merge priority.
func (r *Registry) KeysForOwner(owner models.Owner) []models.Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var keys []models.Key
	for key := range r.entries {
		if key.Owner == owner {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Type.MergePriority() < keys[j].Type.MergePriority()
	})
	return keys
}

// Mutate runs fn with exclusive access to the object under key. fn must not
// perform I/O: it should stage blobs and changes for the caller to persist
// after Mutate returns. Returns [ErrObjectNotLoaded] when key is not
// registered.
func (r *Registry) Mutate(ctx context.Context, key models.Key, fn func(obj *engine.Object) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return ErrObjectNotLoaded
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The entry may have been replaced or removed while we waited for its
	// mutex; operate only on the current registration.
	r.mu.RLock()
	current, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok || current != e {
		return ErrObjectNotLoaded
	}

	return fn(e.obj)
}
