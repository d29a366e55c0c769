// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package projection delivers merged field changes to the application
// layer. The sync coordinator collects changes while holding per-document
// locks and projects them after release, so implementations may block
// without stalling merges.
package projection

import (
	"context"

	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

// Projector receives every field change a merge incorporated. Changes for
// one document arrive in merge order; a nil Value reports a deletion.
type Projector interface {
	Project(ctx context.Context, changes []models.FieldChange) error
}

type logProjector struct {
	log *logger.Logger
}

// NewLogProjector returns a Projector that records each change at info
// level. It is the default sink when the embedding application does not
// install its own.
func NewLogProjector(log *logger.Logger) Projector {
	return &logProjector{log: log}
}

func (p *logProjector) Project(_ context.Context, changes []models.FieldChange) error {
	for _, c := range changes {
		ev := p.log.Info().
			Str("type", c.Type.String()).
			Str("owner", string(c.Owner)).
			Str("field", c.Field)
		if c.Value == nil {
			ev.Bool("deleted", true).Msg("field removed")
			continue
		}
		ev.RawJSON("value", c.Value).Msg("field updated")
	}
	return nil
}

// Recorder is a Projector that accumulates every projected change. Tests
// use it to observe what a merge reported.
type Recorder struct {
	Changes []models.FieldChange
}

func (r *Recorder) Project(_ context.Context, changes []models.FieldChange) error {
	r.Changes = append(r.Changes, changes...)
	return nil
}
